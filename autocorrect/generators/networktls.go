package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// NetworkTLSCertificate handles certificate verification failures.
type NetworkTLSCertificate struct{}

func (NetworkTLSCertificate) Name() string { return "network-tls-certificate" }

func (NetworkTLSCertificate) Category() errkit.Category { return errkit.CategoryNetwork }

func (NetworkTLSCertificate) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "certificate") && !strings.Contains(msg, "x509") {
		return autocorrect.Autocorrection{}, false
	}
	url, _ := params.Get("url")
	desc := "Verify the server's TLS certificate chain is valid and trusted by the client's root store."
	if strings.Contains(msg, "expired") {
		desc = "The server's TLS certificate has expired; renew it."
	} else if strings.Contains(msg, "not trusted by") || strings.Contains(msg, "unknown authority") {
		desc = "The certificate's issuing authority is not in the client's trust store; add the CA or use a certificate from a trusted issuer."
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixExplanation,
		Description: fmt.Sprintf("%s (host: %s)", desc, url),
		Confidence:  0.5,
		GeneratedBy: "network-tls-certificate",
	}, true
}
