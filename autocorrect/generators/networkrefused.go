package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// NetworkConnectionRefused handles a peer actively refusing a connection.
type NetworkConnectionRefused struct{}

func (NetworkConnectionRefused) Name() string { return "network-connection-refused" }

func (NetworkConnectionRefused) Category() errkit.Category { return errkit.CategoryNetwork }

func (NetworkConnectionRefused) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	if !strings.Contains(strings.ToLower(err.Error()), "connection refused") {
		return autocorrect.Autocorrection{}, false
	}
	url, _ := params.Get("url")
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixExplanation,
		Description: fmt.Sprintf("Nothing is listening at %q, or a firewall is rejecting the connection. Verify the service is up and the port is correct.", url),
		Confidence:  0.55,
		GeneratedBy: "network-connection-refused",
	}, true
}
