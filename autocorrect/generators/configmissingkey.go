package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// ConfigMissingKey handles a configuration load failing for want of a
// required key.
type ConfigMissingKey struct{}

func (ConfigMissingKey) Name() string { return "config-missing-key" }

func (ConfigMissingKey) Category() errkit.Category { return errkit.CategoryConfig }

func (ConfigMissingKey) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "missing") && !strings.Contains(msg, "required") {
		return autocorrect.Autocorrection{}, false
	}
	key, ok := params.Get("message")
	if !ok {
		key = "the required key"
	}
	path, _ := params.Get("path")
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixConfigChange,
		Description: fmt.Sprintf("Add %s to %s.", key, pathOrDefault(path)),
		Details:     autocorrect.FixDetails{Config: &autocorrect.ConfigChange{Key: key}},
		Confidence:  0.6,
		GeneratedBy: "config-missing-key",
	}, true
}

func pathOrDefault(path string) string {
	if path == "" {
		return "the configuration file"
	}
	return path
}
