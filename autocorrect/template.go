package autocorrect

import (
	"github.com/jonwraymond/errguard/autocorrect/syntax"
	"github.com/jonwraymond/errguard/errkit"
)

// FixTemplate is a category-scoped fallback suggestion: a description
// template, a fix type, a base confidence, and an optional list of shell
// command templates, all subject to literal "{key}" substitution over an
// ExtractedParameters mapping. A missing key leaves its
// placeholder untouched.
type FixTemplate struct {
	Category         errkit.Category
	FixType          FixType
	Description      string
	BaseConfidence   float64
	CommandTemplates []string
}

func (t FixTemplate) render(params ExtractedParameters) Autocorrection {
	var cmd *CommandToRun
	if len(t.CommandTemplates) > 0 {
		cmd = &CommandToRun{
			Command: syntax.Substitute(t.CommandTemplates[0], params.Values),
			Args:    substituteAll(t.CommandTemplates[1:], params.Values),
		}
	}
	return Autocorrection{
		FixType:     t.FixType,
		Description: syntax.Substitute(t.Description, params.Values),
		Details:     FixDetails{Command: cmd},
		Confidence:  t.BaseConfidence * params.Confidence,
		GeneratedBy: "template",
	}
}

func substituteAll(templates []string, params map[string]string) []string {
	if len(templates) == 0 {
		return nil
	}
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = syntax.Substitute(tmpl, params)
	}
	return out
}
