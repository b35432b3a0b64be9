package generators

import (
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// YAMLSyntax applies to parse errors whose Kind identifies the yaml format.
type YAMLSyntax struct{}

func (YAMLSyntax) Name() string { return "yaml-syntax" }

func (YAMLSyntax) Category() errkit.Category { return errkit.CategoryParse }

func (YAMLSyntax) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	kind, _ := params.Get("kind")
	if !strings.EqualFold(kind, "yaml") {
		return autocorrect.Autocorrection{}, false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "did not find expected key") || strings.Contains(msg, "mapping values are not allowed"):
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixSuggestCodeChange,
			Description: "Check indentation consistency around the reported line; YAML mappings require uniform indent per level.",
			Confidence:  0.55,
			GeneratedBy: "yaml-syntax",
		}, true
	case strings.Contains(msg, "found character that cannot start any token"):
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixSuggestCodeChange,
			Description: "Quote the offending scalar value; it contains a character reserved by YAML.",
			Confidence:  0.5,
			GeneratedBy: "yaml-syntax",
		}, true
	default:
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixExplanation,
			Description: "Validate the document with a YAML linter to locate the malformed node.",
			Confidence:  0.4,
			GeneratedBy: "yaml-syntax",
		}, true
	}
}
