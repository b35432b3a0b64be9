package generators

import (
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// JSONSyntax applies to parse errors whose Kind identifies the json format.
type JSONSyntax struct{}

func (JSONSyntax) Name() string { return "json-syntax" }

func (JSONSyntax) Category() errkit.Category { return errkit.CategoryParse }

func (JSONSyntax) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	kind, _ := params.Get("kind")
	if !strings.EqualFold(kind, "json") {
		return autocorrect.Autocorrection{}, false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unexpected end of json") || strings.Contains(msg, "unexpected end of input"):
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixSuggestCodeChange,
			Description: "Document ends before a value or closing brace/bracket completes; check for a truncated payload.",
			Confidence:  0.55,
			GeneratedBy: "json-syntax",
		}, true
	case strings.Contains(msg, "invalid character"):
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixSuggestCodeChange,
			Description: "Remove a trailing comma or stray character before the next token.",
			Confidence:  0.55,
			GeneratedBy: "json-syntax",
		}, true
	default:
		return autocorrect.Autocorrection{
			FixType:     autocorrect.FixExplanation,
			Description: "Validate the document against a JSON formatter to locate the malformed token.",
			Confidence:  0.4,
			GeneratedBy: "json-syntax",
		}, true
	}
}
