package generators

import (
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// DanglingExpression catches a bare expression statement whose value is
// discarded — Go's analogue of the missing-semicolon class of parse error,
// since Go's grammar never leaves statement termination ambiguous the way
// semicolon-optional languages do.
type DanglingExpression struct{}

func (DanglingExpression) Name() string { return "dangling-expression" }

func (DanglingExpression) Category() errkit.Category { return errkit.CategoryParse }

func (DanglingExpression) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	code, _ := params.Get("diagnostic_code")
	msg := strings.ToLower(err.Error())
	if !strings.Contains(code, "dangling_expression") && !strings.Contains(msg, "evaluated but not used") {
		return autocorrect.Autocorrection{}, false
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixSuggestCodeChange,
		Description: "Assign the expression's result to _ or a named variable, or remove the statement if it has no side effect.",
		Details:     autocorrect.FixDetails{CodeChange: &autocorrect.CodeChangeSuggestion{Description: "discard result explicitly", Snippet: "_ = <expr>"}},
		Confidence:  0.6,
		GeneratedBy: "dangling-expression",
	}, true
}
