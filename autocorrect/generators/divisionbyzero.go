package generators

import (
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// DivisionByZeroGuard suggests a guard clause for an internal error
// wrapping a division-by-zero panic recovery.
type DivisionByZeroGuard struct{}

func (DivisionByZeroGuard) Name() string { return "division-by-zero-guard" }

func (DivisionByZeroGuard) Category() errkit.Category { return errkit.CategoryInternal }

func (DivisionByZeroGuard) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	if !strings.Contains(strings.ToLower(err.Error()), "divide by zero") && !strings.Contains(strings.ToLower(err.Error()), "division by zero") {
		return autocorrect.Autocorrection{}, false
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixSuggestCodeChange,
		Description: "Guard the divisor with an explicit zero check before the division and return an error instead of panicking.",
		Details:     autocorrect.FixDetails{CodeChange: &autocorrect.CodeChangeSuggestion{Description: "zero-check guard", Snippet: "if divisor == 0 {\n\treturn 0, errDivisorZero\n}"}},
		Confidence:  0.65,
		GeneratedBy: "division-by-zero-guard",
	}, true
}
