package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// MismatchedTypes handles a type mismatch that is resolvable by an explicit
// numeric conversion — Go's widening/narrowing analogue of implicit numeric
// coercion errors.
type MismatchedTypes struct{}

func (MismatchedTypes) Name() string { return "mismatched-types" }

func (MismatchedTypes) Category() errkit.Category { return errkit.CategoryParse }

func (MismatchedTypes) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	code, _ := params.Get("diagnostic_code")
	if !strings.Contains(code, "mismatched_types") && !strings.Contains(strings.ToLower(err.Error()), "cannot use") {
		return autocorrect.Autocorrection{}, false
	}
	expected, hasExpected := params.Get("expected")
	actual, hasActual := params.Get("actual")
	if !hasExpected || !hasActual {
		return autocorrect.Autocorrection{}, false
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixSuggestCodeChange,
		Description: fmt.Sprintf("Convert the value from %s to %s explicitly.", actual, expected),
		Details:     autocorrect.FixDetails{CodeChange: &autocorrect.CodeChangeSuggestion{Description: "explicit conversion", Snippet: fmt.Sprintf("%s(value)", expected)}},
		Confidence:  0.65,
		GeneratedBy: "mismatched-types",
	}, true
}
