package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// UnusedVariable suggests renaming an unused local to the blank identifier.
type UnusedVariable struct{}

func (UnusedVariable) Name() string { return "unused-variable" }

func (UnusedVariable) Category() errkit.Category { return errkit.CategoryParse }

func (UnusedVariable) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	code, _ := params.Get("diagnostic_code")
	if !strings.Contains(code, "unused_variable") && !strings.Contains(strings.ToLower(err.Error()), "declared and not used") {
		return autocorrect.Autocorrection{}, false
	}
	name, ok := params.Get("identifier")
	if !ok {
		name, ok = params.Get("context")
	}
	if !ok {
		name = "the variable"
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixSuggestCodeChange,
		Description: fmt.Sprintf("Rename %q to _ or remove the declaration.", name),
		Details: autocorrect.FixDetails{CodeChange: &autocorrect.CodeChangeSuggestion{
			Description: "rename to blank identifier",
			Snippet:     "_",
		}},
		Confidence:  0.7,
		GeneratedBy: "unused-variable",
	}, true
}
