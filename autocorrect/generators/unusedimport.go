package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// UnusedImport removes an import line flagged by a parse diagnostic whose
// code identifies it as an unused-import complaint.
type UnusedImport struct{}

func (UnusedImport) Name() string { return "unused-import" }

func (UnusedImport) Category() errkit.Category { return errkit.CategoryParse }

func (UnusedImport) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	code, _ := params.Get("diagnostic_code")
	if !strings.Contains(code, "unused_import") && !strings.Contains(strings.ToLower(err.Error()), "imported and not used") {
		return autocorrect.Autocorrection{}, false
	}
	path, ok := params.Get("path")
	if !ok {
		path = "the import"
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixSuggestCodeChange,
		Description: fmt.Sprintf("Remove the unused import %q.", path),
		Details: autocorrect.FixDetails{CodeChange: &autocorrect.CodeChangeSuggestion{
			Description: "delete the import line",
			Snippet:     "",
		}},
		Confidence:  0.75,
		GeneratedBy: "unused-import",
	}, true
}
