package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// IOMissingDirectory handles a write/open failing because a parent
// directory in the path does not exist.
type IOMissingDirectory struct{}

func (IOMissingDirectory) Name() string { return "io-missing-directory" }

func (IOMissingDirectory) Category() errkit.Category { return errkit.CategoryIo }

func (IOMissingDirectory) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "no such file or directory") {
		return autocorrect.Autocorrection{}, false
	}
	path, _ := params.Get("path")
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixRunCommand,
		Description: fmt.Sprintf("Create the missing parent directory before writing to %q.", path),
		Details:     autocorrect.FixDetails{Command: &autocorrect.CommandToRun{Command: "mkdir", Args: []string{"-p"}}},
		Confidence:  0.6,
		GeneratedBy: "io-missing-directory",
	}, true
}
