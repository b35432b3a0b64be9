package generators

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// IOPermissionDenied handles filesystem permission errors.
type IOPermissionDenied struct{}

func (IOPermissionDenied) Name() string { return "io-permission-denied" }

func (IOPermissionDenied) Category() errkit.Category { return errkit.CategoryIo }

func (IOPermissionDenied) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	if !strings.Contains(strings.ToLower(err.Error()), "permission denied") {
		return autocorrect.Autocorrection{}, false
	}
	path, _ := params.Get("path")
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixRunCommand,
		Description: fmt.Sprintf("Grant read/write permission on %q, or run the process as a user that already has it.", path),
		Details:     autocorrect.FixDetails{Command: &autocorrect.CommandToRun{Command: "chmod", Args: []string{"u+rw", path}}},
		Confidence:  0.6,
		GeneratedBy: "io-permission-denied",
	}, true
}
