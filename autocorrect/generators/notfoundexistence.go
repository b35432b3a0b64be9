package generators

import (
	"fmt"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// NotFoundExistenceCheck suggests checking for a resource's existence
// before using it, with the resource type and identifier filled in.
type NotFoundExistenceCheck struct{}

func (NotFoundExistenceCheck) Name() string { return "notfound-existence-check" }

func (NotFoundExistenceCheck) Category() errkit.Category { return errkit.CategoryNotFound }

func (NotFoundExistenceCheck) Generate(err errkit.Error, params autocorrect.ExtractedParameters, sourceContext string) (autocorrect.Autocorrection, bool) {
	resourceType, hasType := params.Get("resource_type")
	identifier, hasID := params.Get("identifier")
	if !hasType || !hasID {
		return autocorrect.Autocorrection{}, false
	}
	return autocorrect.Autocorrection{
		FixType:     autocorrect.FixWrapInResultHandling,
		Description: fmt.Sprintf("Check whether %s %q exists before using it, and handle the not-found case explicitly.", resourceType, identifier),
		Confidence:  0.6,
		GeneratedBy: "notfound-existence-check",
	}, true
}
