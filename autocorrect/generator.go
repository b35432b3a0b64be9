package autocorrect

import (
	"fmt"

	"github.com/jonwraymond/errguard/errkit"
)

// Generator produces a concrete fix from an error's category-specific
// parameters and an optional source-code context string (empty when
// unavailable). Generate must be pure and idempotent: repeated calls on the
// same (err, params, sourceContext) return an equal Autocorrection. Any
// TextEdit it returns must address a byte-exact source range; when a
// generator cannot determine one (including from sourceContext), it must
// emit a CodeChange suggestion instead of a fabricated range.
type Generator interface {
	Name() string
	Category() errkit.Category
	Generate(err errkit.Error, params ExtractedParameters, sourceContext string) (Autocorrection, bool)
}

type funcGenerator struct {
	name     string
	category errkit.Category
	fn       func(errkit.Error, ExtractedParameters, string) (Autocorrection, bool)
}

// NewGeneratorFunc builds a Generator from a name, category, and a plain
// function, for registering small one-off generators without a named type.
func NewGeneratorFunc(name string, category errkit.Category, fn func(errkit.Error, ExtractedParameters, string) (Autocorrection, bool)) Generator {
	return &funcGenerator{name: name, category: category, fn: fn}
}

func (g *funcGenerator) Name() string              { return g.name }
func (g *funcGenerator) Category() errkit.Category { return g.category }
func (g *funcGenerator) Generate(err errkit.Error, params ExtractedParameters, sourceContext string) (Autocorrection, bool) {
	return g.fn(err, params, sourceContext)
}

// builtinFallback returns a generic suggestion for the three categories with
// a built-in fallback: NotFound, Io, Configuration. Any other category
// yields (_, false).
func builtinFallback(err errkit.Error) (Autocorrection, bool) {
	switch err.Category() {
	case errkit.CategoryNotFound:
		return Autocorrection{
			FixType:     FixExplanation,
			Description: fmt.Sprintf("Verify the resource exists before use: %s", err.Error()),
			Confidence:  0.3,
			GeneratedBy: "builtin-fallback",
		}, true
	case errkit.CategoryIo:
		return Autocorrection{
			FixType:     FixExplanation,
			Description: fmt.Sprintf("Check file permissions and that the path exists: %s", err.Error()),
			Confidence:  0.3,
			GeneratedBy: "builtin-fallback",
		}, true
	case errkit.CategoryConfig:
		return Autocorrection{
			FixType:     FixExplanation,
			Description: fmt.Sprintf("Review configuration for missing or malformed keys: %s", err.Error()),
			Confidence:  0.3,
			GeneratedBy: "builtin-fallback",
		}, true
	default:
		return Autocorrection{}, false
	}
}
