// Package syntax generates Go source snippets for fix suggestions and
// stores reusable text templates keyed by error category and code.
package syntax

import (
	"strings"

	"github.com/jonwraymond/errguard/errkit"
)

// FixTemplate is a named piece of template code with `{key}` placeholders,
// tagged with the categories and diagnostic codes it applies to.
type FixTemplate struct {
	Name                 string
	Description          string
	Template             string
	ApplicableCategories []errkit.Category
	TargetErrorCodes     []string
}

// NewFixTemplate builds a template with no categories or codes attached.
func NewFixTemplate(name, description, template string) FixTemplate {
	return FixTemplate{Name: name, Description: description, Template: template}
}

// WithCategory returns a copy with category appended.
func (t FixTemplate) WithCategory(category errkit.Category) FixTemplate {
	t.ApplicableCategories = append(append([]errkit.Category{}, t.ApplicableCategories...), category)
	return t
}

// WithErrorCode returns a copy with code appended.
func (t FixTemplate) WithErrorCode(code string) FixTemplate {
	t.TargetErrorCodes = append(append([]string{}, t.TargetErrorCodes...), code)
	return t
}

// Apply substitutes every "{key}" placeholder in the template with the
// corresponding value from params.
func (t FixTemplate) Apply(params map[string]string) string {
	return Substitute(t.Template, params)
}

// Substitute replaces every "{key}" placeholder in template with params[key].
// A key with no entry in params leaves its placeholder untouched.
func Substitute(template string, params map[string]string) string {
	result := template
	for key, value := range params {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	return result
}

// TemplateRegistry indexes FixTemplates for lookup by name, category, or
// error code.
type TemplateRegistry struct {
	templates map[string]FixTemplate
}

// NewTemplateRegistry returns an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]FixTemplate)}
}

// Register adds or replaces a template under its own name.
func (r *TemplateRegistry) Register(t FixTemplate) {
	r.templates[t.Name] = t
}

// Get returns the template with the given name, if registered.
func (r *TemplateRegistry) Get(name string) (FixTemplate, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// ForCategory returns every template applicable to category, in no
// guaranteed order (matching Go map iteration).
func (r *TemplateRegistry) ForCategory(category errkit.Category) []FixTemplate {
	var out []FixTemplate
	for _, t := range r.templates {
		for _, c := range t.ApplicableCategories {
			if c == category {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ForErrorCode returns every template targeting the given diagnostic code.
func (r *TemplateRegistry) ForErrorCode(code string) []FixTemplate {
	var out []FixTemplate
	for _, t := range r.templates {
		for _, c := range t.TargetErrorCodes {
			if c == code {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
