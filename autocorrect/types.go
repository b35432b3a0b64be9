// Package autocorrect implements the suggestion engine: parameter
// extraction from errors, fix-generator dispatch by error category, and
// templated fallback suggestions with confidence scoring.
package autocorrect

import "github.com/jonwraymond/errguard/errkit"

// FixType classifies the shape of a suggested fix.
type FixType int

const (
	FixTextReplacement FixType = iota
	FixSuggestCodeChange
	FixAddImport
	FixAddDependency
	FixRunCommand
	FixConfigChange
	FixAddStructField
	FixWrapInResultHandling
	FixExplanation
	FixManualInterventionRequired
	FixAddErrorVariant
	FixAddMatchArm
)

func (f FixType) String() string {
	switch f {
	case FixTextReplacement:
		return "text_replacement"
	case FixSuggestCodeChange:
		return "suggest_code_change"
	case FixAddImport:
		return "add_import"
	case FixAddDependency:
		return "add_dependency"
	case FixRunCommand:
		return "run_command"
	case FixConfigChange:
		return "config_change"
	case FixAddStructField:
		return "add_struct_field"
	case FixWrapInResultHandling:
		return "wrap_in_result_handling"
	case FixExplanation:
		return "explanation"
	case FixManualInterventionRequired:
		return "manual_intervention_required"
	case FixAddErrorVariant:
		return "add_error_variant"
	case FixAddMatchArm:
		return "add_match_arm"
	default:
		return "unknown"
	}
}

// TextEdit is a byte-exact source-range replacement. File is optional: empty
// means the same file as the error's primary location, or unknown.
type TextEdit struct {
	File                   string
	StartLine, StartColumn int
	EndLine, EndColumn     int
	Replacement            string
}

// CodeChangeSuggestion describes a change without a byte-exact range.
type CodeChangeSuggestion struct {
	Description string
	Snippet     string
}

// ImportAddition names a package to import.
type ImportAddition struct {
	Path  string
	Alias string
}

// DependencyAddition names a module dependency to add.
type DependencyAddition struct {
	Module  string
	Version string
}

// CommandToRun is a shell command the user could run to fix the issue.
type CommandToRun struct {
	Command string
	Args    []string
}

// ConfigChange describes a configuration key/value to set.
type ConfigChange struct {
	Key   string
	Value string
}

// FixDetails holds the concrete shape a fix can take. A fix with structured
// detail sets the field matching the FixType tag on the owning
// Autocorrection; a fix without structured detail leaves every field nil.
type FixDetails struct {
	TextEdit   *TextEdit
	CodeChange *CodeChangeSuggestion
	Import     *ImportAddition
	Dependency *DependencyAddition
	Command    *CommandToRun
	Config     *ConfigChange
}

// Autocorrection is a single suggested fix with a confidence score.
type Autocorrection struct {
	FixType           FixType
	Description       string
	Details           FixDetails
	Confidence        float64
	TargetsErrorCode  string
	GeneratedBy       string
}

// ExtractedParameters holds named values pulled from an error's display
// string or diagnostic info, with a per-extraction confidence score.
type ExtractedParameters struct {
	Values     map[string]string
	Confidence float64
	Source     string
}

// NewExtractedParameters returns an empty parameter set.
func NewExtractedParameters(source string, confidence float64) ExtractedParameters {
	return ExtractedParameters{Values: map[string]string{}, Confidence: confidence, Source: source}
}

// Get returns a value and whether it was present.
func (p ExtractedParameters) Get(key string) (string, bool) {
	v, ok := p.Values[key]
	return v, ok
}

// With returns a copy with key set to value, non-mutating.
func (p ExtractedParameters) With(key, value string) ExtractedParameters {
	cp := p.clone()
	cp.Values[key] = value
	return cp
}

func (p ExtractedParameters) clone() ExtractedParameters {
	cp := ExtractedParameters{Values: make(map[string]string, len(p.Values)), Confidence: p.Confidence, Source: p.Source}
	for k, v := range p.Values {
		cp.Values[k] = v
	}
	return cp
}

// Merge combines p with other: higher confidence wins per key set, ties
// preserve p's existing keys.
func (p ExtractedParameters) Merge(other ExtractedParameters) ExtractedParameters {
	if other.Confidence > p.Confidence {
		return other.mergeLowerPriority(p)
	}
	return p.mergeLowerPriority(other)
}

func (p ExtractedParameters) mergeLowerPriority(lower ExtractedParameters) ExtractedParameters {
	cp := p.clone()
	for k, v := range lower.Values {
		if _, exists := cp.Values[k]; !exists {
			cp.Values[k] = v
		}
	}
	return cp
}

// categoryKey is an alias of errkit.Category; the registries key on
// errkit.Category directly.
type categoryKey = errkit.Category
