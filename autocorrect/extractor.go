package autocorrect

import (
	"regexp"
	"strconv"

	"github.com/jonwraymond/errguard/errkit"
)

// Extractor pulls named parameters out of an error for categories it
// declares support for. Implementations must be side-effect free and
// idempotent: the same error always yields the same ExtractedParameters.
type Extractor interface {
	Name() string
	Categories() []errkit.Category
	Extract(err errkit.Error) (ExtractedParameters, bool)
}

// PatternExtractor matches an error's Display string against a regexp and
// extracts either named capture groups or, absent named groups, positional
// ones under the keys supplied in Keys.
type PatternExtractor struct {
	extractorName  string
	Category       errkit.Category
	Pattern        *regexp.Regexp
	Keys           []string
	BaseConfidence float64
}

// NewPatternExtractor compiles pattern and returns a PatternExtractor. It
// panics on an invalid pattern, matching regexp.MustCompile's convention for
// extractors that are wired up at package-init time.
func NewPatternExtractor(name string, category errkit.Category, pattern string, keys []string, baseConfidence float64) *PatternExtractor {
	return &PatternExtractor{
		extractorName:  name,
		Category:       category,
		Pattern:        regexp.MustCompile(pattern),
		Keys:           keys,
		BaseConfidence: baseConfidence,
	}
}

func (p *PatternExtractor) Name() string { return p.extractorName }

func (p *PatternExtractor) Categories() []errkit.Category { return []errkit.Category{p.Category} }

func (p *PatternExtractor) Extract(err errkit.Error) (ExtractedParameters, bool) {
	names := p.Pattern.SubexpNames()
	hasNamed := false
	for _, n := range names {
		if n != "" {
			hasNamed = true
			break
		}
	}

	m := p.Pattern.FindStringSubmatch(err.Error())
	if m == nil {
		return ExtractedParameters{}, false
	}

	out := NewExtractedParameters(p.extractorName, p.BaseConfidence)
	if hasNamed {
		for i, n := range names {
			if n == "" || i >= len(m) {
				continue
			}
			out.Values[n] = m[i]
		}
		return out, len(out.Values) > 0
	}

	for i, key := range p.Keys {
		idx := i + 1
		if idx >= len(m) {
			break
		}
		out.Values[key] = m[idx]
	}
	return out, len(out.Values) > 0
}

// DiagnosticInfoExtractor pulls parameters directly from an error's rich
// context diagnostic info.
// Confidence is fixed at 0.9: a compiler/linter-supplied diagnostic code is
// more reliable than a regexp match against free text.
type DiagnosticInfoExtractor struct {
	categories []errkit.Category
}

// NewDiagnosticInfoExtractor returns an extractor that applies to the given
// categories (typically all categories that can carry rich context).
func NewDiagnosticInfoExtractor(categories ...errkit.Category) *DiagnosticInfoExtractor {
	return &DiagnosticInfoExtractor{categories: categories}
}

func (d *DiagnosticInfoExtractor) Name() string { return "diagnostic_info" }

func (d *DiagnosticInfoExtractor) Categories() []errkit.Category { return d.categories }

func (d *DiagnosticInfoExtractor) Extract(err errkit.Error) (ExtractedParameters, bool) {
	ctx, ok := err.RichContext()
	if !ok || ctx.Diagnostic == nil {
		return ExtractedParameters{}, false
	}
	diag := ctx.Diagnostic
	out := NewExtractedParameters("diagnostic_info", 0.9)
	if diag.DiagnosticCode != "" {
		out.Values["diagnostic_code"] = diag.DiagnosticCode
	}
	if diag.OriginalMessage != "" {
		out.Values["message"] = diag.OriginalMessage
	}
	if diag.PrimaryLocation != nil {
		out.Values["file_path"] = diag.PrimaryLocation.File
		out.Values["line"] = strconv.Itoa(diag.PrimaryLocation.Line)
		out.Values["column"] = strconv.Itoa(diag.PrimaryLocation.Column)
	}
	if len(out.Values) == 0 {
		return ExtractedParameters{}, false
	}
	return out, true
}
