package autocorrect

import (
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/errguard/errkit"
)

// inferenceFactor lowers confidence for inferred (not extracted) parameter
// fills; authoritativeFloor raises confidence back up when the error variant
// itself is the authoritative source of the inferred value.
const (
	inferenceFactor         = 0.9
	authoritativeFloor      = 0.7
	diagnosticFixConfidence = 0.85
)

// Engine runs the suggestion pipeline: diagnostic-info fast
// path, then extraction+inference, then generator dispatch, then template
// fallback, then a built-in generic fallback. The engine owns three
// registration collections: extractors (flat list), generators (category to
// ordered list), templates (category to ordered list). Registration is
// additive only; there is no remove.
type Engine struct {
	extractors []Extractor
	generators map[errkit.Category][]Generator
	templates  map[errkit.Category][]FixTemplate
	group      singleflight.Group
}

// NewEngine returns an empty engine; register extractors/generators/
// templates with AddExtractor/AddGenerator/AddTemplate before use.
func NewEngine() *Engine {
	return &Engine{
		generators: make(map[errkit.Category][]Generator),
		templates:  make(map[errkit.Category][]FixTemplate),
	}
}

func (e *Engine) AddExtractor(ext Extractor) { e.extractors = append(e.extractors, ext) }

// AddGenerator registers a generator under its own category, preserving
// insertion order.
func (e *Engine) AddGenerator(gen Generator) {
	e.generators[gen.Category()] = append(e.generators[gen.Category()], gen)
}

func (e *Engine) AddTemplate(t FixTemplate) {
	e.templates[t.Category] = append(e.templates[t.Category], t)
}

// Suggest computes the best-effort autocorrection for err, or (_, false) if
// nothing in the pipeline applies. sourceContext is an optional snippet of
// surrounding source code, passed through to generator dispatch for
// generators that can use it to compute a byte-exact range; omit it, or pass
// "", when no source is available. Concurrent calls for the same error
// display string and source context are deduplicated via singleflight.
func (e *Engine) Suggest(err errkit.Error, sourceContext ...string) (Autocorrection, bool) {
	var src string
	if len(sourceContext) > 0 {
		src = sourceContext[0]
	}
	key := err.Category().String() + "|" + err.Error() + "|" + src
	v, _, _ := e.group.Do(key, func() (interface{}, error) {
		fix, ok := e.suggest(err, src)
		return suggestResult{fix, ok}, nil
	})
	res := v.(suggestResult)
	return res.fix, res.ok
}

type suggestResult struct {
	fix Autocorrection
	ok  bool
}

func (e *Engine) suggest(err errkit.Error, sourceContext string) (Autocorrection, bool) {
	// Step 1: diagnostic-info fast path.
	if ctx, ok := err.RichContext(); ok && ctx.Diagnostic != nil && len(ctx.Diagnostic.SuggestedFixes) > 0 {
		diag := ctx.Diagnostic
		fix := Autocorrection{
			FixType:          FixTextReplacement,
			Description:      strings.Join(diag.SuggestedFixes, "; "),
			Confidence:       diagnosticFixConfidence,
			GeneratedBy:      "diagnostic_info",
			TargetsErrorCode: diag.DiagnosticCode,
		}
		if loc := diag.PrimaryLocation; loc != nil {
			fix.Details.TextEdit = &TextEdit{
				File:        loc.File,
				StartLine:   loc.Line,
				StartColumn: loc.Column,
				EndLine:     loc.Line,
				EndColumn:   loc.Column,
				Replacement: diag.SuggestedFixes[0],
			}
		}
		return fix, true
	}

	// Step 2: parameter extraction + category-specific inference.
	params := e.extractParams(err)
	params = e.inferParams(err, params)

	// Step 3: generator dispatch, insertion order.
	for _, gen := range e.generators[err.Category()] {
		if fix, ok := gen.Generate(err, params, sourceContext); ok {
			return fix, true
		}
	}

	// Step 4: template fallback, highest base confidence wins.
	if tmpls := e.templates[err.Category()]; len(tmpls) > 0 {
		best := tmpls[0]
		for _, t := range tmpls[1:] {
			if t.BaseConfidence > best.BaseConfidence {
				best = t
			}
		}
		return best.render(params), true
	}

	// Step 5: built-in generic fallback.
	return builtinFallback(err)
}

// extractParams runs every registered extractor whose declared categories
// include err's category, keeping the highest-confidence result and
// breaking ties by extracted-key count.
func (e *Engine) extractParams(err errkit.Error) ExtractedParameters {
	var best ExtractedParameters
	haveBest := false
	for _, ext := range e.extractors {
		if !supportsCategory(ext, err.Category()) {
			continue
		}
		p, ok := ext.Extract(err)
		if !ok {
			continue
		}
		if !haveBest {
			best, haveBest = p, true
			continue
		}
		if p.Confidence > best.Confidence ||
			(p.Confidence == best.Confidence && len(p.Values) > len(best.Values)) {
			best = p
		}
	}
	if !haveBest {
		return NewExtractedParameters("none", 0)
	}
	return best
}

func supportsCategory(ext Extractor, cat errkit.Category) bool {
	for _, c := range ext.Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

// inferParams fills category-specific parameters the extractors did not
// find, from the error variant's own fields. Inferred values lower overall
// confidence by inferenceFactor, unless the variant is the authoritative
// source for that value, in which case confidence is floor-raised to
// authoritativeFloor.
func (e *Engine) inferParams(err errkit.Error, params ExtractedParameters) ExtractedParameters {
	inferred, authoritative := inferFromVariant(err)
	if len(inferred) == 0 {
		return params
	}

	out := params
	gainedAny := false
	for k, v := range inferred {
		if _, exists := out.Get(k); exists {
			continue
		}
		out = out.With(k, v)
		gainedAny = true
	}
	if !gainedAny {
		return out
	}

	if authoritative {
		if out.Confidence < authoritativeFloor {
			out.Confidence = authoritativeFloor
		}
	} else {
		out.Confidence *= inferenceFactor
	}
	return out
}

// inferFromVariant extracts parameters directly from the concrete error
// type's own fields rather than its Display string. authoritative is true
// when the variant itself (not a downstream heuristic) is the source of
// truth for these values.
func inferFromVariant(err errkit.Error) (map[string]string, bool) {
	switch e := err.(type) {
	case *errkit.IoError:
		m := map[string]string{"op": e.Op}
		if e.Path != nil {
			m["path"] = *e.Path
		}
		return m, true
	case *errkit.ParseError:
		return map[string]string{"kind": e.Kind, "context": e.Context}, true
	case *errkit.NetworkError:
		m := map[string]string{"kind": e.Kind}
		if e.URL != nil {
			m["url"] = *e.URL
		}
		return m, true
	case *errkit.ConfigError:
		m := map[string]string{"message": e.Message}
		if e.Path != nil {
			m["path"] = *e.Path
		}
		return m, true
	case *errkit.NotFoundError:
		return map[string]string{"resource_type": e.ResourceType, "identifier": e.Identifier}, true
	case *errkit.ResourceExhaustedError:
		return map[string]string{"resource": e.Resource, "limit": e.Limit, "current": e.Current}, true
	case *errkit.CircuitBreakerOpenError:
		return map[string]string{"name": e.Name}, true
	case *errkit.TimeoutError:
		return map[string]string{"op": e.Op, "duration": e.Duration.String()}, true
	default:
		return nil, false
	}
}

// sortedKeys returns params' keys in sorted order.
func sortedKeys(params ExtractedParameters) []string {
	keys := make([]string, 0, len(params.Values))
	for k := range params.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
