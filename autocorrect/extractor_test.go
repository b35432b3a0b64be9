package autocorrect

import (
	"testing"

	"github.com/jonwraymond/errguard/errkit"
)

func TestPatternExtractorNamedGroups(t *testing.T) {
	ext := NewPatternExtractor("not-found", errkit.CategoryNotFound,
		`^(?P<type>\w+) not found: (?P<id>.+)$`, nil, 0.6)

	err := errkit.NewNotFound("user", "alice")
	params, ok := ext.Extract(err)
	if !ok {
		t.Fatal("Extract() = false, want true")
	}
	if v, _ := params.Get("type"); v != "user" {
		t.Errorf("type = %q, want user", v)
	}
	if v, _ := params.Get("id"); v != "alice" {
		t.Errorf("id = %q, want alice", v)
	}
	if params.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", params.Confidence)
	}
}

func TestPatternExtractorPositionalKeys(t *testing.T) {
	ext := NewPatternExtractor("not-found-positional", errkit.CategoryNotFound,
		`^(\w+) not found: (.+)$`, []string{"type", "id"}, 0.6)

	err := errkit.NewNotFound("widget", "w-1")
	params, ok := ext.Extract(err)
	if !ok {
		t.Fatal("Extract() = false, want true")
	}
	if v, _ := params.Get("type"); v != "widget" {
		t.Errorf("type = %q, want widget", v)
	}
	if v, _ := params.Get("id"); v != "w-1" {
		t.Errorf("id = %q, want w-1", v)
	}
}

func TestPatternExtractorNoMatch(t *testing.T) {
	ext := NewPatternExtractor("config-missing", errkit.CategoryConfig, `^nomatch$`, nil, 0.5)

	err := errkit.NewConfig("bad value", nil, nil)
	if _, ok := ext.Extract(err); ok {
		t.Error("Extract() = true, want false for non-matching pattern")
	}
}

func TestDiagnosticInfoExtractorRequiresDiagnostic(t *testing.T) {
	ext := NewDiagnosticInfoExtractor(errkit.CategoryParse)
	err := errkit.NewParse(nil, "json", "line 3")
	if _, ok := ext.Extract(err); ok {
		t.Error("Extract() = true, want false with no rich context")
	}
}

func TestDiagnosticInfoExtractorReadsCode(t *testing.T) {
	ext := NewDiagnosticInfoExtractor(errkit.CategoryParse)
	base := errkit.NewParse(nil, "json", "line 3")
	wrapped := base.AddContext(errkit.NewErrorContext("parse failed").WithDiagnostic(errkit.DiagnosticInfo{
		DiagnosticCode: "E0001",
	}))

	asErr, ok := errkit.AsError(wrapped)
	if !ok {
		t.Fatal("AsError() = false")
	}
	// The extractor reads RichContext off the top-level value, matching how
	// CategoryOf/GetRichContext behave.
	params, ok := ext.Extract(asErr)
	if !ok {
		t.Fatal("Extract() = false, want true")
	}
	if v, _ := params.Get("diagnostic_code"); v != "E0001" {
		t.Errorf("diagnostic_code = %q, want E0001", v)
	}
	if params.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", params.Confidence)
	}
}
