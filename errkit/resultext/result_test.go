package resultext

import (
	"errors"
	"testing"

	"github.com/jonwraymond/errguard/errkit"
)

func TestContextMsgWrapsAndPreservesCategory(t *testing.T) {
	base := errkit.NewNotFound("User", "1")
	wrapped := ContextMsg(base, "loading profile")
	got, ok := errkit.AsError(wrapped)
	if !ok {
		t.Fatal("expected a typed errkit error")
	}
	if got.Category() != errkit.CategoryNotFound {
		t.Fatalf("got %v", got.Category())
	}
}

func TestContextMsgNilPassesThrough(t *testing.T) {
	if ContextMsg(nil, "x") != nil {
		t.Fatal("nil error must pass through unchanged")
	}
}

func TestContextGenericConvenience(t *testing.T) {
	_, err := Context(42, errors.New("boom"), "computing answer")
	if err == nil {
		t.Fatal("expected wrapped error")
	}
	if _, ok := errkit.AsError(err); !ok {
		t.Fatal("expected errkit-typed error")
	}
}

func TestOkOrMissingValue(t *testing.T) {
	var ptr *string
	_, err := OkOrMissingValue(ptr, "api key")
	if err == nil {
		t.Fatal("expected MissingValue error for nil pointer")
	}
	e, _ := errkit.AsError(err)
	if e.Category() != errkit.CategoryMissingValue {
		t.Fatalf("got %v", e.Category())
	}

	v := "present"
	got, err := OkOrMissingValue(&v, "api key")
	if err != nil || got != "present" {
		t.Fatalf("expected pass-through, got %q err=%v", got, err)
	}
}
