package cache

import (
	"context"
	"testing"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

func TestSuggestionCacheMissThenHit(t *testing.T) {
	sc := NewSuggestionCache(NewMemoryCache(DefaultPolicy()), DefaultPolicy())
	ctx := context.Background()
	params := autocorrect.NewExtractedParameters("test", 1).With("path", "/tmp/x")

	if _, ok := sc.Get(ctx, errkit.CategoryIo, params); ok {
		t.Fatal("Get() = true on empty cache, want false")
	}

	fix := autocorrect.Autocorrection{
		FixType:     autocorrect.FixExplanation,
		Description: "check permissions",
		Confidence:  0.6,
	}
	if err := sc.Put(ctx, errkit.CategoryIo, params, fix); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := sc.Get(ctx, errkit.CategoryIo, params)
	if !ok {
		t.Fatal("Get() = false after Put, want true")
	}
	if got.Description != fix.Description || got.Confidence != fix.Confidence {
		t.Errorf("Get() = %+v, want %+v", got, fix)
	}
}

func TestSuggestionCacheKeyStableAcrossMapOrder(t *testing.T) {
	sc := NewSuggestionCache(NewMemoryCache(DefaultPolicy()), DefaultPolicy())
	ctx := context.Background()

	a := autocorrect.NewExtractedParameters("a", 1).With("one", "1").With("two", "2")
	b := autocorrect.NewExtractedParameters("b", 1).With("two", "2").With("one", "1")

	fix := autocorrect.Autocorrection{Description: "shared", Confidence: 0.5}
	if err := sc.Put(ctx, errkit.CategoryConfig, a, fix); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := sc.Get(ctx, errkit.CategoryConfig, b)
	if !ok {
		t.Fatal("Get() = false for equivalent params built in different insertion order, want true")
	}
	if got.Description != "shared" {
		t.Errorf("Description = %q, want shared", got.Description)
	}
}

func TestSuggestionCacheNoCachePolicySkipsPut(t *testing.T) {
	sc := NewSuggestionCache(NewMemoryCache(NoCachePolicy()), NoCachePolicy())
	ctx := context.Background()
	params := autocorrect.NewExtractedParameters("test", 1)

	if err := sc.Put(ctx, errkit.CategoryIo, params, autocorrect.Autocorrection{Description: "x"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if _, ok := sc.Get(ctx, errkit.CategoryIo, params); ok {
		t.Error("Get() = true under NoCachePolicy, want false")
	}
}
