package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonwraymond/errguard/autocorrect"
	"github.com/jonwraymond/errguard/errkit"
)

// SuggestionCache caches computed Autocorrections keyed by error category
// and extracted-parameter set, so the autocorrection engine doesn't re-run
// extraction and generation for a repeat error. It is a thin, domain-typed
// wrapper over the generic byte Cache and Keyer.
type SuggestionCache struct {
	cache  Cache
	keyer  Keyer
	policy Policy
}

// NewSuggestionCache wraps cache with policy, using DefaultKeyer's
// canonical-JSON hashing for key derivation.
func NewSuggestionCache(cache Cache, policy Policy) *SuggestionCache {
	return &SuggestionCache{cache: cache, keyer: NewDefaultKeyer(), policy: policy}
}

// Get returns a previously cached suggestion for the given category and
// extracted parameters, or (_, false) on miss or decode failure.
func (s *SuggestionCache) Get(ctx context.Context, category errkit.Category, params autocorrect.ExtractedParameters) (autocorrect.Autocorrection, bool) {
	key, err := s.key(category, params)
	if err != nil {
		return autocorrect.Autocorrection{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return autocorrect.Autocorrection{}, false
	}
	var fix autocorrect.Autocorrection
	if err := json.Unmarshal(raw, &fix); err != nil {
		return autocorrect.Autocorrection{}, false
	}
	return fix, true
}

// Put stores fix under the key derived from category and params, using the
// cache's configured policy TTL. A non-positive effective TTL is a no-op.
func (s *SuggestionCache) Put(ctx context.Context, category errkit.Category, params autocorrect.ExtractedParameters, fix autocorrect.Autocorrection) error {
	if !s.policy.ShouldCache() {
		return nil
	}
	key, err := s.key(category, params)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(fix)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, raw, s.policy.EffectiveTTL(0))
}

// key derives a cache key from the category and the sorted extracted
// parameter values, so identical errors with non-deterministic map
// iteration order still land on the same key.
func (s *SuggestionCache) key(category errkit.Category, params autocorrect.ExtractedParameters) (string, error) {
	return s.keyer.Key(fmt.Sprintf("autocorrect:%s", category), canonicalParams(params))
}

func canonicalParams(params autocorrect.ExtractedParameters) map[string]any {
	out := make(map[string]any, len(params.Values))
	for k, v := range params.Values {
		out[k] = v
	}
	return out
}
