// Package cache provides deterministic caching, built around a generic
// byte-oriented Cache interface plus a domain-typed SuggestionCache that
// memoizes autocorrection engine results.
//
// It provides a Cache interface with memory implementation, SHA-256-based
// key derivation, and TTL policies with unsafe-tag handling for the generic
// middleware path.
//
// # Ecosystem Position
//
// SuggestionCache sits in front of the autocorrection engine, avoiding
// repeat extraction/generation work for errors seen before:
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                   Suggestion Lookup Flow                        │
//	├─────────────────────────────────────────────────────────────────┤
//	│                                                                 │
//	│   caller          SuggestionCache         autocorrect            │
//	│   ┌──────┐         ┌─────────┐          ┌─────────┐            │
//	│   │ err  │────────▶│ lookup  │─────────▶│ Engine  │            │
//	│   └──────┘         │         │   miss   │.Suggest │            │
//	│       ▲            │ ┌─────┐ │          └─────────┘            │
//	│       │            │ │Keyer│ │              │                   │
//	│       │            │ ├─────┤ │              │                   │
//	│       │            │ │Cache│◀──────────────┘                   │
//	│       │    hit     │ ├─────┤ │   store                         │
//	│       └────────────│ │Policy│ │                                 │
//	│                    │ └─────┘ │                                 │
//	│                    └─────────┘                                 │
//	│                                                                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
//   - [Cache]: Interface for caching byte-slice values (Get/Set/Delete)
//   - [MemoryCache]: Thread-safe in-memory cache with TTL support
//   - [Keyer]: Interface for deterministic cache key generation
//   - [DefaultKeyer]: SHA-256 based keyer with canonical JSON serialization
//   - [Policy]: Configures TTL defaults and maximums
//   - [SuggestionCache]: JSON-encodes/decodes Autocorrections over a Cache,
//     keyed by error category and extracted parameters
//   - [CacheMiddleware]: Generic transparent caching wrapper for any keyed
//     byte-producing operation
//
// # Quick Start
//
//	policy := cache.DefaultPolicy() // 5min TTL, 1hr max
//	memCache := cache.NewMemoryCache(policy)
//	suggestions := cache.NewSuggestionCache(memCache, policy)
//
//	if fix, ok := suggestions.Get(ctx, err.Category(), params); ok {
//	    return fix, true
//	}
//	fix, ok := engine.Suggest(err)
//	if ok {
//	    _ = suggestions.Put(ctx, err.Category(), params, fix)
//	}
//
// # Key Generation
//
// The [DefaultKeyer] generates deterministic cache keys using:
//
//	cache:<id>:<hash>
//
// Where hash is the first 16 hex characters of SHA-256(canonical JSON(input)).
// Canonical JSON ensures map keys are sorted for deterministic serialization;
// [SuggestionCache] relies on this to key by extracted-parameter content
// regardless of Go's randomized map iteration order.
//
// # TTL Policies
//
// The [Policy] type controls caching behavior:
//
//   - DefaultTTL: Applied when no specific TTL is provided
//   - MaxTTL: Upper bound for any TTL (prevents excessive caching)
//   - AllowUnsafe: Whether the generic middleware path caches unsafe-tagged
//     operations
//
// Preset policies:
//
//   - [DefaultPolicy]: 5 minute default, 1 hour max, unsafe=false
//   - [NoCachePolicy]: Disabled (0 TTL)
//
// # Thread Safety
//
// All exported types are safe for concurrent use:
//
//   - [MemoryCache]: sync.RWMutex protects all operations
//   - [DefaultKeyer]: Stateless, concurrent-safe
//   - [SuggestionCache], [CacheMiddleware]: Delegate to thread-safe Cache/Keyer
//   - [Policy]: Immutable struct, concurrent-safe
//
// # Error Handling
//
// Sentinel errors (use errors.Is for checking):
//
//   - [ErrNilCache]: Cache is nil
//   - [ErrInvalidKey]: Key is empty, whitespace-only, or contains newlines
//   - [ErrKeyTooLong]: Key exceeds MaxKeyLength (512 characters)
//
// Note: Cache.Get never returns errors - it returns (nil, false) on miss.
// Key validation is performed via [ValidateKey] function.
package cache
