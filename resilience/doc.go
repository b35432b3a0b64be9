// Package resilience guards calls to flaky dependencies with composable
// reliability patterns. Patterns can be used individually or composed
// together using Executor to build a full execution pipeline.
//
// # Ecosystem Position
//
// resilience sits between application code and an external dependency:
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                        Call Execution Flow                      │
//	├─────────────────────────────────────────────────────────────────┤
//	│                                                                 │
//	│   caller            resilience              External           │
//	│   ┌──────┐         ┌───────────┐           ┌─────────┐         │
//	│   │ Call │────────▶│ Executor  │──────────▶│ Service │         │
//	│   └──────┘         │           │           └─────────┘         │
//	│                    │ ┌───────┐ │                                │
//	│                    │ │RateLim│ │                                │
//	│                    │ ├───────┤ │                                │
//	│                    │ │Bulkhd │ │                                │
//	│                    │ ├───────┤ │                                │
//	│                    │ │Circuit│ │                                │
//	│                    │ ├───────┤ │                                │
//	│                    │ │ Retry │ │                                │
//	│                    │ ├───────┤ │                                │
//	│                    │ │Timeout│ │                                │
//	│                    │ └───────┘ │                                │
//	│                    └───────────┘                                │
//	│                                                                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Resilience Patterns
//
// The package provides five core patterns:
//
//   - [CircuitBreaker]: Prevents cascading failures by stopping requests to
//     failing services once a consecutive-failure count or sliding-window
//     failure/slow-call rate is crossed. Transitions through
//     Closed -> Open -> HalfOpen states.
//
//   - [Retry]: Automatically retries failed operations with configurable
//     backoff strategies (exponential, linear, constant) and jitter.
//
//   - [RateLimiter]: Token bucket rate limiting to prevent overwhelming
//     downstream services. Supports burst allowance and wait-on-limit.
//
//   - [Bulkhead]: Semaphore-based concurrency limiting to prevent resource
//     exhaustion and isolate failures.
//
//   - [Timeout]: Context-based timeout to ensure operations complete within
//     a time limit.
//
// # Quick Start
//
//	// Individual pattern usage
//	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
//	    Name:             "payments-api",
//	    FailureThreshold: 5,
//	    ResetTimeout:     time.Minute,
//	})
//
//	err := cb.Execute(ctx, func(ctx context.Context) error {
//	    return callExternalService(ctx)
//	})
//
//	// Composed patterns with Executor
//	executor := resilience.NewExecutor(
//	    resilience.WithRateLimiter(resilience.NewRateLimiter(resilience.RateLimiterConfig{
//	        Rate:  100,
//	        Burst: 10,
//	    })),
//	    resilience.WithCircuitBreaker(cb),
//	    resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
//	        MaxAttempts:  3,
//	        InitialDelay: 100 * time.Millisecond,
//	    })),
//	    resilience.WithTimeout(5*time.Second),
//	)
//
//	err = executor.Execute(ctx, func(ctx context.Context) error {
//	    return callExternalService(ctx)
//	})
//
// # Execution Order
//
// When using the Executor, patterns are applied in this order (outermost first):
//
//  1. Rate Limiter - limits request rate
//  2. Bulkhead - limits concurrency
//  3. Circuit Breaker - prevents cascading failures
//  4. Retry - retries on failure
//  5. Timeout - limits execution time (innermost)
//
// # Thread Safety
//
// All exported types are safe for concurrent use after construction:
//
//   - [CircuitBreaker]: Execute() and State() are lock-protected; Reset() is safe
//   - [Retry]: Execute() is stateless and safe for concurrent use
//   - [RateLimiter]: Allow(), AllowN(), Wait(), Execute() are mutex-protected
//   - [Bulkhead]: Acquire(), Release(), Execute() use channel-based semaphore
//   - [Timeout]: Execute() is stateless and safe for concurrent use
//   - [Executor]: Execute() is safe; all wrapped patterns maintain their guarantees
//
// # Error Handling
//
// Each pattern returns a typed [errkit.Error] (check category with
// [errkit.CategoryOf], not a sentinel):
//
//   - CategoryCircuitBreakerOpen: circuit breaker is rejecting requests
//   - Retry: once all attempts are exhausted, the last operation error is returned as is
//   - CategoryResourceExhausted: rate limiter or bulkhead is saturated
//   - CategoryTimeout: operation exceeded its configured timeout
//
// Example error handling:
//
//	err := executor.Execute(ctx, operation)
//	if cat, ok := errkit.CategoryOf(err); ok && cat == errkit.CategoryCircuitBreakerOpen {
//	    // Service is unhealthy, circuit is protecting downstream
//	    log.Warn("circuit breaker open, using fallback")
//	    return fallbackResult, nil
//	}
//
// # Observability
//
// [Observer] receives state-change, attempt, result, and reset notifications
// from a [CircuitBreaker], invoked after its internal lock is released.
// RetryConfig.OnRetry is called before each retry attempt; RetryConfig.RetryIf
// and CircuitBreakerConfig.ErrorPredicate customize failure classification.
package resilience
