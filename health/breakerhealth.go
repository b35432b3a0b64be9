package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/errguard/resilience"
)

// BreakerChecker reports a circuit breaker's state as a health result:
// Closed -> Healthy, HalfOpen -> Degraded, Open -> Unhealthy.
type BreakerChecker struct {
	name    string
	breaker *resilience.CircuitBreaker
}

// NewBreakerChecker wraps breaker as a named Checker.
func NewBreakerChecker(name string, breaker *resilience.CircuitBreaker) *BreakerChecker {
	return &BreakerChecker{name: name, breaker: breaker}
}

// Name returns the checker's name.
func (b *BreakerChecker) Name() string {
	return b.name
}

// Check reports the breaker's current state and its rolling metrics.
func (b *BreakerChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	m := b.breaker.Metrics()
	details := map[string]any{
		"state":                 m.State.String(),
		"total_calls":           m.TotalCalls,
		"successful_calls":      m.SuccessfulCalls,
		"failed_calls":          m.FailedCalls,
		"rejected_calls":        m.RejectedCalls,
		"timeout_calls":         m.TimeoutCalls,
		"consecutive_failures":  m.ConsecutiveFailures,
		"consecutive_successes": m.ConsecutiveSuccesses,
	}
	if m.WindowFailureRate != nil {
		details["window_failure_rate"] = *m.WindowFailureRate
	}

	switch b.breaker.State() {
	case resilience.StateOpen:
		return Unhealthy(
			fmt.Sprintf("circuit %q is open", b.name),
			ErrCheckFailed,
		).WithDetails(details)
	case resilience.StateHalfOpen:
		return Degraded(
			fmt.Sprintf("circuit %q is half-open, probing recovery", b.name),
		).WithDetails(details)
	default:
		return Healthy(
			fmt.Sprintf("circuit %q is closed", b.name),
		).WithDetails(details)
	}
}

var _ Checker = (*BreakerChecker)(nil)
