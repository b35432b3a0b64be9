package resilience

import "time"

// Metrics is a point-in-time snapshot of a circuit breaker's cumulative
// counters and derived rates.
type Metrics struct {
	TotalCalls         uint64
	SuccessfulCalls    uint64
	FailedCalls        uint64
	RejectedCalls      uint64
	TimeoutCalls       uint64
	SlowCalls          uint64
	ConsecutiveFailures int
	ConsecutiveSuccesses int
	State              State
	LastStateChange    time.Time
	LastFailureTime    *time.Time

	// WindowFailureRate is the failure rate over the results window, or nil
	// when the window has no samples yet.
	WindowFailureRate *float64
	// WindowSlowCallRate is the slow-call rate over the slow-call window, or
	// nil when slow-call tracking is disabled or the window is empty.
	WindowSlowCallRate *float64
}

// FailureRate returns FailedCalls / TotalCalls, or 0 when TotalCalls is 0.
func (m Metrics) FailureRate() float64 {
	if m.TotalCalls == 0 {
		return 0
	}
	return float64(m.FailedCalls) / float64(m.TotalCalls)
}

// RejectionRate returns RejectedCalls / (TotalCalls + RejectedCalls), or 0
// when the denominator is 0.
func (m Metrics) RejectionRate() float64 {
	denom := m.TotalCalls + m.RejectedCalls
	if denom == 0 {
		return 0
	}
	return float64(m.RejectedCalls) / float64(denom)
}

// counters holds the live, mutation-in-progress cumulative counts backing
// Metrics; kept separate from Metrics itself so snapshots are copies.
type counters struct {
	totalCalls          uint64
	successfulCalls     uint64
	failedCalls         uint64
	rejectedCalls       uint64
	timeoutCalls        uint64
	slowCalls           uint64
	consecutiveFailures int
	consecutiveSuccesses int
	lastStateChange     time.Time
	lastFailureTime     *time.Time
}
