package resilience

import "time"

// State represents the circuit breaker state.
type State int

const (
	// StateClosed means the circuit is operating normally.
	StateClosed State = iota
	// StateOpen means the circuit is blocking all requests.
	StateOpen
	// StateHalfOpen means the circuit is testing if the service recovered.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures the circuit breaker. It is cloneable (Go struct copy); ErrorPredicate is a
// callable and is therefore excluded from the %#v debug view by
// CircuitBreakerConfig.GoString.
type CircuitBreakerConfig struct {
	// Name identifies this breaker in errors, metrics, and observer calls.
	Name string

	// FailureThreshold is the consecutive-failure count that opens the
	// circuit. Default: 5.
	FailureThreshold int

	// FailureRateThreshold is the sliding-window failure rate that opens the
	// circuit once MinimumRequestThresholdForRate samples exist. Default: 0.5.
	FailureRateThreshold float64

	// MinimumRequestThresholdForRate is the minimum window sample count
	// before FailureRateThreshold is evaluated. Default: 10.
	MinimumRequestThresholdForRate int

	// SuccessThresholdToClose is the consecutive HalfOpen successes needed
	// to close the circuit. Default: 3.
	SuccessThresholdToClose int

	// ResetTimeout is how long Open is held before allowing a HalfOpen
	// probe. Default: 30s.
	ResetTimeout time.Duration

	// HalfOpenMaxConcurrentOperations caps in-flight HalfOpen probes.
	// Default: 1.
	HalfOpenMaxConcurrentOperations int

	// OperationTimeout bounds each invocation of the guarded operation.
	// Default: 5s.
	OperationTimeout time.Duration

	// SlidingWindowSize bounds the results window. Default: 100.
	SlidingWindowSize int

	// MetricsWindowSize bounds the slow-call window. Default: 100.
	MetricsWindowSize int

	// SlowCallDurationThreshold marks a completed call as slow when elapsed
	// is at least this value. Unset (nil) disables slow-call tracking.
	SlowCallDurationThreshold *time.Duration

	// SlowCallRateThreshold is the slow-call-rate that, once crossed (with
	// MinimumRequestThresholdForRate samples), opens the circuit. Unset
	// (nil) disables this trigger.
	SlowCallRateThreshold *float64

	// TrackMetrics enables cumulative counters. Default: true. A nil value
	// (the zero value for a partially-built config) is treated as unset and
	// falls back to the default, rather than silently disabling metrics.
	TrackMetrics *bool

	// ErrorPredicate decides whether an operation-returned error counts as a
	// fault; nil means every non-nil error counts. Never invoked for
	// timeout-synthesized failures.
	ErrorPredicate func(error) bool
}

// DefaultCircuitBreakerConfig returns the defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	trackMetrics := true
	return CircuitBreakerConfig{
		Name:                            name,
		FailureThreshold:                5,
		FailureRateThreshold:            0.5,
		MinimumRequestThresholdForRate:  10,
		SuccessThresholdToClose:         3,
		ResetTimeout:                    30 * time.Second,
		HalfOpenMaxConcurrentOperations: 1,
		OperationTimeout:                5 * time.Second,
		SlidingWindowSize:               100,
		MetricsWindowSize:               100,
		TrackMetrics:                    &trackMetrics,
	}
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig(c.Name)
	if c.FailureThreshold > 0 {
		d.FailureThreshold = c.FailureThreshold
	}
	if c.FailureRateThreshold > 0 {
		d.FailureRateThreshold = c.FailureRateThreshold
	}
	if c.MinimumRequestThresholdForRate > 0 {
		d.MinimumRequestThresholdForRate = c.MinimumRequestThresholdForRate
	}
	if c.SuccessThresholdToClose > 0 {
		d.SuccessThresholdToClose = c.SuccessThresholdToClose
	}
	if c.ResetTimeout > 0 {
		d.ResetTimeout = c.ResetTimeout
	}
	if c.HalfOpenMaxConcurrentOperations > 0 {
		d.HalfOpenMaxConcurrentOperations = c.HalfOpenMaxConcurrentOperations
	}
	if c.OperationTimeout > 0 {
		d.OperationTimeout = c.OperationTimeout
	}
	if c.SlidingWindowSize > 0 {
		d.SlidingWindowSize = c.SlidingWindowSize
	}
	if c.MetricsWindowSize > 0 {
		d.MetricsWindowSize = c.MetricsWindowSize
	}
	d.SlowCallDurationThreshold = c.SlowCallDurationThreshold
	d.SlowCallRateThreshold = c.SlowCallRateThreshold
	d.ErrorPredicate = c.ErrorPredicate
	if c.TrackMetrics != nil {
		d.TrackMetrics = c.TrackMetrics
	}
	return d
}

// GoString excludes ErrorPredicate from debug formatting.
func (c CircuitBreakerConfig) GoString() string {
	cp := c
	cp.ErrorPredicate = nil
	return "resilience.CircuitBreakerConfig{...}"
}
