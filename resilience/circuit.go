package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/errguard/errkit"
)

// CircuitBreaker guards calls to a flaky dependency using a rolling-window,
// rate-and-count state machine: Closed -> Open on either a
// consecutive-failure streak or a sliding-window failure/slow-call rate;
// Open -> HalfOpen after ResetTimeout; HalfOpen -> Closed after
// SuccessThresholdToClose consecutive successes, or back to Open on any
// HalfOpen failure.
type CircuitBreaker struct {
	config CircuitBreakerConfig

	mu               sync.RWMutex
	state            State
	consecutiveFails int
	consecutiveOK    int
	openedAt         time.Time
	halfOpenInFlight int

	results   *boolWindow // true = success
	slowCalls *boolWindow // true = slow

	counters counters

	observers observerList
}

// NewCircuitBreaker constructs a breaker from config, filling any zero-value
// fields with the defaults.
func NewCircuitBreaker(config CircuitBreakerConfig, observers ...Observer) *CircuitBreaker {
	config = config.withDefaults()
	cb := &CircuitBreaker{
		config:  config,
		state:   StateClosed,
		results: newBoolWindow(config.SlidingWindowSize),
	}
	if config.SlowCallRateThreshold != nil || config.SlowCallDurationThreshold != nil {
		cb.slowCalls = newBoolWindow(config.MetricsWindowSize)
	}
	for _, o := range observers {
		cb.observers.add(o)
	}
	cb.counters.lastStateChange = now()
	return cb
}

func now() time.Time { return time.Now() }

// trackMetrics reports whether cumulative counters should be updated.
// config.TrackMetrics is always non-nil after withDefaults, but this
// guards against a CircuitBreakerConfig built without it.
func (cb *CircuitBreaker) trackMetrics() bool {
	return cb.config.TrackMetrics == nil || *cb.config.TrackMetrics
}

// AddObserver registers an additional observer.
func (cb *CircuitBreaker) AddObserver(o Observer) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.observers.add(o)
}

// State returns the current state, promoting Open to HalfOpen if
// ResetTimeout has elapsed.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	state, transitioned, from := cb.currentStateLocked()
	cb.mu.Unlock()
	if transitioned {
		cb.observers.stateChange(cb.config.Name, from, state)
	}
	return state
}

// Execute runs op if the breaker allows it, recording the outcome.
func (cb *CircuitBreaker) Execute(ctx context.Context, op func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, cb.config.OperationTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() { done <- op(opCtx) }()

	var err error
	var timedOut bool
	select {
	case err = <-done:
	case <-opCtx.Done():
		timedOut = true
		err = errkit.NewTimeout(cb.config.Name, cb.config.OperationTimeout)
	}
	elapsed := time.Since(start)

	cb.afterRequest(err, timedOut, elapsed)
	return err
}

// ExecuteAsync runs Execute in a goroutine, delivering the result on the
// returned channel.
func (cb *CircuitBreaker) ExecuteAsync(ctx context.Context, op func(context.Context) error) <-chan error {
	out := make(chan error, 1)
	go func() { out <- cb.Execute(ctx, op) }()
	return out
}

// Reset forces the breaker back to Closed and clears all counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.state
	cb.state = StateClosed
	cb.consecutiveFails = 0
	cb.consecutiveOK = 0
	cb.halfOpenInFlight = 0
	cb.results.reset()
	if cb.slowCalls != nil {
		cb.slowCalls.reset()
	}
	cb.counters = counters{lastStateChange: now()}
	cb.mu.Unlock()

	if from != StateClosed {
		cb.observers.stateChange(cb.config.Name, from, StateClosed)
	}
	cb.observers.reset(cb.config.Name)
}

// Metrics returns a snapshot of cumulative counters and derived rates.
func (cb *CircuitBreaker) Metrics() Metrics {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	m := Metrics{
		TotalCalls:           cb.counters.totalCalls,
		SuccessfulCalls:       cb.counters.successfulCalls,
		FailedCalls:           cb.counters.failedCalls,
		RejectedCalls:         cb.counters.rejectedCalls,
		TimeoutCalls:          cb.counters.timeoutCalls,
		SlowCalls:             cb.counters.slowCalls,
		ConsecutiveFailures:   cb.consecutiveFails,
		ConsecutiveSuccesses:  cb.consecutiveOK,
		State:                 cb.state,
		LastStateChange:       cb.counters.lastStateChange,
		LastFailureTime:       cb.counters.lastFailureTime,
	}
	if rate, ok := cb.results.falseRate(); ok {
		m.WindowFailureRate = &rate
	}
	if cb.slowCalls != nil {
		if rate, ok := cb.slowCalls.trueRate(); ok {
			m.WindowSlowCallRate = &rate
		}
	}
	return m
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mu.Lock()
	state, transitioned, from := cb.currentStateLocked()

	var err error
	switch state {
	case StateOpen:
		retryAfter := cb.config.ResetTimeout - time.Since(cb.openedAt)
		if retryAfter < 0 {
			retryAfter = 0
		}
		failCount := cb.consecutiveFails
		err = errkit.NewCircuitBreakerOpen(cb.config.Name, &retryAfter, &failCount, nil)
		if cb.trackMetrics() {
			cb.counters.rejectedCalls++
		}
	case StateHalfOpen:
		if cb.halfOpenInFlight >= cb.config.HalfOpenMaxConcurrentOperations {
			err = errkit.NewCircuitBreakerOpen(cb.config.Name, nil, nil, nil)
			if cb.trackMetrics() {
				cb.counters.rejectedCalls++
			}
		} else {
			cb.halfOpenInFlight++
		}
	}
	cb.mu.Unlock()

	// Every admitted or rejected call counts as an attempt; notify observers
	// of it before the state-change/result events that may follow, so
	// attempt always precedes the eventual result for both outcomes.
	cb.observers.attempt(cb.config.Name)

	if transitioned {
		cb.observers.stateChange(cb.config.Name, from, state)
	}
	if err != nil {
		cb.observers.result(cb.config.Name, OutcomeRejected, 0)
	}
	return err
}

func (cb *CircuitBreaker) afterRequest(err error, timedOut bool, elapsed time.Duration) {
	cb.mu.Lock()

	isFailure := err != nil
	if isFailure && !timedOut && cb.config.ErrorPredicate != nil {
		isFailure = cb.config.ErrorPredicate(err)
	}
	isSlow := cb.slowCalls != nil && cb.config.SlowCallDurationThreshold != nil &&
		elapsed >= *cb.config.SlowCallDurationThreshold

	if cb.state == StateHalfOpen && cb.halfOpenInFlight > 0 {
		cb.halfOpenInFlight--
	}

	cb.results.push(!isFailure)
	if cb.slowCalls != nil {
		cb.slowCalls.push(isSlow)
	}

	if cb.trackMetrics() {
		cb.counters.totalCalls++
		if isFailure {
			cb.counters.failedCalls++
			t := now()
			cb.counters.lastFailureTime = &t
		} else {
			cb.counters.successfulCalls++
		}
		if timedOut {
			cb.counters.timeoutCalls++
		}
		if isSlow {
			cb.counters.slowCalls++
		}
	}

	from := cb.state
	cb.transitionLocked(isFailure)
	to := cb.state
	cb.mu.Unlock()

	if from != to {
		cb.observers.stateChange(cb.config.Name, from, to)
	}
	outcome := OutcomeSuccess
	switch {
	case timedOut:
		outcome = OutcomeTimeout
	case isFailure:
		outcome = OutcomeFailure
	}
	cb.observers.result(cb.config.Name, outcome, elapsed)
}

// transitionLocked applies the state machine for one completed attempt.
// Caller holds cb.mu.
func (cb *CircuitBreaker) transitionLocked(isFailure bool) {
	switch cb.state {
	case StateClosed:
		if isFailure {
			cb.consecutiveFails++
			cb.consecutiveOK = 0
		} else {
			cb.consecutiveFails = 0
			cb.consecutiveOK++
		}
		if cb.shouldOpenLocked() {
			cb.openLocked()
		}

	case StateHalfOpen:
		if isFailure {
			cb.consecutiveFails++
			cb.consecutiveOK = 0
			cb.openLocked()
			return
		}
		cb.consecutiveOK++
		cb.consecutiveFails = 0
		if cb.consecutiveOK >= cb.config.SuccessThresholdToClose {
			cb.state = StateClosed
			cb.halfOpenInFlight = 0
			cb.counters.lastStateChange = now()
		}
	}
}

func (cb *CircuitBreaker) shouldOpenLocked() bool {
	if cb.consecutiveFails >= cb.config.FailureThreshold {
		return true
	}
	if n := cb.results.length(); n >= cb.config.MinimumRequestThresholdForRate {
		if rate, ok := cb.results.falseRate(); ok && rate >= cb.config.FailureRateThreshold {
			return true
		}
	}
	if cb.slowCalls != nil && cb.config.SlowCallRateThreshold != nil {
		if n := cb.slowCalls.length(); n >= cb.config.MinimumRequestThresholdForRate {
			if rate, ok := cb.slowCalls.trueRate(); ok && rate >= *cb.config.SlowCallRateThreshold {
				return true
			}
		}
	}
	return false
}

func (cb *CircuitBreaker) openLocked() {
	cb.state = StateOpen
	cb.openedAt = now()
	cb.halfOpenInFlight = 0
	cb.counters.lastStateChange = cb.openedAt
}

// currentStateLocked returns the externally-visible state, promoting Open to
// HalfOpen in place when ResetTimeout has elapsed. Caller holds cb.mu's
// write lock, since a read lock is insufficient for the write below;
// State() takes the write lock for that reason.
func (cb *CircuitBreaker) currentStateLocked() (state State, transitioned bool, from State) {
	if cb.state == StateOpen && time.Since(cb.openedAt) >= cb.config.ResetTimeout {
		from = cb.state
		cb.state = StateHalfOpen
		cb.halfOpenInFlight = 0
		cb.consecutiveOK = 0
		cb.counters.lastStateChange = now()
		return cb.state, true, from
	}
	return cb.state, false, cb.state
}
