package resilience

import "time"

// Outcome classifies how a guarded operation attempt finished, passed to
// Observer.OnResult.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeRejected
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Observer receives circuit breaker lifecycle notifications. All methods are
// called after the breaker's internal lock has been released, so
// implementations may safely call back into the breaker (e.g. State()).
type Observer interface {
	// OnStateChange fires whenever the breaker transitions between states.
	OnStateChange(name string, from, to State)
	// OnAttempt fires for every call that reaches the breaker, before the
	// operation runs or is rejected.
	OnAttempt(name string)
	// OnResult fires after an attempted operation completes, with its
	// outcome and elapsed duration.
	OnResult(name string, outcome Outcome, elapsed time.Duration)
	// OnReset fires when the breaker's counters are explicitly reset.
	OnReset(name string)
}

// NoopObserver implements Observer with no-op methods, for embedding in
// partial observers.
type NoopObserver struct{}

func (NoopObserver) OnStateChange(string, State, State)     {}
func (NoopObserver) OnAttempt(string)                       {}
func (NoopObserver) OnResult(string, Outcome, time.Duration) {}
func (NoopObserver) OnReset(string)                          {}

// observerList fans a notification out to every registered Observer. It is
// itself stateless; the CircuitBreaker invokes its methods after releasing
// its lock, per the package's locking discipline.
type observerList struct {
	observers []Observer
}

func (l *observerList) add(o Observer) {
	if o != nil {
		l.observers = append(l.observers, o)
	}
}

func (l *observerList) stateChange(name string, from, to State) {
	for _, o := range l.observers {
		o.OnStateChange(name, from, to)
	}
}

func (l *observerList) attempt(name string) {
	for _, o := range l.observers {
		o.OnAttempt(name)
	}
}

func (l *observerList) result(name string, outcome Outcome, elapsed time.Duration) {
	for _, o := range l.observers {
		o.OnResult(name, outcome, elapsed)
	}
}

func (l *observerList) reset(name string) {
	for _, o := range l.observers {
		o.OnReset(name)
	}
}
