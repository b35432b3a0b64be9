package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/errguard/resilience"
)

// BreakerObserver implements resilience.Observer on top of a meter and a
// Logger, so circuit breaker lifecycle events land in the same metrics and
// logs as wrapped executions. It creates no spans.
type BreakerObserver struct {
	logger       Logger
	stateCount   metric.Int64Counter
	attemptCount metric.Int64Counter
	outcomeCount metric.Int64Counter
	elapsedHist  metric.Float64Histogram
}

// NewBreakerObserver builds a BreakerObserver from a meter and logger.
func NewBreakerObserver(meter metric.Meter, logger Logger) (*BreakerObserver, error) {
	stateCount, err := meter.Int64Counter(
		"breaker.state",
		metric.WithDescription("Circuit breaker state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	attemptCount, err := meter.Int64Counter(
		"breaker.attempts",
		metric.WithDescription("Circuit breaker operation attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	outcomeCount, err := meter.Int64Counter(
		"breaker.outcomes",
		metric.WithDescription("Circuit breaker operation outcomes by result"),
		metric.WithUnit("{outcome}"),
	)
	if err != nil {
		return nil, err
	}

	elapsedHist, err := meter.Float64Histogram(
		"breaker.elapsed_ms",
		metric.WithDescription("Elapsed time of guarded operations in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &BreakerObserver{
		logger:       logger,
		stateCount:   stateCount,
		attemptCount: attemptCount,
		outcomeCount: outcomeCount,
		elapsedHist:  elapsedHist,
	}, nil
}

// NewBreakerObserverFromObserver builds a BreakerObserver from an Observer's
// meter and logger.
func NewBreakerObserverFromObserver(obs Observer) (*BreakerObserver, error) {
	return NewBreakerObserver(obs.Meter(), obs.Logger())
}

var _ resilience.Observer = (*BreakerObserver)(nil)

// OnStateChange logs the transition and increments breaker.state, tagged
// with the breaker name and both endpoints of the transition.
func (b *BreakerObserver) OnStateChange(name string, from, to resilience.State) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("breaker.name", name),
		attribute.String("breaker.from", from.String()),
		attribute.String("breaker.to", to.String()),
	)
	b.stateCount.Add(ctx, 1, attrs)

	b.logger.WithOperation(OperationMeta{Namespace: name, Name: "state_change"}).Info(ctx, "circuit breaker state changed", Field{Key: "from", Value: from.String()}, Field{Key: "to", Value: to.String()})
}

// OnAttempt records an attempt; the breaker reports rejected calls as
// attempts too.
func (b *BreakerObserver) OnAttempt(name string) {
	ctx := context.Background()
	b.attemptCount.Add(ctx, 1, metric.WithAttributes(attribute.String("breaker.name", name)))
}

// OnResult records the outcome and elapsed duration of an attempted
// operation, logging at Warn for anything other than success.
func (b *BreakerObserver) OnResult(name string, outcome resilience.Outcome, elapsed time.Duration) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("breaker.name", name),
		attribute.String("breaker.outcome", outcome.String()),
	)
	b.outcomeCount.Add(ctx, 1, attrs)
	b.elapsedHist.Record(ctx, float64(elapsed.Milliseconds()), attrs)

	opLogger := b.logger.WithOperation(OperationMeta{Namespace: name, Name: "result"})
	fields := []Field{
		{Key: "outcome", Value: outcome.String()},
		{Key: "elapsed_ms", Value: float64(elapsed.Milliseconds())},
	}
	if outcome == resilience.OutcomeSuccess {
		opLogger.Info(ctx, "circuit breaker operation completed", fields...)
	} else {
		opLogger.Warn(ctx, "circuit breaker operation did not succeed", fields...)
	}
}

// OnReset logs an explicit counter reset.
func (b *BreakerObserver) OnReset(name string) {
	ctx := context.Background()
	b.logger.WithOperation(OperationMeta{Namespace: name, Name: "reset"}).Info(ctx, "circuit breaker counters reset")
}
