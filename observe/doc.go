// Package observe provides OpenTelemetry-based observability for guarded
// operations: resilience.Executor.Execute calls and autocorrect.Engine
// suggestion lookups.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. Consumers wire the Observer into resilience's
// breaker observer hooks or wrap calls directly with Middleware.
//
// # Overview
//
// observe provides three observability pillars:
//   - Tracing: OpenTelemetry spans with operation metadata attributes
//   - Metrics: Execution counters and duration histograms
//   - Logging: Structured JSON logging with automatic field redaction
//
// A fourth component, BreakerObserver, implements resilience.Observer
// directly so circuit breaker state transitions, attempts, and results flow
// into the Observer's meter and logger without a Middleware wrapper. It
// records metrics and log entries only; it creates no spans.
//
// # Core Components
//
//   - [Observer]: Main facade providing Tracer, Meter, and Logger access
//   - [Tracer]: Span creation with operation metadata as span attributes
//   - [Metrics]: Records execution counts, errors, and duration histograms
//   - [Logger]: Structured JSON logging with sensitive field redaction
//   - [Middleware]: Wraps ExecuteFunc with complete observability
//   - [BreakerObserver]: resilience.Observer backed by a meter and a Logger
//
// # Quick Start
//
//	cfg := observe.Config{
//	    ServiceName: "my-service",
//	    Version:     "1.0.0",
//	    Tracing:     observe.TracingConfig{Enabled: true, Exporter: "otlp", SamplePct: 1.0},
//	    Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "prometheus"},
//	    Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
//	}
//
//	obs, err := observe.NewObserver(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer obs.Shutdown(ctx)
//
//	mw, _ := observe.MiddlewareFromObserver(obs)
//	wrappedSuggest := mw.Wrap(suggestAsExecuteFunc)
//	result, err := wrappedSuggest(ctx, opMeta, input)
//
//	breaker := resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("payments"))
//	bo, _ := observe.NewBreakerObserverFromObserver(obs)
//	breaker.AddObserver(bo)
//
// # Telemetry Details
//
// Tracing creates spans with deterministic names:
//   - With namespace: "op.exec.<namespace>.<name>" (e.g., "op.exec.payments.charge")
//   - Without namespace: "op.exec.<name>" (e.g., "op.exec.charge")
//
// Span attributes include:
//   - op.id: Fully qualified operation identifier
//   - op.name: Operation name (required)
//   - op.namespace: Grouping namespace, e.g. breaker name (if set)
//   - op.version: Version tag (if set)
//   - op.category: Error category, for autocorrect lookups (if set)
//   - op.tags: Discovery tags (if set)
//   - op.error: Boolean indicating execution failure
//
// Metrics recorded:
//   - op.exec.total (counter): Total executions by operation
//   - op.exec.errors (counter): Total errors by operation
//   - op.exec.duration_ms (histogram): Duration distribution in milliseconds
//
// BreakerObserver additionally records breaker.state (gauge-like counter per
// transition), breaker.attempts, and breaker.outcomes{breaker.outcome="success|failure|rejected|timeout"}.
//
// The op.exec metrics include labels: op.id, op.name, op.namespace (if set).
// The breaker metrics carry breaker.name instead.
//
// # Sensitive Field Redaction
//
// The logger automatically redacts these fields to prevent credential leakage:
//   - input, inputs
//   - password, secret, token
//   - api_key, apiKey, credential
//
// See [RedactedFields] for the complete list.
//
// # Exporter Configuration
//
// Tracing exporters:
//   - "otlp": OTLP gRPC (requires OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT)
//   - "jaeger": Jaeger via OTLP (requires OTEL_EXPORTER_JAEGER_ENDPOINT)
//   - "stdout": Console output for development
//   - "none" or "": Disabled (no-op)
//
// Metrics exporters:
//   - "otlp": OTLP gRPC (requires OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_METRICS_ENDPOINT)
//   - "prometheus": Prometheus scrape endpoint
//   - "stdout": Console output for development
//   - "none" or "": Disabled (no-op)
//
// # Thread Safety
//
// All exported types are safe for concurrent use after construction:
//   - [Observer]: Tracer(), Meter(), Logger() are safe; Shutdown() is idempotent
//   - [Tracer]: StartSpan() and EndSpan() are safe for concurrent use
//   - [Metrics]: RecordExecution() is safe for concurrent use
//   - [Logger]: All logging methods are mutex-protected
//   - [Middleware]: Wrap() returns a thread-safe ExecuteFunc
//   - [BreakerObserver]: all Observer methods are safe for concurrent use
//
// # Error Handling
//
// Configuration errors (use errors.Is for checking):
//   - [ErrMissingServiceName]: Config.ServiceName is empty
//   - [ErrInvalidSamplePct]: Tracing.SamplePct not in [0.0, 1.0]
//   - [ErrInvalidTracingExporter]: Unknown tracing exporter name
//   - [ErrInvalidMetricsExporter]: Unknown metrics exporter name
//   - [ErrInvalidLogLevel]: Unknown log level
//
// Exporter errors:
//   - [ErrEndpointNotConfigured]: Required endpoint env var not set
//
// Runtime errors:
//   - [ErrNilObserver]: Nil Observer passed to function
//   - [ErrMissingOperationName]: OperationMeta.Name is empty
//
// Example error handling:
//
//	obs, err := observe.NewObserver(ctx, cfg)
//	if errors.Is(err, observe.ErrMissingServiceName) {
//	    // Handle missing service name
//	}
//	if errors.Is(err, observe.ErrEndpointNotConfigured) {
//	    // Handle missing OTLP endpoint
//	}
package observe
