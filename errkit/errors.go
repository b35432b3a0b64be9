// Package errkit implements a taxonomic error model: a
// closed set of variants, each stack-trace-bearing, each categorized,
// cloneable, and context-augmentable without losing any of those properties
// when wrapped.
package errkit

import (
	"time"

	"github.com/jonwraymond/errguard/errkit/trace"
)

// Error is the contract every variant in this package satisfies.
type Error interface {
	error

	// Category returns this error's classification. Total and deterministic.
	Category() Category

	// Severity returns SeverityError unless the receiver is a
	// WithRichContext whose context overrides it.
	Severity() Severity

	// StackTrace returns the captured trace for this value. WithRichContext
	// delegates to its inner error's trace.
	StackTrace() *trace.Backtrace

	// AddContext wraps the receiver in a new WithRichContext value. Never
	// mutates the receiver.
	AddContext(ctx ErrorContext) Error

	// AddContextMsg is AddContext with a minimal context built from msg.
	AddContextMsg(msg string) Error

	// RichContext returns the context iff the receiver is itself a
	// WithRichContext value.
	RichContext() (ErrorContext, bool)

	// Clone produces a structurally equivalent value with a freshly
	// captured stack trace; non-cloneable sources are reduced to a textual
	// surrogate.
	Clone() Error

	// Unwrap exposes the immediate wrapped source, if any, for errors.Is/As.
	Unwrap() error

	// Equal compares identifying fields only (never stack traces or
	// transient source details); defined only between same-variant pairs.
	Equal(other Error) bool
}

// ---- Io ----

type IoError struct {
	Source error
	Path   *string
	Op     string
	trace  *trace.Backtrace
}

func NewIo(source error, path *string, op string) *IoError {
	return &IoError{Source: source, Path: path, Op: op, trace: trace.Capture(1)}
}

func (e *IoError) Category() Category          { return CategoryIo }
func (e *IoError) Severity() Severity          { return SeverityError }
func (e *IoError) StackTrace() *trace.Backtrace { return e.trace }
func (e *IoError) Unwrap() error               { return e.Source }
func (e *IoError) AddContext(ctx ErrorContext) Error    { return wrap(e, ctx) }
func (e *IoError) AddContextMsg(msg string) Error       { return wrap(e, NewErrorContext(msg)) }
func (e *IoError) RichContext() (ErrorContext, bool)    { return ErrorContext{}, false }

func (e *IoError) Clone() Error {
	return &IoError{Source: cloneSource(e.Source), Path: clonePtr(e.Path), Op: e.Op, trace: trace.Capture(1)}
}

func (e *IoError) Equal(other Error) bool {
	o, ok := other.(*IoError)
	if !ok {
		return false
	}
	return e.Op == o.Op && ptrEqual(e.Path, o.Path) && displayEqual(e.Source, o.Source)
}

// ---- Parse ----

type ParseError struct {
	Source  error
	Kind    string
	Context string
	trace   *trace.Backtrace
}

func NewParse(source error, kind, context string) *ParseError {
	return &ParseError{Source: source, Kind: kind, Context: context, trace: trace.Capture(1)}
}

func (e *ParseError) Category() Category          { return CategoryParse }
func (e *ParseError) Severity() Severity          { return SeverityError }
func (e *ParseError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ParseError) Unwrap() error               { return e.Source }
func (e *ParseError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ParseError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ParseError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ParseError) Clone() Error {
	return &ParseError{Source: cloneSource(e.Source), Kind: e.Kind, Context: e.Context, trace: trace.Capture(1)}
}

func (e *ParseError) Equal(other Error) bool {
	o, ok := other.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == o.Kind && e.Context == o.Context && displayEqual(e.Source, o.Source)
}

// ---- Network ----

type NetworkError struct {
	Source error
	URL    *string
	Kind   string
	trace  *trace.Backtrace
}

func NewNetwork(source error, url *string, kind string) *NetworkError {
	return &NetworkError{Source: source, URL: url, Kind: kind, trace: trace.Capture(1)}
}

func (e *NetworkError) Category() Category          { return CategoryNetwork }
func (e *NetworkError) Severity() Severity          { return SeverityError }
func (e *NetworkError) StackTrace() *trace.Backtrace { return e.trace }
func (e *NetworkError) Unwrap() error               { return e.Source }
func (e *NetworkError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *NetworkError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *NetworkError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *NetworkError) Clone() Error {
	return &NetworkError{Source: cloneSource(e.Source), URL: clonePtr(e.URL), Kind: e.Kind, trace: trace.Capture(1)}
}

func (e *NetworkError) Equal(other Error) bool {
	o, ok := other.(*NetworkError)
	if !ok {
		return false
	}
	return e.Kind == o.Kind && ptrEqual(e.URL, o.URL) && displayEqual(e.Source, o.Source)
}

// ---- Config ----

type ConfigError struct {
	Message string
	Path    *string
	Source  error
	trace   *trace.Backtrace
}

func NewConfig(message string, path *string, source error) *ConfigError {
	return &ConfigError{Message: message, Path: path, Source: source, trace: trace.Capture(1)}
}

func (e *ConfigError) Category() Category          { return CategoryConfig }
func (e *ConfigError) Severity() Severity          { return SeverityError }
func (e *ConfigError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ConfigError) Unwrap() error               { return e.Source }
func (e *ConfigError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ConfigError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ConfigError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ConfigError) Clone() Error {
	return &ConfigError{Message: e.Message, Path: clonePtr(e.Path), Source: cloneSource(e.Source), trace: trace.Capture(1)}
}

func (e *ConfigError) Equal(other Error) bool {
	o, ok := other.(*ConfigError)
	if !ok {
		return false
	}
	return e.Message == o.Message && ptrEqual(e.Path, o.Path) && displayEqual(e.Source, o.Source)
}

// ---- Validation ----

type ValidationError struct {
	Field    string
	Message  string
	Expected *string
	Actual   *string
	Rule     *string
	trace    *trace.Backtrace
}

func NewValidation(field, message string, expected, actual, rule *string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Expected: expected, Actual: actual, Rule: rule, trace: trace.Capture(1)}
}

func (e *ValidationError) Category() Category          { return CategoryValidation }
func (e *ValidationError) Severity() Severity          { return SeverityError }
func (e *ValidationError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ValidationError) Unwrap() error               { return nil }
func (e *ValidationError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ValidationError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ValidationError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ValidationError) Clone() Error {
	return &ValidationError{Field: e.Field, Message: e.Message, Expected: clonePtr(e.Expected), Actual: clonePtr(e.Actual), Rule: clonePtr(e.Rule), trace: trace.Capture(1)}
}

func (e *ValidationError) Equal(other Error) bool {
	o, ok := other.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == o.Field && e.Message == o.Message && ptrEqual(e.Expected, o.Expected) && ptrEqual(e.Actual, o.Actual) && ptrEqual(e.Rule, o.Rule)
}

// ---- Internal ----

type InternalError struct {
	Message   string
	Source    error
	Component *string
	trace     *trace.Backtrace
}

func NewInternal(message string, source error, component *string) *InternalError {
	return &InternalError{Message: message, Source: source, Component: component, trace: trace.Capture(1)}
}

func (e *InternalError) Category() Category          { return CategoryInternal }
func (e *InternalError) Severity() Severity          { return SeverityError }
func (e *InternalError) StackTrace() *trace.Backtrace { return e.trace }
func (e *InternalError) Unwrap() error               { return e.Source }
func (e *InternalError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *InternalError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *InternalError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *InternalError) Clone() Error {
	return &InternalError{Message: e.Message, Source: cloneSource(e.Source), Component: clonePtr(e.Component), trace: trace.Capture(1)}
}

func (e *InternalError) Equal(other Error) bool {
	o, ok := other.(*InternalError)
	if !ok {
		return false
	}
	return e.Message == o.Message && ptrEqual(e.Component, o.Component) && displayEqual(e.Source, o.Source)
}

// ---- CircuitBreakerOpen ----

type CircuitBreakerOpenError struct {
	Name         string
	RetryAfter   *time.Duration
	FailureCount *int
	LastError    *string
	trace        *trace.Backtrace
}

func NewCircuitBreakerOpen(name string, retryAfter *time.Duration, failureCount *int, lastError *string) *CircuitBreakerOpenError {
	return &CircuitBreakerOpenError{Name: name, RetryAfter: retryAfter, FailureCount: failureCount, LastError: lastError, trace: trace.Capture(1)}
}

func (e *CircuitBreakerOpenError) Category() Category          { return CategoryCircuitBreakerOpen }
func (e *CircuitBreakerOpenError) Severity() Severity          { return SeverityError }
func (e *CircuitBreakerOpenError) StackTrace() *trace.Backtrace { return e.trace }
func (e *CircuitBreakerOpenError) Unwrap() error               { return nil }
func (e *CircuitBreakerOpenError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *CircuitBreakerOpenError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *CircuitBreakerOpenError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *CircuitBreakerOpenError) Clone() Error {
	return &CircuitBreakerOpenError{Name: e.Name, RetryAfter: cloneDurationPtr(e.RetryAfter), FailureCount: cloneIntPtr(e.FailureCount), LastError: clonePtr(e.LastError), trace: trace.Capture(1)}
}

func (e *CircuitBreakerOpenError) Equal(other Error) bool {
	o, ok := other.(*CircuitBreakerOpenError)
	if !ok {
		return false
	}
	return e.Name == o.Name && durationPtrEqual(e.RetryAfter, o.RetryAfter) && intPtrEqual(e.FailureCount, o.FailureCount) && ptrEqual(e.LastError, o.LastError)
}

// ---- Timeout ----

type TimeoutError struct {
	Op       string
	Duration time.Duration
	trace    *trace.Backtrace
}

func NewTimeout(op string, duration time.Duration) *TimeoutError {
	return &TimeoutError{Op: op, Duration: duration, trace: trace.Capture(1)}
}

func (e *TimeoutError) Category() Category          { return CategoryTimeout }
func (e *TimeoutError) Severity() Severity          { return SeverityError }
func (e *TimeoutError) StackTrace() *trace.Backtrace { return e.trace }
func (e *TimeoutError) Unwrap() error               { return nil }
func (e *TimeoutError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *TimeoutError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *TimeoutError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *TimeoutError) Clone() Error {
	return &TimeoutError{Op: e.Op, Duration: e.Duration, trace: trace.Capture(1)}
}

func (e *TimeoutError) Equal(other Error) bool {
	o, ok := other.(*TimeoutError)
	if !ok {
		return false
	}
	return e.Op == o.Op && e.Duration == o.Duration
}

// ---- ResourceExhausted ----

type ResourceExhaustedError struct {
	Resource string
	Limit    string
	Current  string
	trace    *trace.Backtrace
}

func NewResourceExhausted(resource, limit, current string) *ResourceExhaustedError {
	return &ResourceExhaustedError{Resource: resource, Limit: limit, Current: current, trace: trace.Capture(1)}
}

func (e *ResourceExhaustedError) Category() Category          { return CategoryResourceExhausted }
func (e *ResourceExhaustedError) Severity() Severity          { return SeverityError }
func (e *ResourceExhaustedError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ResourceExhaustedError) Unwrap() error               { return nil }
func (e *ResourceExhaustedError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ResourceExhaustedError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ResourceExhaustedError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ResourceExhaustedError) Clone() Error {
	return &ResourceExhaustedError{Resource: e.Resource, Limit: e.Limit, Current: e.Current, trace: trace.Capture(1)}
}

func (e *ResourceExhaustedError) Equal(other Error) bool {
	o, ok := other.(*ResourceExhaustedError)
	if !ok {
		return false
	}
	return e.Resource == o.Resource && e.Limit == o.Limit && e.Current == o.Current
}

// ---- NotFound ----

type NotFoundError struct {
	ResourceType string
	Identifier   string
	trace        *trace.Backtrace
}

func NewNotFound(resourceType, identifier string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, Identifier: identifier, trace: trace.Capture(1)}
}

func (e *NotFoundError) Category() Category          { return CategoryNotFound }
func (e *NotFoundError) Severity() Severity          { return SeverityError }
func (e *NotFoundError) StackTrace() *trace.Backtrace { return e.trace }
func (e *NotFoundError) Unwrap() error               { return nil }
func (e *NotFoundError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *NotFoundError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *NotFoundError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *NotFoundError) Clone() Error {
	return &NotFoundError{ResourceType: e.ResourceType, Identifier: e.Identifier, trace: trace.Capture(1)}
}

func (e *NotFoundError) Equal(other Error) bool {
	o, ok := other.(*NotFoundError)
	if !ok {
		return false
	}
	return e.ResourceType == o.ResourceType && e.Identifier == o.Identifier
}

// ---- StateConflict ----

type StateConflictError struct {
	Message string
	trace   *trace.Backtrace
}

func NewStateConflict(message string) *StateConflictError {
	return &StateConflictError{Message: message, trace: trace.Capture(1)}
}

func (e *StateConflictError) Category() Category          { return CategoryStateConflict }
func (e *StateConflictError) Severity() Severity          { return SeverityError }
func (e *StateConflictError) StackTrace() *trace.Backtrace { return e.trace }
func (e *StateConflictError) Unwrap() error               { return nil }
func (e *StateConflictError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *StateConflictError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *StateConflictError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *StateConflictError) Clone() Error {
	return &StateConflictError{Message: e.Message, trace: trace.Capture(1)}
}

func (e *StateConflictError) Equal(other Error) bool {
	o, ok := other.(*StateConflictError)
	return ok && e.Message == o.Message
}

// ---- Concurrency ----

type ConcurrencyError struct {
	Message string
	Source  error
	trace   *trace.Backtrace
}

func NewConcurrency(message string, source error) *ConcurrencyError {
	return &ConcurrencyError{Message: message, Source: source, trace: trace.Capture(1)}
}

func (e *ConcurrencyError) Category() Category          { return CategoryConcurrency }
func (e *ConcurrencyError) Severity() Severity          { return SeverityError }
func (e *ConcurrencyError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ConcurrencyError) Unwrap() error               { return e.Source }
func (e *ConcurrencyError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ConcurrencyError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ConcurrencyError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ConcurrencyError) Clone() Error {
	return &ConcurrencyError{Message: e.Message, Source: cloneSource(e.Source), trace: trace.Capture(1)}
}

func (e *ConcurrencyError) Equal(other Error) bool {
	o, ok := other.(*ConcurrencyError)
	if !ok {
		return false
	}
	return e.Message == o.Message && displayEqual(e.Source, o.Source)
}

// ---- ExternalService ----

type ExternalServiceError struct {
	Service string
	Message string
	Source  error
	trace   *trace.Backtrace
}

func NewExternalService(service, message string, source error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Message: message, Source: source, trace: trace.Capture(1)}
}

func (e *ExternalServiceError) Category() Category          { return CategoryExternalService }
func (e *ExternalServiceError) Severity() Severity          { return SeverityError }
func (e *ExternalServiceError) StackTrace() *trace.Backtrace { return e.trace }
func (e *ExternalServiceError) Unwrap() error               { return e.Source }
func (e *ExternalServiceError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *ExternalServiceError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *ExternalServiceError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *ExternalServiceError) Clone() Error {
	return &ExternalServiceError{Service: e.Service, Message: e.Message, Source: cloneSource(e.Source), trace: trace.Capture(1)}
}

func (e *ExternalServiceError) Equal(other Error) bool {
	o, ok := other.(*ExternalServiceError)
	if !ok {
		return false
	}
	return e.Service == o.Service && e.Message == o.Message && displayEqual(e.Source, o.Source)
}

// ---- MissingValue ----

type MissingValueError struct {
	Item  string
	trace *trace.Backtrace
}

func NewMissingValue(item string) *MissingValueError {
	return &MissingValueError{Item: item, trace: trace.Capture(1)}
}

func (e *MissingValueError) Category() Category          { return CategoryMissingValue }
func (e *MissingValueError) Severity() Severity          { return SeverityError }
func (e *MissingValueError) StackTrace() *trace.Backtrace { return e.trace }
func (e *MissingValueError) Unwrap() error               { return nil }
func (e *MissingValueError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *MissingValueError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *MissingValueError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *MissingValueError) Clone() Error {
	return &MissingValueError{Item: e.Item, trace: trace.Capture(1)}
}

func (e *MissingValueError) Equal(other Error) bool {
	o, ok := other.(*MissingValueError)
	return ok && e.Item == o.Item
}

// ---- MultipleErrors ----

type MultipleErrorsError struct {
	Errors []Error
	trace  *trace.Backtrace
}

func NewMultipleErrors(errs []Error) *MultipleErrorsError {
	return &MultipleErrorsError{Errors: errs, trace: trace.Capture(1)}
}

func (e *MultipleErrorsError) Category() Category          { return CategoryMultipleErrors }
func (e *MultipleErrorsError) Severity() Severity          { return SeverityError }
func (e *MultipleErrorsError) StackTrace() *trace.Backtrace { return e.trace }

// Unwrap surfaces only the first element as a chain source.
func (e *MultipleErrorsError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}

// UnwrapAll returns every element as an error slice. The standard library's
// errors.Is/As do not call it; they follow Unwrap, which yields only the
// first element.
func (e *MultipleErrorsError) UnwrapAll() []error {
	out := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		out[i] = err
	}
	return out
}

func (e *MultipleErrorsError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *MultipleErrorsError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *MultipleErrorsError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *MultipleErrorsError) Clone() Error {
	cloned := make([]Error, len(e.Errors))
	for i, err := range e.Errors {
		cloned[i] = err.Clone()
	}
	return &MultipleErrorsError{Errors: cloned, trace: trace.Capture(1)}
}

func (e *MultipleErrorsError) Equal(other Error) bool {
	o, ok := other.(*MultipleErrorsError)
	if !ok || len(e.Errors) != len(o.Errors) {
		return false
	}
	for i := range e.Errors {
		if !e.Errors[i].Equal(o.Errors[i]) {
			return false
		}
	}
	return true
}

// ---- WithRichContext ----

type WithRichContextError struct {
	Context ErrorContext
	Inner   Error
}

func wrap(inner Error, ctx ErrorContext) Error {
	return &WithRichContextError{Context: ctx, Inner: inner}
}

func (e *WithRichContextError) Category() Category { return e.Inner.Category() }

// Severity returns the context's severity, which is always populated
// (defaulted to SeverityError at construction); this is the one variant
// whose severity can differ from the default.
func (e *WithRichContextError) Severity() Severity { return e.Context.Severity }

// StackTrace delegates to the inner error.
func (e *WithRichContextError) StackTrace() *trace.Backtrace { return e.Inner.StackTrace() }

func (e *WithRichContextError) Unwrap() error { return e.Inner }

func (e *WithRichContextError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *WithRichContextError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }

func (e *WithRichContextError) RichContext() (ErrorContext, bool) { return e.Context, true }

func (e *WithRichContextError) Clone() Error {
	return &WithRichContextError{Context: e.Context, Inner: e.Inner.Clone()}
}

func (e *WithRichContextError) Equal(other Error) bool {
	o, ok := other.(*WithRichContextError)
	if !ok {
		return false
	}
	return e.Context.Message == o.Context.Message && e.Inner.Equal(o.Inner)
}

// ---- Style ----

type StyleError struct {
	Message string
	trace   *trace.Backtrace
}

func NewStyle(message string) *StyleError {
	return &StyleError{Message: message, trace: trace.Capture(1)}
}

func (e *StyleError) Category() Category          { return CategoryStyle }
func (e *StyleError) Severity() Severity          { return SeverityError }
func (e *StyleError) StackTrace() *trace.Backtrace { return e.trace }
func (e *StyleError) Unwrap() error               { return nil }
func (e *StyleError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *StyleError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *StyleError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *StyleError) Clone() Error {
	return &StyleError{Message: e.Message, trace: trace.Capture(1)}
}

func (e *StyleError) Equal(other Error) bool {
	o, ok := other.(*StyleError)
	return ok && e.Message == o.Message
}

// ---- Oops ----

type OopsError struct {
	Message string
	Source  any
	trace   *trace.Backtrace
}

func NewOops(message string, source any) *OopsError {
	return &OopsError{Message: message, Source: source, trace: trace.Capture(1)}
}

func (e *OopsError) Category() Category          { return CategoryOops }
func (e *OopsError) Severity() Severity          { return SeverityError }
func (e *OopsError) StackTrace() *trace.Backtrace { return e.trace }

func (e *OopsError) Unwrap() error {
	if err, ok := e.Source.(error); ok {
		return err
	}
	return nil
}

func (e *OopsError) AddContext(ctx ErrorContext) Error { return wrap(e, ctx) }
func (e *OopsError) AddContextMsg(msg string) Error    { return wrap(e, NewErrorContext(msg)) }
func (e *OopsError) RichContext() (ErrorContext, bool) { return ErrorContext{}, false }

func (e *OopsError) Clone() Error {
	return &OopsError{Message: e.Message, Source: cloneAnySource(e.Source), trace: trace.Capture(1)}
}

func (e *OopsError) Equal(other Error) bool {
	o, ok := other.(*OopsError)
	if !ok {
		return false
	}
	return e.Message == o.Message && anyDisplayEqual(e.Source, o.Source)
}
