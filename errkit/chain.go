package errkit

import "errors"

// AsError attempts to view a generic error as one of this package's typed
// variants via errors.As, looking through any wrapping chain.
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetRichContext yields the context iff the top-level value is itself a
// WithRichContext variant; it does not search deeper in the
// chain.
func GetRichContext(err error) (ErrorContext, bool) {
	if w, ok := err.(*WithRichContextError); ok {
		return w.Context, true
	}
	return ErrorContext{}, false
}

// CategoryOf returns the category of err if it (or something it wraps via
// WithRichContext) exposes one, following WithRichContext delegation.
func CategoryOf(err error) (Category, bool) {
	if e, ok := err.(Error); ok {
		return e.Category(), true
	}
	return 0, false
}

// FromStandard wraps an arbitrary non-errkit error as an Internal error,
// the catch-all conversion used by the result/optional adapters
// when the source error does not already satisfy Error.
func FromStandard(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return NewInternal(err.Error(), err, nil)
}
