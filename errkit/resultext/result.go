// Package resultext implements two context-adding extension surfaces over
// Go's native (T, error) result shape and pointer-based optionals. The base
// operations are plain functions over error (monomorphic, "object-safe" in
// the source's terms); Context is the separate generic convenience, kept
// apart so the monomorphic surface stays simple to use from
// dynamically-typed call sites.
package resultext

import "github.com/jonwraymond/errguard/errkit"

// ContextMsg wraps err's errkit view in a WithRichContext carrying msg. A nil
// err passes through unchanged.
func ContextMsg(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errkit.FromStandard(err).AddContextMsg(msg)
}

// ContextMsgOwned is ContextMsg for an owned string; in Go there is no
// distinct owned-vs-borrowed string representation, so this is identical to
// ContextMsg. Kept as a separate name for parity with the source's
// context_msg/context_msg_owned split.
func ContextMsgOwned(err error, msg string) error {
	return ContextMsg(err, msg)
}

// ContextRich wraps err's errkit view in the supplied ErrorContext.
func ContextRich(err error, ctx errkit.ErrorContext) error {
	if err == nil {
		return nil
	}
	return errkit.FromStandard(err).AddContext(ctx)
}

// Context is the generic, non-object-safe convenience: it both attaches
// context to a failing result and passes a successful one straight through,
// so callers can write `v, err := resultext.Context(doThing())`.
func Context[T any](value T, err error, msg string) (T, error) {
	if err != nil {
		return value, ContextMsg(err, msg)
	}
	return value, nil
}

// ExtractErr unwraps the error from a result known to never succeed (the
// source's "Result<Never, E>" shape), without a panic path: since Go results
// already carry error as a distinct value, this is a documented identity
// that exists for call-site symmetry with the source API.
func ExtractErr(err error) error { return err }
