package resultext

import "github.com/jonwraymond/errguard/errkit"

// OkOrMissingValue converts a nil pointer into a MissingValue error carrying
// item, or dereferences the value on success.
func OkOrMissingValue[T any](v *T, item string) (T, error) {
	if v == nil {
		var zero T
		return zero, errkit.NewMissingValue(item)
	}
	return *v, nil
}

// OkOrMissingValueOwned is the owned-string variant; identical to
// OkOrMissingValue in Go (see ContextMsgOwned), kept for API parity.
func OkOrMissingValueOwned[T any](v *T, item string) (T, error) {
	return OkOrMissingValue(v, item)
}
