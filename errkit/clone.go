package errkit

import "time"

// cloneSource reduces a wrapped source error to a structural clone. An errkit
// Error is cloned through its Clone method; anything else is reduced to a
// textSurrogate bearing only the Display string.
func cloneSource(source error) error {
	if source == nil {
		return nil
	}
	if e, ok := source.(Error); ok {
		return e.Clone()
	}
	return &textSurrogate{text: source.Error()}
}

// cloneAnySource is the Oops-variant analogue of cloneSource, since Oops
// wraps a source of any type rather than error.
func cloneAnySource(source any) any {
	if source == nil {
		return nil
	}
	if err, ok := source.(error); ok {
		return cloneSource(err)
	}
	return source
}

// textSurrogate preserves only Display for a non-cloneable wrapped source.
type textSurrogate struct{ text string }

func (t *textSurrogate) Error() string { return t.text }

func displayEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Error() == b.Error()
}

func anyDisplayEqual(a, b any) bool {
	ea, aok := a.(error)
	eb, bok := b.(error)
	if aok && bok {
		return displayEqual(ea, eb)
	}
	return a == nil && b == nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneIntPtr(p *int) *int { return clonePtr(p) }

func intPtrEqual(a, b *int) bool { return ptrEqual(a, b) }

func cloneDurationPtr(p *time.Duration) *time.Duration { return clonePtr(p) }

func durationPtrEqual(a, b *time.Duration) bool { return ptrEqual(a, b) }
