package errkit

import (
	"fmt"
	"strconv"
	"strings"
)

// Display forms are stable. Each variant's Error() method is the
// single source of truth for its format.

func optOrNA(p *string) string {
	if p == nil || *p == "" {
		return "N/A"
	}
	return *p
}

func (e *IoError) Error() string {
	return fmt.Sprintf("I/O error during operation '%s' on path '%s': %v", e.Op, optOrNA(e.Path), e.Source)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parsing error: %v (%s)", e.Kind, e.Source, e.Context)
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v (URL: %s)", e.Kind, e.Source, optOrNA(e.URL))
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path != nil && e.Source != nil:
		return fmt.Sprintf("Configuration error in '%s': %s (%v)", *e.Path, e.Message, e.Source)
	case e.Path != nil:
		return fmt.Sprintf("Configuration error in '%s': %s", *e.Path, e.Message)
	case e.Source != nil:
		return fmt.Sprintf("Configuration error: %s (%v)", e.Message, e.Source)
	default:
		return fmt.Sprintf("Configuration error: %s", e.Message)
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error for '%s': %s", e.Field, e.Message)
}

func (e *InternalError) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("Internal error: %s (%v)", e.Message, e.Source)
	}
	return fmt.Sprintf("Internal error: %s", e.Message)
}

func (e *CircuitBreakerOpenError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("Circuit breaker '%s' is open. Retry after %s", e.Name, e.RetryAfter.String())
	}
	return fmt.Sprintf("Circuit breaker '%s' is open", e.Name)
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Operation '%s' timed out after %s", e.Op, e.Duration.String())
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("Resource '%s' exhausted: %s (limit: %s)", e.Resource, e.Current, e.Limit)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.Identifier)
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("State conflict: %s", e.Message)
}

func (e *ConcurrencyError) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("Concurrency error: %s (%v)", e.Message, e.Source)
	}
	return fmt.Sprintf("Concurrency error: %s", e.Message)
}

func (e *ExternalServiceError) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("%s service error: %s (%v)", e.Service, e.Message, e.Source)
	}
	return fmt.Sprintf("%s service error: %s", e.Service, e.Message)
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("Missing value: %s", e.Item)
}

func (e *MultipleErrorsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multiple errors (%d total):", len(e.Errors))
	for i, err := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *WithRichContextError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context.Message, e.Inner)
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("Style issue: %s", e.Message)
}

func (e *OopsError) Error() string {
	return fmt.Sprintf("%v: %v", e.Message, e.Source)
}
