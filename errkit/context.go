package errkit

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/errguard/errkit/trace"
)

// Severity carries a total order {Debug, Info, Warning, Error, Critical}.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "error"
	}
}

// Less reports a total order over severities.
func (s Severity) Less(other Severity) bool { return s < other }

// DiagnosticInfo is a structured record from an upstream compiler or linter,
// embedded inside an ErrorContext.
type DiagnosticInfo struct {
	PrimaryLocation  *trace.SourceLocation
	ExpansionTrace   []trace.SourceLocation
	SuggestedFixes   []string
	OriginalMessage  string
	DiagnosticCode   string
}

// ErrorContext carries everything attachable to an error via AddContext
//. It is immutable once constructed; AddContext always wraps,
// never mutates.
type ErrorContext struct {
	Message            string
	Location           *trace.SourceLocation
	RecoverySuggestion string
	Metadata           map[string]string
	Severity           Severity
	Timestamp          time.Time
	CorrelationID      string
	Component          string
	Tags               []string
	Diagnostic         *DiagnosticInfo
}

// NewErrorContext builds a minimal context with only the message populated,
// the shape add_context_msg constructs.
func NewErrorContext(message string) ErrorContext {
	return ErrorContext{
		Message:   message,
		Severity:  SeverityError,
		Timestamp: time.Now(),
	}
}

// WithCorrelationID returns a copy with a generated correlation id if one is
// not already set, using github.com/google/uuid (a teacher dependency
// re-homed here from the dropped auth package; see DESIGN.md).
func (c ErrorContext) WithCorrelationID() ErrorContext {
	if c.CorrelationID == "" {
		c.CorrelationID = uuid.NewString()
	}
	return c
}

// WithMetadata returns a copy with a key/value metadata pair set. Key order
// is irrelevant.
func (c ErrorContext) WithMetadata(key, value string) ErrorContext {
	m := make(map[string]string, len(c.Metadata)+1)
	for k, v := range c.Metadata {
		m[k] = v
	}
	m[key] = value
	c.Metadata = m
	return c
}

// WithTag appends a tag, preserving order.
func (c ErrorContext) WithTag(tag string) ErrorContext {
	tags := make([]string, len(c.Tags), len(c.Tags)+1)
	copy(tags, c.Tags)
	c.Tags = append(tags, tag)
	return c
}

// WithDiagnostic returns a copy carrying the given diagnostic info.
func (c ErrorContext) WithDiagnostic(d DiagnosticInfo) ErrorContext {
	c.Diagnostic = &d
	return c
}
