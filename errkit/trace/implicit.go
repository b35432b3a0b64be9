package trace

import (
	"strconv"
	"time"
)

// ImplicitDataGenerator is the shared contract for values that are produced
// at error-construction time without explicit argument passing: stack
// traces, timestamps, thread ids.
type ImplicitDataGenerator interface {
	// Generate produces the value with no additional context.
	Generate() any
	// GenerateWithSource may inspect the source error but defaults to
	// Generate() when it has nothing source-specific to do.
	GenerateWithSource(source error) any
	// GenerateWithContext honors recognized config keys:
	// "force_backtrace"="true", "timestamp"=<seconds>, "file"/"line"/"column".
	GenerateWithContext(config map[string]string) any
}

// BacktraceGenerator implements ImplicitDataGenerator for Backtrace values.
type BacktraceGenerator struct{}

func (BacktraceGenerator) Generate() any { return Capture(1) }

func (g BacktraceGenerator) GenerateWithSource(source error) any { return g.Generate() }

func (BacktraceGenerator) GenerateWithContext(config map[string]string) any {
	if config["force_backtrace"] == "true" {
		return ForceCapture(1)
	}
	return Capture(1)
}

// TimestampGenerator implements ImplicitDataGenerator for time.Time values.
type TimestampGenerator struct{}

func (TimestampGenerator) Generate() any { return time.Now() }

func (g TimestampGenerator) GenerateWithSource(source error) any { return g.Generate() }

func (TimestampGenerator) GenerateWithContext(config map[string]string) any {
	if v, ok := config["timestamp"]; ok {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Unix(secs, 0)
		}
	}
	return time.Now()
}

// ThreadIDGenerator implements ImplicitDataGenerator for the current
// goroutine-derived thread id.
type ThreadIDGenerator struct{}

func (ThreadIDGenerator) Generate() any { return threadID() }

func (g ThreadIDGenerator) GenerateWithSource(source error) any { return g.Generate() }

func (ThreadIDGenerator) GenerateWithContext(config map[string]string) any { return threadID() }

// LocationGenerator implements ImplicitDataGenerator for SourceLocation
// values, honoring the file/line/column config keys.
type LocationGenerator struct{}

func (LocationGenerator) Generate() any { return SourceLocation{} }

func (g LocationGenerator) GenerateWithSource(source error) any { return g.Generate() }

func (LocationGenerator) GenerateWithContext(config map[string]string) any {
	loc := SourceLocation{File: config["file"]}
	if v, ok := config["line"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			loc.Line = n
		}
	}
	if v, ok := config["column"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			loc.Column = n
		}
	}
	return loc
}
