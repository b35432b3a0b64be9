package resilience

import (
	"errors"
	"strconv"
	"time"

	"github.com/jonwraymond/errguard/errkit"
)

// ErrMaxRetriesExceeded reports exhausted retries. Retry.Execute does not
// return it: once MaxAttempts is used up it returns the last operation error.
var ErrMaxRetriesExceeded = errors.New("resilience: max retries exceeded")

// errRateLimitExceeded builds a ResourceExhausted error for a rejected
// rate-limited call.
func errRateLimitExceeded(limiterName string) error {
	return errkit.NewResourceExhausted("rate_limit_tokens", "0", limiterName)
}

// errBulkheadFull builds a ResourceExhausted error for a rejected bulkhead
// acquisition.
func errBulkheadFull(maxConcurrent int) error {
	return errkit.NewResourceExhausted("bulkhead_slots", "0", strconv.Itoa(maxConcurrent))
}

// errOperationTimeout builds a Timeout error for a timed-out operation.
func errOperationTimeout(op string, d time.Duration) error {
	return errkit.NewTimeout(op, d)
}
