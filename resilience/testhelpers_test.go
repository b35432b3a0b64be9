package resilience

import "github.com/jonwraymond/errguard/errkit"

func isBulkheadFull(err error) bool {
	cat, ok := errkit.CategoryOf(err)
	return ok && cat == errkit.CategoryResourceExhausted
}

func isRateLimited(err error) bool {
	cat, ok := errkit.CategoryOf(err)
	return ok && cat == errkit.CategoryResourceExhausted
}

func isOperationTimeout(err error) bool {
	cat, ok := errkit.CategoryOf(err)
	return ok && cat == errkit.CategoryTimeout
}

func isCircuitOpen(err error) bool {
	cat, ok := errkit.CategoryOf(err)
	return ok && cat == errkit.CategoryCircuitBreakerOpen
}
