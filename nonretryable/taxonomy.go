package nonretryable

import (
	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/resilience"
)

//go:generate go run ../internal/facadegen --package=nonretryable --out=checks.go

var factory = check.Taxonomy[*resilience.NonRetryableError](newNonRetryable)

// Factory returns the factory behind this package's checks.
func Factory() check.Factory { return factory }

func newNonRetryable(_ check.Kind, msg string, cause error) *resilience.NonRetryableError {
	return resilience.NewNonRetryable(msg, cause)
}
