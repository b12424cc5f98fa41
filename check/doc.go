// Package check implements the precondition checks shared by every failure
// taxonomy in guard.
//
// Each check takes the capability it needs from a Factory as its first
// argument, evaluates its predicate and either returns the checked value
// unchanged or a failure built by that factory. Messages are realized only
// after a predicate has failed. Msg1 and Msg2 keep their typed arguments
// unboxed, so a passing check with such a message does not allocate:
//
//	check.InclusiveBetween(f, 1, 65535, port, check.Msg1("port %d out of range", check.Int(port)))
//
// Most callers use one of the facades instead of this package directly:
//
//	validation.NotNil(user)     // *errors.AppError failures
//	invariant.NotNil(user)      // *invariant.Violation failures
//	nonretryable.NotNil(user)   // *resilience.NonRetryableError failures
//
// A custom taxonomy is a mapping function:
//
//	var f check.Factory = check.Taxonomy[*MyError](func(k check.Kind, msg string, cause error) *MyError {
//	    return &MyError{Kind: k, Msg: msg, Err: cause}
//	})
//	v, err := check.NotEmpty(f, items)
package check
