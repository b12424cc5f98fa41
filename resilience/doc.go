// Package resilience provides circuit breaker and retry patterns that tell
// caller faults apart from dependency faults.
//
// A NonRetryableError marks a failure that repeating the call cannot fix,
// typically a rejected argument produced by the nonretryable check package.
// Circuit breakers count such errors as successes, so a burst of bad client
// input never opens the circuit, and Retry gives up on them at once:
//
//	cb := resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("ledger"))
//	err := cb.Execute(func() error {
//	    if _, err := nonretryable.NotNil(account, nonretryable.Msg("account")); err != nil {
//	        return err // returned to the caller, breaker stays closed
//	    }
//	    return ledger.Post(ctx, account)
//	})
//
// Code that drives sony/gobreaker directly can start from GoBreakerSettings.
package resilience
