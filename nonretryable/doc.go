// Package nonretryable runs guard's checks at a circuit-breaker boundary.
//
// Failures are *resilience.NonRetryableError values. A circuit breaker built
// with resilience.DefaultIsSuccessful, or a gobreaker configured through
// resilience.GoBreakerSettings, returns them to the caller without counting
// them toward its trip threshold, and resilience.Retry gives up on them at
// once: a bad request stays bad however often it is sent.
//
//	_, err := cb.Execute(func() (any, error) {
//	    if _, err := nonretryable.InclusiveBetween(1, 100, pageSize); err != nil {
//	        return nil, err
//	    }
//	    return client.List(ctx, pageSize)
//	})
package nonretryable
