// Package invariant asserts conditions that must hold unless the program
// itself is wrong. A failure here is a bug, not bad input: it is reported as
// an *invariant.Violation and is not meant to be handled, only surfaced.
//
//	if err := invariant.ValidState(len(q.items) <= q.cap, invariant.Msgf("queue over capacity: %d", len(q.items))); err != nil {
//	    return err
//	}
//
// The package-level checks never log. Build a reporting factory with New to
// log each violation (with an optional stack trace) and feed observers:
//
//	f := invariant.New(invariant.WithLogger(log), invariant.WithStack(true))
//	_, err := check.NotNil(f, conn)
package invariant
