package resilience

// NonRetryableError reports a failure that repeating the call cannot fix,
// such as a rejected argument. Circuit breakers built by this package count
// it as a success and Retry gives up on it immediately.
type NonRetryableError struct {
	Message string
	Cause   error
}

// NewNonRetryable creates a NonRetryableError. cause may be nil.
func NewNonRetryable(msg string, cause error) *NonRetryableError {
	return &NonRetryableError{Message: msg, Cause: cause}
}

func (e *NonRetryableError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *NonRetryableError) Unwrap() error { return e.Cause }

// NonRetryable always reports true.
func (e *NonRetryableError) NonRetryable() bool { return true }

type nonRetryable interface {
	NonRetryable() bool
}

// IsNonRetryable reports whether any error in err's chain declares itself
// non-retryable.
func IsNonRetryable(err error) bool {
	for err != nil {
		if nr, ok := err.(nonRetryable); ok && nr.NonRetryable() {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				if IsNonRetryable(e) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

// DefaultIsSuccessful treats nil and non-retryable errors as successful
// outcomes for circuit breaker accounting.
func DefaultIsSuccessful(err error) bool {
	return err == nil || IsNonRetryable(err)
}
