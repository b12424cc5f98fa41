package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Precondition errors
const (
	// ErrCodeInvalidInput indicates an argument failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNullValue indicates a required value was nil.
	ErrCodeNullValue ErrorCode = "NULL_VALUE"
	// ErrCodeIndexOutOfRange indicates an index outside the bounds of a container.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeIllegalState indicates the target is not in a state that allows the operation.
	ErrCodeIllegalState ErrorCode = "ILLEGAL_STATE"
)

// Server errors
const (
	// ErrCodeInternal hides a failure that is not the caller's fault.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Precondition failures describe the request, so repeating it cannot succeed.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:    false,
	ErrCodeNullValue:       false,
	ErrCodeIndexOutOfRange: false,
	ErrCodeIllegalState:    false,
	ErrCodeInternal:        true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
