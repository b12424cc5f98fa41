// Package errors provides the structured error type returned by the standard
// validation taxonomy. Errors carry a machine-readable code, an HTTP status
// suggestion and a retryable flag following RFC 7807 and Google AIP-193.
package errors
