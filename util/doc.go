// Package util holds small generic helpers built on the check facades:
// optional values as pointers, slices as iterators and error-returning calls
// that must not fail.
package util
