// Package errors provides error classification for the client SDK.
// Every transport or server failure is normalized into a single shape so
// callers and the retry logic see one error taxonomy.
package errors

import "fmt"

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 5xx responses, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with categorization metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Detail     string // server-supplied detail message, if any
	Underlying error  // the original error
}

// Error implements the error interface. The server-supplied detail is
// preferred when present; the underlying error is the generic fallback.
func (e *ClassifiedError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}

// IsUnauthorized reports whether err is a 401/403-class authorization
// failure. Authorization failures are never auto-retried and never force a
// session transition on their own.
func IsUnauthorized(err error) bool {
	classified, ok := err.(*ClassifiedError)
	return ok && (classified.StatusCode == 401 || classified.StatusCode == 403)
}
