// Package errors provides standardized error types for the cfcert CLI tool.
//
// CertError is the primary error type, carrying a code that categorizes
// the failure, an optional domain for context, and an optional wrapped
// error. Sentinel errors cover the common scenarios; compare against them
// with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"   // Required external binary not found
	ErrCodeValidation  ErrorCode = "VALIDATION"  // Required configuration missing or invalid
	ErrCodeCredentials ErrorCode = "CREDENTIALS" // Credentials file handling failed
	ErrCodeConfig      ErrorCode = "CONFIG"      // Env file could not be parsed
	ErrCodeCertbot     ErrorCode = "CERTBOT"     // Certbot invocation failed
	ErrCodeInternal    ErrorCode = "INTERNAL"    // Internal/unexpected error
)

// CertError represents a structured error with context about the operation.
type CertError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Domain  string    // Domain name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *CertError) Error() string {
	if e.Domain != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Domain, e.Message, e.Err)
	}
	if e.Domain != "" {
		return fmt.Sprintf("%s: %s", e.Domain, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *CertError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *CertError) Is(target error) bool {
	t, ok := target.(*CertError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrCertbotNotFound indicates the certbot binary is not on PATH.
	// The message doubles as the user-facing installation hint.
	ErrCertbotNotFound = &CertError{
		Code:    ErrCodeNotFound,
		Message: "certbot not found. Please install it first: apt install certbot python3-certbot-dns-cloudflare",
	}

	// ErrMissingToken indicates no Cloudflare API token was supplied.
	ErrMissingToken = &CertError{Code: ErrCodeCredentials, Message: "missing Cloudflare API token"}
)

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &CertError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &CertError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapDomain creates an error with domain context and underlying error.
func WrapDomain(code ErrorCode, domain, msg string, err error) error {
	return &CertError{
		Code:    code,
		Message: msg,
		Domain:  domain,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
