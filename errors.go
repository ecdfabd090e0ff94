package pagespec

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL   = "internal"           // internal error
	EINVALID    = "invalid"            // validation failed
	ENOTFOUND   = "not_found"          // entity does not exist
	ENAVIGATION = "navigation"         // navigation failed (DNS, TLS, refused)
	ENAVTIMEOUT = "navigation_timeout" // navigation exceeded the timeout ceiling
)

// Error represents an application-specific error. Application errors carry
// machine-readable codes so callers can branch on failure class without
// string matching.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagespec error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
