package guidecrawl

import (
	"errors"
	"fmt"
)

// Application error codes. These map to broad categories of failure that
// callers can branch on without inspecting error strings.
const (
	EINTERNAL    = "internal"    // internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // remote resource could not be fetched
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code and a
// human-readable message.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("guidecrawl error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
