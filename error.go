package newsclip

import (
	"errors"
	"fmt"
	"time"
)

// Application error codes.
//
// These are meant to be generic and they map well to HTTP-style semantics,
// but the meaning within this application is narrower: ENOTFOUND means no
// strategy recovered usable article content, ETIMEOUT means a deadline was
// exhausted, and EUNAVAILABLE means the browser-automation runtime is
// missing from the deployment environment.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	ETIMEOUT     = "timeout"
	EUNAVAILABLE = "unavailable"
	EINTERNAL    = "internal"
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message, plus optional extraction
// context describing which fetch strategies were involved.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Strategy that produced the error, when the error is strategy-local.
	Strategy Method

	// Strategies attempted before giving up. Set on ENOTFOUND errors.
	Strategies []Method

	// HTTP status returned by the failing fetch, when one was received.
	Status int

	// Time spent before the deadline was exhausted. Set on ETIMEOUT errors.
	Elapsed time.Duration
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("newsclip error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
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

// FetchFailedError returns an EINTERNAL error describing a fetch strategy
// that received a non-success HTTP response.
func FetchFailedError(strategy Method, status int) *Error {
	return &Error{
		Code:     EINTERNAL,
		Message:  fmt.Sprintf("fetch via %s failed with HTTP %d", strategy, status),
		Strategy: strategy,
		Status:   status,
	}
}

// NoContentError returns an ENOTFOUND error recording which strategies were
// attempted before extraction was abandoned.
func NoContentError(tried []Method) *Error {
	return &Error{
		Code:       ENOTFOUND,
		Message:    fmt.Sprintf("no article content found after %d strategies", len(tried)),
		Strategies: tried,
	}
}

// DeadlineError returns an ETIMEOUT error for an extraction that exhausted
// its overall budget.
func DeadlineError(strategy Method, elapsed time.Duration) *Error {
	return &Error{
		Code:     ETIMEOUT,
		Message:  fmt.Sprintf("extraction deadline exceeded after %s", elapsed.Round(time.Millisecond)),
		Strategy: strategy,
		Elapsed:  elapsed,
	}
}
