// Package yaerrors provides the structured error type used across the library.
// Every fallible operation returns an Error carrying an integer code and a
// traceback that grows as the error travels up the call stack, so the final
// log line shows the full path the failure took.
//
// Example usage:
//
//	if err := doWork(); err != nil {
//	    return err.Wrap("failed to do work")
//	}
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgNotify/yalogger"
)

// Error is the contract implemented by every error produced in this library.
// It extends the standard error interface with an integer code, traceback
// wrapping and access to the original cause.
type Error interface {
	error

	// Wrap prepends a message to the traceback and returns the same error.
	// Call it every time the error crosses a function boundary.
	Wrap(msg string) Error

	// WrapWithLog behaves like Wrap and additionally logs the message at the
	// Error level using the provided logger.
	WrapWithLog(msg string, log yalogger.Logger) Error

	// Code returns the integer code the error was created with.
	Code() int

	// Unwrap returns the original cause, enabling errors.Is / errors.As.
	Unwrap() error

	// UnwrapLastError returns the most recent traceback segment only.
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError creates an Error from an existing cause with a code and a
// context message.
//
// Example usage:
//
//	return yaerrors.FromError(http.StatusBadGateway, err, "telegram send failed")
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError plus an immediate Error-level log entry.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString creates an Error with the given code from a plain message.
//
// Example usage:
//
//	return yaerrors.FromString(http.StatusBadRequest, "soft limit must be positive")
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString plus an immediate Error-level log entry.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// Error renders the code and the full traceback.
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

// Unwrap returns the cause the error was created from.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the most recent traceback segment, i.e. the message
// added by the last Wrap call (or the original message if never wrapped).
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	if head, _, found := strings.Cut(e.traceback, errorSeparate); found {
		return head
	}

	return e.traceback
}

func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = msg + errorSeparate + e.traceback

	return e
}

func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the integer code associated with this error.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck substitutes a sentinel error when a nil *yaError is used as a
// receiver, so a careless dereference never panics.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
