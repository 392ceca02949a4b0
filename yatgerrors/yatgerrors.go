// Package yatgerrors defines the error taxonomy for Telegram Bot API
// failures. Every transport failure is classified into a Kind so callers can
// branch on the failure class instead of parsing description strings; only
// rate-limit failures are considered retryable.
//
// Example usage:
//
//	if yatgerrors.IsRateLimit(err) {
//	    hint, _ := yatgerrors.RetryAfterHint(err)
//	    wait(hint)
//	}
package yatgerrors

import (
	"errors"
	"fmt"
)

// Kind classifies a Telegram API failure.
type Kind uint8

const (
	// KindGeneric covers failures that fit no other class.
	KindGeneric Kind = iota

	// KindAuth covers invalid or revoked bot tokens and forbidden chats.
	KindAuth

	// KindRateLimit covers 429 responses; the only retryable kind.
	KindRateLimit

	// KindNetwork covers transport failures before any API response.
	KindNetwork

	// KindHTTP covers non-2xx API responses other than auth and rate limit.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindAuth:
		return "Auth"
	case KindRateLimit:
		return "RateLimit"
	case KindNetwork:
		return "Network"
	case KindHTTP:
		return "HTTP"
	default:
		return "Unknown"
	}
}

// APIError is a classified Telegram API failure. Code carries the Telegram
// error code (an HTTP-ish status); RetryAfter carries the server's
// retry-after hint in seconds for rate-limit errors, zero when absent.
type APIError struct {
	Kind        Kind
	Code        int
	Description string
	RetryAfter  int
	cause       error
}

func (e *APIError) Error() string {
	if e.Kind == KindRateLimit && e.RetryAfter > 0 {
		return fmt.Sprintf("telegram %s error %d: %s (retry after %ds)",
			e.Kind, e.Code, e.Description, e.RetryAfter)
	}

	return fmt.Sprintf("telegram %s error %d: %s", e.Kind, e.Code, e.Description)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAuth creates an authentication or authorisation failure.
func NewAuth(code int, description string) *APIError {
	return &APIError{Kind: KindAuth, Code: code, Description: description}
}

// NewRateLimit creates a rate-limit failure. retryAfterSeconds is the
// server's hint, zero when the response carried none.
//
// Example usage:
//
//	err := yatgerrors.NewRateLimit(429, "Too Many Requests", 7)
func NewRateLimit(code int, description string, retryAfterSeconds int) *APIError {
	return &APIError{
		Kind:        KindRateLimit,
		Code:        code,
		Description: description,
		RetryAfter:  max(retryAfterSeconds, 0),
	}
}

// NewNetwork creates a transport-level failure wrapping its cause.
func NewNetwork(description string, cause error) *APIError {
	return &APIError{Kind: KindNetwork, Description: description, cause: cause}
}

// NewHTTP creates a failure for a non-2xx API response.
func NewHTTP(code int, description string) *APIError {
	return &APIError{Kind: KindHTTP, Code: code, Description: description}
}

// NewGeneric creates an unclassified failure wrapping its cause.
func NewGeneric(description string, cause error) *APIError {
	return &APIError{Kind: KindGeneric, Description: description, cause: cause}
}

// IsRateLimit reports whether the error chain contains a rate-limit APIError.
func IsRateLimit(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Kind == KindRateLimit
}

// IsRetryable reports whether the failure is worth retrying. Only rate-limit
// failures are: auth failures need a new token, HTTP failures a fixed
// request, and network failures a healthy connection.
func IsRetryable(err error) bool {
	return IsRateLimit(err)
}

// RetryAfterHint extracts the server's retry-after hint in seconds from the
// error chain. The boolean reports whether the error is a rate-limit error
// at all; the hint may still be zero when the server sent none.
//
// Example usage:
//
//	if hint, ok := yatgerrors.RetryAfterHint(err); ok {
//	    delay, _ := policy.For429(attempt, hint)
//	}
func RetryAfterHint(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindRateLimit {
		return apiErr.RetryAfter, true
	}

	return 0, false
}
