// Package yaretry decides whether and how long to wait before retrying a
// rate-limited send. A Policy is an immutable value computing exponential
// backoff delays; Exponential wraps one into a stateful iterator for retry
// loops; Wait sleeps with context cancellation.
//
// # Quick start
//
//	policy := yaretry.Default()
//
//	for attempt := 0; ; attempt++ {
//	    err := send()
//	    if err == nil {
//	        break
//	    }
//	    if !policy.ShouldRetry(attempt) {
//	        return err
//	    }
//	    delay, _ := policy.ComputeBackoff(attempt)
//	    if werr := yaretry.Wait(ctx, delay); werr != nil {
//	        return werr
//	    }
//	}
package yaretry

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// Policy is an immutable backoff configuration. The zero value is not
// useful; construct one with NewPolicy or a preset.
type Policy struct {
	maxRetries int
	baseDelay  time.Duration
	multiplier float64
	maxDelay   time.Duration
}

// NewPolicy validates and creates a Policy.
//
// maxRetries is the number of retries after the initial attempt and must be
// non-negative; baseDelay and maxDelay must be non-negative; multiplier must
// be positive.
//
// Example usage:
//
//	policy, err := yaretry.NewPolicy(3, time.Second, 2.0, 10*time.Second)
func NewPolicy(
	maxRetries int,
	baseDelay time.Duration,
	multiplier float64,
	maxDelay time.Duration,
) (Policy, yaerrors.Error) {
	if maxRetries < 0 {
		return Policy{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("max retries must be non-negative, got %d", maxRetries),
		)
	}

	if baseDelay < 0 {
		return Policy{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("base delay must be non-negative, got %v", baseDelay),
		)
	}

	if multiplier <= 0 {
		return Policy{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("multiplier must be positive, got %v", multiplier),
		)
	}

	if maxDelay < 0 {
		return Policy{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("max delay must be non-negative, got %v", maxDelay),
		)
	}

	return Policy{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		multiplier: multiplier,
		maxDelay:   maxDelay,
	}, nil
}

// Default is a balanced preset: 2 retries, 1s base delay, doubling, capped
// at 30s.
func Default() Policy {
	return Policy{maxRetries: 2, baseDelay: time.Second, multiplier: 2.0, maxDelay: 30 * time.Second}
}

// Conservative retries more and waits longer: 5 retries, 2s base delay,
// multiplier 1.5, capped at 60s.
func Conservative() Policy {
	return Policy{maxRetries: 5, baseDelay: 2 * time.Second, multiplier: 1.5, maxDelay: 60 * time.Second}
}

// Aggressive gives up fast: 1 retry, 500ms base delay, doubling, capped
// at 5s.
func Aggressive() Policy {
	return Policy{maxRetries: 1, baseDelay: 500 * time.Millisecond, multiplier: 2.0, maxDelay: 5 * time.Second}
}

// MaxRetries returns the configured retry count.
func (p Policy) MaxRetries() int {
	return p.maxRetries
}

// BaseDelay returns the configured base delay.
func (p Policy) BaseDelay() time.Duration {
	return p.baseDelay
}

// Multiplier returns the configured growth factor.
func (p Policy) Multiplier() float64 {
	return p.multiplier
}

// MaxDelay returns the configured delay cap.
func (p Policy) MaxDelay() time.Duration {
	return p.maxDelay
}

// ComputeBackoff returns the delay before retry number attempt. Attempt 0 is
// the first retry and returns the base delay exactly; later attempts grow by
// multiplier^attempt, quantised to whole milliseconds, and never exceed the
// cap.
//
// Example usage:
//
//	delay, err := policy.ComputeBackoff(2) // baseDelay * multiplier^2
func (p Policy) ComputeBackoff(attempt int) (time.Duration, yaerrors.Error) {
	if attempt < 0 {
		return 0, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("attempt must be non-negative, got %d", attempt),
		)
	}

	if attempt == 0 {
		return p.baseDelay, nil
	}

	baseMs := float64(p.baseDelay) / float64(time.Millisecond)
	delayMs := baseMs * math.Pow(p.multiplier, float64(attempt))

	// Saturate in float space: converting an oversized float to time.Duration
	// overflows int64 and wraps negative. This also covers Pow returning +Inf.
	maxMs := float64(p.maxDelay) / float64(time.Millisecond)
	if delayMs >= maxMs {
		return p.maxDelay, nil
	}

	return min(time.Duration(math.Round(delayMs))*time.Millisecond, p.maxDelay), nil
}

// For429 returns the delay after a rate-limit response. A positive
// retry-after hint from the server wins but is still capped at the policy's
// max delay; without a hint the regular backoff schedule applies.
//
// Example usage:
//
//	delay, err := policy.For429(attempt, hintSeconds)
func (p Policy) For429(attempt int, retryAfterSeconds int) (time.Duration, yaerrors.Error) {
	if retryAfterSeconds < 0 {
		return 0, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("retry-after hint must be non-negative, got %d", retryAfterSeconds),
		)
	}

	if retryAfterSeconds > 0 {
		// Clamp before converting: a huge hint would overflow the duration
		// multiplication and wrap negative, bypassing the ceiling.
		if int64(retryAfterSeconds) > int64(p.maxDelay/time.Second) {
			return p.maxDelay, nil
		}

		return min(time.Duration(retryAfterSeconds)*time.Second, p.maxDelay), nil
	}

	return p.ComputeBackoff(attempt)
}

// ShouldRetry reports whether retry number attempt is still within budget.
// Attempt counts completed failures, so a policy with maxRetries 0 never
// retries.
func (p Policy) ShouldRetry(attempt int) bool {
	return attempt < p.maxRetries
}
