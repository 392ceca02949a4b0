package yaretry

import (
	"context"
	"net/http"
	"time"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// Exponential is a stateful iterator over a Policy's backoff schedule for
// use in retry loops. It is not safe for concurrent use.
//
// Example usage:
//
//	backoff := yaretry.Default().Exponential()
//	fmt.Println(backoff.Next()) // 1s
//	fmt.Println(backoff.Next()) // 2s
//	fmt.Println(backoff.Next()) // 4s
type Exponential struct {
	policy  Policy
	attempt int
	current time.Duration
}

// Exponential returns a fresh iterator positioned before the first retry.
func (p Policy) Exponential() *Exponential {
	return &Exponential{policy: p}
}

// Next returns the delay for the current retry and advances the schedule.
// The first call returns the policy's base delay.
func (e *Exponential) Next() time.Duration {
	delay, err := e.policy.ComputeBackoff(e.attempt)
	if err != nil {
		delay = e.policy.baseDelay
	}

	e.attempt++
	e.current = delay

	return delay
}

// Current reports the delay returned by the most recent call to Next(), or
// zero before the first call. It never mutates state.
func (e *Exponential) Current() time.Duration {
	return e.current
}

// Attempt reports how many delays have been handed out so far.
func (e *Exponential) Attempt() int {
	return e.attempt
}

// Reset puts the iterator back before the first retry.
//
// Example usage:
//
//	backoff.Reset()
func (e *Exponential) Reset() {
	e.attempt = 0
	e.current = 0
}

// Wait sleeps for Next() or until the context is cancelled, whichever comes
// first.
func (e *Exponential) Wait(ctx context.Context) yaerrors.Error {
	return Wait(ctx, e.Next())
}

// Wait blocks for the given duration, returning early with an error when the
// context is cancelled.
//
// Example usage:
//
//	if err := yaretry.Wait(ctx, delay); err != nil {
//	    return err.Wrap("retry wait interrupted")
//	}
func Wait(ctx context.Context, d time.Duration) yaerrors.Error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return yaerrors.FromError(
			http.StatusRequestTimeout,
			ctx.Err(),
			"retry wait cancelled",
		)
	case <-timer.C:
		return nil
	}
}
