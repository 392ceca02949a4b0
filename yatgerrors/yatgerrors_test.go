package yatgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaTgNotify/yatgerrors"
)

func TestAPIError_ErrorString(t *testing.T) {
	t.Parallel()

	err := yatgerrors.NewRateLimit(429, "Too Many Requests", 7)

	assert.Equal(t, "telegram RateLimit error 429: Too Many Requests (retry after 7s)", err.Error())
}

func TestAPIError_UnwrapReturnsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := yatgerrors.NewNetwork("send failed", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestIsRateLimit_Works(t *testing.T) {
	t.Parallel()

	assert.True(t, yatgerrors.IsRateLimit(yatgerrors.NewRateLimit(429, "slow down", 0)))
	assert.False(t, yatgerrors.IsRateLimit(yatgerrors.NewAuth(401, "unauthorized")))
	assert.False(t, yatgerrors.IsRateLimit(errors.New("plain error")))
}

func TestIsRateLimit_SeesThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("sending part 2: %w", yatgerrors.NewRateLimit(429, "slow down", 3))

	assert.True(t, yatgerrors.IsRateLimit(err))
}

func TestIsRetryable_OnlyRateLimit(t *testing.T) {
	t.Parallel()

	assert.True(t, yatgerrors.IsRetryable(yatgerrors.NewRateLimit(429, "slow down", 1)))
	assert.False(t, yatgerrors.IsRetryable(yatgerrors.NewHTTP(400, "bad request")))
	assert.False(t, yatgerrors.IsRetryable(yatgerrors.NewNetwork("down", nil)))
	assert.False(t, yatgerrors.IsRetryable(yatgerrors.NewGeneric("odd", nil)))
}

func TestRetryAfterHint_Works(t *testing.T) {
	t.Parallel()

	hint, ok := yatgerrors.RetryAfterHint(yatgerrors.NewRateLimit(429, "slow down", 12))
	assert.True(t, ok)
	assert.Equal(t, 12, hint)

	hint, ok = yatgerrors.RetryAfterHint(yatgerrors.NewRateLimit(429, "slow down", 0))
	assert.True(t, ok)
	assert.Equal(t, 0, hint)

	_, ok = yatgerrors.RetryAfterHint(yatgerrors.NewAuth(403, "forbidden"))
	assert.False(t, ok)
}

func TestNewRateLimit_NegativeHintClampedToZero(t *testing.T) {
	t.Parallel()

	err := yatgerrors.NewRateLimit(429, "slow down", -5)

	assert.Equal(t, 0, err.RetryAfter)
}
