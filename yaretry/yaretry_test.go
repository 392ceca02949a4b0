package yaretry_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgNotify/yaretry"
)

func TestNewPolicy_Validation(t *testing.T) {
	t.Parallel()

	_, err := yaretry.NewPolicy(-1, time.Second, 2.0, 10*time.Second)
	assert.NotNil(t, err)

	_, err = yaretry.NewPolicy(3, -time.Second, 2.0, 10*time.Second)
	assert.NotNil(t, err)

	_, err = yaretry.NewPolicy(3, time.Second, 0, 10*time.Second)
	assert.NotNil(t, err)

	_, err = yaretry.NewPolicy(3, time.Second, -1.5, 10*time.Second)
	assert.NotNil(t, err)

	_, err = yaretry.NewPolicy(3, time.Second, 2.0, -time.Second)
	assert.NotNil(t, err)
}

func TestComputeBackoff_AttemptZeroIsBaseDelay(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(3, 750*time.Millisecond, 2.0, 10*time.Second)
	require.Nil(t, err)

	delay, cerr := policy.ComputeBackoff(0)

	require.Nil(t, cerr)
	assert.Equal(t, 750*time.Millisecond, delay)
}

func TestComputeBackoff_GrowsAndClamps(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(10, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	expected := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}

	for attempt, want := range expected {
		got, cerr := policy.ComputeBackoff(attempt)

		require.Nil(t, cerr)
		assert.Equal(t, want, got, "mismatch at attempt %d", attempt)
	}
}

func TestComputeBackoff_FractionalMultiplierRoundsToMilliseconds(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(5, time.Second, 1.5, time.Minute)
	require.Nil(t, err)

	got, cerr := policy.ComputeBackoff(2)

	require.Nil(t, cerr)
	assert.Equal(t, 2250*time.Millisecond, got)
}

func TestComputeBackoff_SaturatesAtLargeAttempts(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(100, time.Second, 2.0, 30*time.Second)
	require.Nil(t, err)

	// Doubling for long enough overflows a naive duration conversion; the
	// schedule must stay pinned at the cap instead of wrapping negative.
	var prev time.Duration

	for attempt := 0; attempt <= 500; attempt++ {
		got, cerr := policy.ComputeBackoff(attempt)

		require.Nil(t, cerr)
		assert.GreaterOrEqual(t, got, prev, "schedule shrank at attempt %d", attempt)
		assert.LessOrEqual(t, got, 30*time.Second, "cap exceeded at attempt %d", attempt)

		prev = got
	}

	got, cerr := policy.ComputeBackoff(34)

	require.Nil(t, cerr)
	assert.Equal(t, 30*time.Second, got)
}

func TestComputeBackoff_NegativeAttemptFails(t *testing.T) {
	t.Parallel()

	policy := yaretry.Default()

	_, err := policy.ComputeBackoff(-1)

	assert.NotNil(t, err)
}

func TestFor429_HintWinsButIsCapped(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(3, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	delay, cerr := policy.For429(1, 20)

	require.Nil(t, cerr)
	assert.Equal(t, 10*time.Second, delay)
}

func TestFor429_SmallHintUsedAsIs(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(3, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	delay, cerr := policy.For429(5, 3)

	require.Nil(t, cerr)
	assert.Equal(t, 3*time.Second, delay)
}

func TestFor429_HugeHintClampedToMaxDelay(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(3, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	delay, cerr := policy.For429(0, math.MaxInt)

	require.Nil(t, cerr)
	assert.Equal(t, 10*time.Second, delay)
}

func TestFor429_NoHintFallsBackToSchedule(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(3, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	delay, cerr := policy.For429(2, 0)

	require.Nil(t, cerr)
	assert.Equal(t, 4*time.Second, delay)
}

func TestFor429_NegativeHintFails(t *testing.T) {
	t.Parallel()

	policy := yaretry.Default()

	_, err := policy.For429(0, -1)

	assert.NotNil(t, err)
}

func TestShouldRetry_Works(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(2, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	assert.True(t, policy.ShouldRetry(0))
	assert.True(t, policy.ShouldRetry(1))
	assert.False(t, policy.ShouldRetry(2))
	assert.False(t, policy.ShouldRetry(3))
}

func TestShouldRetry_ZeroRetriesNeverRetries(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(0, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	assert.False(t, policy.ShouldRetry(0))
}

func TestPresets(t *testing.T) {
	t.Parallel()

	def := yaretry.Default()
	assert.Equal(t, 2, def.MaxRetries())
	assert.Equal(t, time.Second, def.BaseDelay())
	assert.Equal(t, 2.0, def.Multiplier())
	assert.Equal(t, 30*time.Second, def.MaxDelay())

	conservative := yaretry.Conservative()
	assert.Equal(t, 5, conservative.MaxRetries())
	assert.Equal(t, 2*time.Second, conservative.BaseDelay())
	assert.Equal(t, 1.5, conservative.Multiplier())
	assert.Equal(t, time.Minute, conservative.MaxDelay())

	aggressive := yaretry.Aggressive()
	assert.Equal(t, 1, aggressive.MaxRetries())
	assert.Equal(t, 500*time.Millisecond, aggressive.BaseDelay())
	assert.Equal(t, 2.0, aggressive.Multiplier())
	assert.Equal(t, 5*time.Second, aggressive.MaxDelay())
}

func TestExponential_FollowsSchedule(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(10, time.Second, 2.0, 10*time.Second)
	require.Nil(t, err)

	backoff := policy.Exponential()

	assert.Equal(t, time.Second, backoff.Next())
	assert.Equal(t, 2*time.Second, backoff.Next())
	assert.Equal(t, 4*time.Second, backoff.Next())
	assert.Equal(t, 4*time.Second, backoff.Current())
	assert.Equal(t, 3, backoff.Attempt())
}

func TestExponential_SaturatesAfterManyRetries(t *testing.T) {
	t.Parallel()

	policy, err := yaretry.NewPolicy(100, time.Second, 2.0, 30*time.Second)
	require.Nil(t, err)

	backoff := policy.Exponential()

	var last time.Duration
	for i := 0; i < 60; i++ {
		last = backoff.Next()
	}

	assert.Equal(t, 30*time.Second, last)
}

func TestExponential_Reset(t *testing.T) {
	t.Parallel()

	backoff := yaretry.Default().Exponential()

	backoff.Next()
	backoff.Next()
	backoff.Reset()

	assert.Equal(t, 0, backoff.Attempt())
	assert.Equal(t, time.Second, backoff.Next())
}

func TestWait_ReturnsAfterDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()

	err := yaretry.Wait(context.Background(), 50*time.Millisecond)

	require.Nil(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_CancelledContextInterrupts(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := yaretry.Wait(ctx, time.Minute)

	require.NotNil(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWait_ZeroDelayReturnsImmediately(t *testing.T) {
	t.Parallel()

	assert.Nil(t, yaretry.Wait(context.Background(), 0))
}
