package yacaption_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgNotify/yacaption"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

func TestProcess_WhitespaceOnlyYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	result, err := yacaption.Process("   \n\t ", yacaption.StrategyTruncate, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Equal(t, "", result.Caption)
	assert.False(t, result.HasRemaining())
}

func TestProcess_WithinLimitUnchanged(t *testing.T) {
	t.Parallel()

	caption := "deployment finished"

	result, err := yacaption.Process(caption, yacaption.StrategyError, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Equal(t, caption, result.Caption)
	assert.False(t, result.HasRemaining())
}

func TestProcess_ExactlyAtLimitUnchanged(t *testing.T) {
	t.Parallel()

	caption := strings.Repeat("A", yacaption.MaxCaptionLength)

	result, err := yacaption.Process(caption, yacaption.StrategyError, yamarkup.DialectMarkdown)

	require.Nil(t, err)
	assert.Equal(t, caption, result.Caption)
}

func TestProcess_TruncateCutsAtLimit(t *testing.T) {
	t.Parallel()

	caption := strings.Repeat("A", 1500)

	result, err := yacaption.Process(caption, yacaption.StrategyTruncate, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Len(t, result.Caption, yacaption.MaxCaptionLength)
	assert.False(t, result.HasRemaining())
}

func TestProcess_TruncateCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	caption := strings.Repeat("ы", 1500)

	result, err := yacaption.Process(caption, yacaption.StrategyTruncate, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Len(t, []rune(result.Caption), yacaption.MaxCaptionLength)
}

func TestProcess_SendRestSplitsAtSentenceBoundary(t *testing.T) {
	t.Parallel()

	// A sentence end lands between 80% and 100% of the limit; the head must
	// stop there and the tail carry the rest.
	head := strings.Repeat("a", 990) + "."
	tail := strings.Repeat("b", 500)
	caption := head + " " + tail

	result, err := yacaption.Process(caption, yacaption.StrategySendRest, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Equal(t, head, result.Caption)
	assert.Equal(t, tail, result.Remaining)
	assert.True(t, result.HasRemaining())
}

func TestProcess_SendRestFallsBackToWordBoundary(t *testing.T) {
	t.Parallel()

	// No sentence terminator anywhere, last space at position 1000.
	caption := strings.Repeat("a", 1000) + " " + strings.Repeat("b", 500)

	result, err := yacaption.Process(caption, yacaption.StrategySendRest, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Equal(t, strings.Repeat("a", 1000), result.Caption)
	assert.Equal(t, strings.Repeat("b", 500), result.Remaining)
}

func TestProcess_SendRestHardCutWhenNoUsableBoundary(t *testing.T) {
	t.Parallel()

	// Only boundary is far below 80% of the limit, so the head is a hard cut
	// at exactly the limit.
	caption := "short start " + strings.Repeat("x", 2000)

	result, err := yacaption.Process(caption, yacaption.StrategySendRest, yamarkup.DialectHTML)

	require.Nil(t, err)
	assert.Len(t, []rune(result.Caption), yacaption.MaxCaptionLength)
	assert.True(t, result.HasRemaining())
}

func TestProcess_ErrorStrategyRejectsOverLongCaption(t *testing.T) {
	t.Parallel()

	caption := strings.Repeat("A", 1500)

	_, err := yacaption.Process(caption, yacaption.StrategyError, yamarkup.DialectHTML)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, yacaption.ErrCaptionTooLong))
	assert.Contains(t, err.Error(), "1500")
	assert.Contains(t, err.Error(), "1024")
}

func TestProcess_UnknownDialectFails(t *testing.T) {
	t.Parallel()

	_, err := yacaption.Process("hello", yacaption.StrategyTruncate, yamarkup.Dialect(99))

	assert.NotNil(t, err)
}

func TestProcess_UnknownStrategyFails(t *testing.T) {
	t.Parallel()

	caption := strings.Repeat("A", 1500)

	_, err := yacaption.Process(caption, yacaption.Strategy(99), yamarkup.DialectHTML)

	assert.NotNil(t, err)
}
