// Package yacaption resolves caption text against Telegram's 1024 character
// media caption limit. A caller picks a Strategy for what happens when the
// limit is exceeded: cut the tail off, carry it over into follow-up messages,
// or refuse the caption outright.
//
// Example usage:
//
//	result, err := yacaption.Process(caption, yacaption.StrategySendRest, yamarkup.DialectHTML)
//	if err != nil {
//	    return err.Wrap("failed to process caption")
//	}
//
//	sendPhoto(result.Caption)
//
//	if result.HasRemaining() {
//	    sendMessage(result.Remaining)
//	}
package yacaption

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

// MaxCaptionLength is Telegram's hard limit for media captions.
const MaxCaptionLength = 1024

// boundaryThreshold is the fraction of the limit a sentence or word boundary
// must reach to be preferred over a hard character cut.
const boundaryThreshold = 0.8

// Strategy selects the behaviour for captions longer than MaxCaptionLength.
type Strategy uint8

const (
	// StrategyTruncate keeps the first MaxCaptionLength characters and
	// discards the rest.
	StrategyTruncate Strategy = iota

	// StrategySendRest keeps a boundary-aligned head as the caption and
	// returns the tail for delivery as separate messages.
	StrategySendRest

	// StrategyError rejects over-long captions with an error.
	StrategyError
)

func (s Strategy) String() string {
	switch s {
	case StrategyTruncate:
		return "Truncate"
	case StrategySendRest:
		return "SendRest"
	case StrategyError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Result carries the caption that fits the limit and any text left over.
type Result struct {
	Caption   string
	Remaining string
}

// HasRemaining reports whether the result carries non-whitespace overflow
// that still needs to be delivered.
func (r Result) HasRemaining() bool {
	return strings.TrimSpace(r.Remaining) != ""
}

// Process resolves a caption against the limit using the given strategy.
// Whitespace-only input yields an empty Result; input within the limit is
// returned unchanged. Lengths are counted in runes, matching how users see
// text, not in bytes.
//
// Example usage:
//
//	result, err := yacaption.Process(text, yacaption.StrategyTruncate, yamarkup.DialectMarkdownV2)
func Process(caption string, strategy Strategy, dialect yamarkup.Dialect) (Result, yaerrors.Error) {
	if !dialect.Valid() {
		return Result{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown markup dialect: %d", dialect),
		)
	}

	if strings.TrimSpace(caption) == "" {
		return Result{}, nil
	}

	runes := []rune(caption)
	if len(runes) <= MaxCaptionLength {
		return Result{Caption: caption}, nil
	}

	switch strategy {
	case StrategyTruncate:
		return Result{Caption: string(runes[:MaxCaptionLength])}, nil
	case StrategySendRest:
		split := findGoodSplitPoint(runes, MaxCaptionLength)

		return Result{
			Caption:   strings.TrimSpace(string(runes[:split])),
			Remaining: strings.TrimSpace(string(runes[split:])),
		}, nil
	case StrategyError:
		return Result{}, yaerrors.FromError(
			http.StatusRequestEntityTooLarge,
			ErrCaptionTooLong,
			fmt.Sprintf("caption length %d exceeds maximum %d characters", len(runes), MaxCaptionLength),
		)
	default:
		return Result{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown caption strategy: %d", strategy),
		)
	}
}

// findGoodSplitPoint picks the split position for the caption head: the last
// sentence end within the limit, then the last word end, each accepted only
// when past boundaryThreshold of the limit, otherwise a hard cut at the
// limit itself.
func findGoodSplitPoint(runes []rune, maxLength int) int {
	if maxLength >= len(runes) {
		return len(runes)
	}

	threshold := int(float64(maxLength) * boundaryThreshold)

	if sentenceEnd := findLastSentenceEnd(runes, maxLength); sentenceEnd > threshold {
		return sentenceEnd
	}

	if wordEnd := findLastWordEnd(runes, maxLength); wordEnd > threshold {
		return wordEnd
	}

	return maxLength
}

// findLastSentenceEnd returns the position just after the last sentence
// terminator (. ! ?) that is followed by whitespace or end of text, or -1
// when the window contains none.
func findLastSentenceEnd(runes []rune, maxLength int) int {
	last := -1

	limit := min(maxLength, len(runes))
	for i := 0; i < limit; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				last = i + 1
			}
		}
	}

	return last
}

// findLastWordEnd returns the position of the last whitespace rune within the
// window, or -1 when the window contains none.
func findLastWordEnd(runes []rune, maxLength int) int {
	last := -1

	limit := min(maxLength, len(runes))
	for i := 0; i < limit; i++ {
		if unicode.IsSpace(runes[i]) {
			last = i
		}
	}

	return last
}
