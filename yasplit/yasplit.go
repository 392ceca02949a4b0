// Package yasplit splits long message text into parts that each fit within a
// soft length limit, breaking at markup-aware boundaries so no part ends in
// the middle of a tag, code fence, HTML entity or escape sequence.
//
// Example usage:
//
//	parts, err := yasplit.SafeSplit(text, 3900, yamarkup.DialectHTML)
//	if err != nil {
//	    return err.Wrap("failed to split message")
//	}
//
//	for _, part := range parts {
//	    send(part)
//	}
package yasplit

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

// SafeSplit splits content into parts no longer than softLimit bytes each.
// Content already within the limit is returned untouched as a single part.
// Longer content is scanned window by window; inside each window the split
// lands on the best dialect-specific boundary, falling back to a hard cut at
// the window end. Once the window covers the rest of the content the tail is
// emitted as one part without further boundary search: a tail that already
// fits never gets split. Parts are trimmed and empty parts dropped, but the
// cursor always advances from the untrimmed split point, so no text is lost
// or duplicated.
//
// Example usage:
//
//	parts, err := yasplit.SafeSplit(report, 3900, yamarkup.DialectMarkdownV2)
func SafeSplit(content string, softLimit int, dialect yamarkup.Dialect) ([]string, yaerrors.Error) {
	if softLimit <= 0 {
		return nil, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("soft limit must be positive, got %d", softLimit),
		)
	}

	if !dialect.Valid() {
		return nil, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown markup dialect: %d", dialect),
		)
	}

	if len(content) <= softLimit {
		return []string{content}, nil
	}

	var parts []string

	start := 0
	for start < len(content) {
		end := findBestSplitPoint(content, start, softLimit, dialect)

		// A hard cut may land inside a multi-byte rune; retreat to the rune
		// start. Boundary-based cuts always sit on rune starts already.
		for end > start && end < len(content) && !utf8.RuneStart(content[end]) {
			end--
		}

		if end <= start {
			_, size := utf8.DecodeRuneInString(content[start:])
			end = start + size
		}

		part := strings.TrimSpace(content[start:end])
		if part != "" {
			parts = append(parts, part)
		}

		start = end
	}

	return parts, nil
}

// findBestSplitPoint returns the split position for the window starting at
// start, at most maxLength bytes wide.
func findBestSplitPoint(content string, start, maxLength int, dialect yamarkup.Dialect) int {
	end := min(start+maxLength, len(content))
	if end == len(content) {
		return end
	}

	switch dialect {
	case yamarkup.DialectHTML:
		return findBestHTMLSplitPoint(content, start, end)
	case yamarkup.DialectMarkdown, yamarkup.DialectMarkdownV2:
		return findBestMarkdownSplitPoint(content, start, end)
	default:
		return findBestGenericSplitPoint(content, start, end)
	}
}

// findBestHTMLSplitPoint prefers, in order: the end of the last <br/> tag,
// </blockquote>, </pre>, the last newline, the last whitespace, and finally
// a retreat before an HTML entity that would straddle the window end.
func findBestHTMLSplitPoint(content string, start, end int) int {
	if split := findLastPattern(content, start, end, brTagPattern); split > start {
		return split
	}

	if split := findLastPattern(content, start, end, blockquotePattern); split > start {
		return split
	}

	if split := findLastPattern(content, start, end, preTagPattern); split > start {
		return split
	}

	if split := findBestGenericSplitPoint(content, start, end); split < end {
		return split
	}

	if split := findEntityBoundary(content, start, end); split > start {
		return split
	}

	return end
}

// findBestMarkdownSplitPoint prefers, in order: the end of the last complete
// ``` code fence pair, the last newline, the last whitespace, and finally a
// retreat before a backslash escape pair that would straddle the window end.
func findBestMarkdownSplitPoint(content string, start, end int) int {
	if split := findLastPattern(content, start, end, codeBlockPattern); split > start {
		return split
	}

	if split := findBestGenericSplitPoint(content, start, end); split < end {
		return split
	}

	if split := findEscapeBoundary(content, start, end); split > start {
		return split
	}

	return end
}

// findBestGenericSplitPoint prefers the last newline, then the last
// whitespace, then the window end.
func findBestGenericSplitPoint(content string, start, end int) int {
	if split := findLastString(content, start, end, "\n"); split > start {
		return split
	}

	if split := findLastWhitespace(content, start, end); split > start {
		return split
	}

	return end
}
