package yasplit

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	brTagPattern      = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockquotePattern = regexp.MustCompile(`(?i)</blockquote>`)
	preTagPattern     = regexp.MustCompile(`(?i)</pre>`)
	codeBlockPattern  = regexp.MustCompile("(?s)```.*?```")

	// htmlEntityPattern matches a character entity anchored at an ampersand.
	htmlEntityPattern = regexp.MustCompile(`^&[a-zA-Z0-9#]+;`)

	// escapePairPattern matches a backslash followed by one character of the
	// MarkdownV2 reserved set (a superset of the legacy Markdown set, so one
	// pattern serves both dialects).
	escapePairPattern = regexp.MustCompile("\\\\[\\\\*_\\[\\]()~`>#+\\-=|{}.!]")
)

// findLastPattern returns the position just after the last pattern match
// fully inside [start, end), or start if there is none.
func findLastPattern(content string, start, end int, pattern *regexp.Regexp) int {
	matches := pattern.FindAllStringIndex(content[start:end], -1)
	if len(matches) == 0 {
		return start
	}

	return start + matches[len(matches)-1][1]
}

// findLastString returns the position just after the last occurrence of
// search fully inside [start, end), or start if there is none.
func findLastString(content string, start, end int, search string) int {
	idx := strings.LastIndex(content[start:end], search)
	if idx < 0 {
		return start
	}

	return start + idx + len(search)
}

// findLastWhitespace returns the position just after the last whitespace
// rune inside [start, end), or start if there is none.
func findLastWhitespace(content string, start, end int) int {
	last := start

	for i, r := range content[start:end] {
		if unicode.IsSpace(r) {
			last = start + i + len(string(r))
		}
	}

	return last
}

// findEntityBoundary retreats the split point to just before an HTML entity
// whose terminating semicolon falls outside the window, so no part ends with
// a broken entity. Returns start when the window end is entity-safe.
func findEntityBoundary(content string, start, end int) int {
	amp := strings.LastIndexByte(content[start:end], '&')
	if amp < 0 {
		return start
	}

	abs := start + amp

	loc := htmlEntityPattern.FindStringIndex(content[abs:])
	if loc != nil && abs+loc[1] > end {
		return abs
	}

	return start
}

// findEscapeBoundary retreats the split point to just before a backslash
// escape pair that straddles the window end, so the backslash and the
// character it escapes stay in the same part. Returns start when the window
// end is escape-safe.
func findEscapeBoundary(content string, start, end int) int {
	searchEnd := min(end+1, len(content))

	matches := escapePairPattern.FindAllStringIndex(content[start:searchEnd], -1)
	if len(matches) == 0 {
		return start
	}

	last := matches[len(matches)-1]
	if start+last[1] > end {
		return start + last[0]
	}

	return start
}
