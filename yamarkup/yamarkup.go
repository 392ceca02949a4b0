// Package yamarkup provides escaping and context formatting for the three
// Telegram markup dialects (HTML, legacy Markdown and MarkdownV2). Escaping
// is pure string work: no logging, no I/O, deterministic output.
//
// Example usage:
//
//	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdownV2)
//	if err != nil {
//	    return err.Wrap("failed to resolve escaper")
//	}
//
//	safe := esc.EscapeText("price: 3.50 (approx)")
package yamarkup

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// Dialect identifies a Telegram markup dialect.
type Dialect uint8

const (
	DialectHTML Dialect = iota
	DialectMarkdown
	DialectMarkdownV2
)

func (d Dialect) String() string {
	switch d {
	case DialectHTML:
		return "HTML"
	case DialectMarkdown:
		return "Markdown"
	case DialectMarkdownV2:
		return "MarkdownV2"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the known dialects.
func (d Dialect) Valid() bool {
	return d == DialectHTML || d == DialectMarkdown || d == DialectMarkdownV2
}

// Escaper neutralises characters that carry meaning in one markup dialect and
// renders context maps and timestamps for that dialect.
//
// All methods treat the empty string as a valid input and return the empty
// string unchanged.
type Escaper interface {
	// EscapeText escapes the full reserved set of the dialect so the input
	// renders literally in regular message text.
	//
	// Example usage:
	//
	//   esc.EscapeText("Hello_World") // "Hello\_World" in Markdown dialects
	EscapeText(input string) string

	// EscapeCode escapes the reduced set valid inside inline code or code
	// blocks. For HTML this is the same entity escaping as EscapeText, since
	// entities stay significant inside <code> tags.
	EscapeCode(input string) string

	// FormatContext renders a context map as "key: value" lines with both
	// keys and values escaped. Keys are sorted, so the output is
	// deterministic. An empty map yields "".
	FormatContext(context map[string]string) string

	// FormatContextAsJSON renders a context map as a compact JSON-like
	// object with escaped keys and values, sorted by key.
	//
	// Example usage:
	//
	//   esc.FormatContextAsJSON(map[string]string{"host": "db-1"})
	//   // {"host": "db-1"}
	FormatContextAsJSON(context map[string]string) string

	// FormatTimestamp escapes a pre-rendered timestamp string.
	FormatTimestamp(timestamp string) string

	// Dialect reports which dialect this escaper serves.
	Dialect() Dialect
}

// ForDialect returns the Escaper implementation for the given dialect.
//
// Example usage:
//
//	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
func ForDialect(d Dialect) (Escaper, yaerrors.Error) {
	switch d {
	case DialectHTML:
		return htmlEscaper{}, nil
	case DialectMarkdown:
		return markdownEscaper{}, nil
	case DialectMarkdownV2:
		return markdownV2Escaper{}, nil
	default:
		return nil, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown markup dialect: %d", d),
		)
	}
}
