package yamarkup

import "strings"

// The replacers run in a single pass, so characters inserted by one rule are
// never re-escaped by another. Backslash handling in the Markdown dialects
// relies on this: input backslashes are doubled, inserted ones are not.
var (
	htmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)

	markdownReplacer = strings.NewReplacer(
		`\`, `\\`,
		"_", `\_`,
		"*", `\*`,
		"[", `\[`,
		"]", `\]`,
		"(", `\(`,
		")", `\)`,
	)

	markdownV2Replacer = strings.NewReplacer(
		`\`, `\\`,
		"_", `\_`,
		"*", `\*`,
		"[", `\[`,
		"]", `\]`,
		"(", `\(`,
		")", `\)`,
		"~", `\~`,
		"`", "\\`",
		">", `\>`,
		"#", `\#`,
		"+", `\+`,
		"-", `\-`,
		"=", `\=`,
		"|", `\|`,
		"{", `\{`,
		"}", `\}`,
		".", `\.`,
		"!", `\!`,
	)

	codeReplacer = strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
	)
)

// htmlEscaper escapes for Telegram's HTML parse mode: the four characters
// & < > " become entities, ampersand handled in the same pass so entities
// are never double-escaped.
type htmlEscaper struct{}

func (htmlEscaper) EscapeText(input string) string {
	return htmlReplacer.Replace(input)
}

// EscapeCode is identical to EscapeText: entities stay significant inside
// <code> and <pre> tags.
func (htmlEscaper) EscapeCode(input string) string {
	return htmlReplacer.Replace(input)
}

func (htmlEscaper) FormatContext(context map[string]string) string {
	return formatContext(context, htmlReplacer.Replace)
}

func (htmlEscaper) FormatContextAsJSON(context map[string]string) string {
	return formatContextAsJSON(context, htmlReplacer.Replace)
}

func (htmlEscaper) FormatTimestamp(timestamp string) string {
	return htmlReplacer.Replace(timestamp)
}

func (htmlEscaper) Dialect() Dialect {
	return DialectHTML
}

// markdownEscaper escapes for the legacy Markdown parse mode: backslash plus
// the six structural characters _ * [ ] ( ).
type markdownEscaper struct{}

func (markdownEscaper) EscapeText(input string) string {
	return markdownReplacer.Replace(input)
}

func (markdownEscaper) EscapeCode(input string) string {
	return codeReplacer.Replace(input)
}

func (markdownEscaper) FormatContext(context map[string]string) string {
	return formatContext(context, markdownReplacer.Replace)
}

func (markdownEscaper) FormatContextAsJSON(context map[string]string) string {
	return formatContextAsJSON(context, markdownReplacer.Replace)
}

func (markdownEscaper) FormatTimestamp(timestamp string) string {
	return markdownReplacer.Replace(timestamp)
}

func (markdownEscaper) Dialect() Dialect {
	return DialectMarkdown
}

// markdownV2Escaper escapes the full MarkdownV2 reserved set.
type markdownV2Escaper struct{}

func (markdownV2Escaper) EscapeText(input string) string {
	return markdownV2Replacer.Replace(input)
}

func (markdownV2Escaper) EscapeCode(input string) string {
	return codeReplacer.Replace(input)
}

func (markdownV2Escaper) FormatContext(context map[string]string) string {
	return formatContext(context, markdownV2Replacer.Replace)
}

func (markdownV2Escaper) FormatContextAsJSON(context map[string]string) string {
	return formatContextAsJSON(context, markdownV2Replacer.Replace)
}

func (markdownV2Escaper) FormatTimestamp(timestamp string) string {
	return markdownV2Replacer.Replace(timestamp)
}

func (markdownV2Escaper) Dialect() Dialect {
	return DialectMarkdownV2
}
