package yamarkup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

func TestForDialect_UnknownDialectFails(t *testing.T) {
	t.Parallel()

	_, err := yamarkup.ForDialect(yamarkup.Dialect(42))

	assert.NotNil(t, err)
}

func TestHTMLEscapeText_Works(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
	require.Nil(t, err)

	assert.Equal(t, "a &amp; b", esc.EscapeText("a & b"))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", esc.EscapeText("<b>bold</b>"))
	assert.Equal(t, "&quot;quoted&quot;", esc.EscapeText(`"quoted"`))
	assert.Equal(t, "", esc.EscapeText(""))
}

func TestHTMLEscapeText_DoesNotDoubleEscape(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
	require.Nil(t, err)

	// The ampersand of an already produced entity must come from the input,
	// never from a previous replacement.
	assert.Equal(t, "&amp;lt;", esc.EscapeText("&lt;"))
}

func TestMarkdownEscapeText_Works(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdown)
	require.Nil(t, err)

	assert.Equal(t, `Hello\_World`, esc.EscapeText("Hello_World"))
	assert.Equal(t, `\*bold\*`, esc.EscapeText("*bold*"))
	assert.Equal(t, `\[link\]\(url\)`, esc.EscapeText("[link](url)"))
}

func TestMarkdownEscapeText_BackslashFirst(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdown)
	require.Nil(t, err)

	// An input backslash doubles; the escape backslash inserted for `*` is
	// not touched again.
	assert.Equal(t, `\\\*`, esc.EscapeText(`\*`))
}

func TestMarkdownV2EscapeText_FullReservedSet(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdownV2)
	require.Nil(t, err)

	assert.Equal(
		t,
		"\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!",
		esc.EscapeText("_*[]()~`>#+-=|{}.!"),
	)
}

func TestMarkdownV2EscapeText_LeavesPlainTextAlone(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdownV2)
	require.Nil(t, err)

	assert.Equal(t, "hello world", esc.EscapeText("hello world"))
}

func TestEscapeCode_MarkdownDialects(t *testing.T) {
	t.Parallel()

	for _, dialect := range []yamarkup.Dialect{
		yamarkup.DialectMarkdown,
		yamarkup.DialectMarkdownV2,
	} {
		esc, err := yamarkup.ForDialect(dialect)
		require.Nil(t, err)

		assert.Equal(t, "ERR\\`503", esc.EscapeCode("ERR`503"), "dialect %s", dialect)
		assert.Equal(t, `C:\\tmp`, esc.EscapeCode(`C:\tmp`), "dialect %s", dialect)
		// The rest of the reserved set stays literal inside code.
		assert.Equal(t, "a_b.c", esc.EscapeCode("a_b.c"), "dialect %s", dialect)
	}
}

func TestEscapeCode_HTMLStillEscapesEntities(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
	require.Nil(t, err)

	assert.Equal(t, "x &lt; y", esc.EscapeCode("x < y"))
}

func TestFormatContext_SortedAndEscaped(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdownV2)
	require.Nil(t, err)

	got := esc.FormatContext(map[string]string{
		"host":    "db_primary",
		"attempt": "3",
	})

	assert.Equal(t, "attempt: 3\nhost: db\\_primary", got)
}

func TestFormatContext_EmptyMap(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
	require.Nil(t, err)

	assert.Equal(t, "", esc.FormatContext(nil))
	assert.Equal(t, "", esc.FormatContext(map[string]string{}))
}

func TestFormatContextAsJSON_Works(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectHTML)
	require.Nil(t, err)

	got := esc.FormatContextAsJSON(map[string]string{
		"service": "billing",
		"code":    `<503>`,
	})

	assert.Equal(t, `{"code": "&lt;503&gt;", "service": "billing"}`, got)
}

func TestFormatTimestamp_Works(t *testing.T) {
	t.Parallel()

	esc, err := yamarkup.ForDialect(yamarkup.DialectMarkdownV2)
	require.Nil(t, err)

	assert.Equal(t, "2026\\-01\\-02 15:04:05", esc.FormatTimestamp("2026-01-02 15:04:05"))
}
