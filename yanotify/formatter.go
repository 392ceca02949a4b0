package yanotify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

// TimestampLayout renders message timestamps before dialect escaping.
const TimestampLayout = "2006-01-02 15:04:05"

const unknownErrorCode = "UNKNOWN"

// Formatter renders a Message into text for one markup dialect.
type Formatter interface {
	// Format renders the message with the severity template of the dialect.
	Format(msg *Message) (string, yaerrors.Error)

	// FormatWithTemplate renders the message with a caller-supplied template
	// instead of the severity default. The same placeholders apply.
	FormatWithTemplate(msg *Message, template string) (string, yaerrors.Error)

	// Dialect reports which dialect the formatter renders for.
	Dialect() yamarkup.Dialect
}

type templateFormatter struct {
	dialect   yamarkup.Dialect
	escaper   yamarkup.Escaper
	templates map[Severity]string
}

// NewFormatter creates a formatter with the default severity templates of the
// given dialect.
//
// Example usage:
//
//	formatter, err := yanotify.NewFormatter(yamarkup.DialectHTML)
func NewFormatter(dialect yamarkup.Dialect) (Formatter, yaerrors.Error) {
	return NewFormatterWithTemplates(dialect, nil)
}

// NewFormatterWithTemplates creates a formatter whose severity templates are
// the dialect defaults overridden by the given map. Severities absent from
// overrides keep the default template.
//
// Example usage:
//
//	formatter, err := yanotify.NewFormatterWithTemplates(
//	    yamarkup.DialectHTML,
//	    map[yanotify.Severity]string{
//	        yanotify.SeverityInfo: "<b>{{title}}</b><br/>{{body}}",
//	    },
//	)
func NewFormatterWithTemplates(
	dialect yamarkup.Dialect,
	overrides map[Severity]string,
) (Formatter, yaerrors.Error) {
	escaper, err := yamarkup.ForDialect(dialect)
	if err != nil {
		return nil, err.Wrap("failed to create formatter")
	}

	templates := make(map[Severity]string, len(htmlTemplates))
	for severity, template := range defaultTemplates(dialect) {
		templates[severity] = template
	}

	for severity, template := range overrides {
		if !severity.Valid() {
			return nil, yaerrors.FromString(
				http.StatusBadRequest,
				fmt.Sprintf("template override for unknown severity: %d", severity),
			)
		}

		if strings.TrimSpace(template) == "" {
			return nil, yaerrors.FromString(
				http.StatusBadRequest,
				fmt.Sprintf("template override for severity %s cannot be empty", severity),
			)
		}

		templates[severity] = template
	}

	return &templateFormatter{
		dialect:   dialect,
		escaper:   escaper,
		templates: templates,
	}, nil
}

func (f *templateFormatter) Format(msg *Message) (string, yaerrors.Error) {
	if msg == nil {
		return "", yaerrors.FromString(http.StatusBadRequest, "message cannot be nil")
	}

	return f.render(msg, f.templates[msg.Severity])
}

func (f *templateFormatter) FormatWithTemplate(
	msg *Message,
	template string,
) (string, yaerrors.Error) {
	if msg == nil {
		return "", yaerrors.FromString(http.StatusBadRequest, "message cannot be nil")
	}

	if strings.TrimSpace(template) == "" {
		return "", yaerrors.FromString(http.StatusBadRequest, "template cannot be empty")
	}

	return f.render(msg, template)
}

func (f *templateFormatter) Dialect() yamarkup.Dialect {
	return f.dialect
}

func (f *templateFormatter) render(msg *Message, template string) (string, yaerrors.Error) {
	if !msg.Severity.Valid() {
		return "", yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown severity: %d", msg.Severity),
		)
	}

	// Error notifications render context as a JSON code block so the error
	// payload survives copy-paste; other severities use key: value lines.
	var context string
	if msg.Severity == SeverityError {
		context = f.escaper.FormatContextAsJSON(msg.Context)
	} else {
		context = f.escaper.FormatContext(msg.Context)
	}

	replacer := strings.NewReplacer(
		placeholderTitle, f.escaper.EscapeText(msg.Title),
		placeholderBody, f.escaper.EscapeText(msg.Body),
		placeholderContext, context,
		placeholderTimestamp, f.escaper.FormatTimestamp(msg.Timestamp.Format(TimestampLayout)),
		placeholderErrorCode, f.errorCode(msg),
	)

	return f.insertActions(replacer.Replace(template), msg.Actions), nil
}

func (f *templateFormatter) errorCode(msg *Message) string {
	if code, ok := msg.Context["errorCode"]; ok && strings.TrimSpace(code) != "" {
		return f.escaper.EscapeCode(code)
	}

	return unknownErrorCode
}

// insertActions renders action links joined by " | " and places them right
// before the timestamp line, or at the end when the template has no
// timestamp marker.
func (f *templateFormatter) insertActions(text string, actions []Action) string {
	if len(actions) == 0 {
		return text
	}

	links := make([]string, 0, len(actions))
	for _, action := range actions {
		links = append(links, f.renderAction(action))
	}

	block := strings.Join(links, " | ")

	marker := timeMarkers[f.dialect]

	idx := strings.LastIndex(text, marker)
	if idx < 0 {
		return text + "\n\n" + block
	}

	if f.dialect == yamarkup.DialectHTML {
		return text[:idx] + block + "<br/>" + text[idx:]
	}

	return text[:idx] + block + "\n\n" + text[idx:]
}

func (f *templateFormatter) renderAction(action Action) string {
	if f.dialect == yamarkup.DialectHTML {
		return fmt.Sprintf(
			`<a href="%s">%s</a>`,
			f.escaper.EscapeText(action.URL),
			f.escaper.EscapeText(action.Label),
		)
	}

	// Markdown link targets are not escaped: Telegram reads the URL between
	// the parentheses verbatim.
	return fmt.Sprintf("[%s](%s)", f.escaper.EscapeText(action.Label), action.URL)
}
