package yanotify

import "github.com/YaCodeDev/GoYaTgNotify/yamarkup"

// Placeholders recognised in severity templates. {{errorCode}} is filled from
// the message context's "errorCode" key for SeverityError, "UNKNOWN" when
// absent.
const (
	placeholderTitle     = "{{title}}"
	placeholderBody      = "{{body}}"
	placeholderContext   = "{{context}}"
	placeholderTimestamp = "{{timestamp}}"
	placeholderErrorCode = "{{errorCode}}"
)

// timeMarkers locate the timestamp line per dialect so action links can be
// inserted right before it.
var timeMarkers = map[yamarkup.Dialect]string{
	yamarkup.DialectHTML:       "<i>Time:</i>",
	yamarkup.DialectMarkdown:   "_Time:_",
	yamarkup.DialectMarkdownV2: "_Time:_",
}

var htmlTemplates = map[Severity]string{
	SeverityDebug: "<b>🐞 [DEBUG]</b> <b>{{title}}</b><br/>" +
		"{{body}}<br/><br/>" +
		"<pre><code>{{context}}</code></pre>" +
		"<i>Time:</i> <code>{{timestamp}}</code>",

	SeverityInfo: "<b>ℹ️ [INFO]</b> <b>{{title}}</b><br/>" +
		"{{body}}<br/><br/>" +
		"<blockquote><b>Context</b><br/>{{context}}</blockquote>" +
		"<i>Time:</i> <code>{{timestamp}}</code>",

	SeverityWarning: "<b>⚠️ [WARNING]</b> <b>{{title}}</b><br/>" +
		"<u>{{body}}</u><br/><br/>" +
		"<blockquote expandable><b>Context</b><br/>{{context}}</blockquote>" +
		"<i>Time:</i> <code>{{timestamp}}</code>",

	SeverityError: "<b>🛑 [ERROR]</b> <b>{{title}}</b><br/>" +
		"<code>{{errorCode}}</code>: {{body}}<br/><br/>" +
		"<pre><code class=\"language-json\">{{context}}</code></pre>" +
		"<i>Time:</i> <code>{{timestamp}}</code>",

	SeverityCritical: "<b>🚨 [CRITICAL]</b> <b>{{title}}</b><br/>" +
		"{{body}}<br/><br/>" +
		"<blockquote><b>Immediate Action Required</b><br/>{{context}}</blockquote>" +
		"<i>Time:</i> <code>{{timestamp}}</code>",
}

var markdownTemplates = map[Severity]string{
	SeverityDebug: "🐞 *\\[DEBUG\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		"```\n{{context}}\n```\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityInfo: "ℹ️ *\\[INFO\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		"*Context*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityWarning: "⚠️ *\\[WARNING\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		"*Context*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityError: "🛑 *\\[ERROR\\]* *{{title}}*\n" +
		"`{{errorCode}}`: {{body}}\n\n" +
		"```json\n{{context}}\n```\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityCritical: "🚨 *\\[CRITICAL\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		"*Immediate Action Required*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",
}

// MarkdownV2 templates differ from legacy Markdown by using quote blocks,
// which only MarkdownV2 supports.
var markdownV2Templates = map[Severity]string{
	SeverityDebug: "🐞 *\\[DEBUG\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		"```\n{{context}}\n```\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityInfo: "ℹ️ *\\[INFO\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		">*Context*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityWarning: "⚠️ *\\[WARNING\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		">*Context*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityError: "🛑 *\\[ERROR\\]* *{{title}}*\n" +
		"`{{errorCode}}`: {{body}}\n\n" +
		"```json\n{{context}}\n```\n\n" +
		"_Time:_ `{{timestamp}}`",

	SeverityCritical: "🚨 *\\[CRITICAL\\]* *{{title}}*\n" +
		"{{body}}\n\n" +
		">*Immediate Action Required*\n{{context}}\n\n" +
		"_Time:_ `{{timestamp}}`",
}

func defaultTemplates(dialect yamarkup.Dialect) map[Severity]string {
	switch dialect {
	case yamarkup.DialectHTML:
		return htmlTemplates
	case yamarkup.DialectMarkdown:
		return markdownTemplates
	case yamarkup.DialectMarkdownV2:
		return markdownV2Templates
	default:
		return nil
	}
}
