package public

import (
	"fmt"
	"html"
	"strings"

	"github.com/mvdveer/horeca-advies-services/api/internal/interfaces/http/common"
)

// emailField is one labelled line in the owner notification. Fields with an
// empty value are skipped entirely.
type emailField struct {
	Label string
	Value string
}

// buildBodies renders the plain-text and HTML variants of a notification.
// Values arrive already truncated; the HTML variant additionally escapes
// them so pasted markup cannot break or inject into the message.
func buildBodies(title string, fields []emailField) (string, string) {
	var text strings.Builder
	text.WriteString(title)
	text.WriteString("\n\n")

	var body strings.Builder
	body.WriteString("<h2>")
	body.WriteString(html.EscapeString(title))
	body.WriteString("</h2>\n<table>\n")

	for _, field := range fields {
		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}
		text.WriteString(field.Label)
		text.WriteString(": ")
		text.WriteString(value)
		text.WriteString("\n")

		body.WriteString("<tr><th align=\"left\">")
		body.WriteString(html.EscapeString(field.Label))
		body.WriteString("</th><td>")
		body.WriteString(strings.ReplaceAll(html.EscapeString(value), "\n", "<br>"))
		body.WriteString("</td></tr>\n")
	}
	body.WriteString("</table>\n")

	return text.String(), body.String()
}

// short bounds a short user-supplied field.
func short(value string) string {
	return common.TruncateRunes(value, common.MaxShortFieldRunes)
}

// long bounds the main free-text message.
func long(value string) string {
	return common.TruncateRunes(value, common.MaxMessageRunes)
}

// subjectLine bounds a derived subject.
func subjectLine(format string, args ...any) string {
	return common.TruncateRunes(fmt.Sprintf(format, args...), common.MaxSubjectRunes)
}

// shortRef returns the compact form of a reference id used in subjects.
func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
