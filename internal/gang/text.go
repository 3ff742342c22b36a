package gang

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML maps the five HTML-sensitive characters to their entities. Used
// before any record field is interpolated into exported markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// SanitizeText strips control characters from user-supplied single-line
// fields so a crafted record cannot inject terminal escape sequences.
func SanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
