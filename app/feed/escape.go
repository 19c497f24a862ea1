package feed

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Text is raw source text. It is escaped exactly once when written out.
type Text string

// Fragment is text that already holds valid entity references and is
// written out verbatim.
type Fragment string

var markupReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces markup-special characters with entity references. Existing
// entity references are escaped again: "&amp;" becomes "&amp;amp;".
func Escape(s string) Fragment {
	valid, _, err := transform.String(runes.ReplaceIllFormed(), s)
	if err != nil {
		valid = strings.ToValidUTF8(s, "�")
	}
	return Fragment(markupReplacer.Replace(valid))
}

func (t Text) Markup() Fragment {
	return Escape(string(t))
}

func (f Fragment) Markup() Fragment {
	return f
}

// Blank lines mark paragraph breaks in WordPress bodies. Both LF and CRLF
// line endings are accepted.
var blankLine = regexp.MustCompile(`\r?\n\r?\n`)

const paragraphBreak = "\r\n&lt;br /&gt;&lt;br /&gt;\r\n"

// escapeBody escapes a post body and turns each blank line into an escaped
// double line break.
func escapeBody(body string) Fragment {
	return Fragment(blankLine.ReplaceAllLiteralString(string(Escape(body)), paragraphBreak))
}
