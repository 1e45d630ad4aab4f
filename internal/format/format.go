package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxChars is the longest formatted sentence; longer ones are cut to
	// MaxChars-3 runes plus an ellipsis.
	MaxChars = 200
	ellipsis = "..."
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	templateRe = regexp.MustCompile(`\{\{[^}]*\}\}`)
	citationRe = regexp.MustCompile(`\[[0-9]+\]`)
)

// entityReplacer decodes only the entities that survive extraction in
// practice; anything else is left verbatim.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Sentence turns a raw candidate into a bullet point: residual entities,
// tags, template markers and citations are removed, long sentences are
// truncated, the first letter is capitalised and terminal punctuation is
// guaranteed. It returns "" when nothing printable is left.
func Sentence(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = tagRe.ReplaceAllString(s, "")
	s = templateRe.ReplaceAllString(s, "")
	s = citationRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) > MaxChars {
		r := []rune(s)
		s = string(r[:MaxChars-len(ellipsis)]) + ellipsis
	}
	if first, size := utf8.DecodeRuneInString(s); unicode.IsLower(first) {
		s = string(unicode.ToUpper(first)) + s[size:]
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
	default:
		s += "."
	}
	return s
}
