package clean

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Document is the plain-text view of an HTML page used by the summarizer.
type Document struct {
	Title string
	Text  string
}

var (
	citationRe = regexp.MustCompile(`\[[0-9]+\]`)
	parenURLRe = regexp.MustCompile(`\(https?://[^\s]+\)`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// allowPolicy keeps only the container elements that carry article prose.
// Every other element is replaced by its text content.
var allowPolicy = newAllowPolicy()

func newAllowPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedElements...)
	p.AddSpaceWhenStrippingTag(true)
	return p
}

// Text returns the cleaned plain text of input, or "" when the input cannot
// be parsed.
func Text(input string) string {
	return FromHTML(input).Text
}

// FromHTML strips structural noise (scripts, navigation, ads, comment and
// social widgets) from input and returns the remaining visible text with
// whitespace collapsed and citation markers removed.
func FromHTML(input string) (doc Document) {
	// The parser and sanitizer should not panic, but a malformed page must
	// never escape as anything other than empty text.
	defer func() {
		if r := recover(); r != nil {
			doc = Document{}
		}
	}()

	if strings.TrimSpace(input) == "" {
		return Document{}
	}
	qd, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return Document{}
	}
	title := collapse(qd.Find("head title").First().Text())

	removeNoise(qd.Selection)

	body := qd.Find("body").First()
	if body.Length() == 0 {
		body = qd.Selection
	}
	markup, err := goquery.OuterHtml(body)
	if err != nil {
		return Document{}
	}
	sanitized := allowPolicy.Sanitize(markup)

	root, err := html.Parse(strings.NewReader(sanitized))
	if err != nil || root == nil {
		return Document{}
	}
	var b strings.Builder
	collectText(&b, root)
	return Document{Title: title, Text: Normalize(b.String())}
}

// removeNoise drops noise tags and any element whose class or id looks like
// an ad, banner, popup, comment thread or social widget.
func removeNoise(sel *goquery.Selection) {
	sel.Find(strings.Join(NoiseTags, ", ")).Remove()
	sel.Find("[class], [id]").Each(func(_ int, s *goquery.Selection) {
		// Page-level classes such as "has-sidebar" describe the layout, not
		// a widget; dropping the root would drop the article too.
		if name := goquery.NodeName(s); name == "html" || name == "body" {
			return
		}
		if IsNoise(s.AttrOr("class", "")) || IsNoise(s.AttrOr("id", "")) {
			s.Remove()
		}
	})
}

// collectText walks the sanitized tree and writes text nodes, separating
// block containers with newlines so adjacent paragraphs never fuse.
func collectText(b *strings.Builder, n *html.Node) {
	block := n.Type == html.ElementNode && isBlock(n.Data)
	if block {
		b.WriteByte('\n')
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

func isBlock(tag string) bool {
	for _, t := range AllowedElements {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Normalize applies NFKC, collapses whitespace runs, removes numeric
// citation markers like [12] and parenthesized URLs, and trims the result.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = collapse(s)
	s = citationRe.ReplaceAllString(s, "")
	s = parenURLRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
