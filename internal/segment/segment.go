package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
)

// Segmenter splits cleaned text into candidate sentences in document order.
// Implementations must be safe for concurrent use.
type Segmenter interface {
	Segment(text string) []string
}

// Regex splits immediately after '.', '!' or '?' when the terminator is
// followed by whitespace. Abbreviations and decimals followed by a space are
// mis-split; that is a known limitation of the fallback.
type Regex struct{}

func (Regex) Segment(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		next, _ := utf8.DecodeRuneInString(text[i:])
		if i >= len(text) || !unicode.IsSpace(next) {
			continue
		}
		out = appendTrimmed(out, text[start:i])
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		start = i
	}
	return appendTrimmed(out, text[start:])
}

// tokenizer is the part of the Punkt tokenizer used here.
type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Punkt delegates boundary detection to a trained Punkt model.
type Punkt struct {
	tok tokenizer
}

func (p *Punkt) Segment(text string) []string {
	if p == nil || p.tok == nil {
		return Regex{}.Segment(text)
	}
	var out []string
	for _, s := range p.tok.Tokenize(text) {
		if s == nil {
			continue
		}
		out = appendTrimmed(out, s.Text)
	}
	return out
}

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}
