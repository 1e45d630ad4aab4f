package format

import (
	"regexp"
	"strings"
)

// DefaultSimilarity is the Jaccard similarity above which two sentences are
// treated as near-duplicates.
const DefaultSimilarity = 0.7

// minTokenLen drops short function words from token sets.
const minTokenLen = 4

var nonWordRe = regexp.MustCompile(`\W+`)

// TokenSet is the set of significant lowercase words in a sentence.
type TokenSet map[string]struct{}

// Tokens splits s on non-word runs and keeps lowercase tokens longer than
// three characters.
func Tokens(s string) TokenSet {
	set := TokenSet{}
	for _, tok := range nonWordRe.Split(strings.ToLower(s), -1) {
		if len(tok) >= minTokenLen {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Jaccard returns |a∩b| / |a∪b|. Two empty sets have similarity 0.
func Jaccard(a, b TokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// Deduper accepts sentences greedily, rejecting any whose similarity with an
// already accepted sentence exceeds Threshold.
type Deduper struct {
	Threshold float64
	accepted  []TokenSet
}

// NewDeduper returns a Deduper; a threshold outside (0,1] selects
// DefaultSimilarity.
func NewDeduper(threshold float64) *Deduper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarity
	}
	return &Deduper{Threshold: threshold}
}

// Accept records s and returns true unless it is empty or a near-duplicate
// of a sentence accepted earlier.
func (d *Deduper) Accept(s string) bool {
	if s == "" {
		return false
	}
	toks := Tokens(s)
	for _, prev := range d.accepted {
		if Jaccard(toks, prev) > d.Threshold {
			return false
		}
	}
	d.accepted = append(d.accepted, toks)
	return true
}

// Len reports how many sentences were accepted.
func (d *Deduper) Len() int { return len(d.accepted) }

// Dedupe keeps the first of every group of near-duplicate sentences,
// preserving order, and truncates the result to limit entries when limit > 0.
func Dedupe(sentences []string, limit int, threshold float64) []string {
	d := NewDeduper(threshold)
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if d.Accept(s) {
			out = append(out, s)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
