// Package score assigns each candidate sentence a composite importance score
// from its position, length, word count, numeric content and penalties for
// markup residue or navigation boilerplate.
package score

import (
	"strings"
	"unicode/utf8"
)

// Weights of the positive sub-scores.
const (
	PositionWeight  = 0.4
	LengthWeight    = 0.3
	WordCountWeight = 0.2
	NumericWeight   = 0.1
)

const (
	// NumericBonus is awarded before weighting when a sentence has a digit.
	NumericBonus = 0.2
	// ArtifactPenalty applies once when any ArtifactMarkers entry occurs.
	ArtifactPenalty = -0.5
	// BoilerplatePenalty applies once when any BoilerplatePhrases entry occurs.
	BoilerplatePenalty = -0.5
)

// ArtifactMarkers betray leftover markup, template syntax or script output.
// Matched case-sensitively.
var ArtifactMarkers = []string{
	"<", ">", "&nbsp;", "&lt;", "&gt;", "javascript:",
	"{{", "}}", "undefined", "null,", "NaN",
}

// BoilerplatePhrases mark navigation and legal boilerplate. Matched
// case-insensitively; entries must be lowercase.
var BoilerplatePhrases = []string{
	"click here", "read more", "learn more", "sign up", "log in",
	"subscribe", "cookie", "privacy policy", "terms of service", "copyright",
}

// Breakdown holds the unweighted sub-scores and the penalties of a sentence.
type Breakdown struct {
	Position    float64
	Length      float64
	WordCount   float64
	Numeric     float64
	Artifact    float64
	Boilerplate float64
}

// Total combines the sub-scores into the final score.
func (b Breakdown) Total() float64 {
	return PositionWeight*b.Position +
		LengthWeight*b.Length +
		WordCountWeight*b.WordCount +
		NumericWeight*b.Numeric +
		b.Artifact +
		b.Boilerplate
}

// Score returns the composite score of sentence at index among total
// candidates.
func Score(sentence string, index, total int) float64 {
	return Explain(sentence, index, total).Total()
}

// Explain returns the individual sub-scores behind Score.
func Explain(sentence string, index, total int) Breakdown {
	b := Breakdown{
		Position:  Position(index, total),
		Length:    LengthBucket(utf8.RuneCountInString(sentence)),
		WordCount: WordCountBucket(len(strings.Fields(sentence))),
	}
	if HasDigit(sentence) {
		b.Numeric = NumericBonus
	}
	if HasArtifact(sentence) {
		b.Artifact = ArtifactPenalty
	}
	if HasBoilerplate(sentence) {
		b.Boilerplate = BoilerplatePenalty
	}
	return b
}

// Position favours earlier sentences: 1 for the first, approaching 0 for
// the last.
func Position(index, total int) float64 {
	if total < 1 {
		total = 1
	}
	return 1 - float64(index)/float64(total)
}

// LengthBucket maps a character count to a sub-score.
func LengthBucket(chars int) float64 {
	switch {
	case chars < 20:
		return 0.3
	case chars <= 50:
		return 0.7
	case chars <= 150:
		return 1.0
	case chars <= 200:
		return 0.7
	default:
		return 0.4
	}
}

// WordCountBucket maps a word count to a sub-score.
func WordCountBucket(words int) float64 {
	switch {
	case words < 5:
		return 0.3
	case words <= 10:
		return 0.7
	case words <= 20:
		return 1.0
	case words <= 30:
		return 0.7
	default:
		return 0.4
	}
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return strings.IndexAny(s, "0123456789") >= 0
}

func HasArtifact(s string) bool {
	return containsAny(s, ArtifactMarkers)
}

func HasBoilerplate(s string) bool {
	return containsAny(strings.ToLower(s), BoilerplatePhrases)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
