package summarize

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/gosummarize/internal/format"
)

// Defaults for Options.
const (
	DefaultMinPoints        = 5
	DefaultMaxPoints        = 10
	DefaultMinContentChars  = 100
	DefaultPoolFactor       = 5
	DefaultMinSentenceChars = 20
	DefaultMaxSentenceChars = 300
)

// Shortfall decides what happens when deduplication leaves fewer than
// MinPoints sentences.
type Shortfall string

const (
	// ShortfallTopUp refills from the best remaining candidates and returns
	// an empty summary if that is still not enough.
	ShortfallTopUp Shortfall = "topup"
	// ShortfallAccept returns the smaller summary as is.
	ShortfallAccept Shortfall = "accept"
	// ShortfallEmpty returns an empty summary.
	ShortfallEmpty Shortfall = "empty"
)

// ParseShortfall accepts the names of the Shortfall policies; "" selects
// ShortfallTopUp.
func ParseShortfall(s string) (Shortfall, error) {
	switch p := Shortfall(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ShortfallTopUp, nil
	case ShortfallTopUp, ShortfallAccept, ShortfallEmpty:
		return p, nil
	default:
		return "", fmt.Errorf("unknown shortfall policy %q (want topup, accept or empty)", s)
	}
}

// Options bounds the summary. Zero fields take the defaults above.
type Options struct {
	// MinPoints and MaxPoints bound a non-empty summary.
	MinPoints int
	MaxPoints int
	// MinContentChars is the shortest cleaned text worth summarizing.
	MinContentChars int
	// PoolFactor caps the candidate pool at MaxPoints*PoolFactor sentences.
	PoolFactor int
	// Candidate sentences must be strictly longer than MinSentenceChars and
	// strictly shorter than MaxSentenceChars.
	MinSentenceChars int
	MaxSentenceChars int
	// Similarity is the Jaccard threshold above which sentences are
	// near-duplicates.
	Similarity float64
	Shortfall  Shortfall
}

// DefaultOptions returns the standard bounds: 5 to 10 points from a pool of
// at most 50 sentences.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.MinPoints <= 0 {
		o.MinPoints = DefaultMinPoints
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = DefaultMaxPoints
	}
	if o.MaxPoints < o.MinPoints {
		o.MaxPoints = o.MinPoints
	}
	if o.MinContentChars <= 0 {
		o.MinContentChars = DefaultMinContentChars
	}
	if o.PoolFactor <= 0 {
		o.PoolFactor = DefaultPoolFactor
	}
	if o.MinSentenceChars <= 0 {
		o.MinSentenceChars = DefaultMinSentenceChars
	}
	if o.MaxSentenceChars <= 0 {
		o.MaxSentenceChars = DefaultMaxSentenceChars
	}
	if o.Similarity <= 0 || o.Similarity > 1 {
		o.Similarity = format.DefaultSimilarity
	}
	if o.Shortfall == "" {
		o.Shortfall = ShortfallTopUp
	}
	return o
}

// Fingerprint identifies the options for cache keys.
func (o Options) Fingerprint() string {
	o = o.withDefaults()
	return fmt.Sprintf("min=%d max=%d content=%d pool=%d len=%d-%d sim=%g shortfall=%s",
		o.MinPoints, o.MaxPoints, o.MinContentChars, o.PoolFactor,
		o.MinSentenceChars, o.MaxSentenceChars, o.Similarity, o.Shortfall)
}
