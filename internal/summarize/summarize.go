// Package summarize condenses article HTML into a short list of bullet
// points by extracting the highest scoring sentences.
//
// The pipeline is clean -> segment -> score -> select -> format -> dedupe.
// A summary is either empty or holds between MinPoints and MaxPoints
// sentences, in document order, with no two near-duplicates.
package summarize

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/clean"
	"github.com/hyperifyio/gosummarize/internal/format"
	"github.com/hyperifyio/gosummarize/internal/segment"
)

// Result is the outcome of one summarization.
type Result struct {
	Title  string      `json:"title,omitempty"`
	Points []string    `json:"points"`
	Stage  Stage       `json:"stage"`
	Pool   []Candidate `json:"-"`
}

// Empty reports whether the document was not summarizable.
func (r Result) Empty() bool { return len(r.Points) == 0 }

// Summarizer runs the pipeline with a fixed segmenter and options. It holds
// no mutable state and is safe for concurrent use.
type Summarizer struct {
	seg segment.Segmenter
	opt Options
}

// New returns a Summarizer. A nil segmenter selects punctuation splitting.
func New(seg segment.Segmenter, opt Options) *Summarizer {
	if seg == nil {
		seg = segment.Regex{}
	}
	return &Summarizer{seg: seg, opt: opt.withDefaults()}
}

// Options returns the effective options.
func (s *Summarizer) Options() Options { return s.opt }

// Summarize returns the bullet points for htmlContent: either none, or
// between MinPoints and MaxPoints formatted sentences.
func (s *Summarizer) Summarize(htmlContent string) []string {
	return s.Run(htmlContent).Points
}

// Run summarizes htmlContent and reports where the pipeline stopped.
func (s *Summarizer) Run(htmlContent string) Result {
	doc := clean.FromHTML(htmlContent)
	res := s.RunText(doc.Text)
	res.Title = doc.Title
	return res
}

// RunText summarizes already cleaned plain text.
func (s *Summarizer) RunText(text string) Result {
	sel := Select(text, s.seg, s.opt)
	if len(sel.Chosen) == 0 {
		log.Debug().Str("stage", string(sel.Stage)).Int("pool", len(sel.Pool)).Msg("nothing to summarize")
		return Result{Points: []string{}, Stage: sel.Stage, Pool: sel.Pool}
	}

	points := s.finish(sel)
	if len(points) == 0 {
		log.Debug().Int("pool", len(sel.Pool)).Msg("too few distinct sentences after deduplication")
		return Result{Points: []string{}, Stage: StageDeduplicating, Pool: sel.Pool}
	}
	log.Debug().Int("pool", len(sel.Pool)).Int("points", len(points)).Msg("summarized")
	return Result{Points: points, Stage: StageDone, Pool: sel.Pool}
}

type point struct {
	index int
	text  string
}

// finish formats and deduplicates the chosen sentences and applies the
// shortfall policy when too few distinct sentences remain.
func (s *Summarizer) finish(sel Selection) []string {
	d := format.NewDeduper(s.opt.Similarity)
	kept := make([]point, 0, s.opt.MaxPoints)
	for _, c := range sel.Chosen {
		if len(kept) >= s.opt.MaxPoints {
			break
		}
		if f := format.Sentence(c.Text); d.Accept(f) {
			kept = append(kept, point{c.Index, f})
		}
	}

	if len(kept) < s.opt.MinPoints {
		switch s.opt.Shortfall {
		case ShortfallAccept:
		case ShortfallEmpty:
			return nil
		default:
			for _, c := range sel.Reserve {
				if len(kept) >= s.opt.MinPoints {
					break
				}
				if f := format.Sentence(c.Text); d.Accept(f) {
					kept = append(kept, point{c.Index, f})
				}
			}
			if len(kept) < s.opt.MinPoints {
				return nil
			}
			sortPoints(kept)
		}
	}

	out := make([]string, len(kept))
	for i, p := range kept {
		out[i] = p.text
	}
	return out
}

func sortPoints(ps []point) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].index < ps[j].index })
}
