package summarize

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperifyio/gosummarize/internal/score"
	"github.com/hyperifyio/gosummarize/internal/segment"
)

// Stage names the pipeline step that produced a Result. Every stage other
// than StageDone means the summary is empty.
type Stage string

const (
	StageCleaning      Stage = "cleaning"
	StageSegmenting    Stage = "segmenting"
	StageScoring       Stage = "scoring"
	StageSelecting     Stage = "selecting"
	StageDeduplicating Stage = "deduplicating"
	StageDone          Stage = "done"
)

// Candidate is a sentence from the pool with its position in document order
// and its score.
type Candidate struct {
	Text  string  `json:"text"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Selection is the outcome of Select.
type Selection struct {
	// Chosen holds at most MaxPoints candidates in document order.
	Chosen []Candidate
	// Reserve holds the remaining positive candidates, best first.
	Reserve []Candidate
	// Pool holds every scored candidate in document order.
	Pool  []Candidate
	Stage Stage
}

// Select segments cleaned text, scores the candidate sentences and picks the
// best of them, restoring document order. When Chosen is empty, Stage names
// the step at which the text was found not summarizable.
func Select(text string, seg segment.Segmenter, opt Options) Selection {
	opt = opt.withDefaults()
	if seg == nil {
		seg = segment.Regex{}
	}
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) < opt.MinContentChars {
		return Selection{Stage: StageCleaning}
	}

	poolCap := opt.MaxPoints * opt.PoolFactor
	pool := make([]Candidate, 0, poolCap)
	for _, s := range seg.Segment(text) {
		n := utf8.RuneCountInString(s)
		if n <= opt.MinSentenceChars || n >= opt.MaxSentenceChars {
			continue
		}
		pool = append(pool, Candidate{Text: s, Index: len(pool)})
		if len(pool) >= poolCap {
			break
		}
	}
	if len(pool) == 0 {
		return Selection{Stage: StageSegmenting}
	}

	positive := make([]Candidate, 0, len(pool))
	for i := range pool {
		pool[i].Score = score.Score(pool[i].Text, pool[i].Index, len(pool))
		if pool[i].Score > 0 {
			positive = append(positive, pool[i])
		}
	}
	if len(positive) == 0 {
		return Selection{Pool: pool, Stage: StageScoring}
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Score > positive[j].Score
	})
	top := positive
	if len(top) > opt.MaxPoints*2 {
		top = top[:opt.MaxPoints*2]
	}
	ordered := make([]Candidate, len(top))
	copy(ordered, top)
	sortByIndex(ordered)

	chosen := make([]Candidate, 0, opt.MaxPoints)
	for _, c := range ordered {
		if len(chosen) >= opt.MaxPoints {
			break
		}
		if utf8.RuneCountInString(c.Text) > opt.MinSentenceChars {
			chosen = append(chosen, c)
		}
	}
	if len(chosen) < opt.MinPoints {
		return Selection{Pool: pool, Stage: StageSelecting}
	}

	used := make(map[int]struct{}, len(chosen))
	for _, c := range chosen {
		used[c.Index] = struct{}{}
	}
	reserve := make([]Candidate, 0, len(positive)-len(chosen))
	for _, c := range positive {
		if _, ok := used[c.Index]; !ok {
			reserve = append(reserve, c)
		}
	}
	return Selection{Chosen: chosen, Reserve: reserve, Pool: pool, Stage: StageSelecting}
}

func sortByIndex(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Index < cs[j].Index })
}
