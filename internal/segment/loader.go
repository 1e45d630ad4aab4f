package segment

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"github.com/rs/zerolog/log"
)

const (
	// ModelEnglish selects the Punkt English training data bundled with the
	// sentences module.
	ModelEnglish = "english"
	// ModelNone disables model-based segmentation.
	ModelNone = "none"
)

var errNoModel = errors.New("no sentence model configured")

// Loader resolves a sentence-boundary model once. Any key other than
// ModelEnglish or ModelNone is read as a path to a Punkt JSON training file.
type Loader struct {
	Key string

	once sync.Once
	seg  Segmenter
	ok   bool
}

// NewLoader returns a Loader for the given model key.
func NewLoader(key string) *Loader {
	return &Loader{Key: key}
}

// Load returns the model-backed segmenter and true, or the regex fallback and
// false when the model is disabled or could not be loaded. The first call
// does the work; the outcome is fixed for the lifetime of the Loader.
func (l *Loader) Load() (Segmenter, bool) {
	l.once.Do(func() {
		tok, err := l.load()
		if err != nil {
			if errors.Is(err, errNoModel) {
				log.Debug().Msg("sentence model disabled; using punctuation splitting")
			} else {
				log.Info().Err(err).Str("model", l.Key).Msg("sentence model unavailable; using punctuation splitting")
			}
			l.seg, l.ok = Regex{}, false
			return
		}
		log.Debug().Str("model", l.Key).Msg("sentence model loaded")
		l.seg, l.ok = &Punkt{tok: tok}, true
	})
	return l.seg, l.ok
}

// Segmenter is shorthand for the first return of Load.
func (l *Loader) Segmenter() Segmenter {
	seg, _ := l.Load()
	return seg
}

func (l *Loader) load() (tok tokenizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			tok, err = nil, fmt.Errorf("load sentence model: %v", r)
		}
	}()
	key := strings.TrimSpace(l.Key)
	switch strings.ToLower(key) {
	case "", ModelNone:
		return nil, errNoModel
	case ModelEnglish:
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("load bundled english model: %w", err)
		}
		return t, nil
	}
	b, err := os.ReadFile(key)
	if err != nil {
		return nil, fmt.Errorf("read sentence model: %w", err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("parse sentence model: %w", err)
	}
	return sentences.NewSentenceTokenizer(training), nil
}
