package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/gosummarize/internal/cache"
	"github.com/hyperifyio/gosummarize/internal/score"
	"github.com/hyperifyio/gosummarize/internal/segment"
	"github.com/hyperifyio/gosummarize/internal/summarize"
)

// ErrNothingSummarized is returned when no input produced a summary. The CLI
// maps it to a distinct exit code.
var ErrNothingSummarized = errors.New("no input could be summarized")

// stdinName is the input name that reads from standard input.
const stdinName = "-"

// Summary is the per-input outcome written to the output.
type Summary struct {
	Input  string          `json:"input"`
	Title  string          `json:"title,omitempty"`
	Stage  summarize.Stage `json:"stage,omitempty"`
	Points []string        `json:"points"`
	Error  string          `json:"error,omitempty"`
}

type App struct {
	cfg         Config
	summarizer  *summarize.Summarizer
	cache       *cache.SummaryCache
	fingerprint string
	modelLoaded bool

	// Stdin and Stdout default to the process streams; tests replace them.
	Stdin  io.Reader
	Stdout io.Writer
}

// New validates cfg, loads the sentence model once and prepares the cache.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}

	loader := segment.NewLoader(cfg.Model)
	seg, ok := loader.Load()
	opts := summarizeOptions(cfg)
	a := &App{
		cfg:         cfg,
		summarizer:  summarize.New(seg, opts),
		fingerprint: fmt.Sprintf("model=%s/%t %s", cfg.Model, ok, opts.Fingerprint()),
		modelLoaded: ok,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	}

	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				log.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("cache clear failed")
			}
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err != nil {
				log.Warn().Err(err).Msg("cache purge failed")
			} else if n > 0 {
				log.Debug().Int("removed", n).Msg("purged expired summaries")
			}
		}
		a.cache = &cache.SummaryCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
	}
	log.Debug().Bool("model", ok).Str("key", cfg.Model).Int("concurrency", cfg.Concurrency).Msg("summarizer ready")
	return a, nil
}

// ModelLoaded reports whether sentence segmentation uses the model.
func (a *App) ModelLoaded() bool { return a.modelLoaded }

// Run summarizes every input and writes the rendered summaries to the
// configured output.
func (a *App) Run(ctx context.Context) error {
	inputs, err := expandInputs(a.cfg.Inputs)
	if err != nil {
		return err
	}
	summaries, err := a.SummarizeAll(ctx, inputs)
	if err != nil {
		return err
	}
	if err := a.write(summaries); err != nil {
		return err
	}
	for _, s := range summaries {
		if len(s.Points) > 0 {
			return nil
		}
	}
	return ErrNothingSummarized
}

// SummarizeAll summarizes inputs concurrently, preserving input order in
// the result. Unreadable inputs are reported in Summary.Error.
func (a *App) SummarizeAll(ctx context.Context, inputs []string) ([]Summary, error) {
	out := make([]Summary, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = a.summarizeInput(gctx, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *App) summarizeInput(ctx context.Context, name string) Summary {
	s := Summary{Input: name, Points: []string{}}
	b, err := a.readInput(name)
	if err != nil {
		log.Warn().Err(err).Str("input", name).Msg("skipping unreadable input")
		s.Error = err.Error()
		return s
	}
	res := a.summarizeHTML(ctx, name, string(b))
	s.Title, s.Stage, s.Points = res.Title, res.Stage, res.Points
	if res.Empty() {
		log.Info().Str("input", name).Str("stage", string(res.Stage)).Msg("not summarizable")
	}
	return s
}

// summarizeHTML consults the cache before running the pipeline. Explain runs
// always bypass the cache since cached results carry no candidate pool.
func (a *App) summarizeHTML(ctx context.Context, name, html string) summarize.Result {
	var key string
	if a.cache != nil && !a.cfg.Explain {
		key = cache.KeyFrom(a.fingerprint, html)
		if res, ok, err := a.cache.Get(ctx, key); err != nil {
			log.Warn().Err(err).Msg("cache read failed")
		} else if ok {
			log.Debug().Str("input", name).Msg("summary cache hit")
			return res
		}
	}
	res := a.summarizer.Run(html)
	if a.cfg.Explain {
		explain(name, res.Pool)
	}
	if key != "" {
		if err := a.cache.Save(ctx, key, res); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return res
}

func explain(name string, pool []summarize.Candidate) {
	for _, c := range pool {
		b := score.Explain(c.Text, c.Index, len(pool))
		log.Debug().
			Str("input", name).
			Int("index", c.Index).
			Float64("score", c.Score).
			Float64("position", b.Position).
			Float64("length", b.Length).
			Float64("words", b.WordCount).
			Float64("numeric", b.Numeric).
			Float64("artifact", b.Artifact).
			Float64("boilerplate", b.Boilerplate).
			Str("sentence", c.Text).
			Msg("candidate")
	}
}

func (a *App) readInput(name string) ([]byte, error) {
	if name == stdinName {
		if a.Stdin == nil {
			return nil, errors.New("stdin not available")
		}
		return io.ReadAll(a.Stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

// expandInputs replaces directories with the HTML files they contain, sorted
// by name. No inputs means stdin. Stdin may appear only once.
func expandInputs(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return []string{stdinName}, nil
	}
	out := make([]string, 0, len(inputs))
	stdin := false
	for _, in := range inputs {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == stdinName {
			if stdin {
				return nil, errors.New("stdin given more than once")
			}
			stdin = true
			out = append(out, in)
			continue
		}
		info, err := os.Stat(in)
		if err != nil || !info.IsDir() {
			// Unreadable files surface as per-input errors later.
			out = append(out, in)
			continue
		}
		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, fmt.Errorf("read input dir: %w", err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".html", ".htm":
				files = append(files, filepath.Join(in, e.Name()))
			}
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	if len(out) == 0 {
		return nil, errors.New("no inputs")
	}
	return out, nil
}
