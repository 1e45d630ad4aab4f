package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/app"
	"github.com/hyperifyio/gosummarize/internal/summarize"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath      string
		format          string
		model           string
		minPoints       int
		maxPoints       int
		minContentChars int
		poolFactor      int
		similarity      float64
		shortfall       string
		concurrency     int
		explain         bool
		configPath      string
		envFiles        string
		cacheDir        string
		cacheMaxAge     time.Duration
		cacheClear      bool
		cacheStrict     bool
		verbose         bool
		showVersion     bool
	)

	flag.StringVar(&outputPath, "output", "", "Path to write the summaries (default stdout)")
	flag.StringVar(&format, "format", app.DefaultFormat, "Output format: md, text, json or pdf")
	flag.StringVar(&model, "model", app.DefaultModel, "Sentence model: 'english', 'none' or a path to Punkt training JSON")
	flag.IntVar(&minPoints, "min.points", summarize.DefaultMinPoints, "Minimum number of summary points")
	flag.IntVar(&maxPoints, "max.points", summarize.DefaultMaxPoints, "Maximum number of summary points")
	flag.IntVar(&minContentChars, "min.contentChars", summarize.DefaultMinContentChars, "Minimum cleaned text length to attempt a summary")
	flag.IntVar(&poolFactor, "pool.factor", summarize.DefaultPoolFactor, "Candidate pool size as a multiple of max.points")
	flag.Float64Var(&similarity, "similarity", 0, "Jaccard threshold above which a point counts as a duplicate (0 selects 0.7)")
	flag.StringVar(&shortfall, "shortfall", "", "Policy when deduplication leaves too few points: topup, accept or empty")
	flag.IntVar(&concurrency, "concurrency", 0, "Inputs summarized in parallel (0 uses the CPU count)")
	flag.BoolVar(&explain, "explain", false, "Log the score breakdown of every candidate sentence (implies -v)")
	flag.StringVar(&configPath, "config", os.Getenv("GOSUMMARIZE_CONFIG"), "Path to a YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load; missing files are skipped")
	flag.StringVar(&cacheDir, "cache.dir", "", "Summary cache directory (empty disables caching)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheStrict, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: gosummarize [flags] [file.html|dir|-]...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	cfg := app.Config{
		Inputs:           flag.Args(),
		OutputPath:       outputPath,
		Format:           format,
		Model:            model,
		MinPoints:        minPoints,
		MaxPoints:        maxPoints,
		MinContentChars:  minContentChars,
		PoolFactor:       poolFactor,
		Similarity:       similarity,
		Shortfall:        shortfall,
		Concurrency:      concurrency,
		Explain:          explain,
		CacheDir:         cacheDir,
		CacheMaxAge:      cacheMaxAge,
		CacheClear:       cacheClear,
		CacheStrictPerms: cacheStrict,
		Verbose:          verbose,
	}

	if err := app.ResolveConfig(&cfg, configPath); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(1)
	}

	if cfg.Verbose || cfg.Explain {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps run errors to the process exit status: 2 when every input
// came back empty, 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrNothingSummarized):
		log.Warn().Msg("nothing summarized")
		return 2
	default:
		log.Error().Err(err).Msg("run failed")
		return 1
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
