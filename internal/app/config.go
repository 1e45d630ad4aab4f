package app

import (
	"time"
)

// Output formats.
const (
	FormatMarkdown = "md"
	FormatText     = "text"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Inputs are HTML files, directories of HTML files, or "-" for stdin.
	Inputs     []string
	OutputPath string
	Format     string

	// Model is the sentence model key: "english", "none" or a path to a
	// Punkt training file.
	Model string

	// Summary bounds; zero selects the summarizer defaults.
	MinPoints       int
	MaxPoints       int
	MinContentChars int
	PoolFactor      int
	Similarity      float64
	Shortfall       string

	Concurrency int
	// Explain logs the score breakdown of every candidate sentence at debug
	// level.
	Explain bool

	// Cache
	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool

	Verbose bool
}
