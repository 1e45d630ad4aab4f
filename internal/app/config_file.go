package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/gosummarize/internal/segment"
	"github.com/hyperifyio/gosummarize/internal/summarize"
)

// Defaults shared by the flag set and ApplyFileConfig, which needs them to
// tell an explicit flag from an untouched one.
const (
	DefaultFormat = FormatMarkdown
	DefaultModel  = segment.ModelEnglish
)

// ErrPDFNeedsOutput is returned when PDF output is requested without an
// output path.
var ErrPDFNeedsOutput = errors.New("config: pdf format requires -output")

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Inputs []string `yaml:"inputs" json:"inputs"`
	Output string   `yaml:"output" json:"output"`
	Format string   `yaml:"format" json:"format"`
	Model  string   `yaml:"model" json:"model"`

	Summary struct {
		MinPoints       int     `yaml:"minPoints" json:"minPoints"`
		MaxPoints       int     `yaml:"maxPoints" json:"maxPoints"`
		MinContentChars int     `yaml:"minContentChars" json:"minContentChars"`
		PoolFactor      int     `yaml:"poolFactor" json:"poolFactor"`
		Similarity      float64 `yaml:"similarity" json:"similarity"`
		Shortfall       string  `yaml:"shortfall" json:"shortfall"`
	} `yaml:"summary" json:"summary"`

	Concurrency int  `yaml:"concurrency" json:"concurrency"`
	Explain     bool `yaml:"explain" json:"explain"`
	Verbose     bool `yaml:"verbose" json:"verbose"`

	Cache struct {
		Dir         string   `yaml:"dir" json:"dir"`
		MaxAge      Duration `yaml:"maxAge" json:"maxAge"`
		Clear       bool     `yaml:"clear" json:"clear"`
		StrictPerms bool     `yaml:"strictPerms" json:"strictPerms"`
	} `yaml:"cache" json:"cache"`
}

// Duration is a time.Duration that decodes from "24h" style strings in both
// YAML and JSON. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		return d.parse(x)
	case float64:
		*d = Duration(int64(x))
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if len(cfg.Inputs) == 0 && len(fc.Inputs) > 0 {
		cfg.Inputs = append([]string{}, fc.Inputs...)
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if (cfg.Format == "" || cfg.Format == DefaultFormat) && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if (cfg.Model == "" || cfg.Model == DefaultModel) && fc.Model != "" {
		cfg.Model = fc.Model
	}

	s := fc.Summary
	if (cfg.MinPoints == 0 || cfg.MinPoints == summarize.DefaultMinPoints) && s.MinPoints > 0 {
		cfg.MinPoints = s.MinPoints
	}
	if (cfg.MaxPoints == 0 || cfg.MaxPoints == summarize.DefaultMaxPoints) && s.MaxPoints > 0 {
		cfg.MaxPoints = s.MaxPoints
	}
	if (cfg.MinContentChars == 0 || cfg.MinContentChars == summarize.DefaultMinContentChars) && s.MinContentChars > 0 {
		cfg.MinContentChars = s.MinContentChars
	}
	if (cfg.PoolFactor == 0 || cfg.PoolFactor == summarize.DefaultPoolFactor) && s.PoolFactor > 0 {
		cfg.PoolFactor = s.PoolFactor
	}
	if cfg.Similarity == 0 && s.Similarity > 0 {
		cfg.Similarity = s.Similarity
	}
	if (cfg.Shortfall == "" || cfg.Shortfall == string(summarize.ShortfallTopUp)) && s.Shortfall != "" {
		cfg.Shortfall = s.Shortfall
	}

	if cfg.Concurrency == 0 && fc.Concurrency > 0 {
		cfg.Concurrency = fc.Concurrency
	}
	if !cfg.Explain && fc.Explain {
		cfg.Explain = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}

	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = time.Duration(fc.Cache.MaxAge)
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.CacheStrictPerms && fc.Cache.StrictPerms {
		cfg.CacheStrictPerms = true
	}
}

// ResolveConfig layers the environment and then the config file at path (if
// any) under the values already in cfg, so flags win over env and env wins
// over the file.
func ResolveConfig(cfg *Config, path string) error {
	ApplyEnvToConfig(cfg)
	if strings.TrimSpace(path) == "" {
		return nil
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	ApplyFileConfig(cfg, fc)
	return nil
}

// ValidateConfig rejects settings the summarizer cannot honour.
func ValidateConfig(cfg Config) error {
	switch strings.ToLower(cfg.Format) {
	case "", FormatMarkdown, FormatText, FormatJSON:
	case FormatPDF:
		if p := strings.TrimSpace(cfg.OutputPath); p == "" || p == "-" {
			return ErrPDFNeedsOutput
		}
	default:
		return fmt.Errorf("config: unknown format %q (want md, text, json or pdf)", cfg.Format)
	}
	if cfg.MinPoints < 0 || cfg.MaxPoints < 0 || cfg.MinContentChars < 0 || cfg.PoolFactor < 0 || cfg.Concurrency < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if cfg.MinPoints > 0 && cfg.MaxPoints > 0 && cfg.MinPoints > cfg.MaxPoints {
		return fmt.Errorf("config: min.points %d exceeds max.points %d", cfg.MinPoints, cfg.MaxPoints)
	}
	if cfg.Similarity < 0 || cfg.Similarity > 1 {
		return fmt.Errorf("config: similarity %g outside (0,1]", cfg.Similarity)
	}
	if _, err := summarize.ParseShortfall(cfg.Shortfall); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// summarizeOptions maps the configuration onto summarizer options.
func summarizeOptions(cfg Config) summarize.Options {
	shortfall, _ := summarize.ParseShortfall(cfg.Shortfall)
	return summarize.Options{
		MinPoints:       cfg.MinPoints,
		MaxPoints:       cfg.MaxPoints,
		MinContentChars: cfg.MinContentChars,
		PoolFactor:      cfg.PoolFactor,
		Similarity:      cfg.Similarity,
		Shortfall:       shortfall,
	}
}
