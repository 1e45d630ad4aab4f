package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEnvFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return p
}

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv(EnvModel, "")
	t.Setenv(EnvFormat, "")

	dir := t.TempDir()
	p := writeEnvFile(t, dir, ".env", "\n# sample\nGOSUMMARIZE_MODEL=none\nGOSUMMARIZE_FORMAT=json\n")
	if err := LoadEnvFiles(p); err != nil {
		t.Fatalf("LoadEnvFiles: %v", err)
	}
	if got := os.Getenv(EnvModel); got != "none" {
		t.Fatalf("%s=%q, want none", EnvModel, got)
	}
	if got := os.Getenv(EnvFormat); got != "json" {
		t.Fatalf("%s=%q, want json", EnvFormat, got)
	}
}

func TestLoadEnvFiles_LaterFileWinsAndMissingSkipped(t *testing.T) {
	t.Setenv(EnvShortfall, "")
	dir := t.TempDir()
	first := writeEnvFile(t, dir, ".env", "GOSUMMARIZE_SHORTFALL=accept\n")
	second := writeEnvFile(t, dir, ".env.local", "GOSUMMARIZE_SHORTFALL=empty\n")
	missing := filepath.Join(dir, "nope.env")

	if err := LoadEnvFiles(first, missing, "", second); err != nil {
		t.Fatalf("LoadEnvFiles: %v", err)
	}
	if got := os.Getenv(EnvShortfall); got != "empty" {
		t.Fatalf("%s=%q, want empty", EnvShortfall, got)
	}
	if err := LoadEnvFiles(missing); err != nil {
		t.Fatalf("missing only: %v", err)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv(EnvModel, "/models/en.json")
	t.Setenv(EnvFormat, " TEXT ")
	t.Setenv(EnvCacheDir, "/tmp/sum-cache")
	t.Setenv(EnvCacheMaxAge, "36h")
	t.Setenv(EnvConcurrency, "3")
	t.Setenv(EnvShortfall, "accept")

	cfg := Config{Model: DefaultModel, Format: DefaultFormat}
	ApplyEnvToConfig(&cfg)
	if cfg.Model != "/models/en.json" || cfg.Format != FormatText {
		t.Fatalf("model/format not applied: %+v", cfg)
	}
	if cfg.CacheDir != "/tmp/sum-cache" || cfg.CacheMaxAge != 36*time.Hour {
		t.Fatalf("cache not applied: %+v", cfg)
	}
	if cfg.Concurrency != 3 || cfg.Shortfall != "accept" {
		t.Fatalf("concurrency/shortfall not applied: %+v", cfg)
	}
}

func TestApplyEnvToConfig_ExplicitValuesWin(t *testing.T) {
	t.Setenv(EnvModel, "none")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvConcurrency, "bogus")
	t.Setenv(EnvCacheMaxAge, "soon")

	cfg := Config{Model: "/custom.json", Format: FormatPDF, Concurrency: 8}
	ApplyEnvToConfig(&cfg)
	if cfg.Model != "/custom.json" || cfg.Format != FormatPDF || cfg.Concurrency != 8 {
		t.Fatalf("explicit values overridden: %+v", cfg)
	}
	if cfg.CacheMaxAge != 0 {
		t.Fatalf("invalid duration should be ignored, got %v", cfg.CacheMaxAge)
	}
	ApplyEnvToConfig(nil)
}
