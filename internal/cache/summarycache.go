package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hyperifyio/gosummarize/internal/summarize"
)

// SummaryCache stores summaries keyed by a digest of the options fingerprint
// and the input HTML.
type SummaryCache struct {
	Dir string
	// StrictPerms, when true, enforces 0700 on cache directories and 0600 on
	// files.
	StrictPerms bool
}

// Entry is the on-disk form of a cached summary.
type Entry struct {
	SavedAt time.Time        `json:"savedAt"`
	Result  summarize.Result `json:"result"`
}

func (c *SummaryCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	perm := os.FileMode(0o755)
	if c.StrictPerms {
		perm = 0o700
	}
	if err := os.MkdirAll(c.Dir, perm); err != nil {
		return err
	}
	if c.StrictPerms {
		if info, err := os.Stat(c.Dir); err == nil && info.Mode()&0o777 != 0o700 {
			_ = os.Chmod(c.Dir, 0o700)
		}
	}
	return nil
}

// KeyFrom builds a cache key from the options fingerprint and the document.
func KeyFrom(fingerprint string, html string) string {
	h := sha256.Sum256([]byte(fingerprint + "\n\n" + html))
	return hex.EncodeToString(h[:])
}

func (c *SummaryCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// Get returns the cached result for key. A missing or unreadable entry is a
// miss, not an error.
func (c *SummaryCache) Get(_ context.Context, key string) (summarize.Result, bool, error) {
	if err := c.ensureDir(); err != nil {
		return summarize.Result{}, false, err
	}
	p := c.pathFor(key)
	b, err := os.ReadFile(p)
	if err != nil {
		return summarize.Result{}, false, nil
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return summarize.Result{}, false, nil
	}
	if e.Result.Points == nil {
		e.Result.Points = []string{}
	}
	now := time.Now()
	_ = os.Chtimes(p, now, now)
	return e.Result, true, nil
}

// Save writes res under key.
func (c *SummaryCache) Save(_ context.Context, key string, res summarize.Result) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	b, err := json.Marshal(Entry{SavedAt: time.Now().UTC(), Result: res})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	mode := os.FileMode(0o644)
	if c.StrictPerms {
		mode = 0o600
	}
	return os.WriteFile(c.pathFor(key), b, mode)
}
