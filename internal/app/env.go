package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads one or more dotenv files into the process environment.
// Later files override earlier ones and missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Overload(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
