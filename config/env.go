package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for CLI flags.
const (
	EnvConfig    = "PONG_CONFIG"
	EnvLogFile   = "PONG_LOG_FILE"
	EnvOutputDir = "PONG_OUTPUT_DIR"
)

// LoadEnv loads KEY=value pairs from the given files (default ".env") into
// the process environment. Variables already set are not overridden and
// missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
