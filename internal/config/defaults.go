package config

import (
	"os"
	"path/filepath"
)

// DefaultExcludes are glob patterns excluded from the content walk by default.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"dist/**",
	"build/**",
	"**/README.md",
	"**/*.draft.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:    "Stack Guides",
		ContentDir:  "content",
		OutputDir:   "public",
		DataDir:     ".stackguides",
		Port:        8080,
		FeedbackURL: "http://localhost:8080",
		LedgerDir:   defaultLedgerDir(),
		Include:     []string{"**/*.md"},
		Exclude:     DefaultExcludes,
	}
}

// defaultLedgerDir resolves the per-device vote ledger directory under the
// user config dir, falling back to a hidden dir in the working directory.
func defaultLedgerDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "stackguides", "votes")
	}
	return filepath.Join(".stackguides", "votes")
}
