package cmd

import (
	"fmt"
	"os"

	"stackguides/internal/config"
	"stackguides/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `stackguides init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadCatalog loads the content directory, falling back to the bundled
// starter content when no directory exists yet.
func loadCatalog(cfg *config.Config) (*content.Catalog, error) {
	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		if verbose {
			fmt.Fprintf(os.Stderr, "content directory %s not found, using bundled starter content\n", cfg.ContentDir)
		}
		return content.Starter()
	}

	catalog, err := content.Load(os.DirFS(cfg.ContentDir), cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", cfg.ContentDir, err)
	}
	return catalog, nil
}
