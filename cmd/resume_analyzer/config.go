package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
)

// loadConfig reads --config when given, lets override apply flags the user
// explicitly set, then fills the rest from defaults. Without a config file the
// defaults are the starting point, so bool defaults such as rate limiting hold.
func loadConfig(cmd *cobra.Command, override func(cfg *config.Config)) (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
		if cfg.Verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Loaded config from: %s\n", configPath)
		}
	}

	if override != nil {
		override(&cfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
