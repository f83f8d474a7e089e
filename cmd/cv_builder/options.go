package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/verveschool/cv-builder/internal/config"
)

// sharedFlags are the configuration flags every command accepts
type sharedFlags struct {
	configPath  string
	outDir      string
	pageSize    string
	maxPages    int
	workers     int
	databaseURL string
	verbose     bool
}

func (f *sharedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to JSON config file (optional)")
	cmd.Flags().StringVar(&f.pageSize, "page-size", "", "Page size: A3, A4, Letter or Legal (default A4)")
	cmd.Flags().IntVar(&f.maxPages, "max-pages", 0, "Fail when a CV is longer than this many pages (0 = no limit)")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed layout summaries")
}

// resolve merges flags over the config file over built-in defaults.
// Only flags the user actually set take precedence over the file.
func (f *sharedFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	fileCfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}

	flagCfg := config.Config{}
	changed := cmd.Flags().Changed
	if changed("out-dir") {
		flagCfg.OutDir = f.outDir
	}
	if changed("page-size") {
		flagCfg.PageSize = f.pageSize
	}
	if changed("max-pages") {
		flagCfg.MaxPages = f.maxPages
	}
	if changed("workers") {
		flagCfg.Workers = f.workers
	}
	if changed("db-url") {
		flagCfg.DatabaseURL = f.databaseURL
	}
	flagCfg.Verbose = f.verbose

	merged := flagCfg.MergeWithDefaults(*fileCfg)
	merged = merged.MergeWithDefaults(config.Defaults())
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return merged, nil
}
