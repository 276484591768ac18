// Package main provides the command-line interface for the bwt application.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/dependencies"
	"github.com/barewt/bwt/pkg/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	quiet      bool
	configPath string
)

// buildDeps assembles the dependency container according to global flags.
func buildDeps() *dependencies.Dependencies {
	deps := dependencies.New()
	if !quiet {
		deps = deps.WithLogger(logger.NewDefaultLogger())
	}
	return deps
}

// loadConfig loads the global configuration, failing if not found.
func loadConfig(deps *dependencies.Dependencies) config.Config {
	path := configPath
	if path == "" {
		defaultPath, err := deps.Config.DefaultConfigPath()
		if err != nil {
			log.Fatalf("Cannot determine config location: %v", err)
		}
		path = defaultPath
	}

	cfg, err := deps.Config.LoadConfig(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return *cfg
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "bwt",
		Short:   "Worktree management based on bare clones",
		Long:    `bwt clones repositories as bare stores and manages one worktree per branch next to them.`,
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createGetCmd(),
		createAddCmd(),
		createListCmd(),
		createRemoveCmd(),
		createConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
