// Package main provides the relicsmith CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relicsmith/relicsmith/pkg/config"
	"github.com/relicsmith/relicsmith/pkg/surface"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "relicsmith",
		Short: "Artifact grading and loadout optimization",
		Long: `Relicsmith scores artifacts against a stat-weight model, ranks them
per slot, and searches for the best five-piece loadout under a set-bonus
target.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newGradeCmd(),
		newRankCmd(),
		newOptimizeCmd(),
		newSeedCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfigFile loads the config from an explicit path, or walks up
// from the working directory looking for .relicsmith/config.yaml.
func loadConfigFile(path string) (*config.Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func rendererFor(format string) (surface.Renderer, error) {
	switch format {
	case "text", "":
		return &surface.TerminalRenderer{}, nil
	case "json":
		return &surface.JSONRenderer{}, nil
	case "markdown":
		return &surface.MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}
