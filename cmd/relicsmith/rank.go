package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/optimize"
	"github.com/relicsmith/relicsmith/pkg/scoring"
	"github.com/relicsmith/relicsmith/pkg/surface"
)

func newRankCmd() *cobra.Command {
	var (
		inventoryPath string
		configPath    string
		outputFmt     string
		limit         int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the top artifacts per slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(inventoryPath, configPath, outputFmt, limit)
		},
	}

	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "Path to inventory JSON file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .relicsmith/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	cmd.Flags().IntVar(&limit, "limit", 0, "Candidates per slot (default: from config, then 5)")
	_ = cmd.MarkFlagRequired("inventory")

	return cmd
}

func runRank(inventoryPath, configPath, outputFmt string, limit int) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	sc, err := cfg.ScoringConfig()
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = cfg.Ranking.Limit
	}

	inv, err := artifact.LoadInventory(inventoryPath)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}

	rankings, err := optimize.RankBySlot(inv.Artifacts, scoring.NewScorer(sc), limit)
	if err != nil {
		return err
	}

	renderer, err := rendererFor(outputFmt)
	if err != nil {
		return err
	}
	return renderer.Render(os.Stdout, &surface.Report{Rankings: rankings})
}
