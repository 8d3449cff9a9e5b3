package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
	"github.com/relicsmith/relicsmith/pkg/surface"
)

func newGradeCmd() *cobra.Command {
	var (
		inventoryPath string
		configPath    string
		outputFmt     string
	)

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade every artifact in an inventory file",
		Long: `Scores each artifact and reports its letter grade, tier, crit value
and upgrade projection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(inventoryPath, configPath, outputFmt)
		},
	}

	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "Path to inventory JSON file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .relicsmith/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	_ = cmd.MarkFlagRequired("inventory")

	return cmd
}

func runGrade(inventoryPath, configPath, outputFmt string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	sc, err := cfg.ScoringConfig()
	if err != nil {
		return err
	}

	inv, err := artifact.LoadInventory(inventoryPath)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}

	scorer := scoring.NewScorer(sc)
	report := &surface.Report{Grades: scorer.GradeAll(inv.Artifacts)}

	renderer, err := rendererFor(outputFmt)
	if err != nil {
		return err
	}
	return renderer.Render(os.Stdout, report)
}
