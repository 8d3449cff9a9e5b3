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

func newOptimizeCmd() *cobra.Command {
	var (
		inventoryPath string
		setsPath      string
		configPath    string
		outputFmt     string
		shape         string
		primarySet    string
		secondarySet  string
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Search for the best five-piece loadout",
		Long: `Searches the inventory for the highest-scoring loadout under a
set-bonus target. Name a primary set for a 4-piece target, a primary and
a secondary set for a 2+2 target, or neither for the unconstrained best
piece per slot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(optimizeOpts{
				inventoryPath: inventoryPath,
				setsPath:      setsPath,
				configPath:    configPath,
				outputFmt:     outputFmt,
				shape:         shape,
				primarySet:    primarySet,
				secondarySet:  secondarySet,
			})
		},
	}

	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "Path to inventory JSON file (required)")
	cmd.Flags().StringVar(&setsPath, "sets", "", "Path to set catalog JSON file (for bonus descriptions)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .relicsmith/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	cmd.Flags().StringVar(&shape, "shape", "", "Target shape: full_set, split_set or rainbow (default: infer)")
	cmd.Flags().StringVar(&primarySet, "primary-set", "", "Primary set id")
	cmd.Flags().StringVar(&secondarySet, "secondary-set", "", "Secondary set id (2+2 target)")
	_ = cmd.MarkFlagRequired("inventory")

	return cmd
}

type optimizeOpts struct {
	inventoryPath string
	setsPath      string
	configPath    string
	outputFmt     string
	shape         string
	primarySet    string
	secondarySet  string
}

func runOptimize(opts optimizeOpts) error {
	cfg, err := loadConfigFile(opts.configPath)
	if err != nil {
		return err
	}
	sc, err := cfg.ScoringConfig()
	if err != nil {
		return err
	}

	// Flags override the config's target section when set.
	req := cfg.Request()
	if opts.shape != "" {
		req.Shape = optimize.TargetShape(opts.shape)
	}
	if opts.primarySet != "" {
		req.PrimarySetID = opts.primarySet
	}
	if opts.secondarySet != "" {
		req.SecondarySetID = opts.secondarySet
	}

	inv, err := artifact.LoadInventory(opts.inventoryPath)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}

	var catalog artifact.Catalog = artifact.MapCatalog{}
	if opts.setsPath != "" {
		catalog, err = artifact.LoadSetCatalog(opts.setsPath)
		if err != nil {
			return fmt.Errorf("loading set catalog: %w", err)
		}
	}

	searcher := optimize.NewSearcher(scoring.NewScorer(sc), catalog)
	assignment, err := searcher.Optimize(inv.Artifacts, req)
	if err != nil {
		return err
	}

	report := &surface.Report{Assignment: assignment, NoAssignment: assignment == nil}

	renderer, err := rendererFor(opts.outputFmt)
	if err != nil {
		return err
	}
	return renderer.Render(os.Stdout, report)
}
