package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/relicsmith/relicsmith/internal/inventory"
	"github.com/relicsmith/relicsmith/internal/platform"
	"github.com/relicsmith/relicsmith/pkg/artifact"
)

func newSeedCmd() *cobra.Command {
	var (
		setsPath    string
		databaseURL string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the artifact set catalog into the database",
		Long: `Upserts every set from a catalog JSON file into Postgres. Safe to
re-run; existing sets are updated in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, setsPath, databaseURL)
		},
	}

	cmd.Flags().StringVar(&setsPath, "sets", "", "Path to set catalog JSON file (required)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres URL (default: DATABASE_URL env)")
	_ = cmd.MarkFlagRequired("sets")

	return cmd
}

func runSeed(cmd *cobra.Command, setsPath, databaseURL string) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("no database URL: pass --database-url or set DATABASE_URL")
	}

	catalog, err := artifact.LoadSetCatalog(setsPath)
	if err != nil {
		return fmt.Errorf("loading set catalog: %w", err)
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := platform.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	ctx := cmd.Context()
	svc := inventory.NewService(db)
	for _, set := range catalog {
		if err := svc.UpsertSet(ctx, set); err != nil {
			return fmt.Errorf("upserting set %s: %w", set.ID, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Seeded %d sets\n", len(catalog))
	return nil
}
