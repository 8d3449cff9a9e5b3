package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/relicsmith/relicsmith/internal/export"
	"github.com/relicsmith/relicsmith/internal/inventory"
)

func newExportCmd() *cobra.Command {
	var (
		account     string
		databaseURL string
		storageDir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an account's inventory to blob storage",
		Long: `Snapshots every artifact of an account into a JSON blob and records
the export. The blob lands in a local storage directory; the hosted
service uses the same format against S3 or GCS.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, account, databaseURL, storageDir)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account display name to export (required)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres URL (default: DATABASE_URL env)")
	cmd.Flags().StringVar(&storageDir, "storage-dir", "/tmp/relicsmith-data", "Local storage directory for the export blob")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runExport(cmd *cobra.Command, account, databaseURL, storageDir string) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("no database URL: pass --database-url or set DATABASE_URL")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	invSvc := inventory.NewService(db)
	exportSvc := export.NewService(db, invSvc, export.NewLocalStorage(storageDir))

	acct, err := invSvc.EnsureAccount(cmd.Context(), account)
	if err != nil {
		return fmt.Errorf("resolving account: %w", err)
	}

	exportID, err := exportSvc.ExportInventory(cmd.Context(), acct.ID)
	if err != nil {
		return fmt.Errorf("exporting inventory: %w", err)
	}

	fmt.Printf("Export %s written under %s\n", exportID, storageDir)
	return nil
}
