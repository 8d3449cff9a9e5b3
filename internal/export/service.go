package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/relicsmith/relicsmith/internal/inventory"
	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// Service orchestrates inventory export and import: it snapshots an
// account's collection into blob storage and records the export in
// Postgres.
type Service struct {
	db      *sql.DB
	inv     *inventory.Service
	storage StorageClient
}

// NewService creates a new export Service.
func NewService(db *sql.DB, inv *inventory.Service, storage StorageClient) *Service {
	return &Service{db: db, inv: inv, storage: storage}
}

// Storage returns the underlying storage client.
func (s *Service) Storage() StorageClient {
	return s.storage
}

// ExportRow represents an export record from the database.
type ExportRow struct {
	ID            string
	AccountID     string
	ArtifactCount int
	StorageRef    string
	CreatedAt     time.Time
}

// ExportInventory snapshots all artifacts of an account into blob
// storage and records the export. Returns the export id.
func (s *Service) ExportInventory(ctx context.Context, accountID string) (string, error) {
	items, err := s.inv.ListArtifacts(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("load artifacts: %w", err)
	}

	inv := artifact.Inventory{AccountID: accountID, Artifacts: items}
	data, err := json.Marshal(&inv)
	if err != nil {
		return "", fmt.Errorf("marshal inventory: %w", err)
	}

	exportID := uuid.New().String()
	if err := s.storage.PutInventory(ctx, accountID, exportID, data); err != nil {
		return "", fmt.Errorf("put inventory blob: %w", err)
	}

	// Blob and row share the export id so lookups need no join.
	storageRef := fmt.Sprintf("inventories/%s/%s.json", accountID, exportID)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO exports (id, account_id, artifact_count, storage_ref)
		 VALUES ($1, $2, $3, $4)`,
		exportID, accountID, len(items), storageRef,
	)
	if err != nil {
		return "", fmt.Errorf("insert export row: %w", err)
	}
	return exportID, nil
}

// ImportInventory restores an exported inventory into an account.
// Returns the number of artifacts imported.
func (s *Service) ImportInventory(ctx context.Context, accountID, sourceAccountID, exportID string) (int, error) {
	data, err := s.storage.GetInventory(ctx, sourceAccountID, exportID)
	if err != nil {
		return 0, fmt.Errorf("load inventory blob: %w", err)
	}

	var inv artifact.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return 0, fmt.Errorf("unmarshal inventory: %w", err)
	}

	imported := 0
	for _, a := range inv.Artifacts {
		a.ID = ""         // new ids on import
		a.EquippedBy = "" // equipment state does not carry across accounts
		if _, err := s.inv.CreateArtifact(ctx, accountID, a); err != nil {
			return imported, fmt.Errorf("import artifact: %w", err)
		}
		imported++
	}
	return imported, nil
}

// ArchiveBuild stores a saved build's full assignment in blob storage.
func (s *Service) ArchiveBuild(ctx context.Context, accountID, buildID string, assignment json.RawMessage) error {
	if err := s.storage.PutBuild(ctx, accountID, buildID, assignment); err != nil {
		return fmt.Errorf("put build blob: %w", err)
	}
	return nil
}

// ListExports returns all exports for an account, newest first.
func (s *Service) ListExports(ctx context.Context, accountID string) ([]ExportRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, artifact_count, storage_ref, created_at
		 FROM exports WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var exports []ExportRow
	for rows.Next() {
		var e ExportRow
		if err := rows.Scan(&e.ID, &e.AccountID, &e.ArtifactCount, &e.StorageRef, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		exports = append(exports, e)
	}
	return exports, rows.Err()
}
