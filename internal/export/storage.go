// Package export moves inventory snapshots in and out of blob storage,
// so players can back up a collection or carry it between accounts.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for inventory and build exports.
type StorageClient interface {
	PutInventory(ctx context.Context, accountID, exportID string, data []byte) error
	GetInventory(ctx context.Context, accountID, exportID string) ([]byte, error)
	PutBuild(ctx context.Context, accountID, buildID string, data []byte) error
	GetBuild(ctx context.Context, accountID, buildID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(accountID, kind, id string) string {
	return filepath.Join(s.BaseDir, accountID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutInventory stores an inventory blob.
func (s *LocalStorage) PutInventory(ctx context.Context, accountID, exportID string, data []byte) error {
	return s.put(s.path(accountID, "inventories", exportID), data)
}

// GetInventory retrieves an inventory blob.
func (s *LocalStorage) GetInventory(ctx context.Context, accountID, exportID string) ([]byte, error) {
	return os.ReadFile(s.path(accountID, "inventories", exportID))
}

// PutBuild stores a build blob.
func (s *LocalStorage) PutBuild(ctx context.Context, accountID, buildID string, data []byte) error {
	return s.put(s.path(accountID, "builds", buildID), data)
}

// GetBuild retrieves a build blob.
func (s *LocalStorage) GetBuild(ctx context.Context, accountID, buildID string) ([]byte, error) {
	return os.ReadFile(s.path(accountID, "builds", buildID))
}
