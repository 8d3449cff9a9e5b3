package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveInventory writes an inventory to disk as JSON.
func SaveInventory(path string, inv *Inventory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for inventory: %w", err)
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling inventory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing inventory: %w", err)
	}

	return nil
}

// LoadInventory reads an inventory from disk and validates every artifact.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("unmarshaling inventory: %w", err)
	}

	for i := range inv.Artifacts {
		if err := inv.Artifacts[i].Validate(); err != nil {
			return nil, fmt.Errorf("artifact %s: %w", inv.Artifacts[i].ID, err)
		}
	}

	return &inv, nil
}

// LoadSetCatalog reads a set catalog from disk. The file format is the
// seed-data shape produced by the wiki fetch pipeline: a flat JSON array
// of set records.
func LoadSetCatalog(path string) (MapCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading set catalog: %w", err)
	}

	var sets []Set
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("unmarshaling set catalog: %w", err)
	}

	for _, s := range sets {
		if s.ID == "" {
			return nil, fmt.Errorf("set %q has no id", s.Name)
		}
	}

	return NewCatalog(sets), nil
}
