package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

func TestInventoryRoundTrip(t *testing.T) {
	inv := &artifact.Inventory{
		AccountID: "acct-1",
		Artifacts: []artifact.Artifact{
			artifact.NewFlower("f1", "emblem", 4780, []artifact.SubStat{
				{Stat: artifact.StatCritRate, Value: 7.8},
			}, 20, 5),
			{
				ID: "s1", SetID: "shime", Slot: artifact.SlotSands,
				MainStat: artifact.StatEnergyRech, MainStatValue: 51.8,
				Level: 8, Rarity: 4,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := artifact.SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	loaded, err := artifact.LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if loaded.AccountID != inv.AccountID {
		t.Errorf("account id = %q, want %q", loaded.AccountID, inv.AccountID)
	}
	if len(loaded.Artifacts) != len(inv.Artifacts) {
		t.Fatalf("loaded %d artifacts, want %d", len(loaded.Artifacts), len(inv.Artifacts))
	}
	if loaded.Artifacts[0].SubStats[0].Value != 7.8 {
		t.Error("sub-stat value lost in round trip")
	}
}

func TestLoadInventoryRejectsInvalidArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	data := `{"artifacts": [{"id": "bad", "slot": "weapon", "main_stat": "atk", "level": 0, "rarity": 5}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := artifact.LoadInventory(path); err == nil {
		t.Error("expected error for artifact with unknown slot")
	}
}

func TestLoadSetCatalog(t *testing.T) {
	catalog, err := artifact.LoadSetCatalog("../../testdata/artifact_sets.json")
	if err != nil {
		t.Fatalf("LoadSetCatalog: %v", err)
	}

	set, ok := catalog.Set("emblem_of_severed_fate")
	if !ok {
		t.Fatal("expected emblem_of_severed_fate in catalog")
	}
	if set.Name != "Emblem of Severed Fate" {
		t.Errorf("set name = %q", set.Name)
	}
	if set.TwoPieceBonus == "" || set.FourPieceBonus == "" {
		t.Error("expected both bonus texts")
	}

	// Sets without a four-piece bonus are allowed.
	if _, ok := catalog.Set("prayers_for_wisdom"); !ok {
		t.Error("expected prayers_for_wisdom in catalog")
	}
}

func TestLoadSetCatalogRejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.json")
	data := `[{"name": "Nameless", "two_piece_bonus": "HP +20%"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := artifact.LoadSetCatalog(path); err == nil {
		t.Error("expected error for set without id")
	}
}
