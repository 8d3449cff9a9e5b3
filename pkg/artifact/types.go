// Package artifact defines the core equipment data model for Relicsmith.
// These types are the shared vocabulary across all modules.
package artifact

import "fmt"

// Slot identifies one of the five fixed equipment slots.
type Slot string

const (
	SlotFlower  Slot = "flower"
	SlotPlume   Slot = "plume"
	SlotSands   Slot = "sands"
	SlotGoblet  Slot = "goblet"
	SlotCirclet Slot = "circlet"
)

// Slots lists all five slots in canonical order. The optimal-assignment
// search and the per-slot ranking iterate slots in this order, which makes
// tie-breaking deterministic.
var Slots = [5]Slot{SlotFlower, SlotPlume, SlotSands, SlotGoblet, SlotCirclet}

// Valid reports whether s is one of the five known slots.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// FixedMainStat returns the main stat a slot is locked to, if any.
// Flowers always carry flat HP and plumes always carry flat ATK; the
// remaining three slots roll a main stat from a slot-specific pool.
func (s Slot) FixedMainStat() (Stat, bool) {
	switch s {
	case SlotFlower:
		return StatHP, true
	case SlotPlume:
		return StatATK, true
	default:
		return "", false
	}
}

// Stat is a named character statistic carried by artifact main stats and
// sub-stats.
type Stat string

const (
	StatHP           Stat = "hp"
	StatATK          Stat = "atk"
	StatDEF          Stat = "def"
	StatHPPercent    Stat = "hp_pct"
	StatATKPercent   Stat = "atk_pct"
	StatDEFPercent   Stat = "def_pct"
	StatCritRate     Stat = "crit_rate"
	StatCritDmg      Stat = "crit_dmg"
	StatEnergyRech   Stat = "energy_recharge"
	StatElemMastery  Stat = "elemental_mastery"
	StatElemDmgBonus Stat = "elemental_dmg_bonus"
	StatPhysDmgBonus Stat = "physical_dmg_bonus"
	StatHealingBonus Stat = "healing_bonus"
)

// SubStat is a single secondary stat roll on an artifact.
type SubStat struct {
	Stat  Stat    `json:"stat"`
	Value float64 `json:"value"`
}

// MaxLevel is the highest enhancement level an artifact can reach.
// Every fourth level grants a sub-stat roll.
const (
	MaxLevel      = 20
	LevelsPerRoll = 4
	MaxSubStats   = 4
)

// Artifact is a single equippable item. The scoring and optimization
// engines treat artifacts as read-only input; only the inventory layer
// mutates them (leveling, set reassignment).
type Artifact struct {
	ID            string    `json:"id"`
	SetID         string    `json:"set_id"`
	Slot          Slot      `json:"slot"`
	MainStat      Stat      `json:"main_stat"`
	MainStatValue float64   `json:"main_stat_value"`
	SubStats      []SubStat `json:"sub_stats"`
	Level         int       `json:"level"`
	Rarity        int       `json:"rarity"`
	EquippedBy    string    `json:"equipped_by,omitempty"` // character id, empty if unequipped
}

// NewFlower builds a flower artifact. The main stat is fixed to flat HP,
// so callers cannot construct a flower with an invalid main stat.
func NewFlower(id, setID string, mainStatValue float64, subs []SubStat, level, rarity int) Artifact {
	return Artifact{
		ID: id, SetID: setID, Slot: SlotFlower,
		MainStat: StatHP, MainStatValue: mainStatValue,
		SubStats: subs, Level: level, Rarity: rarity,
	}
}

// NewPlume builds a plume artifact with its fixed flat ATK main stat.
func NewPlume(id, setID string, mainStatValue float64, subs []SubStat, level, rarity int) Artifact {
	return Artifact{
		ID: id, SetID: setID, Slot: SlotPlume,
		MainStat: StatATK, MainStatValue: mainStatValue,
		SubStats: subs, Level: level, Rarity: rarity,
	}
}

// Validate checks the structural invariants of an artifact. It is called
// at the inventory boundary; the engines assume validated input.
func (a *Artifact) Validate() error {
	if !a.Slot.Valid() {
		return fmt.Errorf("unknown slot %q", a.Slot)
	}
	if fixed, ok := a.Slot.FixedMainStat(); ok && a.MainStat != fixed {
		return fmt.Errorf("slot %s requires main stat %s, got %s", a.Slot, fixed, a.MainStat)
	}
	if a.Level < 0 || a.Level > MaxLevel {
		return fmt.Errorf("level %d out of range [0,%d]", a.Level, MaxLevel)
	}
	if a.Rarity < 1 || a.Rarity > 5 {
		return fmt.Errorf("rarity %d out of range [1,5]", a.Rarity)
	}
	if len(a.SubStats) > MaxSubStats {
		return fmt.Errorf("%d sub-stats exceeds maximum of %d", len(a.SubStats), MaxSubStats)
	}
	seen := make(map[Stat]bool, len(a.SubStats))
	for _, sub := range a.SubStats {
		if seen[sub.Stat] {
			return fmt.Errorf("duplicate sub-stat %s", sub.Stat)
		}
		seen[sub.Stat] = true
		if sub.Stat == a.MainStat {
			return fmt.Errorf("sub-stat %s duplicates main stat", sub.Stat)
		}
	}
	return nil
}

// RemainingUpgrades returns the number of sub-stat rolls the artifact can
// still receive before reaching max level.
func (a *Artifact) RemainingUpgrades() int {
	if a.Level >= MaxLevel {
		return 0
	}
	return (MaxLevel - a.Level) / LevelsPerRoll
}

// SubStatValue returns the value of the named sub-stat, or 0 if absent.
func (a *Artifact) SubStatValue(stat Stat) float64 {
	for _, sub := range a.SubStats {
		if sub.Stat == stat {
			return sub.Value
		}
	}
	return 0
}

// Set is reference data describing an artifact set and its bonuses.
// Sets are immutable once loaded from the catalog.
type Set struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TwoPieceBonus  string `json:"two_piece_bonus"`
	FourPieceBonus string `json:"four_piece_bonus,omitempty"` // empty for sets without one
}

// Inventory is a collection of artifacts as exchanged with storage and
// the export pipeline.
type Inventory struct {
	AccountID string     `json:"account_id,omitempty"`
	Artifacts []Artifact `json:"artifacts"`
}

// BySlot groups artifacts by their slot, preserving input order within
// each slot.
func BySlot(items []Artifact) map[Slot][]Artifact {
	grouped := make(map[Slot][]Artifact, len(Slots))
	for _, a := range items {
		grouped[a.Slot] = append(grouped[a.Slot], a)
	}
	return grouped
}

// CountBySet tallies how many of the given artifacts belong to each set.
func CountBySet(items []Artifact) map[string]int {
	counts := make(map[string]int)
	for _, a := range items {
		if a.SetID != "" {
			counts[a.SetID]++
		}
	}
	return counts
}
