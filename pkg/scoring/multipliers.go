package scoring

import "github.com/relicsmith/relicsmith/pkg/artifact"

// Multipliers holds the qualifier multipliers applied on top of the raw
// sub-stat score. These are tunable game-balance parameters, not
// load-bearing invariants, so they live in a struct rather than as
// package constants.
type Multipliers struct {
	// MainStatMismatch is applied when the artifact's main stat does
	// not match the configured recommendation for its slot.
	MainStatMismatch float64

	// LevelFloor is the score fraction an unleveled artifact keeps.
	// The level multiplier is LevelFloor + (1-LevelFloor)*level/20,
	// so a fresh drop never scores zero but a maxed artifact always
	// outscores an identical unleveled one.
	LevelFloor float64

	// FourStar is applied to 4-star artifacts. Lower rarities are
	// filtered out upstream and never reach the engine.
	FourStar float64
}

// DefaultMultipliers returns the standard qualifier multipliers.
func DefaultMultipliers() Multipliers {
	return Multipliers{
		MainStatMismatch: 0.5,
		LevelFloor:       0.5,
		FourStar:         0.85,
	}
}

// MainStat returns the main-stat multiplier for an artifact. Slots with
// a fixed main stat (flower, plume) always match; for the other slots a
// match requires the configured recommendation to be set and equal.
func (m Multipliers) MainStat(a *artifact.Artifact, recommended map[artifact.Slot]artifact.Stat) (mult float64, match bool) {
	if _, fixed := a.Slot.FixedMainStat(); fixed {
		return 1.0, true
	}
	if rec, ok := recommended[a.Slot]; ok && rec != a.MainStat {
		return m.MainStatMismatch, false
	}
	return 1.0, true
}

// Level returns the enhancement-level multiplier.
func (m Multipliers) Level(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level > artifact.MaxLevel {
		level = artifact.MaxLevel
	}
	return m.LevelFloor + (1-m.LevelFloor)*float64(level)/float64(artifact.MaxLevel)
}

// Rarity returns the rarity multiplier: 1.0 for 5-star, FourStar below.
func (m Multipliers) Rarity(rarity int) float64 {
	if rarity >= 5 {
		return 1.0
	}
	return m.FourStar
}
