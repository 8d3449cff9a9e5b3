package scoring

import "github.com/relicsmith/relicsmith/pkg/artifact"

// maxAttainable is the highest value a 5-star artifact can reach in a
// single sub-stat at level 20 with every upgrade roll invested in it
// (initial roll plus five enhancement rolls, all at the maximum tier).
var maxAttainable = map[artifact.Stat]float64{
	artifact.StatCritRate:    23.3,
	artifact.StatCritDmg:     46.6,
	artifact.StatATKPercent:  35.0,
	artifact.StatHPPercent:   35.0,
	artifact.StatDEFPercent:  43.7,
	artifact.StatEnergyRech:  38.9,
	artifact.StatElemMastery: 139.9,
	artifact.StatATK:         117.0,
	artifact.StatHP:          1794.0,
	artifact.StatDEF:         139.0,
}

// unknownStatNorm is the neutral normalization assigned to stats the
// model has no ceiling for. Such stats carry zero default weight, so
// they contribute nothing unless a caller weights them explicitly.
const unknownStatNorm = 0.1

// Normalize maps a raw sub-stat value to [0,1] relative to the stat's
// maximum attainable value. Unknown stats get a fixed neutral value
// rather than an error.
func Normalize(stat artifact.Stat, value float64) float64 {
	max, ok := maxAttainable[stat]
	if !ok {
		return unknownStatNorm
	}
	n := value / max
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// defaultWeights is the built-in stat priority applied when a caller
// supplies no weight table: crit stats first, then offensive percent
// stats, then recharge and mastery, then flat attack. Defensive and
// flat survivability stats default to zero.
var defaultWeights = map[artifact.Stat]float64{
	artifact.StatCritRate:    1.0,
	artifact.StatCritDmg:     0.85,
	artifact.StatATKPercent:  0.7,
	artifact.StatEnergyRech:  0.55,
	artifact.StatElemMastery: 0.55,
	artifact.StatATK:         0.35,
}

// DefaultWeights returns a copy of the built-in weight table.
func DefaultWeights() map[artifact.Stat]float64 {
	w := make(map[artifact.Stat]float64, len(defaultWeights))
	for stat, weight := range defaultWeights {
		w[stat] = weight
	}
	return w
}

// Weight looks up a stat's weight in the given table. A stat missing
// from the caller's table falls back to the default table, so partial
// tables only override what they name. A stat absent from both tables
// weighs zero; this is silent degradation, not an error.
func Weight(stat artifact.Stat, weights map[artifact.Stat]float64) float64 {
	if weights != nil {
		if w, ok := weights[stat]; ok {
			return w
		}
	}
	return defaultWeights[stat]
}
