package scoring

import "github.com/relicsmith/relicsmith/pkg/artifact"

// CritValue computes the offense efficiency index of a sub-stat line:
// twice the crit-rate roll plus the crit-damage roll, rounded to one
// decimal. Absent crit stats count as zero.
func CritValue(subs []artifact.SubStat) float64 {
	var cv float64
	for _, sub := range subs {
		switch sub.Stat {
		case artifact.StatCritRate:
			cv += 2 * sub.Value
		case artifact.StatCritDmg:
			cv += sub.Value
		}
	}
	return round1(cv)
}

// Per-upgrade-step score deltas used by the upgrade projection. These
// are calibrated against observed roll distributions: a best-case roll
// lands in a maxed weighted stat, a worst-case roll lands in a
// zero-weight stat at minimum tier.
const (
	projectionBestPerStep  = 8.0
	projectionWorstPerStep = 0.5
	projectionAvgPerStep   = 3.0
)

// Projection estimates where an artifact's score can end up at level 20.
type Projection struct {
	RemainingSteps int     `json:"remaining_steps"`
	Best           float64 `json:"best"`
	Worst          float64 `json:"worst"`
	Average        float64 `json:"average"`
}

// ProjectUpgrade simulates best/worst/average-case score outcomes for
// the artifact's remaining upgrade steps (one step per four levels).
// A maxed artifact projects to its current score in all three cases.
func ProjectUpgrade(scored ScoredArtifact) Projection {
	steps := scored.Artifact.RemainingUpgrades()
	return Projection{
		RemainingSteps: steps,
		Best:           round1(scored.Score + float64(steps)*projectionBestPerStep),
		Worst:          round1(scored.Score + float64(steps)*projectionWorstPerStep),
		Average:        round1(scored.Score + float64(steps)*projectionAvgPerStep),
	}
}
