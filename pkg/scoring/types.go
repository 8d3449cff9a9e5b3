// Package scoring implements the Relicsmith artifact scoring engine.
// It maps an artifact and a scoring configuration to a weighted,
// explainable quality score. All functions are pure: identical inputs
// always produce identical outputs, and nothing here performs I/O.
package scoring

import (
	"math"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// ScoredArtifact is the output of scoring a single artifact.
// Recomputed on every call; never persisted by the engine itself.
type ScoredArtifact struct {
	Artifact         artifact.Artifact     `json:"artifact"`
	Score            float64               `json:"score"`
	MainStatMatch    bool                  `json:"main_stat_match"`
	SubStatBreakdown []SubStatContribution `json:"sub_stat_breakdown"`
}

// SubStatContribution records how much a single sub-stat added to the
// raw score, before the qualifier multipliers.
type SubStatContribution struct {
	Stat         artifact.Stat `json:"stat"`
	Value        float64       `json:"value"`
	Contribution float64       `json:"contribution"`
}

// Grade buckets for the standalone grading path.
const (
	GradeS = "S"
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
)

// GradeFromScore maps a score to a letter grade.
func GradeFromScore(score float64) string {
	switch {
	case score >= 80:
		return GradeS
	case score >= 60:
		return GradeA
	case score >= 40:
		return GradeB
	case score >= 20:
		return GradeC
	default:
		return GradeD
	}
}

// Tier buckets classify an artifact's long-term usefulness.
const (
	TierEndgame      = "endgame"
	TierTransitional = "transitional"
	TierFodder       = "fodder"
)

// TierFromScore maps a score to a tier bucket.
func TierFromScore(score float64) string {
	switch {
	case score >= 60:
		return TierEndgame
	case score >= 30:
		return TierTransitional
	default:
		return TierFodder
	}
}

// round1 rounds to one decimal place, the precision all scores are
// reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
