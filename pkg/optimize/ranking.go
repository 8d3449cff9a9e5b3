package optimize

import (
	"fmt"
	"sort"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// DefaultRankLimit is the per-slot list length used when the caller
// does not specify one.
const DefaultRankLimit = 5

// RankBySlot scores every artifact and returns, per slot, the top
// candidates in non-increasing score order. The sort is stable, so
// equal-scoring artifacts keep their input order. Slots with no
// candidates are absent from the result.
//
// A limit below 1 is a caller contract violation and returns an error.
func RankBySlot(items []artifact.Artifact, scorer *scoring.Scorer, limit int) (map[artifact.Slot][]scoring.ScoredArtifact, error) {
	if limit < 1 {
		return nil, fmt.Errorf("rank limit must be >= 1, got %d", limit)
	}

	ranked := make(map[artifact.Slot][]scoring.ScoredArtifact)
	for slot, candidates := range artifact.BySlot(items) {
		scored := scorer.ScoreAll(candidates)
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
		if len(scored) > limit {
			scored = scored[:limit]
		}
		ranked[slot] = scored
	}

	return ranked, nil
}
