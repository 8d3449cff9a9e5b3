package optimize

import (
	"fmt"
	"math"
	"sort"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// Searcher runs optimal-assignment searches against a fixed scorer and
// set catalog. Safe for concurrent use: each search is independent.
type Searcher struct {
	scorer  *scoring.Scorer
	catalog artifact.Catalog
}

// NewSearcher creates a Searcher. A nil scorer selects the default
// scoring configuration.
func NewSearcher(scorer *scoring.Scorer, catalog artifact.Catalog) *Searcher {
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	if catalog == nil {
		catalog = artifact.MapCatalog{}
	}
	return &Searcher{scorer: scorer, catalog: catalog}
}

// Optimize searches for the highest-scoring assignment of one artifact
// per slot under the requested set-bonus target. A nil result with a
// nil error means the target is infeasible for this inventory (fewer
// than 4 slots can be filled), which callers present as "no
// recommendation available" rather than as a failure.
func (s *Searcher) Optimize(items []artifact.Artifact, req Request) (*Assignment, error) {
	shape, err := req.resolveShape()
	if err != nil {
		return nil, err
	}

	p := s.buildPools(items)

	switch shape {
	case TargetFullSet:
		return s.searchFullSet(p, req.PrimarySetID), nil
	case TargetSplitSet:
		return s.searchSplitSet(p, req.PrimarySetID, req.SecondarySetID), nil
	default:
		return s.searchRainbow(p), nil
	}
}

// resolveShape validates the request and infers the shape when unset.
func (r Request) resolveShape() (TargetShape, error) {
	shape := r.Shape
	if shape == "" {
		switch {
		case r.PrimarySetID != "" && r.SecondarySetID != "":
			shape = TargetSplitSet
		case r.PrimarySetID != "":
			shape = TargetFullSet
		default:
			shape = TargetRainbow
		}
	}

	switch shape {
	case TargetFullSet:
		if r.PrimarySetID == "" {
			return "", fmt.Errorf("full_set target requires a primary set id")
		}
	case TargetSplitSet:
		if r.PrimarySetID == "" || r.SecondarySetID == "" {
			return "", fmt.Errorf("split_set target requires primary and secondary set ids")
		}
		if r.PrimarySetID == r.SecondarySetID {
			return "", fmt.Errorf("split_set target requires two distinct sets, got %q twice", r.PrimarySetID)
		}
	case TargetRainbow:
	default:
		return "", fmt.Errorf("unknown target shape %q", shape)
	}

	return shape, nil
}

// pools holds the per-slot candidates, scored once and sorted stably by
// descending score. Every selection inside a search trial is then a
// constant-time best-of lookup, which keeps the whole search O(1) in
// item count instead of a permutation walk over items.
type pools struct {
	bySlot map[artifact.Slot][]scoring.ScoredArtifact
}

func (s *Searcher) buildPools(items []artifact.Artifact) pools {
	p := pools{bySlot: make(map[artifact.Slot][]scoring.ScoredArtifact, len(artifact.Slots))}
	for slot, candidates := range artifact.BySlot(items) {
		scored := s.scorer.ScoreAll(candidates)
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
		p.bySlot[slot] = scored
	}
	return p
}

// best returns the highest-scoring candidate in a slot, or nil.
func (p pools) best(slot artifact.Slot) *scoring.ScoredArtifact {
	if candidates := p.bySlot[slot]; len(candidates) > 0 {
		return &candidates[0]
	}
	return nil
}

// bestOfSet returns the highest-scoring candidate of the given set in a
// slot, or nil.
func (p pools) bestOfSet(slot artifact.Slot, setID string) *scoring.ScoredArtifact {
	for i := range p.bySlot[slot] {
		if p.bySlot[slot][i].Artifact.SetID == setID {
			return &p.bySlot[slot][i]
		}
	}
	return nil
}

// searchFullSet looks for the best loadout with >= 4 pieces of the
// primary set. Each of the 5 trials designates one slot as the rainbow
// slot (free choice) and fills the other four from the primary set;
// ties keep the first trial found, so results are deterministic.
func (s *Searcher) searchFullSet(p pools, primary string) *Assignment {
	var best map[artifact.Slot]scoring.ScoredArtifact
	bestTotal := math.Inf(-1)

	for _, rainbow := range artifact.Slots {
		chosen := make(map[artifact.Slot]scoring.ScoredArtifact, len(artifact.Slots))
		feasible := true
		for _, slot := range artifact.Slots {
			var pick *scoring.ScoredArtifact
			if slot == rainbow {
				pick = p.best(slot)
			} else {
				pick = p.bestOfSet(slot, primary)
			}
			if pick == nil {
				feasible = false
				break
			}
			chosen[slot] = *pick
		}
		if !feasible {
			continue
		}
		if setCount(chosen, primary) < 4 {
			continue
		}
		if total := totalScore(chosen); total > bestTotal {
			bestTotal = total
			best = chosen
		}
	}

	if best != nil {
		return s.finalize(best)
	}

	// No trial worked: the primary set lacks full coverage. Fill what it
	// can and accept a partial loadout if at least 4 slots end up used.
	fallback := make(map[artifact.Slot]scoring.ScoredArtifact)
	for _, slot := range artifact.Slots {
		if pick := p.bestOfSet(slot, primary); pick != nil {
			fallback[slot] = *pick
		}
	}
	if len(fallback) < minFilledSlots {
		return nil
	}
	return s.finalize(fallback)
}

// searchSplitSet looks for the best loadout carrying two pieces of the
// primary set and two of the secondary set. It enumerates the 30 ways
// to partition the 5 slots into (2 primary, 2 secondary, 1 rainbow) in
// lexicographic slot order and fills each role with a best-of lookup.
func (s *Searcher) searchSplitSet(p pools, primary, secondary string) *Assignment {
	var best map[artifact.Slot]scoring.ScoredArtifact
	bestTotal := math.Inf(-1)

	for pi := 0; pi < len(artifact.Slots); pi++ {
		for pj := pi + 1; pj < len(artifact.Slots); pj++ {
			rest := remainingSlots(pi, pj)
			for si := 0; si < len(rest); si++ {
				for sj := si + 1; sj < len(rest); sj++ {
					chosen := make(map[artifact.Slot]scoring.ScoredArtifact, len(artifact.Slots))
					feasible := true

					fill := func(slot artifact.Slot, pick *scoring.ScoredArtifact) {
						if pick == nil {
							feasible = false
							return
						}
						chosen[slot] = *pick
					}

					fill(artifact.Slots[pi], p.bestOfSet(artifact.Slots[pi], primary))
					fill(artifact.Slots[pj], p.bestOfSet(artifact.Slots[pj], primary))
					fill(rest[si], p.bestOfSet(rest[si], secondary))
					fill(rest[sj], p.bestOfSet(rest[sj], secondary))
					for _, slot := range rest {
						if slot != rest[si] && slot != rest[sj] {
							fill(slot, p.best(slot))
						}
					}

					if !feasible {
						continue
					}
					if total := totalScore(chosen); total > bestTotal {
						bestTotal = total
						best = chosen
					}
				}
			}
		}
	}

	if best != nil {
		return s.finalize(best)
	}
	return s.splitSetGreedy(p, primary, secondary)
}

// splitSetGreedy is the fallback when no complete partition is
// feasible: top-2 primary pieces by unique slot, top-2 secondary pieces
// by unique remaining slot, best of any set elsewhere. The result must
// still carry both two-piece bonuses and fill at least 4 slots.
func (s *Searcher) splitSetGreedy(p pools, primary, secondary string) *Assignment {
	chosen := make(map[artifact.Slot]scoring.ScoredArtifact)

	if !takeTopOfSet(p, chosen, primary, 2) {
		return nil
	}
	if !takeTopOfSet(p, chosen, secondary, 2) {
		return nil
	}
	for _, slot := range artifact.Slots {
		if _, used := chosen[slot]; used {
			continue
		}
		if pick := p.best(slot); pick != nil {
			chosen[slot] = *pick
		}
	}

	if len(chosen) < minFilledSlots {
		return nil
	}
	return s.finalize(chosen)
}

// takeTopOfSet moves the n highest-scoring artifacts of a set into the
// assignment, one per still-unused slot. Returns false if fewer than n
// could be placed.
func takeTopOfSet(p pools, chosen map[artifact.Slot]scoring.ScoredArtifact, setID string, n int) bool {
	var candidates []scoring.ScoredArtifact
	for _, slot := range artifact.Slots {
		if _, used := chosen[slot]; used {
			continue
		}
		if pick := p.bestOfSet(slot, setID); pick != nil {
			candidates = append(candidates, *pick)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) < n {
		return false
	}
	for _, pick := range candidates[:n] {
		chosen[pick.Artifact.Slot] = pick
	}
	return true
}

// searchRainbow fills every slot with its best artifact, with no set
// constraint.
func (s *Searcher) searchRainbow(p pools) *Assignment {
	chosen := make(map[artifact.Slot]scoring.ScoredArtifact)
	for _, slot := range artifact.Slots {
		if pick := p.best(slot); pick != nil {
			chosen[slot] = *pick
		}
	}
	if len(chosen) < minFilledSlots {
		return nil
	}
	return s.finalize(chosen)
}

func (s *Searcher) finalize(chosen map[artifact.Slot]scoring.ScoredArtifact) *Assignment {
	a := &Assignment{
		Slots:      chosen,
		TotalScore: totalScore(chosen),
	}
	a.SetBonusDescription = ResolveBonus(artifact.CountBySet(a.Artifacts()), s.catalog)
	return a
}

func totalScore(chosen map[artifact.Slot]scoring.ScoredArtifact) float64 {
	var total float64
	for _, sa := range chosen {
		total += sa.Score
	}
	// Scores carry one decimal; keep the sum at the same precision.
	return math.Round(total*10) / 10
}

func setCount(chosen map[artifact.Slot]scoring.ScoredArtifact, setID string) int {
	count := 0
	for _, sa := range chosen {
		if sa.Artifact.SetID == setID {
			count++
		}
	}
	return count
}

// remainingSlots returns the three slots not at indices pi and pj, in
// canonical order.
func remainingSlots(pi, pj int) []artifact.Slot {
	rest := make([]artifact.Slot, 0, 3)
	for i, slot := range artifact.Slots {
		if i != pi && i != pj {
			rest = append(rest, slot)
		}
	}
	return rest
}
