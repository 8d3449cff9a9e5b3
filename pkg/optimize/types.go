// Package optimize implements per-slot ranking and the optimal loadout
// search over a collection of artifacts. Like the scoring package it is
// pure: it reads an in-memory item list and a configuration and returns
// a result, with no I/O and no shared state between calls.
package optimize

import (
	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// TargetShape selects which set-bonus constraint the search optimizes
// under.
type TargetShape string

const (
	// TargetFullSet requires at least 4 of the 5 assigned artifacts to
	// share the primary set.
	TargetFullSet TargetShape = "full_set"
	// TargetSplitSet requires 2 artifacts of the primary set and 2 of a
	// different secondary set.
	TargetSplitSet TargetShape = "split_set"
	// TargetRainbow imposes no set constraint: best artifact per slot.
	TargetRainbow TargetShape = "rainbow"
)

// Request describes one optimal-assignment search.
type Request struct {
	// Shape may be left empty, in which case it is inferred from which
	// set ids are named: primary+secondary selects split_set, primary
	// alone selects full_set, neither selects rainbow.
	Shape          TargetShape `json:"shape,omitempty"`
	PrimarySetID   string      `json:"primary_set_id,omitempty"`
	SecondarySetID string      `json:"secondary_set_id,omitempty"`
}

// Assignment maps each slot to its chosen artifact. A slot with no
// viable candidate is simply absent from Slots; a nil *Assignment from
// the search means the target was infeasible for this inventory, which
// is an expected outcome while a collection is still being built up.
type Assignment struct {
	Slots               map[artifact.Slot]scoring.ScoredArtifact `json:"slots"`
	TotalScore          float64                                  `json:"total_score"`
	SetBonusDescription string                                   `json:"set_bonus_description"`
}

// FilledSlots returns how many of the five slots carry an artifact.
func (a *Assignment) FilledSlots() int {
	return len(a.Slots)
}

// Artifacts returns the assigned artifacts in canonical slot order.
func (a *Assignment) Artifacts() []artifact.Artifact {
	out := make([]artifact.Artifact, 0, len(a.Slots))
	for _, slot := range artifact.Slots {
		if sa, ok := a.Slots[slot]; ok {
			out = append(out, sa.Artifact)
		}
	}
	return out
}

// minFilledSlots is the feasibility floor shared by all target shapes:
// a loadout with fewer than 4 filled slots is reported as no result.
const minFilledSlots = 4
