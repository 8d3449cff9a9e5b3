package scoring

import (
	"fmt"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// Config is a named scoring configuration: stat weights, recommended
// main stats for the three free slots, and the qualifier multipliers.
type Config struct {
	// Weights maps stat names to non-negative weights. Stats missing
	// here fall back to the built-in default table.
	Weights map[artifact.Stat]float64

	// RecommendedMainStats holds the preferred main stat per slot, for
	// sands, goblet and circlet only. Flower and plume have fixed main
	// stats and take no recommendation.
	RecommendedMainStats map[artifact.Slot]artifact.Stat

	Multipliers Multipliers
}

// DefaultConfig returns the built-in configuration: default weight
// table, no main-stat recommendations, standard multipliers.
func DefaultConfig() *Config {
	return &Config{
		Weights:     DefaultWeights(),
		Multipliers: DefaultMultipliers(),
	}
}

// Validate checks the caller-supplied parts of the configuration.
// A negative weight or a recommendation for a fixed-main-stat slot is a
// programming error on the caller's side, not an input to degrade on.
func (c *Config) Validate() error {
	for stat, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("weight for %s is negative (%g)", stat, w)
		}
	}
	for slot := range c.RecommendedMainStats {
		if _, fixed := slot.FixedMainStat(); fixed {
			return fmt.Errorf("slot %s has a fixed main stat and takes no recommendation", slot)
		}
		if !slot.Valid() {
			return fmt.Errorf("unknown slot %q in main-stat recommendations", slot)
		}
	}
	return nil
}

// Scorer computes artifact scores against a fixed configuration. It is
// the single source of truth shared by the ranking, optimal-assignment
// and grading paths, so no two presentations can disagree on an
// artifact's score.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer. A nil config selects the built-in
// defaults. Zero-valued multipliers are replaced with the defaults so a
// config that only sets weights behaves as expected.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.Multipliers == (Multipliers{}) {
		c.Multipliers = DefaultMultipliers()
	}
	return &Scorer{cfg: c}
}

// Config returns the scorer's effective configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// Score computes the weighted quality score for a single artifact.
//
// Each sub-stat contributes normalize*weight*100 to the raw score; the
// main-stat, level and rarity multipliers then apply in that fixed
// order, and the result is rounded to one decimal place.
func (s *Scorer) Score(a artifact.Artifact) ScoredArtifact {
	scored := ScoredArtifact{Artifact: a}

	var raw float64
	for _, sub := range a.SubStats {
		contribution := Normalize(sub.Stat, sub.Value) * Weight(sub.Stat, s.cfg.Weights) * 100
		scored.SubStatBreakdown = append(scored.SubStatBreakdown, SubStatContribution{
			Stat:         sub.Stat,
			Value:        sub.Value,
			Contribution: round1(contribution),
		})
		raw += contribution
	}

	mainMult, match := s.cfg.Multipliers.MainStat(&a, s.cfg.RecommendedMainStats)
	scored.MainStatMatch = match

	score := raw * mainMult
	score *= s.cfg.Multipliers.Level(a.Level)
	score *= s.cfg.Multipliers.Rarity(a.Rarity)

	scored.Score = round1(score)
	return scored
}

// ScoreAll scores a batch of artifacts, preserving input order.
func (s *Scorer) ScoreAll(items []artifact.Artifact) []ScoredArtifact {
	out := make([]ScoredArtifact, 0, len(items))
	for _, a := range items {
		out = append(out, s.Score(a))
	}
	return out
}
