package scoring_test

import (
	"testing"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// critArtifact builds a maxed 5-star artifact whose score is driven by
// a single crit-rate sub-stat, which makes expected scores easy to read:
// a full 23.3 roll at default weight 1.0 scores exactly 100.
func critArtifact(slot artifact.Slot, critRate float64) artifact.Artifact {
	main := artifact.StatATKPercent
	if fixed, ok := slot.FixedMainStat(); ok {
		main = fixed
	}
	return artifact.Artifact{
		ID: "test", SetID: "emblem_of_severed_fate", Slot: slot,
		MainStat: main, MainStatValue: 46.6,
		SubStats: []artifact.SubStat{{Stat: artifact.StatCritRate, Value: critRate}},
		Level:    20,
		Rarity:   5,
	}
}

func TestScoreMaxedCritRate(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	scored := scorer.Score(critArtifact(artifact.SlotFlower, 23.3))

	if scored.Score != 100.0 {
		t.Errorf("score = %g, want 100.0", scored.Score)
	}
	if !scored.MainStatMatch {
		t.Error("fixed-main-stat slot should always match")
	}
	if len(scored.SubStatBreakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(scored.SubStatBreakdown))
	}
	if scored.SubStatBreakdown[0].Contribution != 100.0 {
		t.Errorf("contribution = %g, want 100.0", scored.SubStatBreakdown[0].Contribution)
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	a := artifact.Artifact{
		ID: "d1", Slot: artifact.SlotCirclet,
		MainStat: artifact.StatCritDmg, MainStatValue: 62.2,
		SubStats: []artifact.SubStat{
			{Stat: artifact.StatCritRate, Value: 7.8},
			{Stat: artifact.StatATKPercent, Value: 11.1},
			{Stat: artifact.StatEnergyRech, Value: 6.5},
			{Stat: artifact.StatHP, Value: 538},
		},
		Level: 16, Rarity: 5,
	}

	first := scorer.Score(a)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(a); got.Score != first.Score {
			t.Fatalf("run %d scored %g, first run scored %g", i, got.Score, first.Score)
		}
	}
}

func TestScoreMonotonicInSubStatValue(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	prev := -1.0
	for _, cr := range []float64{0, 3.9, 7.8, 11.7, 15.6, 19.4, 23.3} {
		score := scorer.Score(critArtifact(artifact.SlotGoblet, cr)).Score
		if score < prev {
			t.Fatalf("score decreased: crit_rate %g scored %g, below %g", cr, score, prev)
		}
		prev = score
	}
}

func TestScoreMainStatMismatchHalves(t *testing.T) {
	matched := scoring.NewScorer(nil)
	mismatched := scoring.NewScorer(&scoring.Config{
		RecommendedMainStats: map[artifact.Slot]artifact.Stat{
			artifact.SlotSands: artifact.StatEnergyRech,
		},
	})

	a := critArtifact(artifact.SlotSands, 23.3) // atk_pct main stat

	base := matched.Score(a)
	penalized := mismatched.Score(a)

	if base.Score != 100.0 {
		t.Fatalf("baseline score = %g, want 100.0", base.Score)
	}
	if penalized.Score != 50.0 {
		t.Errorf("mismatched score = %g, want 50.0", penalized.Score)
	}
	if penalized.MainStatMatch {
		t.Error("mismatched artifact reported MainStatMatch = true")
	}
}

func TestScoreLevelMultiplier(t *testing.T) {
	scorer := scoring.NewScorer(nil)

	tests := []struct {
		level int
		want  float64
	}{
		{0, 50.0},
		{10, 75.0},
		{20, 100.0},
	}
	for _, tt := range tests {
		a := critArtifact(artifact.SlotFlower, 23.3)
		a.Level = tt.level
		if got := scorer.Score(a).Score; got != tt.want {
			t.Errorf("level %d scored %g, want %g", tt.level, got, tt.want)
		}
	}
}

func TestScoreFourStarMultiplier(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	a := critArtifact(artifact.SlotFlower, 23.3)
	a.Rarity = 4

	if got := scorer.Score(a).Score; got != 85.0 {
		t.Errorf("4-star score = %g, want 85.0", got)
	}
}

func TestScoreZeroWeightStatsContributeNothing(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	a := artifact.Artifact{
		ID: "def1", Slot: artifact.SlotFlower,
		MainStat: artifact.StatHP, MainStatValue: 4780,
		SubStats: []artifact.SubStat{
			{Stat: artifact.StatDEFPercent, Value: 43.7},
			{Stat: artifact.StatDEF, Value: 139},
		},
		Level: 20, Rarity: 5,
	}

	if got := scorer.Score(a).Score; got != 0.0 {
		t.Errorf("defensive-only artifact scored %g, want 0.0 under default weights", got)
	}
}

func TestWeightPartialTableFallsBack(t *testing.T) {
	custom := map[artifact.Stat]float64{artifact.StatATKPercent: 0}

	if got := scoring.Weight(artifact.StatATKPercent, custom); got != 0 {
		t.Errorf("overridden weight = %g, want 0", got)
	}
	// Stats the caller did not name keep their default weight.
	if got := scoring.Weight(artifact.StatCritRate, custom); got != 1.0 {
		t.Errorf("crit_rate weight = %g, want default 1.0", got)
	}
}

func TestNormalizeClamps(t *testing.T) {
	if got := scoring.Normalize(artifact.StatCritRate, 50.0); got != 1.0 {
		t.Errorf("above-ceiling value normalized to %g, want 1.0", got)
	}
	if got := scoring.Normalize(artifact.StatCritRate, -1.0); got != 0.0 {
		t.Errorf("negative value normalized to %g, want 0.0", got)
	}
	if got := scoring.Normalize(artifact.StatHealingBonus, 35.9); got != 0.1 {
		t.Errorf("unknown stat normalized to %g, want neutral 0.1", got)
	}
}

func TestConfigValidate(t *testing.T) {
	negative := &scoring.Config{
		Weights: map[artifact.Stat]float64{artifact.StatCritRate: -0.5},
	}
	if err := negative.Validate(); err == nil {
		t.Error("negative weight should fail validation")
	}

	fixedSlot := &scoring.Config{
		RecommendedMainStats: map[artifact.Slot]artifact.Stat{
			artifact.SlotFlower: artifact.StatHP,
		},
	}
	if err := fixedSlot.Validate(); err == nil {
		t.Error("recommendation for a fixed-main-stat slot should fail validation")
	}

	unknownSlot := &scoring.Config{
		RecommendedMainStats: map[artifact.Slot]artifact.Stat{
			"weapon": artifact.StatATK,
		},
	}
	if err := unknownSlot.Validate(); err == nil {
		t.Error("recommendation for an unknown slot should fail validation")
	}
}

func TestScoreAllPreservesOrder(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	items := []artifact.Artifact{
		critArtifact(artifact.SlotFlower, 3.9),
		critArtifact(artifact.SlotPlume, 23.3),
	}

	scored := scorer.ScoreAll(items)
	if len(scored) != 2 {
		t.Fatalf("scored %d items, want 2", len(scored))
	}
	if scored[0].Artifact.Slot != artifact.SlotFlower {
		t.Error("ScoreAll reordered its input")
	}
}
