package scoring_test

import (
	"testing"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

func TestGradeFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, scoring.GradeS},
		{80, scoring.GradeS},
		{79.9, scoring.GradeA},
		{60, scoring.GradeA},
		{59.9, scoring.GradeB},
		{40, scoring.GradeB},
		{39.9, scoring.GradeC},
		{20, scoring.GradeC},
		{19.9, scoring.GradeD},
		{0, scoring.GradeD},
	}

	for _, tt := range tests {
		if got := scoring.GradeFromScore(tt.score); got != tt.want {
			t.Errorf("GradeFromScore(%g) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestTierFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, scoring.TierEndgame},
		{60, scoring.TierEndgame},
		{59.9, scoring.TierTransitional},
		{30, scoring.TierTransitional},
		{29.9, scoring.TierFodder},
		{0, scoring.TierFodder},
	}

	for _, tt := range tests {
		if got := scoring.TierFromScore(tt.score); got != tt.want {
			t.Errorf("TierFromScore(%g) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestGradeAgreesWithScore(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	a := artifact.Artifact{
		ID: "g1", SetID: "noblesse_oblige", Slot: artifact.SlotCirclet,
		MainStat: artifact.StatCritRate, MainStatValue: 31.1,
		SubStats: []artifact.SubStat{
			{Stat: artifact.StatCritDmg, Value: 21.0},
			{Stat: artifact.StatATKPercent, Value: 9.9},
			{Stat: artifact.StatEnergyRech, Value: 4.5},
		},
		Level:  16,
		Rarity: 5,
	}

	result := scorer.Grade(a)
	scored := scorer.Score(a)

	if result.Score != scored.Score {
		t.Errorf("Grade score %g disagrees with Score %g", result.Score, scored.Score)
	}
	if result.Grade != scoring.GradeFromScore(scored.Score) {
		t.Errorf("grade %s does not match score %g", result.Grade, scored.Score)
	}
	if result.Tier != scoring.TierFromScore(scored.Score) {
		t.Errorf("tier %s does not match score %g", result.Tier, scored.Score)
	}
	if result.CritValue != scoring.CritValue(a.SubStats) {
		t.Errorf("crit value %g does not match CritValue", result.CritValue)
	}
	if result.Projection.RemainingSteps != 1 {
		t.Errorf("remaining steps = %d, want 1", result.Projection.RemainingSteps)
	}
}

func TestGradeAllPreservesOrder(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	items := []artifact.Artifact{
		critArtifact(artifact.SlotFlower, 3.9),
		critArtifact(artifact.SlotPlume, 23.3),
	}

	results := scorer.GradeAll(items)
	if len(results) != 2 {
		t.Fatalf("graded %d items, want 2", len(results))
	}
	if results[0].Artifact.Slot != artifact.SlotFlower {
		t.Error("GradeAll reordered its input")
	}
	if results[0].Score >= results[1].Score {
		t.Error("weaker artifact should grade below the stronger one")
	}
}
