package scoring_test

import (
	"testing"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

func TestCritValue(t *testing.T) {
	tests := []struct {
		name string
		subs []artifact.SubStat
		want float64
	}{
		{
			name: "both crit stats",
			subs: []artifact.SubStat{
				{Stat: artifact.StatCritRate, Value: 3.9},
				{Stat: artifact.StatCritDmg, Value: 7.8},
			},
			want: 15.6,
		},
		{
			name: "crit rate only",
			subs: []artifact.SubStat{{Stat: artifact.StatCritRate, Value: 11.65}},
			want: 23.3,
		},
		{
			name: "no crit stats",
			subs: []artifact.SubStat{
				{Stat: artifact.StatATKPercent, Value: 17.5},
				{Stat: artifact.StatHP, Value: 897},
			},
			want: 0,
		},
		{
			name: "empty",
			subs: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.CritValue(tt.subs); got != tt.want {
				t.Errorf("CritValue = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestProjectUpgrade(t *testing.T) {
	a := critArtifact(artifact.SlotFlower, 23.3)
	a.Level = 12 // 2 upgrade steps left

	scorer := scoring.NewScorer(nil)
	scored := scorer.Score(a)
	proj := scoring.ProjectUpgrade(scored)

	if proj.RemainingSteps != 2 {
		t.Fatalf("remaining steps = %d, want 2", proj.RemainingSteps)
	}
	if proj.Best != scored.Score+16.0 {
		t.Errorf("best = %g, want %g", proj.Best, scored.Score+16.0)
	}
	if proj.Worst != scored.Score+1.0 {
		t.Errorf("worst = %g, want %g", proj.Worst, scored.Score+1.0)
	}
	if proj.Average != scored.Score+6.0 {
		t.Errorf("average = %g, want %g", proj.Average, scored.Score+6.0)
	}
}

func TestProjectUpgradeMaxed(t *testing.T) {
	scorer := scoring.NewScorer(nil)
	scored := scorer.Score(critArtifact(artifact.SlotFlower, 23.3))

	proj := scoring.ProjectUpgrade(scored)
	if proj.RemainingSteps != 0 {
		t.Fatalf("remaining steps = %d, want 0", proj.RemainingSteps)
	}
	if proj.Best != scored.Score || proj.Worst != scored.Score || proj.Average != scored.Score {
		t.Errorf("maxed artifact projection %+v should equal current score %g", proj, scored.Score)
	}
}
