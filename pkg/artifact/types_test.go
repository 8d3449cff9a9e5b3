package artifact_test

import (
	"testing"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

func TestValidate(t *testing.T) {
	valid := artifact.Artifact{
		ID: "a1", SetID: "emblem", Slot: artifact.SlotSands,
		MainStat: artifact.StatATKPercent, MainStatValue: 46.6,
		SubStats: []artifact.SubStat{
			{Stat: artifact.StatCritRate, Value: 7.8},
			{Stat: artifact.StatCritDmg, Value: 14.8},
		},
		Level: 12, Rarity: 5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid artifact rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(a *artifact.Artifact)
	}{
		{"unknown slot", func(a *artifact.Artifact) { a.Slot = "weapon" }},
		{"level above max", func(a *artifact.Artifact) { a.Level = 21 }},
		{"negative level", func(a *artifact.Artifact) { a.Level = -1 }},
		{"rarity zero", func(a *artifact.Artifact) { a.Rarity = 0 }},
		{"rarity above five", func(a *artifact.Artifact) { a.Rarity = 6 }},
		{"too many sub-stats", func(a *artifact.Artifact) {
			a.SubStats = []artifact.SubStat{
				{Stat: artifact.StatCritRate}, {Stat: artifact.StatCritDmg},
				{Stat: artifact.StatATK}, {Stat: artifact.StatHP},
				{Stat: artifact.StatDEF},
			}
		}},
		{"duplicate sub-stat", func(a *artifact.Artifact) {
			a.SubStats = []artifact.SubStat{
				{Stat: artifact.StatCritRate, Value: 3.5},
				{Stat: artifact.StatCritRate, Value: 3.9},
			}
		}},
		{"sub-stat duplicates main stat", func(a *artifact.Artifact) {
			a.SubStats = []artifact.SubStat{{Stat: artifact.StatATKPercent, Value: 5.8}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			if err := a.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateFixedMainStats(t *testing.T) {
	flower := artifact.NewFlower("f1", "emblem", 4780, nil, 20, 5)
	if err := flower.Validate(); err != nil {
		t.Errorf("flower constructor produced invalid artifact: %v", err)
	}

	flower.MainStat = artifact.StatATK
	if err := flower.Validate(); err == nil {
		t.Error("flower with ATK main stat should be invalid")
	}

	plume := artifact.NewPlume("p1", "emblem", 311, nil, 20, 5)
	if err := plume.Validate(); err != nil {
		t.Errorf("plume constructor produced invalid artifact: %v", err)
	}
}

func TestRemainingUpgrades(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 5},
		{3, 4},
		{4, 4},
		{8, 3},
		{12, 2},
		{16, 1},
		{19, 0},
		{20, 0},
	}

	for _, tt := range tests {
		a := artifact.Artifact{Level: tt.level}
		if got := a.RemainingUpgrades(); got != tt.want {
			t.Errorf("RemainingUpgrades at level %d = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestBySlot(t *testing.T) {
	items := []artifact.Artifact{
		{ID: "f1", Slot: artifact.SlotFlower},
		{ID: "s1", Slot: artifact.SlotSands},
		{ID: "f2", Slot: artifact.SlotFlower},
	}

	grouped := artifact.BySlot(items)
	if len(grouped[artifact.SlotFlower]) != 2 {
		t.Errorf("flower group has %d items, want 2", len(grouped[artifact.SlotFlower]))
	}
	if grouped[artifact.SlotFlower][0].ID != "f1" {
		t.Error("grouping should preserve input order within a slot")
	}
	if len(grouped[artifact.SlotCirclet]) != 0 {
		t.Error("empty slot should have no entries")
	}
}

func TestCountBySet(t *testing.T) {
	items := []artifact.Artifact{
		{ID: "1", SetID: "emblem"},
		{ID: "2", SetID: "emblem"},
		{ID: "3", SetID: "shime"},
		{ID: "4", SetID: ""}, // no set, not counted
	}

	counts := artifact.CountBySet(items)
	if counts["emblem"] != 2 || counts["shime"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("empty set id should not be counted")
	}
}

func TestSubStatValue(t *testing.T) {
	a := artifact.Artifact{
		SubStats: []artifact.SubStat{
			{Stat: artifact.StatCritRate, Value: 7.8},
		},
	}
	if got := a.SubStatValue(artifact.StatCritRate); got != 7.8 {
		t.Errorf("SubStatValue(crit_rate) = %g, want 7.8", got)
	}
	if got := a.SubStatValue(artifact.StatCritDmg); got != 0 {
		t.Errorf("SubStatValue(crit_dmg) = %g, want 0 for absent stat", got)
	}
}
