// Package config handles loading and managing Relicsmith configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/optimize"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// Config is the top-level configuration for Relicsmith.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Target  TargetConfig  `yaml:"target"`
	Ranking RankingConfig `yaml:"ranking"`
}

// ScoringConfig controls the scoring engine: stat weights, recommended
// main stats per free slot, and the qualifier multipliers.
type ScoringConfig struct {
	Weights     map[string]float64 `yaml:"weights"`
	MainStats   map[string]string  `yaml:"main_stats"` // sands/goblet/circlet only
	Multipliers MultiplierConfig   `yaml:"multipliers"`
}

// MultiplierConfig exposes the tunable qualifier multipliers. Zero
// values select the built-in defaults.
type MultiplierConfig struct {
	MainStatMismatch float64 `yaml:"main_stat_mismatch"`
	LevelFloor       float64 `yaml:"level_floor"`
	FourStar         float64 `yaml:"four_star"`
}

// TargetConfig names the set-bonus target for the loadout search.
type TargetConfig struct {
	Shape        string `yaml:"shape"` // full_set, split_set, rainbow; empty = infer
	PrimarySet   string `yaml:"primary_set"`
	SecondarySet string `yaml:"secondary_set"`
}

// RankingConfig controls the per-slot recommendation lists.
type RankingConfig struct {
	Limit int `yaml:"limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:   map[string]float64{},
			MainStats: map[string]string{},
		},
		Ranking: RankingConfig{Limit: optimize.DefaultRankLimit},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Ranking.Limit == 0 {
		cfg.Ranking.Limit = optimize.DefaultRankLimit
	}

	return cfg, nil
}

// FindConfigFile looks for .relicsmith/config.yaml in the given
// directory and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".relicsmith", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ScoringConfig converts the file representation into the engine's
// configuration and validates it.
func (c *Config) ScoringConfig() (*scoring.Config, error) {
	// Unset multipliers default individually, so a file naming only one
	// of them does not zero out the others.
	mult := scoring.DefaultMultipliers()
	if v := c.Scoring.Multipliers.MainStatMismatch; v != 0 {
		mult.MainStatMismatch = v
	}
	if v := c.Scoring.Multipliers.LevelFloor; v != 0 {
		mult.LevelFloor = v
	}
	if v := c.Scoring.Multipliers.FourStar; v != 0 {
		mult.FourStar = v
	}
	sc := &scoring.Config{Multipliers: mult}

	if len(c.Scoring.Weights) > 0 {
		sc.Weights = make(map[artifact.Stat]float64, len(c.Scoring.Weights))
		for stat, w := range c.Scoring.Weights {
			sc.Weights[artifact.Stat(stat)] = w
		}
	}
	if len(c.Scoring.MainStats) > 0 {
		sc.RecommendedMainStats = make(map[artifact.Slot]artifact.Stat, len(c.Scoring.MainStats))
		for slot, stat := range c.Scoring.MainStats {
			sc.RecommendedMainStats[artifact.Slot(slot)] = artifact.Stat(stat)
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return sc, nil
}

// Request converts the target section into a search request.
func (c *Config) Request() optimize.Request {
	return optimize.Request{
		Shape:          optimize.TargetShape(c.Target.Shape),
		PrimarySetID:   c.Target.PrimarySet,
		SecondarySetID: c.Target.SecondarySet,
	}
}
