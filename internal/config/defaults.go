package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the built-in configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Maze: "classic",
		Timing: TimingConfig{
			StepHz:     30,
			MaxDeltaMS: 100,
		},
		Player: PlayerConfig{
			Rate: 8,
		},
		Enemies: []EnemyConfig{
			{Label: "red", Rate: 8},
			{Label: "pink", Rate: 8},
		},
		Policy: PolicyConfig{
			ReevaluateChance: 0.3,
		},
		Scoring: ScoringConfig{
			CollectReward: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
