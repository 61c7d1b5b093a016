// Package config provides YAML-based game configuration loading and
// difficulty presets for the chase game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ChaseConfig contains all tunable parameters of a chase session.
type ChaseConfig struct {
	// Maze is the registered layout ID. Ignored when Layout is set.
	Maze string `yaml:"maze"`

	// Layout is an inline maze in '#', '.', ' ' notation.
	Layout []string `yaml:"layout,omitempty"`

	Timing  TimingConfig  `yaml:"timing"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies []EnemyConfig `yaml:"enemies"`
	Policy  PolicyConfig  `yaml:"policy"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TimingConfig defines the fixed-timestep scheduler parameters.
type TimingConfig struct {
	StepHz     int `yaml:"step_hz"`      // Simulation steps per second
	MaxDeltaMS int `yaml:"max_delta_ms"` // Per-frame clamp in milliseconds
}

// Step returns the fixed step duration.
func (t TimingConfig) Step() time.Duration {
	if t.StepHz <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.StepHz)
}

// MaxDelta returns the per-frame clamp.
func (t TimingConfig) MaxDelta() time.Duration {
	return time.Duration(t.MaxDeltaMS) * time.Millisecond
}

// Position is an explicit start tile.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	Rate  float64   `yaml:"rate"`            // Tiles per second
	Start *Position `yaml:"start,omitempty"` // Nil uses the maze default
}

// EnemyConfig defines one enemy in roster order.
type EnemyConfig struct {
	Label string    `yaml:"label"` // Identity and color name, e.g. "red"
	Rate  float64   `yaml:"rate"`
	Start *Position `yaml:"start,omitempty"`
}

// PolicyConfig tunes the enemy decision policy.
type PolicyConfig struct {
	ReevaluateChance float64 `yaml:"reevaluate_chance"` // Per-tick probability in [0, 1]
}

// ScoringConfig defines score rules.
type ScoringConfig struct {
	CollectReward int `yaml:"collect_reward"`
}

// Validate checks that the config describes a playable session.
func (c ChaseConfig) Validate() error {
	var errs []error

	if c.Maze == "" && len(c.Layout) == 0 {
		errs = append(errs, errors.New("maze or layout is required"))
	}
	if c.Timing.StepHz <= 0 {
		errs = append(errs, fmt.Errorf("timing.step_hz must be positive, got %d", c.Timing.StepHz))
	}
	if c.Timing.MaxDeltaMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.max_delta_ms must be positive, got %d", c.Timing.MaxDeltaMS))
	}
	if c.Player.Rate <= 0 {
		errs = append(errs, fmt.Errorf("player.rate must be positive, got %g", c.Player.Rate))
	}
	for i, e := range c.Enemies {
		if e.Label == "" {
			errs = append(errs, fmt.Errorf("enemies[%d].label is required", i))
		}
		if e.Rate <= 0 {
			errs = append(errs, fmt.Errorf("enemies[%d].rate must be positive, got %g", i, e.Rate))
		}
	}
	if c.Policy.ReevaluateChance < 0 || c.Policy.ReevaluateChance > 1 {
		errs = append(errs, fmt.Errorf("policy.reevaluate_chance must be in [0, 1], got %g", c.Policy.ReevaluateChance))
	}
	if c.Scoring.CollectReward <= 0 {
		errs = append(errs, fmt.Errorf("scoring.collect_reward must be positive, got %d", c.Scoring.CollectReward))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales enemy speed and decisiveness relative to the player.
// Normal leaves the config untouched.
func ApplyPreset(cfg *ChaseConfig, preset DifficultyPreset) {
	var rateFactor, chance float64
	switch preset {
	case DifficultyEasy:
		rateFactor, chance = 0.75, 0.2
	case DifficultyHard:
		rateFactor, chance = 1.25, 0.5
	default:
		return
	}

	for i := range cfg.Enemies {
		cfg.Enemies[i].Rate *= rateFactor
	}
	cfg.Policy.ReevaluateChance = chance
}
