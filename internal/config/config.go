// Package config provides YAML-based game configuration loading and
// difficulty presets for the gorillas duel.
package config

import (
	"time"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
)

// GorillasConfig contains all configuration for the gorillas duel.
type GorillasConfig struct {
	Field      GorillasField      `yaml:"field"`
	Projectile GorillasProjectile `yaml:"projectile"`
	Match      GorillasMatch      `yaml:"match"`
}

// GorillasField defines the skyline generator, in scene units.
type GorillasField struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	WindowPitch int `yaml:"window_pitch"`
	MinUnits    int `yaml:"min_units"` // Narrowest building in window pitches
	MaxUnits    int `yaml:"max_units"`
	MinHeight   int `yaml:"min_height"`
	MaxHeight   int `yaml:"max_height"`
	Gap         int `yaml:"gap"`
	StartX      int `yaml:"start_x"`
}

// GorillasProjectile defines launch calibration and flight physics.
type GorillasProjectile struct {
	SpawnOffsetX float64 `yaml:"spawn_offset_x"` // Player 1; mirrored for player 2
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`
	Spin         float64 `yaml:"spin"`
	SpeedDivisor float64 `yaml:"speed_divisor"`
	InverseMass  float64 `yaml:"inverse_mass"`
	Gravity      float64 `yaml:"gravity"`
	Radius       float64 `yaml:"radius"`
	BoundsY      float64 `yaml:"bounds_y"`
	MaxStep      float64 `yaml:"max_step"`
}

// GorillasMatch defines round and input parameters.
type GorillasMatch struct {
	PlayerRadius    float64 `yaml:"player_radius"`
	CarveRadius     float64 `yaml:"carve_radius"`
	RoundDelayMS    int     `yaml:"round_delay_ms"`
	DefaultAngle    int     `yaml:"default_angle"`
	DefaultVelocity int     `yaml:"default_velocity"`
}

// Input ranges exposed to players.
const (
	MaxAngle    = 90
	MaxVelocity = 250
)

// Params converts the config into simulation parameters.
func (c GorillasConfig) Params() sim.Params {
	return sim.Params{
		Field: sim.FieldParams{
			FieldWidth:  c.Field.Width,
			FieldHeight: c.Field.Height,
			WindowPitch: c.Field.WindowPitch,
			MinUnits:    c.Field.MinUnits,
			MaxUnits:    c.Field.MaxUnits,
			MinHeight:   c.Field.MinHeight,
			MaxHeight:   c.Field.MaxHeight,
			Gap:         c.Field.Gap,
			StartX:      c.Field.StartX,
		},
		Projectile: sim.ProjectileParams{
			SpawnOffset:  core.V(c.Projectile.SpawnOffsetX, c.Projectile.SpawnOffsetY),
			Spin:         c.Projectile.Spin,
			SpeedDivisor: c.Projectile.SpeedDivisor,
			InverseMass:  c.Projectile.InverseMass,
			Gravity:      c.Projectile.Gravity,
			Radius:       c.Projectile.Radius,
			BoundsY:      c.Projectile.BoundsY,
			MaxStep:      c.Projectile.MaxStep,
		},
		PlayerRadius:    c.Match.PlayerRadius,
		CarveRadius:     c.Match.CarveRadius,
		RoundDelay:      time.Duration(c.Match.RoundDelayMS) * time.Millisecond,
		DefaultAngle:    c.Match.DefaultAngle,
		DefaultVelocity: c.Match.DefaultVelocity,
	}
}

// Validate returns a *sim.ConfigError for the first unusable value.
func (c GorillasConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Match.DefaultAngle < 0 || c.Match.DefaultAngle > MaxAngle {
		return &sim.ConfigError{Field: "default_angle", Reason: "must be within [0, 90]"}
	}
	if c.Match.DefaultVelocity < 0 || c.Match.DefaultVelocity > MaxVelocity {
		return &sim.ConfigError{Field: "default_velocity", Reason: "must be within [0, 250]"}
	}
	if c.Field.MaxHeight >= c.Field.Height {
		return &sim.ConfigError{Field: "max_height", Reason: "buildings must fit below the top of the field"}
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

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p
	default:
		return ""
	}
}

// ApplyGorillasPreset modifies the config based on a difficulty preset.
// Easy means a low skyline and big craters; hard means tall towers
// that shrug off hits.
func ApplyGorillasPreset(cfg *GorillasConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Field.MinHeight = 200
		cfg.Field.MaxHeight = 450
		cfg.Match.CarveRadius = 48
	case DifficultyHard:
		cfg.Field.MinHeight = 400
		cfg.Field.MaxHeight = 650
		cfg.Match.CarveRadius = 24
	}
}
