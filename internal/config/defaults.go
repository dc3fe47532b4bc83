package config

import (
	_ "embed"
)

//go:embed defaults/gorillas.yaml
var defaultGorillasYAML []byte

// DefaultGorillasConfig returns the default gorillas configuration.
func DefaultGorillasConfig() GorillasConfig {
	return GorillasConfig{
		Field: GorillasField{
			Width:       1024,
			Height:      768,
			WindowPitch: 40,
			MinUnits:    2,
			MaxUnits:    4,
			MinHeight:   300,
			MaxHeight:   600,
			Gap:         2,
			StartX:      -15,
		},
		Projectile: GorillasProjectile{
			SpawnOffsetX: -30,
			SpawnOffsetY: 40,
			Spin:         20,
			SpeedDivisor: 10,
			InverseMass:  100,
			Gravity:      -1470,
			Radius:       8,
			BoundsY:      1000,
			MaxStep:      4,
		},
		Match: GorillasMatch{
			PlayerRadius:    14,
			CarveRadius:     32,
			RoundDelayMS:    2000,
			DefaultAngle:    45,
			DefaultVelocity: 125,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGorillasYAML
}
