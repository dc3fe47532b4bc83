package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGorillasConfig() {
		t.Errorf("embedded YAML and DefaultGorillasConfig disagree:\n%+v\n%+v", cfg, DefaultGorillasConfig())
	}
}

func TestDefaultsMatchSimulation(t *testing.T) {
	got := DefaultGorillasConfig().Params()
	want := sim.DefaultParams()

	if got != want {
		t.Errorf("Params() = %+v, expected %+v", got, want)
	}
	if err := DefaultGorillasConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("field:\n  min_height: 100\n  max_height: 200\nmatch:\n  round_delay_ms: 500\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGorillas(path)
	if err != nil {
		t.Fatalf("LoadGorillas: %v", err)
	}
	if cfg.Field.MinHeight != 100 || cfg.Field.MaxHeight != 200 {
		t.Errorf("heights = %d..%d, expected 100..200", cfg.Field.MinHeight, cfg.Field.MaxHeight)
	}
	if cfg.Params().RoundDelay != 500*time.Millisecond {
		t.Errorf("RoundDelay = %v", cfg.Params().RoundDelay)
	}
	// Untouched keys keep their defaults.
	if cfg.Field.Width != 1024 || cfg.Projectile.Gravity != -1470 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadGorillas(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGorillas(path)
	if !errors.Is(err, sim.ErrInvalidConfig) {
		t.Errorf("malformed YAML should be a config error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GorillasConfig)
		field  string
	}{
		{"zero pitch", func(c *GorillasConfig) { c.Field.WindowPitch = 0 }, "window_pitch"},
		{"empty heights", func(c *GorillasConfig) { c.Field.MinHeight = 700; c.Field.MaxHeight = 100 }, "height"},
		{"too tall", func(c *GorillasConfig) { c.Field.MaxHeight = 800 }, "max_height"},
		{"angle range", func(c *GorillasConfig) { c.Match.DefaultAngle = 120 }, "default_angle"},
		{"velocity range", func(c *GorillasConfig) { c.Match.DefaultVelocity = -1 }, "default_velocity"},
		{"carve radius", func(c *GorillasConfig) { c.Match.CarveRadius = 0 }, "carve_radius"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGorillasConfig()
			tc.modify(&cfg)

			var ce *sim.ConfigError
			if err := cfg.Validate(); !errors.As(err, &ce) {
				t.Fatalf("expected *sim.ConfigError, got %v", err)
			}
			if ce.Field != tc.field {
				t.Errorf("Field = %q, expected %q", ce.Field, tc.field)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultGorillasConfig()
		ApplyGorillasPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produces an invalid config: %v", p, err)
		}
	}

	cfg := DefaultGorillasConfig()
	ApplyGorillasPreset(&cfg, DifficultyNormal)
	if cfg != DefaultGorillasConfig() {
		t.Error("normal preset should leave defaults alone")
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("nightmare") != "" {
		t.Error("ParsePreset mismatch")
	}
}
