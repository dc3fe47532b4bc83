package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestImpulse(t *testing.T) {
	tests := []struct {
		player   PlayerID
		angle    int
		velocity int
		x, y     float64
	}{
		{Player1, 45, 125, 8.8388, 8.8388},
		{Player2, 45, 125, -8.8388, 8.8388},
		{Player1, 0, 100, 10, 0},
		{Player2, 90, 250, 0, 25},
		{Player1, 30, 0, 0, 0},
	}

	for _, tc := range tests {
		got := Impulse(tc.player, tc.angle, tc.velocity, 10)
		if !approx(got.X, tc.x) || !approx(got.Y, tc.y) {
			t.Errorf("Impulse(%d, %d, %d) = %v, expected (%.4f, %.4f)",
				tc.player, tc.angle, tc.velocity, got, tc.x, tc.y)
		}
	}
}

func TestLaunchMirrorsPlayers(t *testing.T) {
	c := NewController(DefaultProjectileParams())

	p1 := c.Launch(Player1, core.V(100, 500), 45, 125)
	if p1.Position != core.V(70, 540) {
		t.Errorf("player 1 spawn = %v, expected (70, 540)", p1.Position)
	}
	if p1.Spin >= 0 {
		t.Errorf("player 1 spin = %v, expected negative", p1.Spin)
	}
	if !approx(p1.Velocity.X, 883.883) || !approx(p1.Velocity.Y, 883.883) {
		t.Errorf("player 1 velocity = %v", p1.Velocity)
	}

	p2 := c.Launch(Player2, core.V(900, 500), 45, 125)
	if p2.Position != core.V(930, 540) {
		t.Errorf("player 2 spawn = %v, expected (930, 540)", p2.Position)
	}
	if p2.Spin <= 0 {
		t.Errorf("player 2 spin = %v, expected positive", p2.Spin)
	}
	if p2.Impulse.X >= 0 || p2.Impulse.Y <= 0 {
		t.Errorf("player 2 should throw up and left, impulse = %v", p2.Impulse)
	}
	if p2.Owner != Player2 || p2.Name != ProjectileName {
		t.Errorf("unexpected projectile identity: %+v", p2)
	}
}

func TestLaunchRetiresPrevious(t *testing.T) {
	c := NewController(DefaultProjectileParams())

	first := c.Launch(Player1, core.V(0, 0), 45, 100)
	second := c.Launch(Player1, core.V(0, 0), 60, 100)

	if first.Active || first.Name != "" {
		t.Error("first projectile should be retired")
	}
	if c.Current() != second {
		t.Error("Current() should return the newest projectile")
	}

	c.Retire()
	if c.Current() != nil {
		t.Error("Current() should be nil after Retire")
	}
	c.Retire() // no-op
}

func TestTickBounds(t *testing.T) {
	tests := []struct {
		y      float64
		missed bool
	}{
		{999, false},
		{1000, false},
		{1001, true},
		{-1001, true},
		{-500, false},
	}

	for _, tc := range tests {
		c := NewController(DefaultProjectileParams())
		p := c.Launch(Player1, core.V(0, 0), 45, 100)
		p.Position.Y = tc.y

		if got := c.Tick(); got != tc.missed {
			t.Errorf("Tick() at y=%v = %v, expected %v", tc.y, got, tc.missed)
		}
		if tc.missed && c.Current() != nil {
			t.Errorf("projectile at y=%v should be retired", tc.y)
		}
	}

	if NewController(DefaultProjectileParams()).Tick() {
		t.Error("Tick() without a projectile should not report a miss")
	}
}

func TestPlayerIDOther(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 {
		t.Error("Other() should swap players")
	}
	if Player1.Index() != 0 || Player2.Index() != 1 {
		t.Error("Index() should be zero-based")
	}
}
