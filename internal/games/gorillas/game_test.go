package gorillas

import (
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
	"github.com/vovakirdan/tui-gorillas/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}
	return g
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("gorillas") {
		t.Fatal("gorillas should register itself")
	}
	g, err := registry.Create("gorillas")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Skyline Gorillas" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestAim(t *testing.T) {
	g := newTestGame(t)

	if a, v := g.Aim(); a != 45 || v != 125 {
		t.Fatalf("initial aim = %d/%d, expected 45/125", a, v)
	}

	g.Step(frameOf(core.ActionAngleUp, core.ActionCoarse))
	g.Step(frameOf(core.ActionPowerDown))
	if a, v := g.Aim(); a != 50 || v != 124 {
		t.Errorf("aim = %d/%d, expected 50/124", a, v)
	}

	for range 30 {
		g.Step(frameOf(core.ActionAngleUp, core.ActionPowerUp, core.ActionCoarse))
	}
	if a, v := g.Aim(); a != 90 || v != 250 {
		t.Errorf("aim should clamp to 90/250, got %d/%d", a, v)
	}

	for range 60 {
		g.Step(frameOf(core.ActionAngleDown, core.ActionPowerDown, core.ActionCoarse))
	}
	if a, v := g.Aim(); a != 0 || v != 0 {
		t.Errorf("aim should clamp to 0/0, got %d/%d", a, v)
	}
}

func TestFireAndPause(t *testing.T) {
	g := newTestGame(t)

	g.Step(frameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	g.Step(frameOf(core.ActionFire))
	if g.Match().Phase() != sim.PhaseAwaitingLaunch {
		t.Error("throwing while paused should be ignored")
	}

	g.Step(frameOf(core.ActionPause))
	g.Step(frameOf(core.ActionFire))
	if g.Match().Phase() != sim.PhaseInFlight {
		t.Errorf("Phase() = %v after fire, expected in_flight", g.Match().Phase())
	}
}

func TestGameOverSummaryAndRematch(t *testing.T) {
	g := newTestGame(t)
	m := g.Match()

	for range 3 {
		m.Launch(45, 125)
		m.ResolveCollision(sim.CollisionEvent{Kind: sim.EventPlayerHit, Victim: sim.Player1})
		for range 130 {
			g.Step(core.NewInputFrame())
		}
	}

	st := g.State()
	if !st.GameOver || st.Summary == nil {
		t.Fatalf("expected game over with a summary, got %+v", st)
	}
	if st.Summary.Winner != 2 || st.Summary.Score2 != 3 || st.Summary.Score1 != 0 || st.Summary.Rounds != 3 {
		t.Errorf("unexpected summary %+v", st.Summary)
	}
	if st.Summary.ID != m.ID().String() {
		t.Errorf("summary id %q does not match match id", st.Summary.ID)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PLAYER 2 WINS") {
		t.Errorf("game over box missing:\n%s", screen.String())
	}

	g.Step(frameOf(core.ActionRestart))
	if st := g.State(); st.GameOver || st.Summary != nil {
		t.Errorf("restart should start a new match, state %+v", st)
	}
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "P1") || !strings.Contains(row, "P2") || !strings.Contains(row, "ROUND 1") {
		t.Errorf("HUD row = %q", row)
	}
	if row := screen.Row(1); !strings.Contains(row, "angle 45°") || !strings.Contains(row, "velocity 125") {
		t.Errorf("aim row = %q", row)
	}

	sky := nearestANSI(sim.SkyColor)
	if c := screen.GetCell(0, hudRows); c.Color != sky {
		t.Errorf("top-left of the field should be sky, got %+v", c)
	}

	buildings := 0
	for x := range screen.Width() {
		if c := screen.GetCell(x, screen.Height()-1); c.Color != sky {
			buildings++
		}
	}
	if buildings < screen.Width()/2 {
		t.Errorf("ground row should be mostly buildings, got %d of %d cells", buildings, screen.Width())
	}

	players := strings.Count(screen.String(), string(PlayerChar))
	if players != 2 {
		t.Errorf("expected 2 players on screen, got %d", players)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "TOO SMALL") {
		t.Errorf("expected a too-small message:\n%s", screen.String())
	}
}

func TestComposeTransparentIsSky(t *testing.T) {
	p := sim.DefaultFieldParams()
	// Unrendered buildings are fully transparent.
	buildings, err := sim.GenerateField(rand.New(rand.NewSource(1)), p)
	if err != nil {
		t.Fatal(err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, p.FieldWidth, p.FieldHeight))
	composeSkyline(dst, buildings)

	for _, pt := range []image.Point{{0, 0}, {512, 700}, {1023, 767}, {300, 500}} {
		if c := dst.NRGBAAt(pt.X, pt.Y); c != sim.SkyColor {
			t.Errorf("pixel %v = %v, expected sky", pt, c)
		}
	}
}

func TestComposeFlipsY(t *testing.T) {
	p := sim.DefaultFieldParams()
	buildings, err := sim.GenerateField(rand.New(rand.NewSource(1)), p)
	if err != nil {
		t.Fatal(err)
	}
	b := buildings[1]
	sim.Render(b, rand.New(rand.NewSource(2)))

	dst := image.NewNRGBA(image.Rect(0, 0, p.FieldWidth, p.FieldHeight))
	composeSkyline(dst, buildings)

	x := int(b.Center.X)
	if c := dst.NRGBAAt(x, p.FieldHeight-1); c == sim.SkyColor {
		t.Error("bottom of the image should be building")
	}
	if c := dst.NRGBAAt(x, p.FieldHeight-b.Height-1); c != sim.SkyColor {
		t.Error("just above the roof should be sky")
	}
}

func TestNearestANSI(t *testing.T) {
	tests := []struct {
		in   color.NRGBA
		want uint8
	}{
		{color.NRGBA{A: 0xff}, 16},
		{color.NRGBA{R: 0xff, A: 0xff}, 196},
		{color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 231},
		{color.NRGBA{R: 8, G: 8, B: 8, A: 0xff}, 232},
	}

	for _, tc := range tests {
		idx, ok := nearestANSI(tc.in).ANSIIndex()
		if !ok || idx != tc.want {
			t.Errorf("nearestANSI(%v) = %d, expected %d", tc.in, idx, tc.want)
		}
	}
}

func TestConfigErrorShown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  window_pitch: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	if g.Err() == nil || g.Match() != nil {
		t.Fatal("invalid config should prevent the match from starting")
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig should report the same error")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CONFIG ERROR") {
		t.Error("config error should be displayed")
	}
	g.Step(frameOf(core.ActionFire)) // must not panic
}
