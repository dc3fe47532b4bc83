package sim

import (
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

const frame = 1.0 / 60

func stepUntilContact(w *World, p *Projectile, frames int) []Contact {
	for range frames {
		if contacts := w.Step(p, frame); len(contacts) > 0 {
			return contacts
		}
	}
	return nil
}

func TestWorldDropOntoRoof(t *testing.T) {
	b := renderedBuilding(t, 0, 200, 300)
	w := NewWorld(DefaultProjectileParams(), []*Building{b}, [2]*Player{})
	p := &Projectile{Position: core.V(100, 360), Name: ProjectileName, Active: true}

	contacts := stepUntilContact(w, p, 120)
	if len(contacts) != 1 {
		t.Fatalf("expected one contact, got %d", len(contacts))
	}

	a, bb := contacts[0].Bodies()
	ev, ok := Classify(a, bb, contacts[0].Point)
	if !ok || ev.Kind != EventBuildingHit || ev.Building != 0 {
		t.Fatalf("expected a building hit on building 0, got %+v (ok=%v)", ev, ok)
	}
	if ev.Point.Y > b.Top() || ev.Point.Y < b.Top()-DefaultProjectileParams().MaxStep-1 {
		t.Errorf("contact at y=%v should be just below the roof at %v", ev.Point.Y, b.Top())
	}
}

func TestWorldFallsThroughHole(t *testing.T) {
	b := renderedBuilding(t, 0, 200, 300)
	// Bore a shaft through the middle of the building.
	for y := 0.0; y < 300; y += 16 {
		Carve(b, core.V(100, y), DefaultCarveRadius)
	}
	Carve(b, core.V(100, 300), DefaultCarveRadius)

	w := NewWorld(DefaultProjectileParams(), []*Building{b}, [2]*Player{})
	p := &Projectile{Position: core.V(100, 360), Name: ProjectileName, Active: true}

	if contacts := stepUntilContact(w, p, 60); len(contacts) != 0 {
		t.Errorf("projectile should fall through the shaft, got contact at %v", contacts[0].Point)
	}
	if p.Position.Y >= 0 {
		t.Errorf("projectile should be below ground level by now, y=%v", p.Position.Y)
	}
}

func weightless() ProjectileParams {
	p := DefaultProjectileParams()
	p.Gravity = 0
	return p
}

func TestWorldPlayerContact(t *testing.T) {
	target := &Player{ID: Player2, Position: core.V(500, 500), Radius: 14, Alive: true}
	w := NewWorld(weightless(), nil, [2]*Player{nil, target})
	p := &Projectile{Position: core.V(400, 500), Velocity: core.V(600, 0), Name: ProjectileName, Active: true}

	contacts := stepUntilContact(w, p, 30)
	if len(contacts) != 1 {
		t.Fatalf("expected one contact, got %d", len(contacts))
	}

	a, b := contacts[0].Bodies()
	if a.Category != CategoryPlayer {
		t.Errorf("player body should come first, got category %d", a.Category)
	}
	ev, ok := Classify(a, b, contacts[0].Point)
	if !ok || ev.Kind != EventPlayerHit || ev.Victim != Player2 {
		t.Fatalf("expected a hit on player 2, got %+v (ok=%v)", ev, ok)
	}
	if d := p.Position.Dist(target.Position); d >= 14+8 {
		t.Errorf("contact reported at distance %v", d)
	}
}

func TestWorldIgnoresDestroyedPlayer(t *testing.T) {
	target := &Player{ID: Player1, Position: core.V(500, 500), Radius: 14}
	w := NewWorld(weightless(), nil, [2]*Player{target, nil})
	p := &Projectile{Position: core.V(400, 500), Velocity: core.V(600, 0), Name: ProjectileName, Active: true}

	if contacts := stepUntilContact(w, p, 30); len(contacts) != 0 {
		t.Error("destroyed player should not collide")
	}
}

func TestContactResolvesLate(t *testing.T) {
	b := renderedBuilding(t, 0, 200, 300)
	w := NewWorld(DefaultProjectileParams(), []*Building{b}, [2]*Player{})
	p := &Projectile{Position: core.V(100, 360), Name: ProjectileName, Active: true}

	contacts := stepUntilContact(w, p, 120)
	if len(contacts) == 0 {
		t.Fatal("expected a contact")
	}

	p.Name = ""
	p.Active = false
	a, bb := contacts[0].Bodies()
	if _, ok := Classify(a, bb, contacts[0].Point); ok {
		t.Error("contact with a retired projectile should be dropped")
	}
}

func TestWorldSubSteps(t *testing.T) {
	// A fast shot must not tunnel through a thin wall.
	b := renderedBuilding(t, 300, 80, 300)
	w := NewWorld(DefaultProjectileParams(), []*Building{b}, [2]*Player{})
	p := &Projectile{Position: core.V(200, 150), Velocity: core.V(3000, 0), Name: ProjectileName, Active: true}

	contacts := stepUntilContact(w, p, 10)
	if len(contacts) == 0 {
		t.Fatal("fast projectile tunnelled through the building")
	}
	if x := contacts[0].Point.X; x < 300 || x > 305 {
		t.Errorf("contact at x=%v, expected near the wall at 300", x)
	}
}
