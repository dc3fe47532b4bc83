package sim

import (
	"math"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// bodyRef names one side of a raw contact. A projectile side is resolved
// when the contact is classified, so a projectile that was retired by an
// earlier contact in the same batch shows up as missing.
type bodyRef struct {
	projectile *Projectile
	body       Body
}

func (r bodyRef) resolve() Body {
	if r.projectile == nil {
		return r.body
	}
	return Body{
		Category: CategoryProjectile,
		Name:     r.projectile.Name,
		Present:  r.projectile.Active,
	}
}

// Contact is a raw touch between two bodies during one world step.
type Contact struct {
	a, b  bodyRef
	Point core.Vec2
}

// Bodies resolves both sides as they are now.
func (c Contact) Bodies() (Body, Body) {
	return c.a.resolve(), c.b.resolve()
}

// World integrates the projectile against the current skyline.
type World struct {
	params    ProjectileParams
	buildings []*Building
	players   [2]*Player
}

// NewWorld wraps a round's bodies.
func NewWorld(p ProjectileParams, buildings []*Building, players [2]*Player) *World {
	return &World{params: p, buildings: buildings, players: players}
}

// Step advances p by dt seconds under gravity, in sub-steps no longer
// than MaxStep, and returns the contacts of the first sub-step that
// touched anything.
func (w *World) Step(p *Projectile, dt float64) []Contact {
	if p == nil || !p.Active || dt <= 0 {
		return nil
	}

	travel := (p.Velocity.Len() + math.Abs(w.params.Gravity)*dt) * dt
	n := 1
	if w.params.MaxStep > 0 {
		n = max(1, int(math.Ceil(travel/w.params.MaxStep)))
	}
	h := dt / float64(n)

	for range n {
		p.Velocity.Y += w.params.Gravity * h
		p.Position = p.Position.Add(p.Velocity.Scale(h))
		p.Rotation += p.Spin * h

		if contacts := w.contacts(p); len(contacts) > 0 {
			return contacts
		}
		if math.Abs(p.Position.Y) > w.params.BoundsY {
			return nil
		}
	}
	return nil
}

func (w *World) contacts(p *Projectile) []Contact {
	var out []Contact
	self := bodyRef{projectile: p}

	for _, pl := range w.players {
		if pl == nil || !pl.Alive {
			continue
		}
		if p.Position.Dist(pl.Position) < pl.Radius+w.params.Radius {
			other := bodyRef{body: Body{
				Category: CategoryPlayer,
				Name:     pl.ID.Name(),
				Player:   pl.ID,
				Present:  true,
			}}
			// Pairs arrive in either order; Classify normalizes them.
			out = append(out, Contact{a: other, b: self, Point: p.Position})
		}
	}

	r := w.params.Radius
	samples := [...]core.Vec2{
		p.Position,
		p.Position.Add(core.V(r, 0)),
		p.Position.Add(core.V(-r, 0)),
		p.Position.Add(core.V(0, r)),
		p.Position.Add(core.V(0, -r)),
	}
	for _, b := range w.buildings {
		for _, s := range samples {
			if !b.Covers(s) || b.shape == nil {
				continue
			}
			local := SceneToLocal(b, s)
			if b.shape.Contains(int(math.Floor(local.X)), int(math.Floor(local.Y))) {
				other := bodyRef{body: Body{
					Category: CategoryBuilding,
					Name:     BuildingName,
					Building: b.Index,
					Present:  true,
				}}
				out = append(out, Contact{a: self, b: other, Point: s})
				break
			}
		}
	}
	return out
}
