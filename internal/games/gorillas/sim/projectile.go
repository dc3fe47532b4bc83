package sim

import (
	"math"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// PlayerID identifies one of the two players.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opponent.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index returns 0 for Player1 and 1 for Player2.
func (p PlayerID) Index() int {
	return int(p) - 1
}

// Name returns the body name of the player's node.
func (p PlayerID) Name() string {
	if p == Player1 {
		return Player1Name
	}
	return Player2Name
}

// ProjectileParams holds the launch calibration and flight physics.
type ProjectileParams struct {
	SpawnOffset  core.Vec2 // relative to player 1; mirrored in x for player 2
	Spin         float64   // magnitude; player 1 spins negative
	SpeedDivisor float64   // velocity setting / divisor = impulse magnitude
	InverseMass  float64   // velocity gained per unit of impulse
	Gravity      float64   // scene units/s², negative is down
	Radius       float64
	BoundsY      float64 // |y| beyond this is a miss
	MaxStep      float64 // longest sub-step travel, in scene units
}

// DefaultProjectileParams returns the stock calibration.
func DefaultProjectileParams() ProjectileParams {
	return ProjectileParams{
		SpawnOffset:  core.V(-30, 40),
		Spin:         20,
		SpeedDivisor: 10,
		InverseMass:  100,
		Gravity:      -1470,
		Radius:       8,
		BoundsY:      1000,
		MaxStep:      4,
	}
}

// Projectile is the thrown banana.
type Projectile struct {
	Owner    PlayerID
	Position core.Vec2
	Velocity core.Vec2
	Impulse  core.Vec2
	Spin     float64 // angular velocity, radians/s
	Rotation float64
	Name     string
	Active   bool
}

// Impulse returns the one-off launch impulse for a throw.
func Impulse(player PlayerID, angleDeg, velocity int, divisor float64) core.Vec2 {
	rad := core.DegToRad(angleDeg)
	speed := float64(velocity) / divisor
	x := math.Cos(rad) * speed
	if player == Player2 {
		x = -x
	}
	return core.V(x, math.Sin(rad)*speed)
}

// Controller owns the single live projectile.
type Controller struct {
	params  ProjectileParams
	current *Projectile
}

// NewController creates a controller with no projectile.
func NewController(p ProjectileParams) *Controller {
	return &Controller{params: p}
}

// Current returns the live projectile, or nil.
func (c *Controller) Current() *Projectile {
	if c.current == nil || !c.current.Active {
		return nil
	}
	return c.current
}

// Launch retires any live projectile and spawns a new one next to from.
func (c *Controller) Launch(player PlayerID, from core.Vec2, angleDeg, velocity int) *Projectile {
	c.Retire()

	offset := c.params.SpawnOffset
	spin := -c.params.Spin
	if player == Player2 {
		offset.X = -offset.X
		spin = -spin
	}

	imp := Impulse(player, angleDeg, velocity, c.params.SpeedDivisor)
	c.current = &Projectile{
		Owner:    player,
		Position: from.Add(offset),
		Velocity: imp.Scale(c.params.InverseMass),
		Impulse:  imp,
		Spin:     spin,
		Name:     ProjectileName,
		Active:   true,
	}
	return c.current
}

// Retire removes the live projectile, if any.
func (c *Controller) Retire() {
	if c.current != nil {
		c.current.Active = false
		c.current.Name = ""
		c.current = nil
	}
}

// Tick reports a miss, retiring the projectile, once it has left the
// vertical bounds without resolving a collision.
func (c *Controller) Tick() (missed bool) {
	p := c.Current()
	if p == nil {
		return false
	}
	if math.Abs(p.Position.Y) > c.params.BoundsY {
		c.Retire()
		return true
	}
	return false
}
