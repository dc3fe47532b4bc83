package sim

import "time"

// Default input values restored at the start of every round.
const (
	DefaultAngle    = 45
	DefaultVelocity = 125
)

// Params bundles everything a Match needs to set up rounds.
type Params struct {
	Field        FieldParams
	Projectile   ProjectileParams
	PlayerRadius float64
	CarveRadius  float64
	RoundDelay   time.Duration

	DefaultAngle    int
	DefaultVelocity int
}

// DefaultParams returns the stock game.
func DefaultParams() Params {
	return Params{
		Field:           DefaultFieldParams(),
		Projectile:      DefaultProjectileParams(),
		PlayerRadius:    14,
		CarveRadius:     DefaultCarveRadius,
		RoundDelay:      2 * time.Second,
		DefaultAngle:    DefaultAngle,
		DefaultVelocity: DefaultVelocity,
	}
}

// Validate checks the field and the physics parameters.
func (p Params) Validate() error {
	if err := p.Field.Validate(); err != nil {
		return err
	}

	pp := p.Projectile
	switch {
	case pp.SpeedDivisor <= 0:
		return configErrorf("speed_divisor", "must be positive, got %g", pp.SpeedDivisor)
	case pp.InverseMass <= 0:
		return configErrorf("inverse_mass", "must be positive, got %g", pp.InverseMass)
	case pp.Radius <= 0:
		return configErrorf("projectile_radius", "must be positive, got %g", pp.Radius)
	case pp.BoundsY <= 0:
		return configErrorf("bounds_y", "must be positive, got %g", pp.BoundsY)
	case pp.MaxStep <= 0:
		return configErrorf("max_step", "must be positive, got %g", pp.MaxStep)
	case p.PlayerRadius <= 0:
		return configErrorf("player_radius", "must be positive, got %g", p.PlayerRadius)
	case p.CarveRadius <= 0:
		return configErrorf("carve_radius", "must be positive, got %g", p.CarveRadius)
	case p.RoundDelay < 0:
		return configErrorf("round_delay", "must not be negative, got %s", p.RoundDelay)
	}
	return nil
}
