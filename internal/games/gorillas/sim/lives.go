package sim

import "github.com/vovakirdan/tui-gorillas/internal/core"

// StartingLives is how many hits a player can take in a match.
const StartingLives = 3

// Player is one gorilla. Lives only go down and score only goes up.
type Player struct {
	ID       PlayerID
	Position core.Vec2 // scene-space center, atop its building
	Radius   float64
	Lives    int
	Score    int
	Alive    bool
}

// LifeIndicatorIndex returns which indicator slot to hide after a player
// drops to remaining lives. Player 2 hides its slots in the order 0, 1, 0
// as remaining goes 2, 1, 0. ok is false when remaining has no slot.
func LifeIndicatorIndex(player PlayerID, remaining int) (index int, ok bool) {
	if remaining < 0 || remaining >= StartingLives {
		return 0, false
	}
	if player == Player1 {
		return remaining, true
	}
	if remaining == 1 {
		return 1, true
	}
	return 0, true
}
