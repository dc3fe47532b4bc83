package sim

import "github.com/vovakirdan/tui-gorillas/internal/core"

// Category tags a physics body. Values are bit flags.
type Category uint8

const (
	CategoryProjectile Category = 1
	CategoryBuilding   Category = 2
	CategoryPlayer     Category = 4
)

// Body names carried by live nodes.
const (
	ProjectileName = "banana"
	BuildingName   = "building"
	Player1Name    = "player1"
	Player2Name    = "player2"
)

// Body is one side of a raw contact as seen by the classifier.
// Present is false when the node behind it no longer exists.
type Body struct {
	Category Category
	Name     string
	Building int      // index, for CategoryBuilding
	Player   PlayerID // for CategoryPlayer
	Present  bool
}

// EventKind is the semantic outcome of a contact.
type EventKind int

const (
	EventBuildingHit EventKind = iota + 1
	EventPlayerHit
)

func (k EventKind) String() string {
	switch k {
	case EventBuildingHit:
		return "building_hit"
	case EventPlayerHit:
		return "player_hit"
	default:
		return "unknown"
	}
}

// CollisionEvent is produced by Classify.
type CollisionEvent struct {
	Kind     EventKind
	Building int       // EventBuildingHit
	Point    core.Vec2 // contact point in scene space
	Victim   PlayerID  // EventPlayerHit
}

// Classify maps an unordered pair of bodies to at most one event.
// Only a present, named projectile touching a building or a player
// produces anything.
func Classify(a, b Body, point core.Vec2) (CollisionEvent, bool) {
	if !a.Present || !b.Present {
		return CollisionEvent{}, false
	}
	if a.Category > b.Category {
		a, b = b, a
	}
	if a.Category != CategoryProjectile || a.Name != ProjectileName {
		return CollisionEvent{}, false
	}

	switch b.Category {
	case CategoryBuilding:
		return CollisionEvent{Kind: EventBuildingHit, Building: b.Building, Point: point}, true
	case CategoryPlayer:
		return CollisionEvent{Kind: EventPlayerHit, Victim: b.Player, Point: point}, true
	default:
		return CollisionEvent{}, false
	}
}
