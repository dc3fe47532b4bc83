package sim

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// ExplosionKind selects the effect requested on impact.
type ExplosionKind string

const (
	ExplosionBuilding ExplosionKind = "building"
	ExplosionPlayer   ExplosionKind = "player"
)

// RoundHandle identifies a freshly started round.
type RoundHandle struct {
	ID         uuid.UUID
	Number     int
	Generation uint64
}

// MatchResult is reported once a player runs out of lives.
type MatchResult struct {
	MatchID uuid.UUID
	Winner  PlayerID
	Score1  int
	Score2  int
	Rounds  int
}

// Presenter receives notifications from a Match. It never owns
// simulation state; everything it needs is passed in the call.
type Presenter interface {
	RequestExplosion(kind ExplosionKind, pos core.Vec2)
	RequestArmAnimation(player PlayerID)
	OnScoreChanged(player PlayerID, score int)
	OnLivesChanged(player PlayerID, remaining int)
	OnLifeIndicatorHidden(player PlayerID, index int)
	OnTurnChanged(player PlayerID)
	OnRoundTransition(round RoundHandle)
	ResetInputDefaults(angle, velocity int)
	OnMatchOver(result MatchResult)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) RequestExplosion(ExplosionKind, core.Vec2) {}
func (NopPresenter) RequestArmAnimation(PlayerID)              {}
func (NopPresenter) OnScoreChanged(PlayerID, int)              {}
func (NopPresenter) OnLivesChanged(PlayerID, int)              {}
func (NopPresenter) OnLifeIndicatorHidden(PlayerID, int)       {}
func (NopPresenter) OnTurnChanged(PlayerID)                    {}
func (NopPresenter) OnRoundTransition(RoundHandle)             {}
func (NopPresenter) ResetInputDefaults(int, int)               {}
func (NopPresenter) OnMatchOver(MatchResult)                   {}
