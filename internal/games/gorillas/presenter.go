package gorillas

import (
	"fmt"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
)

// Effect lifetimes, in ticks.
const (
	explosionTicks = 30
	armTicks       = 15
	bannerTicks    = 90
	blinkTicks     = 60
)

type explosion struct {
	kind sim.ExplosionKind
	pos  core.Vec2
	ttl  int
}

// hud is the match's presenter: it turns notifications into short-lived
// visual effects and keeps the aiming inputs in sync.
type hud struct {
	game       *Game
	explosions []explosion
	arm        [2]int
	blink      [2][sim.StartingLives]int
	banner     string
	bannerTTL  int
}

func newHUD(g *Game) *hud {
	return &hud{game: g}
}

func (h *hud) RequestExplosion(kind sim.ExplosionKind, pos core.Vec2) {
	h.explosions = append(h.explosions, explosion{kind: kind, pos: pos, ttl: explosionTicks})
}

func (h *hud) RequestArmAnimation(player sim.PlayerID) {
	h.arm[player.Index()] = armTicks
}

func (h *hud) OnScoreChanged(player sim.PlayerID, score int) {
	if score > 0 {
		h.say(fmt.Sprintf("Player %d scores!", player))
	}
}

func (h *hud) OnLivesChanged(player sim.PlayerID, remaining int) {
	logger.Debug("lives changed", "player", player, "remaining", remaining)
}

func (h *hud) OnLifeIndicatorHidden(player sim.PlayerID, index int) {
	h.blink[player.Index()][index] = blinkTicks
}

func (h *hud) OnTurnChanged(player sim.PlayerID) {
	logger.Debug("turn changed", "player", player)
}

func (h *hud) OnRoundTransition(round sim.RoundHandle) {
	h.explosions = h.explosions[:0]
	h.say(fmt.Sprintf("Round %d", round.Number))
}

func (h *hud) ResetInputDefaults(angle, velocity int) {
	h.game.angle = angle
	h.game.velocity = velocity
}

func (h *hud) OnMatchOver(result sim.MatchResult) {
	h.say(fmt.Sprintf("Player %d wins %d-%d", result.Winner, result.Score1, result.Score2))
}

func (h *hud) say(msg string) {
	h.banner = msg
	h.bannerTTL = bannerTicks
}

// advance ages every effect by one tick.
func (h *hud) advance() {
	live := h.explosions[:0]
	for _, e := range h.explosions {
		if e.ttl--; e.ttl > 0 {
			live = append(live, e)
		}
	}
	h.explosions = live

	for i := range h.arm {
		h.arm[i] = max(h.arm[i]-1, 0)
		for j := range h.blink[i] {
			h.blink[i][j] = max(h.blink[i][j]-1, 0)
		}
	}
	if h.bannerTTL > 0 {
		if h.bannerTTL--; h.bannerTTL == 0 {
			h.banner = ""
		}
	}
}

var _ sim.Presenter = (*hud)(nil)
