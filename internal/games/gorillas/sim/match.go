// Package sim is the simulation core of the gorillas duel: skyline
// generation, destructible building rasters, collision classification,
// projectile flight and the turn/lives/score state machine.
//
// Everything runs on the caller's goroutine. A Match is advanced by
// Step and driven by Launch; it reports what happened through a
// Presenter.
package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Phase is the state of the current turn.
type Phase int

const (
	PhaseAwaitingLaunch Phase = iota
	PhaseInFlight
	PhaseRoundEnding
	PhaseMatchOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingLaunch:
		return "awaiting_launch"
	case PhaseInFlight:
		return "in_flight"
	case PhaseRoundEnding:
		return "round_ending"
	case PhaseMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// Match owns the buildings, the players and the projectile of a duel.
type Match struct {
	params    Params
	rng       *rand.Rand
	presenter Presenter
	logger    *log.Logger

	id         uuid.UUID
	buildings  []*Building
	players    [2]*Player
	indicators [2][StartingLives]bool
	world      *World
	ctrl       *Controller
	sched      *Scheduler

	turn    PlayerID
	phase   Phase
	round   int
	roundID uuid.UUID
	terrain int
	result  *MatchResult
}

// NewMatch validates params and sets up the first round with player 1
// to throw. A nil presenter is replaced by NopPresenter.
func NewMatch(params Params, rng *rand.Rand, presenter Presenter, opts ...Option) (*Match, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}

	m := &Match{
		params:    params,
		rng:       rng,
		presenter: presenter,
		logger:    log.New(io.Discard),
		ctrl:      NewController(params.Projectile),
		sched:     NewScheduler(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) reset() error {
	m.id = uuid.New()
	m.round = 0
	m.result = nil
	m.turn = Player1
	for i := range m.players {
		m.players[i] = &Player{
			ID:     PlayerID(i + 1),
			Radius: m.params.PlayerRadius,
			Lives:  StartingLives,
		}
		for j := range m.indicators[i] {
			m.indicators[i][j] = true
		}
	}
	return m.newRound()
}

// newRound generates a fresh skyline and places both players on it.
// Lives, scores and the turn carry over.
func (m *Match) newRound() error {
	buildings, err := GenerateField(m.rng, m.params.Field)
	if err != nil {
		return err
	}
	if len(buildings) < MinBuildings {
		return configErrorf("field_width", "generated %d buildings, need at least %d", len(buildings), MinBuildings)
	}
	for _, b := range buildings {
		Render(b, m.rng)
	}

	m.ctrl.Retire()
	m.sched.CancelAll()
	m.sched.NextGeneration()

	m.buildings = buildings
	m.place(Player1, buildings[1])
	m.place(Player2, buildings[len(buildings)-2])
	m.world = NewWorld(m.params.Projectile, m.buildings, m.players)

	m.round++
	m.roundID = uuid.New()
	m.terrain++
	m.phase = PhaseAwaitingLaunch

	m.logger.Debug("round started", "match", m.id, "round", m.round, "buildings", len(buildings), "turn", m.turn)
	return nil
}

func (m *Match) place(id PlayerID, b *Building) {
	p := m.players[id.Index()]
	p.Position = core.V(b.Center.X, b.Top()+p.Radius)
	p.Alive = true
}

// Launch throws for the player whose turn it is. It is refused while a
// round is ending or after the match is over. A throw made while the
// previous one is still flying replaces it without changing the turn.
func (m *Match) Launch(angle, velocity int) bool {
	if m.phase != PhaseAwaitingLaunch && m.phase != PhaseInFlight {
		return false
	}

	thrower := m.players[m.turn.Index()]
	m.ctrl.Launch(m.turn, thrower.Position, angle, velocity)
	m.phase = PhaseInFlight
	m.presenter.RequestArmAnimation(m.turn)

	m.logger.Debug("launch", "player", m.turn, "angle", angle, "velocity", velocity)
	return true
}

// Step advances the simulation by dt: due deferred tasks run first,
// then the projectile flies and its contacts are resolved.
func (m *Match) Step(dt time.Duration) {
	m.sched.Advance(dt)
	if m.phase != PhaseInFlight {
		return
	}

	for _, c := range m.world.Step(m.ctrl.Current(), dt.Seconds()) {
		a, b := c.Bodies()
		if ev, ok := Classify(a, b, c.Point); ok {
			m.ResolveCollision(ev)
		}
	}

	if m.phase == PhaseInFlight && m.ctrl.Tick() {
		m.missed()
	}
}

// ResolveCollision applies a classified event to the live projectile.
// It reports false when there is nothing in flight to resolve.
func (m *Match) ResolveCollision(ev CollisionEvent) bool {
	p := m.ctrl.Current()
	if m.phase != PhaseInFlight || p == nil || p.Name != ProjectileName {
		return false
	}

	switch ev.Kind {
	case EventBuildingHit:
		return m.buildingHit(p, ev)
	case EventPlayerHit:
		return m.playerHit(ev.Victim)
	default:
		return false
	}
}

// ResolveMiss retires the live projectile as a miss.
func (m *Match) ResolveMiss() bool {
	if m.phase != PhaseInFlight || m.ctrl.Current() == nil {
		return false
	}
	m.ctrl.Retire()
	m.missed()
	return true
}

func (m *Match) buildingHit(p *Projectile, ev CollisionEvent) bool {
	if ev.Building < 0 || ev.Building >= len(m.buildings) {
		m.logger.Warn("hit on unknown building", "index", ev.Building)
		return false
	}
	b := m.buildings[ev.Building]

	Carve(b, SceneToLocal(b, ev.Point), m.params.CarveRadius)
	m.terrain++
	m.presenter.RequestExplosion(ExplosionBuilding, ev.Point)

	p.Name = ""
	m.ctrl.Retire()

	m.logger.Debug("building hit", "player", m.turn, "building", b.Index, "x", ev.Point.X, "y", ev.Point.Y)
	m.changeTurn()
	m.phase = PhaseAwaitingLaunch
	return true
}

func (m *Match) playerHit(victim PlayerID) bool {
	if victim != Player1 && victim != Player2 {
		return false
	}
	v := m.players[victim.Index()]
	m.presenter.RequestExplosion(ExplosionPlayer, v.Position)
	v.Alive = false
	m.ctrl.Retire()

	v.Lives = max(v.Lives-1, 0)
	m.presenter.OnLivesChanged(victim, v.Lives)
	if idx, ok := LifeIndicatorIndex(victim, v.Lives); ok {
		m.indicators[victim.Index()][idx] = false
		m.presenter.OnLifeIndicatorHidden(victim, idx)
		m.logger.Debug("life indicator hidden", "player", victim, "index", idx)
	} else {
		m.logger.Warn("no life indicator for remaining lives", "player", victim, "remaining", v.Lives)
	}

	scorer := m.players[victim.Other().Index()]
	scorer.Score++
	m.presenter.OnScoreChanged(scorer.ID, scorer.Score)

	m.phase = PhaseRoundEnding
	m.sched.Schedule(m.params.RoundDelay, m.sched.Generation(), m.endRound)

	m.logger.Debug("player hit", "victim", victim, "lives", v.Lives, "scorer", scorer.ID, "score", scorer.Score)
	return true
}

func (m *Match) missed() {
	m.logger.Debug("miss", "player", m.turn)
	m.changeTurn()
	m.phase = PhaseAwaitingLaunch
}

func (m *Match) changeTurn() {
	m.turn = m.turn.Other()
	m.presenter.OnTurnChanged(m.turn)
}

// endRound runs RoundDelay after a player was hit.
func (m *Match) endRound() {
	for _, p := range m.players {
		if p.Lives > 0 {
			continue
		}
		m.changeTurn()
		m.phase = PhaseMatchOver
		m.result = &MatchResult{
			MatchID: m.id,
			Winner:  p.ID.Other(),
			Score1:  m.players[0].Score,
			Score2:  m.players[1].Score,
			Rounds:  m.round,
		}
		m.logger.Info("match over", "match", m.id, "winner", m.result.Winner, "score1", m.result.Score1, "score2", m.result.Score2)
		m.presenter.OnMatchOver(*m.result)
		return
	}

	if err := m.newRound(); err != nil {
		// Unreachable with validated params.
		m.logger.Error("round transition failed", "err", err)
		m.phase = PhaseMatchOver
		return
	}
	m.changeTurn()
	m.presenter.ResetInputDefaults(m.params.DefaultAngle, m.params.DefaultVelocity)
	m.presenter.OnRoundTransition(m.Round())
}

// Rematch starts a new match with the same parameters: full lives,
// zero scores, player 1 to throw.
func (m *Match) Rematch() error {
	if err := m.reset(); err != nil {
		return err
	}
	for _, p := range m.players {
		m.presenter.OnScoreChanged(p.ID, p.Score)
		m.presenter.OnLivesChanged(p.ID, p.Lives)
	}
	m.presenter.OnTurnChanged(m.turn)
	m.presenter.ResetInputDefaults(m.params.DefaultAngle, m.params.DefaultVelocity)
	m.presenter.OnRoundTransition(m.Round())
	return nil
}

// ID returns the match identifier.
func (m *Match) ID() uuid.UUID { return m.id }

// Turn returns the player whose turn it is.
func (m *Match) Turn() PlayerID { return m.turn }

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Params returns the parameters the match was built with.
func (m *Match) Params() Params { return m.params }

// Round returns a handle to the current round.
func (m *Match) Round() RoundHandle {
	return RoundHandle{ID: m.roundID, Number: m.round, Generation: m.sched.Generation()}
}

// Buildings returns the current skyline. Callers must not modify it.
func (m *Match) Buildings() []*Building { return m.buildings }

// TerrainVersion changes whenever a building raster changes.
func (m *Match) TerrainVersion() int { return m.terrain }

// Player returns a snapshot of a player.
func (m *Match) Player(id PlayerID) Player {
	return *m.players[id.Index()]
}

// Projectile returns a snapshot of the live projectile, if any.
func (m *Match) Projectile() (Projectile, bool) {
	p := m.ctrl.Current()
	if p == nil {
		return Projectile{}, false
	}
	return *p, true
}

// IndicatorVisible reports whether a life indicator slot is still shown.
func (m *Match) IndicatorVisible(id PlayerID, index int) bool {
	if index < 0 || index >= StartingLives {
		return false
	}
	return m.indicators[id.Index()][index]
}

// Result returns the outcome once the match is over.
func (m *Match) Result() (MatchResult, bool) {
	if m.result == nil {
		return MatchResult{}, false
	}
	return *m.result, true
}
