// Package gorillas implements a two-player artillery duel across a
// destructible city skyline. The simulation lives in the sim
// subpackage; this package maps platform input onto it and draws it.
package gorillas

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
	"github.com/vovakirdan/tui-gorillas/internal/registry"
)

// Input steps for aiming.
const (
	FineStep   = 1
	CoarseStep = 5
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives match transitions. Discarded unless set via CLI.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the configuration the next game will use and
// validates it.
func LoadConfig() (config.GorillasConfig, error) {
	cfg, err := config.LoadGorillas(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyGorillasPreset(&cfg, difficultyPreset)
	}
	return cfg, cfg.Validate()
}

// Game adapts a sim.Match to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.GorillasConfig
	match   *sim.Match
	hud     *hud
	scene   *sceneCache
	err     error

	angle    int
	velocity int
	paused   bool
}

// New creates a new gorillas game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gorillas"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyline Gorillas"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.paused = false

	cfg, err := LoadConfig()
	g.cfg = cfg
	g.err = err
	if err != nil {
		logger.Error("invalid gorillas config", "err", err)
		return
	}

	g.hud = newHUD(g)
	g.scene = newSceneCache()
	g.angle = cfg.Match.DefaultAngle
	g.velocity = cfg.Match.DefaultVelocity

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.match, g.err = sim.NewMatch(cfg.Params(), rng, g.hud, sim.WithLogger(logger))
	if g.err != nil {
		logger.Error("cannot start match", "err", g.err)
		return
	}
	logger.Info("match started", "match", g.match.ID(), "seed", runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.match == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.match.Phase() != sim.PhaseMatchOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.match.Phase() == sim.PhaseMatchOver {
		if in.Has(core.ActionRestart) {
			g.rematch()
		}
		g.hud.advance()
		return core.StepResult{State: g.State()}
	}

	g.aim(in)
	if in.Has(core.ActionFire) {
		g.match.Launch(g.angle, g.velocity)
	}

	g.match.Step(time.Second / time.Duration(g.runtime.TickRate))
	g.hud.advance()

	return core.StepResult{State: g.State()}
}

func (g *Game) aim(in core.InputFrame) {
	step := FineStep
	if in.Has(core.ActionCoarse) {
		step = CoarseStep
	}

	switch {
	case in.Has(core.ActionAngleUp):
		g.angle += step
	case in.Has(core.ActionAngleDown):
		g.angle -= step
	}
	switch {
	case in.Has(core.ActionPowerUp):
		g.velocity += step
	case in.Has(core.ActionPowerDown):
		g.velocity -= step
	}

	g.angle = core.Clamp(g.angle, 0, config.MaxAngle)
	g.velocity = core.Clamp(g.velocity, 0, config.MaxVelocity)
}

func (g *Game) rematch() {
	if err := g.match.Rematch(); err != nil {
		g.err = err
		logger.Error("rematch failed", "err", err)
		return
	}
	logger.Info("rematch", "match", g.match.ID())
}

// Aim returns the current angle and velocity settings.
func (g *Game) Aim() (angle, velocity int) {
	return g.angle, g.velocity
}

// Match exposes the running match, or nil if the config was invalid.
func (g *Game) Match() *sim.Match {
	return g.match
}

// Err returns the configuration error that prevented the match from
// starting, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}

	p1, p2 := g.match.Player(sim.Player1), g.match.Player(sim.Player2)
	st := core.GameState{
		Score:  max(p1.Score, p2.Score),
		Paused: g.paused,
	}
	if res, ok := g.match.Result(); ok {
		st.GameOver = true
		st.Summary = &core.MatchSummary{
			ID:     res.MatchID.String(),
			Winner: int(res.Winner),
			Score1: res.Score1,
			Score2: res.Score2,
			Rounds: res.Rounds,
		}
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register("gorillas", func() registry.Game {
		return New()
	})
}
