package crossing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Running"
}

// Game drives one crossing session: it owns the world and the clock and
// turns platform ticks and actions into simulation steps.
type Game struct {
	cfg     config.CrossingConfig
	sprites assets.Source
	logger  *log.Logger

	world   *World
	clock   *Clock
	tick    uint64
	pending *config.CrossingConfig // Applied on the next restart
}

// New creates a game on a zero-seeded world. Reset reseeds it.
func New(cfg config.CrossingConfig, sprites assets.Source, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		sprites: sprites,
		logger:  logger,
		world:   newWorld(cfg, sprites, logger, 0),
		clock:   NewClock(cfg.Physics.MaxTickRate),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// RequiredSprites lists every sprite an entity or lane tile is built from.
// The game must not start on a table missing any of them.
func RequiredSprites() []string {
	names := append([]string{obstacleSprite}, Skins...)
	seen := make(map[string]bool)
	for _, k := range Kinds {
		if !seen[k.Sprite] {
			seen[k.Sprite] = true
			names = append(names, k.Sprite)
		}
	}
	for _, tile := range laneTiles {
		if !seen[tile] {
			seen[tile] = true
			names = append(names, tile)
		}
	}
	return names
}

// Reset builds a fresh world seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.world = newWorld(g.cfg, g.sprites, g.logger, runtime.Seed)
	g.clock.Restart()
	g.tick = 0
	g.logger.Info("game reset", "seed", runtime.Seed,
		"obstacles", len(g.world.Obstacles), "bonuses", len(g.world.Bonuses))
}

// Reconfigure replaces the configuration from the next restart on.
func (g *Game) Reconfigure(cfg config.CrossingConfig) {
	g.pending = &cfg
}

// Tick feeds a wall-clock timestamp to the clock and steps the simulation
// when enough time has passed. It reports whether a step ran.
func (g *Game) Tick(now time.Time) bool {
	dt, ok := g.clock.Advance(now)
	if !ok {
		return false
	}
	g.Update(dt)
	return true
}

// Update advances the simulation by dt seconds. Nothing moves once the
// game is over.
func (g *Game) Update(dt float64) {
	w := g.world
	if w.State.GameOver() {
		return
	}
	g.tick++

	for _, e := range w.Entities() {
		e.Update(w, dt)
	}
	w.resolveCollisions()

	if w.State.GameOver() {
		g.logger.Info("game over", "score", w.State.Score, "tick", g.tick)
	}
}

// HandleInput applies one discrete action. Moves are ignored once the game
// is over; restart works in any phase.
func (g *Game) HandleInput(a core.Action) {
	switch {
	case a == core.ActionRestart:
		if g.pending != nil {
			g.cfg = *g.pending
			g.pending = nil
			g.world.reconfigure(g.cfg)
			g.clock = NewClock(g.cfg.Physics.MaxTickRate)
			g.logger.Info("new configuration applied",
				"obstacles", g.cfg.Gameplay.Obstacles, "bonuses", g.cfg.Gameplay.Bonuses)
		}
		g.world.restart()
		g.logger.Info("game restarted", "lives", g.world.State.Lives)
	case a.IsMove() && !g.world.State.GameOver():
		g.world.Player.HandleInput(a)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	if g.world.State.GameOver() {
		return PhaseGameOver
	}
	return PhaseRunning
}

// State returns a copy of the scoring state.
func (g *Game) State() State {
	return g.world.State
}

// World exposes the simulation context.
func (g *Game) World() *World {
	return g.world
}
