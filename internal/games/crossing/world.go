package crossing

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// World is the simulation context handed to every entity. It owns the
// scoring state, the entities and the random stream.
type World struct {
	State     State
	Player    *Player
	Obstacles []*Obstacle
	Bonuses   []*Bonus

	rng     *core.Random
	sprites assets.Source
	cfg     config.CrossingConfig
	logger  *log.Logger
}

func newWorld(cfg config.CrossingConfig, sprites assets.Source, logger *log.Logger, seed int64) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		rng:     core.NewRandom(seed),
		sprites: sprites,
		cfg:     cfg,
		logger:  logger,
	}
	w.State.Reset(cfg.Gameplay.Lives)

	w.Obstacles = make([]*Obstacle, cfg.Gameplay.Obstacles)
	for i := range w.Obstacles {
		w.Obstacles[i] = newObstacle(w)
	}
	w.Bonuses = make([]*Bonus, cfg.Gameplay.Bonuses)
	for i := range w.Bonuses {
		w.Bonuses[i] = newBonus(w)
	}
	w.Player = newPlayer(w)
	return w
}

// Entities returns every entity in update and draw order: bonuses,
// obstacles, then the player on top.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.Bonuses)+len(w.Obstacles)+1)
	for _, b := range w.Bonuses {
		out = append(out, b)
	}
	for _, o := range w.Obstacles {
		out = append(out, o)
	}
	return append(out, w.Player)
}

// reconfigure swaps the configuration and resizes the entity sets. The
// new entities are placed by the restart that follows.
func (w *World) reconfigure(cfg config.CrossingConfig) {
	w.cfg = cfg
	w.Obstacles = make([]*Obstacle, cfg.Gameplay.Obstacles)
	for i := range w.Obstacles {
		w.Obstacles[i] = &Obstacle{}
	}
	w.Bonuses = make([]*Bonus, cfg.Gameplay.Bonuses)
	for i := range w.Bonuses {
		w.Bonuses[i] = &Bonus{}
	}
}

// restart starts a new run on the same random stream.
func (w *World) restart() {
	w.State.Reset(w.cfg.Gameplay.Lives)
	for _, o := range w.Obstacles {
		o.Reset(w)
	}
	for _, b := range w.Bonuses {
		b.Reset(w)
	}
	w.Player.Reset(w)
}
