package crossing

import (
	"github.com/vovakirdan/crossing/internal/core"
)

// Effect is what collecting a bonus adds to the pending accumulators.
type Effect struct {
	Lives      int
	Score      int
	Multiplier int
}

// Kind describes one type of bonus.
type Kind struct {
	Name        string
	Sprite      string
	DisplayLife float64 // Seconds the bonus stays collectible
	Effect      Effect
}

// Kinds is the bonus table. Every spawn picks one entry uniformly.
var Kinds = []Kind{
	{Name: "Heart", Sprite: "Heart", DisplayLife: 2.5, Effect: Effect{Lives: 1}},
	{Name: "Blue Gem", Sprite: "Gem Blue", DisplayLife: 5, Effect: Effect{Score: 5, Multiplier: 1}},
	{Name: "Green Gem", Sprite: "Gem Green", DisplayLife: 3, Effect: Effect{Score: 10, Multiplier: 1}},
	{Name: "Orange Gem", Sprite: "Gem Orange", DisplayLife: 2, Effect: Effect{Score: 15, Multiplier: 1}},
	{Name: "Key", Sprite: "Key", DisplayLife: 2.5, Effect: Effect{Multiplier: 10}},
}

const bonusYOffset = 52

// Bonus is a collectible item on a stone lane. It stays visible for its
// kind's display life, then stays hidden until its lifetime runs out and
// respawns as a new random kind.
type Bonus struct {
	body
	kind            Kind
	row, col        int
	remainingActive float64
	remainingLife   float64
}

func newBonus(w *World) *Bonus {
	b := &Bonus{}
	b.Reset(w)
	return b
}

// Reset respawns the bonus as a random kind on a random stone cell.
func (b *Bonus) Reset(w *World) {
	b.kind = Kinds[w.rng.Pick(len(Kinds))]
	b.bind(w.sprites, b.kind.Sprite)
	b.row = w.rng.Int(1, lastStoneRow)
	b.col = w.rng.Int(0, core.Cols-1)
	b.remainingActive = b.kind.DisplayLife
	b.remainingLife = w.rng.Float(b.kind.DisplayLife, b.kind.DisplayLife+w.cfg.Physics.BonusExtraLife)
	b.active = true
	b.Update(w, 0)
}

// Update counts down both timers. Reaching the end of the display life
// hides the bonus; reaching the end of the lifetime respawns it.
func (b *Bonus) Update(w *World, dt float64) {
	b.remainingLife -= dt
	b.remainingActive -= dt
	b.cellOrigin(b.row, b.col, bonusYOffset)

	if b.remainingActive <= 0 {
		b.active = false
	}
	if b.remainingLife <= 0 {
		b.Reset(w)
	}
}

// Render draws the bonus.
func (b *Bonus) Render(f *Frame) {
	b.render(f, LayerBonus)
}

// Collect adds the bonus effect to the pending accumulators and hides it.
// The bonus respawns when its lifetime runs out as usual.
func (b *Bonus) Collect(w *World) {
	w.State.Apply(b.kind.Effect)
	b.active = false
	w.logger.Debug("bonus collected", "kind", b.kind.Name,
		"pending_score", w.State.BonusScore, "pending_multiplier", w.State.BonusMultiplier)
}

// Kind returns the bonus kind currently spawned.
func (b *Bonus) Kind() Kind {
	return b.kind
}

// Remaining returns the seconds left until the bonus hides and until it
// respawns.
func (b *Bonus) Remaining() (active, lifetime float64) {
	return b.remainingActive, b.remainingLife
}
