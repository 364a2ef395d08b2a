package crossing

import (
	"github.com/vovakirdan/crossing/internal/config"
)

// resolveCollisions runs the three interaction passes in order: bonus
// pickups, obstacle overtakes, then player hits.
func (w *World) resolveCollisions() {
	give := w.cfg.Collision
	p := w.Player

	for _, b := range w.Bonuses {
		if p.active && b.active && w.touch(p, b, give.Bonus) {
			b.Collect(w)
		}
	}

	for i, a := range w.Obstacles {
		if !a.active {
			continue
		}
		for _, o := range w.Obstacles[i+1:] {
			if o.active && w.touch(a, o, give.Obstacle) {
				a.SwapSpeeds(o, w.cfg.Physics.OvertakeBoost)
			}
		}
	}

	for _, o := range w.Obstacles {
		if !p.active || !o.active || !w.touch(p, o, give.Player) {
			continue
		}
		w.State.LoseLife()
		p.active = false
		w.logger.Info("player hit", "lives", w.State.Lives, "score", w.State.Score)
		if w.State.Lives > 0 {
			p.Reset(w)
		}
	}
}

// touch wraps Intersects; a failed check is logged and counts as no contact.
func (w *World) touch(a, b Entity, give config.Give) bool {
	hit, err := a.Intersects(b, give.X, give.Y)
	if err != nil {
		w.logger.Warn("collision check skipped", "err", err)
		return false
	}
	return hit
}
