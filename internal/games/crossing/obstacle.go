package crossing

import (
	"github.com/vovakirdan/crossing/internal/core"
)

const (
	obstacleSprite  = "enemy-bug"
	obstacleYOffset = 59 // Lane baseline of a bug sprite
)

// Obstacle is a bug running left to right along one of the stone lanes.
type Obstacle struct {
	body
	speed float64 // Pixels per second
}

func newObstacle(w *World) *Obstacle {
	o := &Obstacle{}
	o.Reset(w)
	return o
}

// Reset puts the obstacle off-screen to the left of a random stone lane
// with a new random speed.
func (o *Obstacle) Reset(w *World) {
	o.bind(w.sprites, obstacleSprite)
	o.speed = w.rng.Float(w.cfg.Physics.MinSpeed, w.cfg.Physics.MaxSpeed) * core.ColWidth
	o.y = float64(w.rng.Int(1, 3)*core.RowHeight + obstacleYOffset)
	o.x = float64(w.rng.Int(-5*core.ColWidth, -core.ColWidth))
	o.active = true
}

// Update moves the obstacle right and recycles it once it leaves the board.
func (o *Obstacle) Update(w *World, dt float64) {
	if !o.active {
		return
	}
	o.x += dt * o.speed
	if o.x > core.Cols*core.ColWidth {
		o.Reset(w)
	}
}

// Render draws the obstacle.
func (o *Obstacle) Render(f *Frame) {
	o.render(f, LayerObstacle)
}

// Speed returns the current speed in pixels per second.
func (o *Obstacle) Speed() float64 {
	return o.speed
}

// SwapSpeeds settles a touch between two obstacles. When the faster one is
// still behind, the two trade speeds; when it is already ahead it is pushed
// further ahead by boost.
func (o *Obstacle) SwapSpeeds(other *Obstacle, boost float64) {
	faster, slower := o, other
	if o.speed <= other.speed {
		faster, slower = other, o
	}
	if faster.x < slower.x {
		o.speed, other.speed = other.speed, o.speed
		return
	}
	faster.speed *= boost
}
