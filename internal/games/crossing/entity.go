// Package crossing implements the lane-crossing game: the player walks from
// the grass at the bottom to the water at the top while bugs run across the
// stone lanes and bonuses appear and expire.
//
// All simulation runs in logical canvas pixels (see core.CanvasW/CanvasH).
// Rendering to a terminal is a projection of that space.
package crossing

import (
	"errors"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/core"
)

// ErrSelfIntersection is returned when an entity is tested against itself.
var ErrSelfIntersection = errors.New("crossing: entity intersected with itself")

// Entity is the shared contract of everything that lives on the board.
type Entity interface {
	// Update advances the entity by dt seconds.
	Update(w *World, dt float64)
	// Render appends the entity's draw item to f when it is visible.
	Render(f *Frame)
	Bounds() core.Bounds
	Active() bool
	Intersects(other Entity, xGive, yGive float64) (bool, error)

	base() *body
}

// body is the position, size and sprite shared by every entity.
type body struct {
	x, y          float64
	width, height float64
	active        bool
	sprite        assets.Sprite
	drawable      bool // sprite resolved from the catalog
}

func (b *body) base() *body { return b }

// Bounds returns the entity's rectangle in canvas pixels.
func (b *body) Bounds() core.Bounds {
	return core.Bounds{X: b.x, Y: b.y, W: b.width, H: b.height}
}

// Active reports whether the entity takes part in collisions and drawing.
func (b *body) Active() bool {
	return b.active
}

// Intersects reports whether the two rectangles overlap after shrinking
// the far edges of each by xGive and yGive. A box without area never
// touches anything.
func (b *body) Intersects(other Entity, xGive, yGive float64) (bool, error) {
	if other == nil {
		return false, nil
	}
	if other.base() == b {
		return false, ErrSelfIntersection
	}
	mine, theirs := b.Bounds(), other.Bounds()
	if mine.Empty() || theirs.Empty() {
		return false, nil
	}
	return mine.Overlaps(theirs, xGive, yGive), nil
}

// bind resolves the named sprite and takes its size. An unresolved sprite
// leaves the entity sizeless so it neither collides nor draws.
func (b *body) bind(src assets.Source, name string) {
	s, ok := src.Sprite(name)
	if !ok {
		b.sprite = assets.Sprite{Name: name}
		b.drawable = false
		b.width, b.height = 0, 0
		return
	}
	b.sprite = s
	b.drawable = true
	b.width, b.height = float64(s.Width), float64(s.Height)
}

// cellOrigin places the sprite centered on a grid cell, shifted down by
// yOffset so it sits on the tile face.
func (b *body) cellOrigin(row, col int, yOffset float64) {
	b.x = core.ColWidth*(float64(col)+0.5) - b.width/2 + spriteNudgeX
	b.y = core.RowHeight*(float64(row)+0.5) - b.height/2 + yOffset
}

func (b *body) render(f *Frame, layer Layer) {
	if !b.active || !b.drawable {
		return
	}
	f.Items = append(f.Items, DrawItem{
		Layer:  layer,
		Sprite: b.sprite,
		Dst:    b.Bounds(),
	})
}

// spriteNudgeX compensates for the tile pitch being one pixel wider than a
// grid column.
const spriteNudgeX = 4
