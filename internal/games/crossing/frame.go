package crossing

import (
	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/core"
)

// Layer orders draw items back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBonus
	LayerObstacle
	LayerPlayer
)

// DrawItem is one sprite placed on the canvas.
type DrawItem struct {
	Layer  Layer
	Sprite assets.Sprite
	Dst    core.Bounds
}

// HUD is the text overlay of a frame.
type HUD struct {
	Score           int
	Lives           int
	BonusScore      int
	BonusMultiplier int
	BonusLives      int
	ShowBonus       bool
	GameOver        bool
}

// Frame is everything needed to draw one tick, in draw order.
type Frame struct {
	Items []DrawItem
	HUD   HUD
}

// laneTiles is the background sprite of each row, top to bottom.
var laneTiles = [core.Rows]string{
	"water-block",
	"stone-block",
	"stone-block",
	"stone-block",
	"grass-block",
	"grass-block",
}

// Frame builds the draw list for the current state. Sprites the catalog
// cannot provide yet are left out.
func (g *Game) Frame() Frame {
	w := g.world
	f := Frame{Items: make([]DrawItem, 0, core.Rows*core.Cols+len(w.Obstacles)+len(w.Bonuses)+1)}

	for row, name := range laneTiles {
		s, ok := w.sprites.Sprite(name)
		if !ok {
			continue
		}
		for col := range core.Cols {
			f.Items = append(f.Items, DrawItem{
				Layer:  LayerBackground,
				Sprite: s,
				Dst: core.Bounds{
					X: float64(col * core.TilePitch),
					Y: float64(row * core.RowHeight),
					W: float64(s.Width),
					H: float64(s.Height),
				},
			})
		}
	}

	for _, e := range w.Entities() {
		e.Render(&f)
	}

	s := w.State
	f.HUD = HUD{
		Score:           s.Score,
		Lives:           s.Lives,
		BonusScore:      s.BonusScore,
		BonusMultiplier: s.BonusMultiplier,
		BonusLives:      s.BonusLives,
		ShowBonus:       s.HasPendingBonus(),
		GameOver:        s.GameOver(),
	}
	return f
}
