package crossing

import (
	"github.com/vovakirdan/crossing/internal/core"
)

// Skins are the character sprites a player may be drawn with.
var Skins = []string{
	"char-boy",
	"char-cat-girl",
	"char-horn-girl",
	"char-pink-girl",
	"char-princess-girl",
}

const (
	playerYOffset = 30
	startRow      = core.Rows - 1
	lastStoneRow  = 3 // Rows below this are safe grass
)

// Player is the user-controlled character. Its position is a grid cell;
// pixel coordinates are derived from it.
type Player struct {
	body
	row, col int
}

func newPlayer(w *World) *Player {
	p := &Player{}
	p.Reset(w)
	return p
}

// Reset puts the player on a random column of the bottom row with a random
// skin.
func (p *Player) Reset(w *World) {
	p.bind(w.sprites, Skins[w.rng.Pick(len(Skins))])
	p.row = startRow
	p.col = w.rng.Int(0, core.Cols-1)
	p.active = true
	p.cellOrigin(p.row, p.col, playerYOffset)
}

// Update banks the pending bonus when the goal row is reached and drops it
// when the player retreats onto the grass. A zero step only places the
// sprite; the crossing settles on the next real step.
func (p *Player) Update(w *World, dt float64) {
	if dt <= 0 {
		p.cellOrigin(p.row, p.col, playerYOffset)
		return
	}
	if p.row <= 0 {
		w.State.CommitBonus()
		w.logger.Debug("crossing completed", "score", w.State.Score, "lives", w.State.Lives)
		p.Reset(w)
		return
	}
	if p.row > lastStoneRow {
		w.State.ForfeitBonus()
	}
	p.cellOrigin(p.row, p.col, playerYOffset)
}

// Render draws the player.
func (p *Player) Render(f *Frame) {
	p.render(f, LayerPlayer)
}

// HandleInput moves the player one cell, staying inside the grid.
func (p *Player) HandleInput(a core.Action) {
	switch a {
	case core.ActionUp:
		p.row = core.Clamp(p.row-1, 0, core.Rows-1)
	case core.ActionDown:
		p.row = core.Clamp(p.row+1, 0, core.Rows-1)
	case core.ActionLeft:
		p.col = core.Clamp(p.col-1, 0, core.Cols-1)
	case core.ActionRight:
		p.col = core.Clamp(p.col+1, 0, core.Cols-1)
	}
}

// Cell returns the grid position.
func (p *Player) Cell() (row, col int) {
	return p.row, p.col
}

// Skin returns the sprite name the player is drawn with.
func (p *Player) Skin() string {
	return p.sprite.Name
}
