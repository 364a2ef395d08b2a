package crossing

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/crossing/internal/core"
)

const (
	hudRows    = 1
	tileFace   = 50 // Pixels above the walkable face of a tile sprite
	boardTop   = tileFace
	boardPx    = core.Rows * core.RowHeight
	minScreenW = 20
	minScreenH = hudRows + core.Rows
)

// projection maps canvas pixels onto terminal cells below the HUD.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / core.CanvasW,
		sy: float64(dst.Height()-hudRows) / boardPx,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return hudRows + int(math.Floor((y-boardTop)*p.sy))
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	f := g.Frame()
	proj := newProjection(dst)

	for _, item := range f.Items {
		if item.Layer == LayerBackground {
			renderTile(dst, proj, item)
			continue
		}
		renderSprite(dst, proj, item)
	}

	renderHUD(dst, f.HUD)
	if f.HUD.GameOver {
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press space to restart", f.HUD.Score))
	}
}

func renderTile(dst *core.Screen, proj projection, item DrawItem) {
	x0 := proj.col(item.Dst.X)
	x1 := proj.col(item.Dst.X + core.TilePitch)
	y0 := proj.row(item.Dst.Y + tileFace)
	y1 := proj.row(item.Dst.Y + tileFace + core.RowHeight)
	fill, _ := utf8.DecodeRuneInString(item.Sprite.Glyph)
	dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), fill, item.Sprite.Color)
}

func renderSprite(dst *core.Screen, proj projection, item DrawItem) {
	cx, cy := item.Dst.Center()
	glyph := item.Sprite.Glyph
	x := proj.col(cx) - utf8.RuneCountInString(glyph)/2
	dst.DrawTextColored(x, proj.row(cy), glyph, item.Sprite.Color)
}

func renderHUD(dst *core.Screen, hud HUD) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", hud.Score))

	lives := fmt.Sprintf("Lives: %d", hud.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)

	if hud.ShowBonus {
		bonus := fmt.Sprintf("Bonus: %d x %d (%d)", hud.BonusScore, hud.BonusMultiplier, hud.BonusLives)
		dst.DrawTextColored((dst.Width()-len(bonus))/2, 0, bonus, core.ColorBrightYellow)
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
