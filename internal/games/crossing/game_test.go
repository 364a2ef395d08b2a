package crossing

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

func newTestGame(seed int64, mutate func(*config.CrossingConfig)) *Game {
	cfg := config.DefaultCrossingConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg, assets.Builtin(), nil)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// singleObstacle leaves one obstacle and no bonuses on the board.
func singleObstacle(c *config.CrossingConfig) {
	c.Gameplay.Obstacles = 1
	c.Gameplay.Bonuses = 0
}

func TestClockPrimesAndThrottles(t *testing.T) {
	c := NewClock(90)
	start := time.Unix(1000, 0)

	if _, ok := c.Advance(start); ok {
		t.Fatal("first Advance should only prime the clock")
	}
	if _, ok := c.Advance(start.Add(5 * time.Millisecond)); ok {
		t.Error("5ms step should be skipped at 90 Hz")
	}
	if step := c.MinStep(); step != time.Second/90 {
		t.Errorf("MinStep() = %v, expected %v", step, time.Second/90)
	}

	dt, ok := c.Advance(start.Add(20 * time.Millisecond))
	if !ok {
		t.Fatal("20ms step should be processed")
	}
	if dt != 0.02 {
		t.Errorf("dt = %g, expected 0.02", dt)
	}

	// Skipped calls do not move the reference point
	if _, ok := c.Advance(start.Add(25 * time.Millisecond)); ok {
		t.Error("5ms after the last step should be skipped")
	}
	if dt, ok := c.Advance(start.Add(40 * time.Millisecond)); !ok || dt != 0.02 {
		t.Errorf("Advance = %g, %v; expected 0.02, true", dt, ok)
	}

	c.Restart()
	if _, ok := c.Advance(start.Add(time.Hour)); ok {
		t.Error("Advance after Restart should prime again")
	}
}

func TestGameTickUsesClock(t *testing.T) {
	g := newTestGame(1, nil)
	start := time.Unix(2000, 0)

	if g.Tick(start) {
		t.Error("first tick should only prime")
	}
	if g.Tick(start.Add(time.Millisecond)) {
		t.Error("tick under the minimum step should be skipped")
	}
	if !g.Tick(start.Add(50 * time.Millisecond)) {
		t.Error("tick after 50ms should run")
	}
	if snap := g.Snapshot(); snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345, nil)
	g2 := newTestGame(12345, nil)

	for i := range 600 {
		switch i {
		case 30, 90, 150:
			g1.HandleInput(core.ActionUp)
			g2.HandleInput(core.ActionUp)
		case 60:
			g1.HandleInput(core.ActionLeft)
			g2.HandleInput(core.ActionLeft)
		case 400:
			g1.HandleInput(core.ActionRestart)
			g2.HandleInput(core.ActionRestart)
		}
		g1.Update(1.0 / 60)
		g2.Update(1.0 / 60)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}

	g3 := newTestGame(54321, nil)
	for range 600 {
		g3.Update(1.0 / 60)
	}
	s3 := g3.Snapshot()
	if s3.Hash() == s1.Hash() {
		t.Error("different seeds produced identical games")
	}
}

func TestZeroStepLeavesPositions(t *testing.T) {
	g := newTestGame(7, func(c *config.CrossingConfig) { c.Gameplay.Obstacles = 1 })
	for range 30 {
		g.Update(1.0 / 60)
	}
	b := g.World().Bonuses[0]
	activeBefore, lifeBefore := b.Remaining()
	before := g.Snapshot()

	g.Update(0)

	after := g.Snapshot()
	if after.Player != before.Player || after.Obstacles[0] != before.Obstacles[0] || after.Bonuses[0] != before.Bonuses[0] {
		t.Errorf("zero step moved entities:\n%+v\n%+v", before, after)
	}
	if a, l := b.Remaining(); a != activeBefore || l != lifeBefore {
		t.Errorf("zero step changed bonus timers: (%g, %g) -> (%g, %g)", activeBefore, lifeBefore, a, l)
	}
	if after.State != before.State {
		t.Errorf("zero step changed state: %+v -> %+v", before.State, after.State)
	}
}

func TestZeroStepDefersCrossing(t *testing.T) {
	g := newTestGame(7, func(c *config.CrossingConfig) {
		c.Gameplay.Obstacles = 0
		c.Gameplay.Bonuses = 0
	})
	w := g.World()
	w.State.Apply(Effect{Score: 5, Multiplier: 2})
	w.Player.row = 0
	before := w.State

	g.Update(0)
	if w.State != before {
		t.Errorf("zero step settled the crossing: %+v -> %+v", before, w.State)
	}
	if row, _ := w.Player.Cell(); row != 0 {
		t.Errorf("row = %d after zero step, expected 0", row)
	}

	g.Update(1.0 / 60)
	if w.State.Score != 11 || w.State.HasPendingBonus() {
		t.Errorf("state after real step = %+v, expected score 11 and no pending bonus", w.State)
	}
}

func TestGameUsableBeforeReset(t *testing.T) {
	g := New(config.DefaultCrossingConfig(), assets.Builtin(), nil)

	g.HandleInput(core.ActionUp)
	g.Update(0.1)
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected Running", g.Phase())
	}
	if f := g.Frame(); len(f.Items) == 0 {
		t.Error("frame should not be empty")
	}
	if snap := g.Snapshot(); snap.Tick != 1 || snap.State.Lives != 3 {
		t.Errorf("snapshot = %+v", snap)
	}
	g.HandleInput(core.ActionRestart)
}

func TestHitLosesLifeAndResetsPlayer(t *testing.T) {
	g := newTestGame(1, singleObstacle)
	w := g.World()
	p, o := w.Player, w.Obstacles[0]
	p.row, p.col = 2, 2
	p.cellOrigin(p.row, p.col, playerYOffset)
	o.x, o.y = p.x, p.y

	w.resolveCollisions()

	if w.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.State.Lives)
	}
	if !p.Active() {
		t.Error("player should be reset and active with lives left")
	}
	if row, _ := p.Cell(); row != 5 {
		t.Errorf("player row = %d, expected 5 after reset", row)
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, expected Running", g.Phase())
	}
}

func TestLastLifeEndsGameAndRestart(t *testing.T) {
	g := newTestGame(1, singleObstacle)
	w := g.World()
	w.State.Lives = 1
	w.State.Score = 12
	p, o := w.Player, w.Obstacles[0]
	o.x, o.y = p.x, p.y

	w.resolveCollisions()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, expected GameOver", g.Phase())
	}
	if p.Active() {
		t.Error("player should stay inactive when no lives are left")
	}

	// Nothing moves and moves are ignored while the game is over
	before := g.Snapshot()
	g.HandleInput(core.ActionUp)
	g.Update(0.5)
	after := g.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("game advanced after game over")
	}

	g.HandleInput(core.ActionRestart)

	s := g.State()
	if s != (State{Lives: 3}) {
		t.Errorf("state after restart = %+v, expected 3 lives and zero score", s)
	}
	if !p.Active() || g.Phase() != PhaseRunning {
		t.Error("restart should bring the player back")
	}
	if o.x >= 0 {
		t.Errorf("obstacle x = %g after restart, expected off-screen", o.x)
	}
}

func TestRestartWhileRunning(t *testing.T) {
	g := newTestGame(2, nil)
	w := g.World()
	w.State = State{Lives: 2, Score: 40, BonusScore: 5, BonusMultiplier: 1}

	g.HandleInput(core.ActionRestart)

	if g.State() != (State{Lives: 3}) {
		t.Errorf("state after restart = %+v", g.State())
	}
	for _, b := range w.Bonuses {
		if !b.Active() {
			t.Error("bonus should respawn on restart")
		}
	}
}

func TestBonusPickup(t *testing.T) {
	g := newTestGame(1, func(c *config.CrossingConfig) { c.Gameplay.Obstacles = 0 })
	w := g.World()
	p, b := w.Player, w.Bonuses[0]
	b.kind = Kinds[2] // Green gem
	b.x, b.y = p.x, p.y

	w.resolveCollisions()

	if b.Active() {
		t.Error("collected bonus should be hidden")
	}
	want := State{Lives: 3, BonusScore: 10, BonusMultiplier: 1}
	if w.State != want {
		t.Errorf("state = %+v, expected %+v", w.State, want)
	}

	// A hidden bonus cannot be collected twice
	w.resolveCollisions()
	if w.State != want {
		t.Errorf("hidden bonus collected again: %+v", w.State)
	}
}

func TestObstacleOvertakeResolved(t *testing.T) {
	g := newTestGame(1, func(c *config.CrossingConfig) {
		c.Gameplay.Obstacles = 2
		c.Gameplay.Bonuses = 0
	})
	w := g.World()
	a, b := w.Obstacles[0], w.Obstacles[1]
	a.x, a.y, a.speed = 10, 142, 200
	b.x, b.y, b.speed = 20, 142, 100

	w.resolveCollisions()

	if a.Speed() != 100 || b.Speed() != 200 {
		t.Errorf("speeds = (%g, %g), expected swapped (100, 200)", a.Speed(), b.Speed())
	}
}

func TestCollisionsSkippedWhenGameOver(t *testing.T) {
	g := newTestGame(1, singleObstacle)
	w := g.World()
	w.State.Lives = 0
	o := w.Obstacles[0]
	x := o.x

	g.Update(1)
	if o.x != x {
		t.Error("obstacles should not move after game over")
	}
}

func TestFrameOrder(t *testing.T) {
	g := newTestGame(1, nil)
	f := g.Frame()

	background := 0
	for i, item := range f.Items {
		if i > 0 && item.Layer < f.Items[i-1].Layer {
			t.Fatalf("item %d layer %d drawn after layer %d", i, item.Layer, f.Items[i-1].Layer)
		}
		if item.Layer == LayerBackground {
			background++
		}
	}
	if background != core.Rows*core.Cols {
		t.Errorf("background tiles = %d, expected %d", background, core.Rows*core.Cols)
	}

	last := f.Items[len(f.Items)-1]
	if last.Layer != LayerPlayer {
		t.Errorf("last item layer = %d, expected player", last.Layer)
	}

	first := f.Items[0]
	if first.Sprite.Name != "water-block" || first.Dst.X != 0 {
		t.Errorf("first tile = %s at %g", first.Sprite.Name, first.Dst.X)
	}
	if f.Items[1].Dst.X != core.TilePitch {
		t.Errorf("second tile x = %g, expected %d", f.Items[1].Dst.X, core.TilePitch)
	}

	if f.HUD.ShowBonus || f.HUD.GameOver || f.HUD.Lives != 3 {
		t.Errorf("initial HUD = %+v", f.HUD)
	}
}

func TestFrameWithoutSprites(t *testing.T) {
	g := New(config.DefaultCrossingConfig(), assets.NewCatalog(""), nil)
	g.Reset(core.DefaultConfig())

	for range 10 {
		g.Update(0.1)
	}
	if f := g.Frame(); len(f.Items) != 0 {
		t.Errorf("frame has %d items before sprites are ready", len(f.Items))
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(1, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	top := screen.Row(0)
	if !strings.Contains(top, "Score: 0") || !strings.Contains(top, "Lives: 3") {
		t.Errorf("HUD row = %q", top)
	}
	if strings.Contains(top, "Bonus") {
		t.Error("bonus line should be hidden with empty accumulators")
	}

	g.World().State.Apply(Effect{Score: 5, Multiplier: 1})
	g.Render(screen)
	if top := screen.Row(0); !strings.Contains(top, "Bonus: 5 x 1 (0)") {
		t.Errorf("HUD row with bonus = %q", top)
	}

	// Water band sits on the first board row
	if !strings.Contains(screen.Row(1), "≈") {
		t.Errorf("row 1 = %q, expected water", screen.Row(1))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(1, nil)
	g.World().State.Lives = 0
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Press space to restart") {
		t.Errorf("game over box missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1, nil)
	screen := core.NewScreen(30, 4)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestReconfigureAppliesOnRestart(t *testing.T) {
	g := newTestGame(1, nil)

	next := config.DefaultCrossingConfig()
	next.Gameplay.Lives = 6
	next.Gameplay.Obstacles = 2
	next.Gameplay.Bonuses = 3
	g.Reconfigure(next)

	if len(g.World().Obstacles) != 5 || g.State().Lives != 3 {
		t.Fatal("reconfigure should wait for the next restart")
	}

	g.HandleInput(core.ActionRestart)

	w := g.World()
	if len(w.Obstacles) != 2 || len(w.Bonuses) != 3 || w.State.Lives != 6 {
		t.Errorf("after restart: %d obstacles, %d bonuses, %d lives", len(w.Obstacles), len(w.Bonuses), w.State.Lives)
	}
	for _, o := range w.Obstacles {
		if !o.Active() || o.Speed() <= 0 {
			t.Error("new obstacles should be placed by the restart")
		}
	}

	// A second restart keeps the applied config
	g.HandleInput(core.ActionRestart)
	if g.State().Lives != 6 {
		t.Errorf("Lives = %d after second restart, expected 6", g.State().Lives)
	}
}
