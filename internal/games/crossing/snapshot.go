package crossing

import (
	"hash/fnv"
	"math"
)

// EntitySnapshot is the observable state of one entity.
type EntitySnapshot struct {
	X, Y   float64
	Active bool
	Sprite string
}

// Snapshot is a copy of the game state for testing and determinism checks.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	State     State
	PlayerRow int
	PlayerCol int
	Player    EntitySnapshot
	Speeds    []float64
	Obstacles []EntitySnapshot
	Bonuses   []EntitySnapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.Phase(),
		State:     w.State,
		Player:    snapshotOf(&w.Player.body),
		Speeds:    make([]float64, len(w.Obstacles)),
		Obstacles: make([]EntitySnapshot, len(w.Obstacles)),
		Bonuses:   make([]EntitySnapshot, len(w.Bonuses)),
	}
	snap.PlayerRow, snap.PlayerCol = w.Player.Cell()
	for i, o := range w.Obstacles {
		snap.Speeds[i] = o.speed
		snap.Obstacles[i] = snapshotOf(&o.body)
	}
	for i, b := range w.Bonuses {
		snap.Bonuses[i] = snapshotOf(&b.body)
	}
	return snap
}

func snapshotOf(b *body) EntitySnapshot {
	return EntitySnapshot{X: b.x, Y: b.y, Active: b.active, Sprite: b.sprite.Name}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putEntity := func(e EntitySnapshot) {
		put(math.Float64bits(e.X))
		put(math.Float64bits(e.Y))
		if e.Active {
			put(1)
		} else {
			put(0)
		}
		_, _ = h.Write([]byte(e.Sprite))
	}

	put(snap.Tick)
	put(uint64(snap.Phase)) //#nosec G115 -- hash computation
	for _, v := range []int{snap.State.Lives, snap.State.Score, snap.State.BonusScore,
		snap.State.BonusMultiplier, snap.State.BonusLives, snap.PlayerRow, snap.PlayerCol} {
		put(uint64(v)) //#nosec G115 -- hash computation
	}
	putEntity(snap.Player)
	for _, s := range snap.Speeds {
		put(math.Float64bits(s))
	}
	for _, e := range snap.Obstacles {
		putEntity(e)
	}
	for _, e := range snap.Bonuses {
		putEntity(e)
	}
	return h.Sum64()
}
