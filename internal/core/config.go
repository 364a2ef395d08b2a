package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform tick requests per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Grid geometry in logical pixels. Row 0 is the goal lane, rows 1-3 carry
// obstacles and rows 4-5 are the safe start lanes.
const (
	ColWidth  = 100
	RowHeight = 83
	Cols      = 5
	Rows      = 6
	TilePitch = 101 // Background tiles are one pixel wider than a column
	CanvasW   = 505
	CanvasH   = 606
)
