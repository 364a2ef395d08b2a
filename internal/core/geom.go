// Package core provides fundamental types and utilities for the crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is an axis-aligned box in logical pixel space.
// The simulation works exclusively in these units; the platform projects
// them onto the terminal grid.
type Bounds struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Bounds) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Empty reports whether the box has no area.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Overlaps reports whether two boxes intersect after shrinking the trailing
// (right and bottom) edge of each box by xGive and yGive.
// With zero gives this is plain AABB intersection; touching edges do not count.
func (b Bounds) Overlaps(other Bounds, xGive, yGive float64) bool {
	return b.X < other.X+other.W-xGive &&
		b.X+b.W-xGive > other.X &&
		b.Y < other.Y+other.H-yGive &&
		b.Y+b.H-yGive > other.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
