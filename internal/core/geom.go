// Package core provides fundamental types and utilities for the block games.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "cmp"

// Rect is an axis-aligned rectangle in world units.
// The world origin is the bottom-left corner and y grows upward.
type Rect struct {
	X, Y float32 // Bottom-left corner position
	W, H float32 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float32 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has zero area in both dimensions.
// Sprites use the empty form to mean "inactive".
func (r Rect) Empty() bool {
	return r.W == 0 && r.H == 0
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of a float32.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
