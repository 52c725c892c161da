// Package core provides fundamental types and utilities for the bounce harness.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// collision kernel and demo logic pure and testable.
//
// The coordinate space has the origin in the top left corner with the axes
// extending right and down, so a rectangle's Top is always <= its Bottom.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. It is used both for positions and for directions of
// travel; when used as a direction only the sign of each component matters.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Rect is an axis-aligned bounding box used for collision detection.
// Min is the top-left corner and Max the bottom-right corner.
type Rect struct {
	Min, Max Vec2
}

// RectFromEdges creates a rectangle from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{Min: Vec2{X: left, Y: top}, Max: Vec2{X: right, Y: bottom}}
}

// RectFromMinSize creates a rectangle from its top-left corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle centered on center with the given size.
func RectFromCenterSize(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Min.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Max.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Min.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Max.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// WithCenter returns a rectangle of the same size centered on c.
func (r Rect) WithCenter(c Vec2) Rect {
	return RectFromCenterSize(c, r.Size())
}

// Valid reports whether the edges are ordered and none of them is NaN.
func (r Rect) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Contains returns true if p lies inside r or on its edges.
func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect returns true if other lies entirely inside r.
// Shared edges count as inside.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only touch along an edge or corner are considered
// intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Cells rounds the rectangle to the character grid for drawing.
// The result always covers at least one cell.
func (r Rect) Cells() CellRect {
	x := int(math.Round(r.Min.X))
	y := int(math.Round(r.Min.Y))
	w := Max(int(math.Round(r.Max.X))-x, 1)
	h := Max(int(math.Round(r.Max.Y))-y, 1)
	return NewCellRect(x, y, w, h)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// CellRect is an integer rectangle on the character grid.
type CellRect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewCellRect creates a new cell rectangle with the given position and dimensions.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right-most column.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom-most row.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
