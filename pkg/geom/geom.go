// pkg/geom/geom.go
package geom

import "math"

// Point is a position in screen space (pixels, y grows downwards).
type Point struct {
	X, Y float64
}

// Size is the width and height of a sprite footprint.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt returns a box of the given size centred on c.
func RectAt(c Point, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return r.Left() < p.X && p.X < r.Right() && r.Top() < p.Y && p.Y < r.Bottom()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
