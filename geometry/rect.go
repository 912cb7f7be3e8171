// Package geometry provides the rectangle and placement math used to
// position floating panels relative to their triggers.
package geometry

// Rect represents a rectangular area in viewport coordinates.
// It follows the DOMRect convention from the Geometry Interfaces spec:
// edges are derived from origin and extent, and negative extents are
// normalized by the edge accessors.
// https://drafts.fxtf.org/geometry/#DOMRect
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a new Rect with the given origin and extent.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Right returns the right edge (x + width for positive width, x for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge (y + height for positive height, y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Contains reports whether the point (x, y) lies within the rectangle.
// Points on the top/left edges are inside; points on the bottom/right
// edges are outside, matching hit-testing conventions.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
// A panel that has not been laid out yet measures as an empty rect.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Viewport represents the visible area of the host window.
type Viewport struct {
	Width  float64
	Height float64
}

// Measurable is anything that can report its current on-screen rectangle.
// Hosts implement this for their native element/widget type; controllers
// re-measure through it whenever geometry may have changed.
type Measurable interface {
	BoundingRect() Rect
}
