package model

import "math"

// Point represents a 2D point in page space (points, origin bottom-left).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in a page's own coordinate space,
// origin bottom-left, units in page points (1/72 inch).
//
// A well-formed Rect satisfies MinX <= MaxX and MinY <= MaxY. A degenerate
// (zero-area) Rect is valid and means "no content detected" when used as a
// content bounding box.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing
// the bounds so that min <= max on both axes.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.MinX + r.MaxX) / 2,
		Y: (r.MinY + r.MaxY) / 2,
	}
}

// IsDegenerate returns true if the rectangle has zero area. Degenerate
// content bounds mean "no content detected" and are skipped during
// aggregation.
func (r Rect) IsDegenerate() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IsValid returns true if the bounds are ordered (min <= max on both axes).
func (r Rect) IsValid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}

// ContainsPoint reports whether p lies within r (edges inclusive).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.MaxX < other.MinX ||
		r.MinX > other.MaxX ||
		r.MaxY < other.MinY ||
		r.MinY > other.MaxY)
}

// DegenerateAt returns the zero-area rectangle located at p.
func DegenerateAt(p Point) Rect {
	return Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}
