// Package geom provides the collision primitives shared by the resolver and
// the shields. All functions are total: malformed input (NaN, ±Inf) yields
// "no collision" instead of a panic.
package geom

import "math"

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Valid reports whether every field is a finite number.
func (r Rect) Valid() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H)
}

// Translate moves the box by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// CenterOn moves the box so that its centre is (x, y).
func (r *Rect) CenterOn(x, y float64) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// RectAround builds a w×h box centred on (x, y).
func RectAround(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}

// Overlap is the strict axis-aligned overlap test. Boxes that only touch do
// not overlap. Any non-finite field makes the result false.
func Overlap(a, b Rect) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CircleRect clamps the circle centre into rect and tests the squared
// distance against r². The clamped point is the closest point of rect to
// the centre and is returned for impact placement.
func CircleRect(cx, cy, r float64, rect Rect) (Point, bool) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(r) || r < 0 || !rect.Valid() {
		return Point{}, false
	}
	closest := Point{
		X: clamp(cx, rect.X, rect.X+rect.W),
		Y: clamp(cy, rect.Y, rect.Y+rect.H),
	}
	dx := cx - closest.X
	dy := cy - closest.Y
	return closest, dx*dx+dy*dy <= r*r
}

// InCircle reports whether (px, py) lies within r of (cx, cy).
func InCircle(cx, cy, r, px, py float64) bool {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(r) || !isFinite(px) || !isFinite(py) {
		return false
	}
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}

// AngleDiff returns the absolute angular distance between a and b in [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
