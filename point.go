// Package delaunay provides the point and line primitives shared by the
// quad-edge triangulation kernel and its satellite packages (winding,
// planar, quadedge, and the triangulate subpackage). It mirrors the role
// of a small geometry root package: it imports no other package of this
// module, so every other package can depend on it without a cycle.
package delaunay

import (
	"math"
	"sort"
)

// Point is a 2-D coordinate. Equality is exact on both components, as
// required by the core's duplicate-removal and edge-identity checks.
type Point struct {
	X, Y float64
}

// Less reports whether p sorts lexicographically before q: by X, then by
// Y as a tiebreaker.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Subtract returns p - q.
func (p Point) Subtract(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// CrossProduct returns the Z component of p x q, treating both as 2-D
// vectors from the origin.
func (p Point) CrossProduct(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Line is a directed line segment between two points.
type Line [2]Point

// SortPoints returns a copy of points sorted lexicographically by (X, Y).
// Implements spec.md §4.2's "copied, sorted lexicographically" step.
func SortPoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// DedupPoints removes any point equal to its immediate predecessor in a
// sorted slice. points must already be sorted (e.g. via SortPoints); the
// result shares no backing array with points.
func DedupPoints(points []Point) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		if points[i].Equal(points[i-1]) {
			continue
		}
		out = append(out, points[i])
	}
	return out
}

// DedupPointsTolerance is DedupPoints with the equality test relaxed to
// "within epsilon on both axes", for callers that pass WithEpsilon to
// Delaunay. points must already be sorted (e.g. via SortPoints).
func DedupPointsTolerance(points []Point, epsilon float64) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		prev := out[len(out)-1]
		if math.Abs(points[i].X-prev.X) <= epsilon && math.Abs(points[i].Y-prev.Y) <= epsilon {
			continue
		}
		out = append(out, points[i])
	}
	return out
}
