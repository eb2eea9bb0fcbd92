// Package winding classifies the orientation of three points. It is the
// shared dependency topo.go's Connect/ResolveEdge plumbing threads a
// winding.Order through in the teacher package; here it backs the
// quad-edge predicates (quadedge.RightOf/LeftOf).
package winding

import "github.com/alexbaryzhikov/delaunay"

// Order classifies the orientation of an ordered triple of points.
type Order int

const (
	// Collinear means the three points lie on a single line.
	Collinear Order = iota
	// CW means the three points turn clockwise.
	CW
	// CCW means the three points turn counter-clockwise.
	CCW
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return "Collinear"
	}
}

// Of returns the orientation of the triple (a, b, c): the sign of the
// cross product (b-a) x (c-a).
func Of(a, b, c delaunay.Point) Order {
	cross := b.Subtract(a).CrossProduct(c.Subtract(a))
	switch {
	case cross > 0:
		return CCW
	case cross < 0:
		return CW
	default:
		return Collinear
	}
}

// OfPoints is Of applied to a 3-element slice; it panics if len(pts) != 3.
// Kept for callers that build up a triple programmatically rather than
// naming three points directly; no package in this module calls it.
func OfPoints(pts []delaunay.Point) Order {
	if len(pts) != 3 {
		panic("winding.OfPoints: expected exactly 3 points")
	}
	return Of(pts[0], pts[1], pts[2])
}
