package triangulate

import (
	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

// Edge is a read-only collaborator view over one dart of the internal
// quad-edge structure. Callers navigate the triangulation through it
// without ever touching the arena-backed quadedge.Subdivision directly,
// per spec.md §4.5's Collaborator Interface.
type Edge struct {
	e *quadedge.Edge
}

// Org returns the edge's origin point.
func (v Edge) Org() delaunay.Point {
	return *v.e.Orig()
}

// Dest returns the edge's destination point.
func (v Edge) Dest() delaunay.Point {
	return *v.e.Dest()
}

// Sym returns the same undirected edge, reversed.
func (v Edge) Sym() Edge {
	return Edge{v.e.Sym()}
}

// ONext returns the next edge CCW around this edge's origin.
func (v Edge) ONext() Edge {
	return Edge{v.e.ONext()}
}

// OPrev returns the next edge CW around this edge's origin.
func (v Edge) OPrev() Edge {
	return Edge{v.e.OPrev()}
}

// LNext returns the CCW next edge around this edge's left face.
func (v Edge) LNext() Edge {
	return Edge{v.e.LNext()}
}

// AsLine returns this edge as a delaunay.Line.
func (v Edge) AsLine() delaunay.Line {
	return v.e.AsLine()
}

func newEdgeViews(darts []*quadedge.Edge) []Edge {
	out := make([]Edge, len(darts))
	for i, d := range darts {
		out[i] = Edge{d}
	}
	return out
}
