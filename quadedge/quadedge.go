// Package quadedge implements the Guibas & Stolfi (1985) quad-edge data
// structure and its topological operators, plus the geometric predicates
// and the arena-backed store (Subdivision) that owns one triangulation
// call's worth of edges.
//
// Each undirected edge is represented by a QuadEdge record holding four
// directed darts: two primal (the edge itself and its symmetric twin) and
// two dual (rotations of the primal pair, used only for the ring
// bookkeeping Splice needs). This module's public-facing operations only
// ever dereference the primal darts, matching spec.md's "This core uses
// only the two primal darts (e, e.sym)".
package quadedge

import "github.com/alexbaryzhikov/delaunay"

// Edge is one directed dart of a QuadEdge record.
type Edge struct {
	num  int
	qe   *QuadEdge
	next *Edge
	data *delaunay.Point
}

// QuadEdge bundles the four darts (primal forward/backward, dual
// forward/backward) that together represent one undirected edge.
type QuadEdge struct {
	e [4]Edge
}

// New allocates a fresh, disconnected QuadEdge and returns its primal
// dart (e[0]). Both primal darts' rings are singletons.
func New() *Edge {
	qe := &QuadEdge{}
	qe.e[0] = Edge{num: 0, qe: qe}
	qe.e[1] = Edge{num: 1, qe: qe}
	qe.e[2] = Edge{num: 2, qe: qe}
	qe.e[3] = Edge{num: 3, qe: qe}
	qe.e[0].next = &qe.e[0]
	qe.e[1].next = &qe.e[3]
	qe.e[2].next = &qe.e[2]
	qe.e[3].next = &qe.e[1]
	return &qe.e[0]
}

// NewWithEndPoints allocates a QuadEdge whose primal dart runs org -> dest.
func NewWithEndPoints(org, dest *delaunay.Point) *Edge {
	e := New()
	e.EndPoints(org, dest)
	return e
}

// Rot returns the dual of e, rotated 90 degrees counter-clockwise.
func (e *Edge) Rot() *Edge {
	if e.num < 3 {
		return &e.qe.e[e.num+1]
	}
	return &e.qe.e[0]
}

// InvRot returns the dual of e, rotated 90 degrees clockwise.
func (e *Edge) InvRot() *Edge {
	if e.num > 0 {
		return &e.qe.e[e.num-1]
	}
	return &e.qe.e[3]
}

// Sym returns e's symmetric twin (the same undirected edge, reversed).
func (e *Edge) Sym() *Edge {
	if e.num < 2 {
		return &e.qe.e[e.num+2]
	}
	return &e.qe.e[e.num-2]
}

// ONext returns the next edge CCW around e's origin.
func (e *Edge) ONext() *Edge {
	return e.next
}

// OPrev returns the next edge CW around e's origin.
func (e *Edge) OPrev() *Edge {
	return e.Rot().ONext().Rot()
}

// DNext returns the next edge CCW around e's destination. Derived rather
// than stored, per spec.md §9's note that dnext/dprev are redundant with
// sym.onext/sym.oprev.
func (e *Edge) DNext() *Edge {
	return e.Sym().ONext().Sym()
}

// DPrev returns the next edge CW around e's destination. Derived, as DNext.
func (e *Edge) DPrev() *Edge {
	return e.InvRot().ONext().InvRot()
}

// LNext returns the CCW next edge around e's left face.
func (e *Edge) LNext() *Edge {
	return e.InvRot().ONext().Rot()
}

// LPrev returns the CW next edge around e's left face.
func (e *Edge) LPrev() *Edge {
	return e.ONext().Sym()
}

// RNext returns the CCW next edge around e's right face.
func (e *Edge) RNext() *Edge {
	return e.Rot().ONext().InvRot()
}

// RPrev returns the CW next edge around e's right face.
func (e *Edge) RPrev() *Edge {
	return e.Sym().ONext()
}

// Orig returns e's origin point, or nil if unset.
func (e *Edge) Orig() *delaunay.Point {
	return e.data
}

// Dest returns e's destination point, or nil if unset.
func (e *Edge) Dest() *delaunay.Point {
	return e.Sym().data
}

// SetOrig sets e's origin point.
func (e *Edge) SetOrig(p delaunay.Point) {
	e.data = &p
}

// SetDest sets e's destination point.
func (e *Edge) SetDest(p delaunay.Point) {
	e.Sym().data = &p
}

// EndPoints sets both endpoints of e in one call.
func (e *Edge) EndPoints(org, dest *delaunay.Point) {
	if org != nil {
		e.SetOrig(*org)
	}
	if dest != nil {
		e.SetDest(*dest)
	}
}

// AsLine returns e as a delaunay.Line; both endpoints must be set.
func (e *Edge) AsLine() delaunay.Line {
	return delaunay.Line{*e.Orig(), *e.Dest()}
}

// QuadEdge returns the QuadEdge record e belongs to. Exposed so the
// Subdivision arena can identify and drop a logical edge by its owning
// record rather than by a single dart.
func (e *Edge) QuadEdge() *QuadEdge {
	return e.qe
}

// Primary reports whether e is one of the two primal darts (num 0 or 2)
// as opposed to a dual dart used only for ring bookkeeping.
func (e *Edge) Primary() bool {
	return e.num == 0 || e.num == 2
}
