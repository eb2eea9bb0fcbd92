package quadedge

import (
	"log"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/planar"
	"github.com/alexbaryzhikov/delaunay/winding"
)

// sameRing reports whether b appears in a's ONext ring.
func sameRing(a, b *Edge) bool {
	if a == b {
		return true
	}
	for e := a.ONext(); e != a; e = e.ONext() {
		if e == b {
			return true
		}
	}
	return false
}

// Splice affects the two edge rings around the origins of a and b and,
// independently, the two edge rings around the left faces of a and b. If
// the two rings are distinct, Splice combines them into one; if they are
// the same ring, Splice breaks it into two separate pieces. See Guibas and
// Stolfi (1985) p.96 for illustrations.
//
// Unlike a purely topological splice, this implementation (ported from
// original_source/delaunay.py's splice) respects planar ordering: a.Orig()
// must equal b.Orig(), and when merging two distinct rings it refuses the
// operation (returning ErrSpliceOverlap) rather than create a "fold" -- an
// ONext edge that would sit clockwise of its source instead of CCW.
//
// debug gates verbose tracing for this one call; it is call-local state
// supplied by the caller (Subdivision, or the triangulator directly),
// never a package-wide var, so concurrent callers with different debug
// settings never race on it.
func Splice(a, b *Edge, debug bool) error {
	if a == nil || b == nil {
		return nil
	}
	if a.Orig() == nil || b.Orig() == nil || !a.Orig().Equal(*b.Orig()) {
		if debug {
			log.Printf("quadedge: splice refused, origin mismatch: %p, %p", a, b)
		}
		return ErrSpliceOriginMismatch
	}

	if a == b {
		if debug {
			log.Printf("quadedge: splicing edge with itself, ignored: %p", a)
		}
		return nil
	}

	sa, sb := a, b
	if !sameRing(a, b) {
		sa = eFirstCW(b, a)
		sb = eFirstCW(a, b)
		if eCWAngle(sa, sb.ONext()) < eCWAngle(sa, sb) ||
			eCWAngle(sb, sa.ONext()) < eCWAngle(sb, sa) {
			if debug {
				log.Printf("quadedge: splice refused, overlapping rings: %p, %p", a, b)
			}
			return ErrSpliceOverlap
		}
	}

	alpha := sa.ONext().Rot()
	beta := sb.ONext().Rot()

	t1 := sb.ONext()
	t2 := sa.ONext()
	t3 := beta.ONext()
	t4 := alpha.ONext()

	sa.next = t1
	sb.next = t2
	alpha.next = t3
	beta.next = t4
	return nil
}

// Connect adds a new edge connecting the destination of a to the origin
// of b, such that the new edge, a, and b all share the same left face
// after the connection is complete.
func Connect(a, b *Edge, debug bool) (*Edge, error) {
	if a == nil || b == nil {
		return nil, nil
	}
	org, dest := a.Dest(), b.Orig()
	if org == nil || dest == nil {
		return nil, nil
	}
	e := NewWithEndPoints(org, dest)
	if err := Splice(e, a.LNext(), debug); err != nil {
		return nil, err
	}
	if err := Splice(e.Sym(), b, debug); err != nil {
		return nil, err
	}
	return e, nil
}

// Swap turns edge e counter-clockwise inside its enclosing quadrilateral.
// Given an edge whose left and right faces are both triangles, it detaches
// e and reattaches it between the two opposite vertices. Used by
// incremental Delaunay variants; unused by the divide & conquer path, and
// retained per spec.md §4.3 "for completeness".
func Swap(e *Edge, debug bool) {
	a := e.OPrev()
	b := e.Sym().OPrev()
	Splice(e, a, debug)
	Splice(e.Sym(), b, debug)
	e.EndPoints(a.Dest(), b.Dest())
	Splice(e, a.LNext(), debug)
	Splice(e.Sym(), b.LNext(), debug)
}

// Delete disconnects e (and its twin) from both edge rings. The caller is
// responsible for removing e's owning QuadEdge from any arena tracking it
// (see Subdivision.DeleteEdge).
func Delete(e *Edge, debug bool) {
	if e == nil {
		return
	}
	if debug {
		log.Printf("quadedge: deleting edge %p", e)
	}
	Splice(e, e.OPrev(), debug)
	Splice(e.Sym(), e.Sym().OPrev(), debug)
}

// OnEdge reports whether pt lies on the segment spanned by e.
func OnEdge(pt delaunay.Point, e *Edge) bool {
	org, dst := e.Orig(), e.Dest()
	if org == nil || dst == nil {
		return false
	}
	return planar.IsPointOnLineSegment(pt, delaunay.Line{*org, *dst})
}

// RightOf reports whether the cross product (a-p) x (b-p), with
// a=e.Orig() and b=e.Dest(), is strictly positive, i.e. whether
// winding.Of(p, a, b) is CCW. That is the right-hand side of e in a
// y-down (screen) frame; in the y-up frame package winding names its
// orders in, it is the left-hand side. Zero (collinear) is neither left
// nor right.
func RightOf(p delaunay.Point, e *Edge) bool {
	org, dst := e.Orig(), e.Dest()
	if org == nil || dst == nil {
		return false
	}
	return winding.Of(p, *org, *dst) == winding.CCW
}

// LeftOf reports whether winding.Of(p, e.Orig(), e.Dest()) is CW: the
// left-hand side of e in a y-down frame, the right-hand side in winding's
// y-up frame.
func LeftOf(p delaunay.Point, e *Edge) bool {
	org, dst := e.Orig(), e.Dest()
	if org == nil || dst == nil {
		return false
	}
	return winding.Of(p, *org, *dst) == winding.CW
}

// InCircle reports whether d lies strictly inside the circumcircle of
// a, b, c, which must be ordered so that winding.Of(a, b, c) is CW
// (counter-clockwise in a y-down frame), the order the triangulator's
// merge step passes them in. Implements spec.md §4.1: the sign of the 3x3
// determinant of rows (ax-dx, ay-dy, (ax-dx)^2+(ay-dy)^2) and likewise for
// b, c; negative means inside.
func InCircle(a, b, c, d delaunay.Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	det := determinant3(
		adx, ady, adx*adx+ady*ady,
		bdx, bdy, bdx*bdx+bdy*bdy,
		cdx, cdy, cdx*cdx+cdy*cdy,
	)
	return det < 0
}

func determinant3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) float64 {
	return a11*(a22*a33-a23*a32) - a12*(a21*a33-a23*a31) + a13*(a21*a32-a22*a31)
}
