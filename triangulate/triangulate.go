// Package triangulate implements the recursive divide & conquer Delaunay
// triangulator (Guibas & Stolfi, 1985) over the quadedge package's store,
// and exposes the module's public entry point, Delaunay.
package triangulate

import (
	"log"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

// Triangulate computes the Delaunay triangulation of a point set already
// sorted lexicographically and deduplicated, registering every edge it
// creates with sub. It returns ldo, the CCW convex-hull edge outgoing from
// the leftmost vertex, and rdo, the CW convex-hull edge outgoing from the
// rightmost vertex -- both the final convex-hull anchors and, at every
// level of the recursion, the merge step's attachment points.
//
// Direct port of original_source/delaunay.py's triangulate, operating on
// *quadedge.Edge and a quadedge.Subdivision instead of a module-level
// edges list.
func Triangulate(sub *quadedge.Subdivision, s []delaunay.Point, debug bool) (ldo, rdo *quadedge.Edge) {
	switch len(s) {
	case 2:
		a, err := sub.MakeEdge(s[0], s[1])
		if err != nil {
			// Only reachable if s contains a duplicate pair that should
			// have been removed by DedupPoints -- a bug upstream.
			if debug {
				log.Printf("triangulate: unexpected MakeEdge error for base case 2: %v", err)
			}
			return nil, nil
		}
		return a, a.Sym()

	case 3:
		p1, p2, p3 := s[0], s[1], s[2]
		a, err := sub.MakeEdge(p1, p2)
		if err != nil {
			if debug {
				log.Printf("triangulate: unexpected MakeEdge error for base case 3 (a): %v", err)
			}
			return nil, nil
		}
		b, err := sub.MakeEdge(p2, p3)
		if err != nil {
			if debug {
				log.Printf("triangulate: unexpected MakeEdge error for base case 3 (b): %v", err)
			}
			return nil, nil
		}
		if err := quadedge.Splice(a.Sym(), b, debug); err != nil {
			if debug {
				log.Printf("triangulate: unexpected Splice error for base case 3: %v", err)
			}
			return nil, nil
		}

		switch {
		case quadedge.RightOf(p3, a):
			if _, err := sub.Connect(b, a); err != nil {
				if debug {
					log.Printf("triangulate: unexpected Connect error for base case 3: %v", err)
				}
			}
			return a, b.Sym()
		case quadedge.LeftOf(p3, a):
			c, err := sub.Connect(b, a)
			if err != nil {
				if debug {
					log.Printf("triangulate: unexpected Connect error for base case 3: %v", err)
				}
				return a, b.Sym()
			}
			return c.Sym(), c
		default:
			// p1, p2, p3 are collinear: no third edge.
			return a, b.Sym()
		}

	default:
		m := (len(s) + 1) / 2
		left, right := s[:m], s[m:]
		ldo, ldi := Triangulate(sub, left, debug)
		rdi, rdo := Triangulate(sub, right, debug)

		// Upper common tangent of left and right.
	tangent:
		for {
			switch {
			case quadedge.RightOf(*rdi.Orig(), ldi):
				ldi = ldi.Sym().ONext()
			case quadedge.LeftOf(*ldi.Orig(), rdi):
				rdi = rdi.Sym().OPrev()
			default:
				break tangent
			}
		}

		// First cross edge, rbase, from ldi.Orig() to rdi.Orig().
		rbase, err := sub.Connect(ldi.Sym(), rdi)
		if err != nil || rbase == nil {
			if debug {
				log.Printf("triangulate: unexpected Connect error for first cross edge: %v", err)
			}
			return ldo, rdo
		}

		if ldi.Orig().Equal(*ldo.Orig()) {
			ldo = rbase
		}
		if rdi.Orig().Equal(*rdo.Orig()) {
			rdo = rbase.Sym()
		}

		// Rising bubble merge.
		for {
			rcand, lcand := rbase.Sym().ONext(), rbase.OPrev()

			vRCand := quadedge.RightOf(*rcand.Dest(), rbase)
			vLCand := quadedge.RightOf(*lcand.Dest(), rbase)
			if !vRCand && !vLCand {
				// rbase is the lower common tangent.
				break
			}

			if vRCand {
				for quadedge.RightOf(*rcand.ONext().Dest(), rbase) &&
					quadedge.InCircle(*rbase.Dest(), *rbase.Orig(), *rcand.Dest(), *rcand.ONext().Dest()) {
					t := rcand.ONext()
					sub.DeleteEdge(rcand)
					rcand = t
				}
			}
			if vLCand {
				for quadedge.RightOf(*lcand.OPrev().Dest(), rbase) &&
					quadedge.InCircle(*rbase.Dest(), *rbase.Orig(), *lcand.Dest(), *lcand.OPrev().Dest()) {
					t := lcand.OPrev()
					sub.DeleteEdge(lcand)
					lcand = t
				}
			}

			var next *quadedge.Edge
			if !vRCand || (vLCand && quadedge.InCircle(*rcand.Dest(), *rcand.Orig(), *lcand.Orig(), *lcand.Dest())) {
				next, err = sub.Connect(lcand, rbase.Sym())
			} else {
				next, err = sub.Connect(rbase.Sym(), rcand.Sym())
			}
			if err != nil || next == nil {
				if debug {
					log.Printf("triangulate: unexpected Connect error during merge: %v", err)
				}
				break
			}
			rbase = next
		}

		return ldo, rdo
	}
}
