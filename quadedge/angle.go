package quadedge

import (
	"math"

	"github.com/alexbaryzhikov/delaunay"
)

// angleTo returns the angle, in radians, of the ray from p0 to p1.
// Direct translation of original_source/delaunay.py's angle_to.
func angleTo(p0, p1 delaunay.Point) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// cwAngle returns the clockwise sweep from angle a0 to angle a1, in
// [0, 2*pi). Direct translation of original_source/delaunay.py's cw_angle.
func cwAngle(a0, a1 float64) float64 {
	if a0 == a1 {
		return 0
	}
	if a0 < a1 {
		return a1 - a0
	}
	return 2*math.Pi + a1 - a0
}

// ccwAngle returns the counter-clockwise sweep from angle a0 to angle a1,
// in [0, 2*pi). Unused by the divide & conquer merge path (which only
// needs cwAngle for Splice's fold check) but kept alongside it, matching
// the glossary's pairing of the two in original_source/delaunay.py.
func ccwAngle(a0, a1 float64) float64 {
	if a0 == a1 {
		return 0
	}
	if a1 < a0 {
		return a0 - a1
	}
	return 2*math.Pi + a0 - a1
}

// eAngle returns the outgoing angle of edge e (the angle of org -> dest).
func eAngle(e *Edge) float64 {
	return angleTo(*e.Orig(), *e.Dest())
}

// eCWAngle returns the clockwise sweep from a's outgoing angle to b's.
func eCWAngle(a, b *Edge) float64 {
	return cwAngle(eAngle(a), eAngle(b))
}

// eFirstCW searches the ring of b (under ONext) for the edge with the
// smallest CW angle relative to a. Direct translation of
// original_source/delaunay.py's e_first_cw, used by Splice's fold check
// when merging two distinct edge rings.
func eFirstCW(a, b *Edge) *Edge {
	best := b
	bestAngle := eCWAngle(a, b)
	for e := b.ONext(); e != b; e = e.ONext() {
		angle := eCWAngle(a, e)
		if angle < bestAngle {
			best = e
			bestAngle = angle
		}
	}
	return best
}
