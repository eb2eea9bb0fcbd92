// Package planar provides small planar-geometry helpers consumed by the
// quad-edge package (quadedge.OnEdge calls IsPointOnLineSegment, exactly
// as the teacher's topo.go calls into github.com/go-spatial/geom/planar).
package planar

import (
	"math"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/cmp"
)

// IsPointOnLineSegment reports whether pt lies on the closed segment l,
// within cmp.Epsilon.
func IsPointOnLineSegment(pt delaunay.Point, l delaunay.Line) bool {
	org, dst := l[0], l[1]

	cross := dst.Subtract(org).CrossProduct(pt.Subtract(org))
	if !cmp.Float(cross, 0) {
		return false
	}

	minX, maxX := math.Min(org.X, dst.X), math.Max(org.X, dst.X)
	minY, maxY := math.Min(org.Y, dst.Y), math.Max(org.Y, dst.Y)
	return pt.X >= minX-cmp.Epsilon && pt.X <= maxX+cmp.Epsilon &&
		pt.Y >= minY-cmp.Epsilon && pt.Y <= maxY+cmp.Epsilon
}
