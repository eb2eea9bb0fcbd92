package triangulate

import (
	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

// Delaunay computes the Delaunay triangulation of points and returns one
// Edge view per surviving undirected edge. points is not mutated; it is
// copied, sorted lexicographically, and deduplicated (per spec.md §4.2)
// before triangulation.
//
// By default, fewer than two points surviving deduplication yields a nil,
// nil result. Pass WithStrictEmptyInput(true) to get
// quadedge.ErrEmptyInputAfterDedup instead.
func Delaunay(points []delaunay.Point, opts ...Option) ([]Edge, error) {
	o := resolve(opts)

	sorted := delaunay.SortPoints(points)
	var deduped []delaunay.Point
	if o.epsilon != nil {
		deduped = delaunay.DedupPointsTolerance(sorted, *o.epsilon)
	} else {
		deduped = delaunay.DedupPoints(sorted)
	}

	if len(deduped) < 2 {
		if o.strictEmptyInputEnabled() {
			return nil, quadedge.ErrEmptyInputAfterDedup
		}
		return nil, nil
	}

	sub := quadedge.NewSubdivision()
	sub.SetDebug(o.debugEnabled())

	Triangulate(sub, deduped, o.debugEnabled())

	return newEdgeViews(sub.Edges()), nil
}
