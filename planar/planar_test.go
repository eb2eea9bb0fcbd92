package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/planar"
)

func TestIsPointOnLineSegment(t *testing.T) {
	l := delaunay.Line{{0, 0}, {10, 0}}
	assert.True(t, planar.IsPointOnLineSegment(delaunay.Point{X: 5, Y: 0}, l))
	assert.True(t, planar.IsPointOnLineSegment(delaunay.Point{X: 0, Y: 0}, l))
	assert.False(t, planar.IsPointOnLineSegment(delaunay.Point{X: 5, Y: 1}, l))
	assert.False(t, planar.IsPointOnLineSegment(delaunay.Point{X: 15, Y: 0}, l))
}
