package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

func TestSubdivisionMakeEdge(t *testing.T) {
	s := quadedge.NewSubdivision()
	p0 := delaunay.Point{X: 0, Y: 0}
	p1 := delaunay.Point{X: 1, Y: 0}

	e, err := s.MakeEdge(p0, p1)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 1, s.Len())
}

func TestSubdivisionMakeEdgeZeroLength(t *testing.T) {
	s := quadedge.NewSubdivision()
	p0 := delaunay.Point{X: 0, Y: 0}

	e, err := s.MakeEdge(p0, p0)
	assert.ErrorIs(t, err, quadedge.ErrZeroLengthEdge)
	assert.Nil(t, e)
	assert.Equal(t, 0, s.Len())
}

func TestSubdivisionMakeEdgeDuplicate(t *testing.T) {
	s := quadedge.NewSubdivision()
	p0 := delaunay.Point{X: 0, Y: 0}
	p1 := delaunay.Point{X: 1, Y: 0}

	_, err := s.MakeEdge(p0, p1)
	require.NoError(t, err)

	_, err = s.MakeEdge(p1, p0)
	assert.ErrorIs(t, err, quadedge.ErrDuplicateEdge)
	assert.Equal(t, 1, s.Len())
}

func TestSubdivisionDeleteEdge(t *testing.T) {
	s := quadedge.NewSubdivision()
	p0 := delaunay.Point{X: 0, Y: 0}
	p1 := delaunay.Point{X: 1, Y: 0}

	e, err := s.MakeEdge(p0, p1)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.DeleteEdge(e)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Edges())
}

func TestSubdivisionEdgesOrder(t *testing.T) {
	s := quadedge.NewSubdivision()
	p0 := delaunay.Point{X: 0, Y: 0}
	p1 := delaunay.Point{X: 1, Y: 0}
	p2 := delaunay.Point{X: 2, Y: 0}

	e0, err := s.MakeEdge(p0, p1)
	require.NoError(t, err)
	e1, err := s.MakeEdge(p1, p2)
	require.NoError(t, err)

	edges := s.Edges()
	require.Len(t, edges, 2)
	assert.Same(t, e0, edges[0])
	assert.Same(t, e1, edges[1])
}
