package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

func TestNewWithEndPoints(t *testing.T) {
	org := delaunay.Point{X: 0, Y: 0}
	dest := delaunay.Point{X: 1, Y: 0}
	e := quadedge.NewWithEndPoints(&org, &dest)

	require.NotNil(t, e.Orig())
	require.NotNil(t, e.Dest())
	assert.Equal(t, org, *e.Orig())
	assert.Equal(t, dest, *e.Dest())

	// Symmetry invariant (spec.md §8 property 1).
	assert.Same(t, e, e.Sym().Sym())
	assert.Equal(t, *e.Orig(), *e.Sym().Dest())
	assert.Equal(t, *e.Dest(), *e.Sym().Orig())

	// A freshly made edge's ring is the singleton {e, e}.
	assert.Same(t, e, e.ONext())
	assert.Same(t, e, e.OPrev())
}

func TestRotIsOrderFour(t *testing.T) {
	org := delaunay.Point{X: 0, Y: 0}
	dest := delaunay.Point{X: 1, Y: 0}
	e := quadedge.NewWithEndPoints(&org, &dest)

	assert.Same(t, e, e.Rot().Rot().Rot().Rot())
	assert.Same(t, e.Sym(), e.Rot().Rot())
	assert.Same(t, e, e.Sym().Sym())
	assert.NotSame(t, e, e.Rot())
}
