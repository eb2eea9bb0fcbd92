package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/quadedge"
)

func TestValidateFreshEdge(t *testing.T) {
	org := delaunay.Point{X: 0, Y: 0}
	dest := delaunay.Point{X: 1, Y: 0}
	e := quadedge.NewWithEndPoints(&org, &dest)
	assert.NoError(t, quadedge.Validate(e))
}

func TestValidateAfterSplice(t *testing.T) {
	p1 := delaunay.Point{X: 0, Y: 0}
	p2 := delaunay.Point{X: 1, Y: 0}
	p3 := delaunay.Point{X: 0, Y: 1}

	a := quadedge.NewWithEndPoints(&p1, &p2)
	b := quadedge.NewWithEndPoints(&p1, &p3)
	require.NoError(t, quadedge.Splice(a, b, false))

	assert.NoError(t, quadedge.Validate(a))
	assert.NoError(t, quadedge.Validate(b))
}

func TestErrInvalidError(t *testing.T) {
	err := quadedge.ErrInvalid{"one", "two"}
	assert.Contains(t, err.Error(), "one")
	assert.Contains(t, err.Error(), "two")
}
