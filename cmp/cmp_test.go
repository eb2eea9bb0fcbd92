package cmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexbaryzhikov/delaunay/cmp"
)

func TestFloat(t *testing.T) {
	assert.True(t, cmp.Float(1.0, 1.0))
	assert.True(t, cmp.Float(1.0, 1.0+1e-12))
	assert.False(t, cmp.Float(1.0, 1.1))
}

func TestFloatTolerance(t *testing.T) {
	assert.True(t, cmp.FloatTolerance(1.0, 1.05, 0.1))
	assert.False(t, cmp.FloatTolerance(1.0, 1.2, 0.1))
}
