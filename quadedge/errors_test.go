package quadedge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexbaryzhikov/delaunay/quadedge"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	all := []error{
		quadedge.ErrZeroLengthEdge,
		quadedge.ErrDuplicateEdge,
		quadedge.ErrSpliceOriginMismatch,
		quadedge.ErrSpliceOverlap,
		quadedge.ErrEmptyInputAfterDedup,
	}
	for i, e1 := range all {
		for j, e2 := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(e1, e2), "%v should not equal %v", e1, e2)
		}
	}
}
