package quadedge

import "github.com/gdey/errors"

// Sentinel errors for the recoverable, locally-refused operations spec.md
// §7 describes. Of these, only ErrEmptyInputAfterDedup is ever returned by
// the public Delaunay entry point, and only under WithStrictEmptyInput;
// callers that want to observe the others call the quadedge operators
// directly (as this package's own tests do).
const (
	// ErrZeroLengthEdge is returned by MakeEdge when org == dest.
	ErrZeroLengthEdge = errors.String("quadedge: cannot create zero-length edge")
	// ErrDuplicateEdge is returned by MakeEdge when an edge with the same
	// endpoint pair (in either direction) already exists in the store.
	ErrDuplicateEdge = errors.String("quadedge: edge already exists between these endpoints")
	// ErrSpliceOriginMismatch is returned by Splice when a.Orig() != b.Orig().
	ErrSpliceOriginMismatch = errors.String("quadedge: splice requires a common origin")
	// ErrSpliceOverlap is returned by Splice when merging two rings would
	// produce a fold (an onext that is CW of its source rather than CCW).
	ErrSpliceOverlap = errors.String("quadedge: splice would overlap edge rings")
	// ErrEmptyInputAfterDedup is the opt-in strict error for fewer than two
	// points surviving deduplication; see triangulate.WithStrictEmptyInput.
	ErrEmptyInputAfterDedup = errors.String("quadedge: fewer than two points after deduplication")
)
