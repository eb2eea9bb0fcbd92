package quadedge

import (
	"log"

	"github.com/pborman/uuid"

	"github.com/alexbaryzhikov/delaunay"
)

// Subdivision is the arena-backed quad-edge store for one triangulation
// call. It owns every QuadEdge it creates; callers hold only read-only
// views of the surviving edges. Per spec.md §5, a Subdivision must never
// be shared across concurrent triangulations -- each call constructs its
// own via NewSubdivision.
type Subdivision struct {
	// ID correlates this store's debug log lines across one
	// triangulation run.
	ID uuid.UUID

	quadEdges []*QuadEdge
	debug     bool
}

// NewSubdivision returns an empty store.
func NewSubdivision() *Subdivision {
	return &Subdivision{ID: uuid.NewRandom()}
}

// SetDebug toggles verbose logging for this store's operations.
func (s *Subdivision) SetDebug(v bool) {
	s.debug = v
}

// exists reports whether an edge already connects org and dest, in either
// direction.
func (s *Subdivision) exists(org, dest delaunay.Point) bool {
	for _, qe := range s.quadEdges {
		e := &qe.e[0]
		o, d := e.Orig(), e.Dest()
		if o == nil || d == nil {
			continue
		}
		if (o.Equal(org) && d.Equal(dest)) || (o.Equal(dest) && d.Equal(org)) {
			return true
		}
	}
	return false
}

// MakeEdge creates a fresh edge from org to dest and registers it with the
// store. It fails (returns a nil Edge and an error) if org == dest
// (ErrZeroLengthEdge) or if an edge already connects them in either
// direction (ErrDuplicateEdge); both are logged when debug is set and
// treated as local,
// recoverable refusals per spec.md §7, never propagated by the public
// entry point.
func (s *Subdivision) MakeEdge(org, dest delaunay.Point) (*Edge, error) {
	if org.Equal(dest) {
		if s.debug {
			log.Printf("quadedge[%s]: refusing zero-length edge at %v", s.ID, org)
		}
		return nil, ErrZeroLengthEdge
	}
	if s.exists(org, dest) {
		if s.debug {
			log.Printf("quadedge[%s]: edge already exists between %v and %v", s.ID, org, dest)
		}
		return nil, ErrDuplicateEdge
	}
	e := NewWithEndPoints(&org, &dest)
	s.quadEdges = append(s.quadEdges, e.QuadEdge())
	return e, nil
}

// Connect adds a new edge connecting a.Dest() to b.Orig() (see
// quadedge.Connect) and registers the result with the store.
func (s *Subdivision) Connect(a, b *Edge) (*Edge, error) {
	e, err := Connect(a, b, s.debug)
	if err != nil || e == nil {
		return e, err
	}
	s.quadEdges = append(s.quadEdges, e.QuadEdge())
	return e, nil
}

// DeleteEdge disconnects e from the structure and drops its owning
// QuadEdge from the store. Per spec.md §9, the caller must capture any
// derived edge (e.g. e.ONext()) it needs before calling DeleteEdge, since
// surviving edges may no longer reference e afterward.
func (s *Subdivision) DeleteEdge(e *Edge) {
	if e == nil {
		return
	}
	Delete(e, s.debug)
	qe := e.QuadEdge()
	for i, existing := range s.quadEdges {
		if existing == qe {
			s.quadEdges[i] = s.quadEdges[len(s.quadEdges)-1]
			s.quadEdges = s.quadEdges[:len(s.quadEdges)-1]
			break
		}
	}
}

// Edges returns one primal dart per surviving undirected edge, in
// whatever order the store currently holds them -- insertion order until
// the first DeleteEdge call, which swap-removes and so can reorder
// survivors. Twins are not duplicated.
func (s *Subdivision) Edges() []*Edge {
	out := make([]*Edge, len(s.quadEdges))
	for i, qe := range s.quadEdges {
		out[i] = &qe.e[0]
	}
	return out
}

// Len reports the number of surviving undirected edges.
func (s *Subdivision) Len() int {
	return len(s.quadEdges)
}
