package quadedge

import "strings"

// ErrInvalid collects the individual structural complaints Validate finds;
// it implements error by joining them with newlines. Reconstructed from
// the teacher's topo.go, which handles a Validate(a, order) error by type
// asserting to ErrInvalid and ranging over it as a list of messages.
type ErrInvalid []string

func (e ErrInvalid) Error() string {
	return "quadedge: invalid edge:\n" + strings.Join([]string(e), "\n")
}

// Validate checks the two structural invariants spec.md §8 lists first:
// symmetry (e.Sym().Sym() == e, endpoints cross-consistent) and ring
// closure (walking ONext from e returns to e). Neither the triangulator
// nor the Subdivision calls it; tests use it to check an intermediate
// state of the structure.
func Validate(e *Edge) error {
	var problems []string

	if e.Sym().Sym() != e {
		problems = append(problems, "sym is not an involution")
	}
	if e.Orig() != nil && e.Dest() != nil {
		if e.Sym().Dest() == nil || !e.Orig().Equal(*e.Sym().Dest()) {
			problems = append(problems, "e.Orig() != e.Sym().Dest()")
		}
		if e.Sym().Orig() == nil || !e.Dest().Equal(*e.Sym().Orig()) {
			problems = append(problems, "e.Dest() != e.Sym().Orig()")
		}
	}

	const maxRingWalk = 1 << 20
	steps := 0
	for cur := e.ONext(); cur != e; cur = cur.ONext() {
		steps++
		if steps > maxRingWalk {
			problems = append(problems, "onext ring does not close")
			break
		}
		if e.Orig() != nil && cur.Orig() != nil && !cur.Orig().Equal(*e.Orig()) {
			problems = append(problems, "onext ring member has a different origin")
			break
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return ErrInvalid(problems)
}
