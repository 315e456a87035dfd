package ctc

import "github.com/katalvlaran/lvlfst/fst"

// Validate checks the preconditions of RemoveBlank, first failure wins:
//
//  1. lat must not be nil (ErrNilLattice);
//  2. every arc must carry equal labels on both tapes (ErrNotAcceptor);
//  3. no cycle may be reachable from the start state (ErrCyclicLattice).
//
// The empty lattice passes vacuously.
func Validate(lat *fst.Lattice) error {
	if lat == nil {
		return ErrNilLattice
	}
	if !lat.IsAcceptor() {
		return ErrNotAcceptor
	}
	if !lat.IsAcyclic() {
		return ErrCyclicLattice
	}

	return nil
}
