// Sentinel errors of the blank-removal transform.

package ctc

import "errors"

var (
	// ErrNilLattice indicates a nil input lattice.
	ErrNilLattice = errors.New("ctc: nil lattice")

	// ErrInvalidBlank indicates a blank label of 0, which is reserved
	// for epsilon.
	ErrInvalidBlank = errors.New("ctc: blank label 0 is reserved for epsilon")

	// ErrNotAcceptor indicates an input lattice with an arc whose input
	// and output labels differ.
	ErrNotAcceptor = errors.New("ctc: lattice is not an acceptor")

	// ErrCyclicLattice indicates a cycle reachable from the start state.
	ErrCyclicLattice = errors.New("ctc: lattice is cyclic")
)
