// Shared scalar types, the Arc record, and the package error surface.
// The Lattice container lives in lattice.go; weight arithmetic in
// weight.go.

package fst

import "errors"

// Label identifies a symbol on an arc tape. Labels are plain integers so
// callers can map them onto any external symbol table.
type Label int

// Epsilon is the reserved empty-transition label. It never denotes a
// real symbol: alphabet collectors skip it and composition treats it as
// "consume nothing".
const Epsilon Label = 0

// StateID indexes a state inside one Lattice. Ids are dense: AddState
// hands out 0, 1, 2, … in call order, and states are never removed, so
// an id stays valid for the lifetime of its lattice.
type StateID int

// NoState is returned by Start on a lattice with no start state.
const NoState StateID = -1

// Arc is one weighted transition: In and Out are the input- and
// output-tape labels (equal on acceptors), To the destination state.
type Arc struct {
	In     Label
	Out    Label
	Weight Weight
	To     StateID
}

// Sentinel errors returned by this package. Wrap with fmt.Errorf("%w: …")
// and test with errors.Is.
var (
	// ErrNoState indicates a StateID outside [0, NumStates).
	ErrNoState = errors.New("fst: state does not exist")

	// ErrBadWeight indicates a NaN or -Inf weight handed to a mutator.
	ErrBadWeight = errors.New("fst: weight must not be NaN or -Inf")

	// ErrCyclic indicates a cycle reachable from the start state.
	ErrCyclic = errors.New("fst: lattice is cyclic")

	// ErrBadText indicates a malformed textual lattice body.
	ErrBadText = errors.New("fst: malformed text lattice")

	// ErrBadBinary indicates a malformed or truncated binary lattice body.
	ErrBadBinary = errors.New("fst: malformed binary lattice")
)
