// Package fst provides a compact weighted finite-state lattice:
// integer-labeled arcs over the tropical semiring, with the structural
// checks and codecs the rest of lvlfst is built on.
//
// 🚀 What is a lattice?
//
//	A lattice is a directed automaton whose arcs carry an input label,
//	an output label and a cost. Paths from the start state into a final
//	state spell weighted strings. Decoders use lattices to keep many
//	alternative hypotheses cheap to store and compare:
//	  • speech/handwriting recognition output
//	  • CTC emission graphs before post-processing
//	  • any weighted regular language you want to transform
//
// ✨ Key features:
//   - dense, index-stable states: AddState returns 0, 1, 2, … and ids
//     never move, so slices back every lookup
//   - tropical Weight (min as Plus, addition as Times, +Inf as Zero)
//   - acceptor and acyclicity checks, topological ordering,
//     single-pass shortest distance
//   - AT&T-style text codec and a varint binary codec that round-trip
//     exactly (keyed archive framing lives in package ark)
//
// ⚙️ Usage:
//
//	lat := fst.NewLattice()
//	s0, s1 := lat.AddState(), lat.AddState()
//	_ = lat.SetStart(s0)
//	_ = lat.AddArc(s0, fst.Arc{In: 3, Out: 3, Weight: 0.5, To: s1})
//	_ = lat.SetFinal(s1, fst.One())
//
// Determinism: arc order is insertion order and every accessor iterates
// states 0..NumStates-1, so equal construction sequences give equal
// observable behavior, runs included.
//
// Lattice is not safe for concurrent mutation; concurrent reads are fine.
package fst
