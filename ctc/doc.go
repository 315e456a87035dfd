// Package ctc removes CTC blank symbols from weighted lattices.
//
// 🚀 Why blanks need removing
//
//	A CTC decoder emits one symbol per time frame: real symbols repeat
//	for as long as they sound, and a dedicated blank symbol fills the
//	frames in between. The raw emission sequence 5 3 3 5 3 5 4 (blank 5)
//	really spells 3 3 4: repeats within one run collapse, blanks vanish,
//	and a blank between two runs of the SAME symbol keeps them distinct.
//	RemoveBlank applies that collapsing to every path of a lattice at
//	once, not just to a single best hypothesis.
//
// ✨ How it works:
//   - CollectAlphabet gathers the distinct non-blank output labels in
//     first-seen order and gives the i-th one ordinal i+1
//   - NewBlankFilter builds a transducer with one hub state plus one
//     state per symbol that maps raw runs to collapsed emissions, every
//     arc weighted One
//   - RemoveBlank validates the input (acceptor, acyclic), then composes
//     it with the filter: the result keeps raw symbols on the input tape
//     and collapsed symbols on the output tape, path weights untouched
//
// ⚙️ Usage:
//
//	out, err := ctc.RemoveBlank(lat, 5)
//	if errors.Is(err, ctc.ErrNotAcceptor) { … }
//
// Determinism: alphabet order, filter shape and composition are all
// insertion-ordered, so equal inputs produce identical outputs.
//
// Errors: ErrInvalidBlank (blank 0 is reserved for epsilon),
// ErrNotAcceptor, ErrCyclicLattice, ErrNilLattice. All are sentinels;
// test with errors.Is.
package ctc
