package ctc

import "github.com/katalvlaran/lvlfst/fst"

// NewBlankFilter builds the blank-removal transducer for alpha: a hub
// state plus one state per symbol, every state final with One, every
// arc weighted One so composition never disturbs path weights.
//
// From the hub (state 0, the start):
//   - a blank:epsilon self-loop deletes leading and separating blanks;
//   - an s:s arc into s's own state emits the first frame of a run.
//
// From a symbol state k owned by s:
//   - an s:epsilon self-loop swallows the run's further frames;
//   - a blank:epsilon arc back to the hub closes the run, so the same
//     symbol may be emitted again afterwards;
//   - an s2:s2 arc into the state of every other symbol s2 starts that
//     run directly, no blank needed.
//
// Arc emission follows alpha's first-seen order, so equal alphabets
// yield structurally identical filters. An empty alphabet yields the
// single-state hub that absorbs blanks and accepts.
//
// Size: k+1 states and (k+1)^2 arcs for k symbols.
func NewBlankFilter(alpha *Alphabet, blank fst.Label) *fst.Lattice {
	f := fst.NewLattice()

	// 1. Hub: start, final, eats blanks.
	hub := f.AddState()
	_ = f.SetStart(hub)
	_ = f.SetFinal(hub, fst.One())
	_ = f.AddArc(hub, fst.Arc{In: blank, Out: fst.Epsilon, Weight: fst.One(), To: hub})

	// 2. One final state per symbol, ids matching alpha's ordinals.
	symbols := alpha.Symbols()
	for range symbols {
		_ = f.SetFinal(f.AddState(), fst.One())
	}

	// 3. Run entry, run continuation, run exit, run switch.
	for _, s := range symbols {
		k, _ := alpha.State(s)
		_ = f.AddArc(hub, fst.Arc{In: s, Out: s, Weight: fst.One(), To: k})
		_ = f.AddArc(k, fst.Arc{In: s, Out: fst.Epsilon, Weight: fst.One(), To: k})
		_ = f.AddArc(k, fst.Arc{In: blank, Out: fst.Epsilon, Weight: fst.One(), To: hub})
		for _, s2 := range symbols {
			if s2 == s {
				continue
			}
			k2, _ := alpha.State(s2)
			_ = f.AddArc(k, fst.Arc{In: s2, Out: s2, Weight: fst.One(), To: k2})
		}
	}

	return f
}
