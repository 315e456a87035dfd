package ctc

import "github.com/katalvlaran/lvlfst/fst"

// Alphabet is the set of output labels observed in one lattice, blank
// and epsilon excluded, kept in first-seen order. The i-th distinct
// symbol (0-based) owns filter state i+1; state 0 is the filter's blank
// hub.
type Alphabet struct {
	order []fst.Label
	state map[fst.Label]fst.StateID
}

// CollectAlphabet scans states 0..NumStates-1 and their arcs in
// insertion order, assigning ordinals 1, 2, 3, … to distinct output
// labels on first sight. Blank and epsilon are skipped. Scanning the
// same lattice always yields the same ordinals in the same order.
//
// Complexity: O(states + arcs).
func CollectAlphabet(lat *fst.Lattice, blank fst.Label) *Alphabet {
	a := &Alphabet{state: make(map[fst.Label]fst.StateID)}
	if lat == nil {
		return a
	}
	for s := 0; s < lat.NumStates(); s++ {
		for _, arc := range lat.Arcs(fst.StateID(s)) {
			sym := arc.Out
			if sym == blank || sym == fst.Epsilon {
				continue
			}
			if _, ok := a.state[sym]; !ok {
				a.state[sym] = fst.StateID(len(a.order) + 1)
				a.order = append(a.order, sym)
			}
		}
	}

	return a
}

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int { return len(a.order) }

// Symbols returns the symbols in first-seen order; the slice is a copy.
func (a *Alphabet) Symbols() []fst.Label {
	return append([]fst.Label(nil), a.order...)
}

// State returns the filter state owned by sym, false when sym was never
// collected.
func (a *Alphabet) State(sym fst.Label) (fst.StateID, bool) {
	id, ok := a.state[sym]

	return id, ok
}
