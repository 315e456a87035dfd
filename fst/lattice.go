// The mutable Lattice container: a flat arc arena indexed by state id.

package fst

import "fmt"

// Lattice is a mutable weighted automaton. State s owns arcs[s]
// (insertion order, never reordered) and final[s] (Zero means
// non-final); ids are dense and stable, so slices back every lookup and
// iteration order is deterministic by construction.
type Lattice struct {
	start StateID
	arcs  [][]Arc
	final []Weight
}

// NewLattice returns an empty lattice: zero states, no start.
func NewLattice() *Lattice {
	return &Lattice{start: NoState}
}

// AddState appends one state and returns its id (0, 1, 2, … in call
// order). The new state is non-final and has no arcs.
func (l *Lattice) AddState() StateID {
	l.arcs = append(l.arcs, nil)
	l.final = append(l.final, Zero())

	return StateID(len(l.arcs) - 1)
}

// NumStates returns the number of states.
func (l *Lattice) NumStates() int { return len(l.arcs) }

// NumArcs returns the total arc count across all states.
func (l *Lattice) NumArcs() int {
	n := 0
	for _, as := range l.arcs {
		n += len(as)
	}

	return n
}

// valid reports whether s names an existing state.
func (l *Lattice) valid(s StateID) bool {
	return s >= 0 && int(s) < len(l.arcs)
}

// SetStart marks s as the start state.
// Returns ErrNoState if s does not exist.
func (l *Lattice) SetStart(s StateID) error {
	if !l.valid(s) {
		return fmt.Errorf("%w: SetStart(%d)", ErrNoState, s)
	}
	l.start = s

	return nil
}

// Start returns the start state, or NoState when none was set.
func (l *Lattice) Start() StateID { return l.start }

// SetFinal sets the final weight of s; pass Zero() to make s non-final
// again. Returns ErrNoState or ErrBadWeight on invalid input.
func (l *Lattice) SetFinal(s StateID, w Weight) error {
	if !l.valid(s) {
		return fmt.Errorf("%w: SetFinal(%d)", ErrNoState, s)
	}
	if badWeight(w) {
		return fmt.Errorf("%w: SetFinal(%d, %v)", ErrBadWeight, s, float64(w))
	}
	l.final[s] = w

	return nil
}

// Final returns the final weight of s: Zero() when s is non-final or
// out of range.
func (l *Lattice) Final(s StateID) Weight {
	if !l.valid(s) {
		return Zero()
	}

	return l.final[s]
}

// IsFinal reports whether s carries a non-Zero final weight.
func (l *Lattice) IsFinal(s StateID) bool { return !l.Final(s).IsZero() }

// AddArc appends one arc leaving from. Arc order per state is insertion
// order. Returns ErrNoState when either endpoint is missing and
// ErrBadWeight on NaN or -Inf.
func (l *Lattice) AddArc(from StateID, a Arc) error {
	if !l.valid(from) {
		return fmt.Errorf("%w: AddArc from %d", ErrNoState, from)
	}
	if !l.valid(a.To) {
		return fmt.Errorf("%w: AddArc to %d", ErrNoState, a.To)
	}
	if badWeight(a.Weight) {
		return fmt.Errorf("%w: AddArc %d->%d (%v)", ErrBadWeight, from, a.To, float64(a.Weight))
	}
	l.arcs[from] = append(l.arcs[from], a)

	return nil
}

// Arcs returns the arcs leaving s in insertion order. The slice is the
// lattice's own storage: treat it as read-only. Out-of-range ids yield
// nil.
func (l *Lattice) Arcs(s StateID) []Arc {
	if !l.valid(s) {
		return nil
	}

	return l.arcs[s]
}

// Clone returns a deep copy sharing no storage with l.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{
		start: l.start,
		arcs:  make([][]Arc, len(l.arcs)),
		final: append([]Weight(nil), l.final...),
	}
	for s, as := range l.arcs {
		if len(as) > 0 {
			c.arcs[s] = append([]Arc(nil), as...)
		}
	}

	return c
}

// Equal reports structural equality: same state count, start, final
// weights and per-state arc sequences. Weights compare exactly (no
// tolerance); Equal is meant for tests and codec round-trips, not for
// language equivalence.
func (l *Lattice) Equal(o *Lattice) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.arcs) != len(o.arcs) || l.start != o.start {
		return false
	}
	for s := range l.final {
		if l.final[s] != o.final[s] {
			return false
		}
	}
	for s := range l.arcs {
		if len(l.arcs[s]) != len(o.arcs[s]) {
			return false
		}
		for i, a := range l.arcs[s] {
			if a != o.arcs[s][i] {
				return false
			}
		}
	}

	return true
}
