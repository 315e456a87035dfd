// Single-source shortest distance over the tropical semiring.

package fst

// ShortestDistance returns the Plus-combination (minimum) over all
// accepting paths of the Times-product of arc weights and the final
// weight: the cheapest way from the start into finality. It returns
// Zero() when the lattice is empty or accepts nothing, and ErrCyclic
// when a cycle is reachable from the start (the single forward pass
// below relies on a topological order).
//
// Complexity: O(states + arcs) on top of the ordering pass.
func (l *Lattice) ShortestDistance() (Weight, error) {
	order, err := l.TopOrder()
	if err != nil {
		return Zero(), err
	}
	if len(order) == 0 {
		return Zero(), nil
	}

	// 1. d[s] = cheapest cost from start to s; unreached stays Zero.
	d := make([]Weight, len(l.arcs))
	for i := range d {
		d[i] = Zero()
	}
	d[l.start] = One()

	// 2. Relax states in topological order; fold finality as we go.
	total := Zero()
	for _, s := range order {
		if d[s].IsZero() {
			continue
		}
		if f := l.final[s]; !f.IsZero() {
			total = total.Plus(d[s].Times(f))
		}
		for _, a := range l.arcs[s] {
			d[a.To] = d[a.To].Plus(d[s].Times(a.Weight))
		}
	}

	return total, nil
}
