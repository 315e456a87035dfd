package compose

import (
	"errors"

	"github.com/katalvlaran/lvlfst/fst"
)

// ErrNilLattice indicates a nil operand.
var ErrNilLattice = errors.New("compose: nil lattice")

// pair is one (a-state, b-state) product state.
type pair struct {
	a, b fst.StateID
}

// Compose returns the product of a and b. A path survives iff a's output
// tape matches b's input tape arc by arc; surviving arcs carry a's input
// label, b's output label and the Times-combined weight. A pair state is
// final iff both halves are, with Times-combined final weights. See the
// package doc for the epsilon contract.
//
// The result is freshly allocated; the operands are never modified. An
// operand without a start state yields an empty lattice.
func Compose(a, b *fst.Lattice) (*fst.Lattice, error) {
	if a == nil || b == nil {
		return nil, ErrNilLattice
	}
	out := fst.NewLattice()
	if a.Start() == fst.NoState || b.Start() == fst.NoState {
		return out, nil
	}

	// byIn memoizes b's arcs bucketed by input label, one bucket map per
	// visited b-state. Buckets preserve arc insertion order; the map is
	// only ever queried by key, never ranged, so determinism holds.
	index := make(map[fst.StateID]map[fst.Label][]fst.Arc)
	byIn := func(s fst.StateID) map[fst.Label][]fst.Arc {
		if m, ok := index[s]; ok {
			return m
		}
		m := make(map[fst.Label][]fst.Arc)
		for _, arc := range b.Arcs(s) {
			m[arc.In] = append(m[arc.In], arc)
		}
		index[s] = m

		return m
	}

	// state returns the output id of p, materializing and enqueueing the
	// pair on first sight. Ids follow discovery order.
	seen := make(map[pair]fst.StateID)
	var queue []pair
	state := func(p pair) fst.StateID {
		if id, ok := seen[p]; ok {
			return id
		}
		id := out.AddState()
		seen[p] = id
		queue = append(queue, p)

		return id
	}

	// 1. Seed with the start pair.
	// All out mutations below use ids minted by AddState and weights
	// built from validated operands, so their error returns are ignored.
	_ = out.SetStart(state(pair{a.Start(), b.Start()}))

	// 2. Expand pairs breadth-first.
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		id := seen[p]

		// 2a. Finality: both halves must accept.
		if fa, fb := a.Final(p.a), b.Final(p.b); !fa.IsZero() && !fb.IsZero() {
			_ = out.SetFinal(id, fa.Times(fb))
		}

		// 2b. a's arcs: epsilon output moves a alone, anything else must
		// find matching input labels on b's side.
		buckets := byIn(p.b)
		for _, x := range a.Arcs(p.a) {
			if x.Out == fst.Epsilon {
				_ = out.AddArc(id, fst.Arc{
					In:     x.In,
					Out:    fst.Epsilon,
					Weight: x.Weight,
					To:     state(pair{x.To, p.b}),
				})

				continue
			}
			for _, y := range buckets[x.Out] {
				_ = out.AddArc(id, fst.Arc{
					In:     x.In,
					Out:    y.Out,
					Weight: x.Weight.Times(y.Weight),
					To:     state(pair{x.To, y.To}),
				})
			}
		}

		// 2c. b's input-epsilon arcs move b alone.
		for _, y := range buckets[fst.Epsilon] {
			_ = out.AddArc(id, fst.Arc{
				In:     fst.Epsilon,
				Out:    y.Out,
				Weight: y.Weight,
				To:     state(pair{p.a, y.To}),
			})
		}
	}

	return out, nil
}
