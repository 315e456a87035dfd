package ctc_test

// Shared fixtures for the package tests: lattice builders, accepting-path
// enumeration and the reference collapse the transform is measured
// against.

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfst/fst"
)

// chain builds a linear acceptor spelling frames with weight w per arc,
// last state final with One.
func chain(t *testing.T, frames []fst.Label, w fst.Weight) *fst.Lattice {
	t.Helper()
	lat := fst.NewLattice()
	cur := lat.AddState()
	require.NoError(t, lat.SetStart(cur))
	for _, f := range frames {
		next := lat.AddState()
		require.NoError(t, lat.AddArc(cur, fst.Arc{In: f, Out: f, Weight: w, To: next}))
		cur = next
	}
	require.NoError(t, lat.SetFinal(cur, fst.One()))

	return lat
}

// union builds an acceptor accepting every branch from one shared start
// state; branch i carries weight[i] on each of its arcs and ends in its
// own final state with One.
func union(t *testing.T, branches [][]fst.Label, weight []fst.Weight) *fst.Lattice {
	t.Helper()
	require.Equal(t, len(branches), len(weight), "one weight per branch")
	lat := fst.NewLattice()
	start := lat.AddState()
	require.NoError(t, lat.SetStart(start))
	for i, frames := range branches {
		cur := start
		for _, f := range frames {
			next := lat.AddState()
			require.NoError(t, lat.AddArc(cur, fst.Arc{In: f, Out: f, Weight: weight[i], To: next}))
			cur = next
		}
		require.NoError(t, lat.SetFinal(cur, fst.One()))
	}

	return lat
}

// tape selects which arc labels enumerate reads.
type tape bool

const (
	inTape  tape = false
	outTape tape = true
)

// flatPath is one accepting path: its labels on the chosen tape
// (epsilons dropped) and its total weight, final weight included.
type flatPath struct {
	labels []fst.Label
	weight fst.Weight
}

// enumerate walks every accepting path of an acyclic lattice.
func enumerate(t *testing.T, lat *fst.Lattice, tp tape) []flatPath {
	t.Helper()
	var paths []flatPath
	if lat.Start() == fst.NoState {
		return paths
	}
	var walk func(s fst.StateID, labels []fst.Label, w fst.Weight)
	walk = func(s fst.StateID, labels []fst.Label, w fst.Weight) {
		if f := lat.Final(s); !f.IsZero() {
			paths = append(paths, flatPath{labels: labels, weight: w.Times(f)})
		}
		for _, a := range lat.Arcs(s) {
			l := a.In
			if tp == outTape {
				l = a.Out
			}
			next := labels
			if l != fst.Epsilon {
				next = append(labels[:len(labels):len(labels)], l)
			}
			walk(a.To, next, w.Times(a.Weight))
		}
	}
	walk(lat.Start(), nil, fst.One())

	return paths
}

// aggregate folds paths into a string-keyed weight map with tropical
// Plus, i.e. the weighted language restricted to the observed strings.
func aggregate(paths []flatPath) map[string]fst.Weight {
	m := make(map[string]fst.Weight)
	for _, p := range paths {
		k := fmt.Sprint(p.labels)
		if prev, ok := m[k]; ok {
			m[k] = prev.Plus(p.weight)
		} else {
			m[k] = p.weight
		}
	}

	return m
}

// collapseRef collapses one frame sequence the way CTC decoding reads
// it: blanks vanish, repeats within a run merge, and a blank between two
// runs of the same symbol keeps both.
func collapseRef(frames []fst.Label, blank fst.Label) []fst.Label {
	var out []fst.Label
	run := fst.Epsilon // no active run
	for _, f := range frames {
		switch {
		case f == blank:
			run = fst.Epsilon
		case f != run:
			out = append(out, f)
			run = f
		}
	}

	return out
}

// collapsedLanguage applies collapseRef to every accepting path of lat
// and aggregates: the weighted language RemoveBlank must reproduce on
// its output tape.
func collapsedLanguage(t *testing.T, lat *fst.Lattice, blank fst.Label) map[string]fst.Weight {
	t.Helper()
	raw := enumerate(t, lat, outTape)
	collapsed := make([]flatPath, len(raw))
	for i, p := range raw {
		collapsed[i] = flatPath{labels: collapseRef(p.labels, blank), weight: p.weight}
	}

	return aggregate(collapsed)
}

// sameLanguage asserts two weight maps agree key for key within a small
// tolerance.
func sameLanguage(t *testing.T, want, got map[string]fst.Weight) {
	t.Helper()
	require.Len(t, got, len(want))
	for k, w := range want {
		g, ok := got[k]
		require.True(t, ok, "missing string %s", k)
		require.InDelta(t, float64(w), float64(g), 1e-9, "weight of %s", k)
	}
}
