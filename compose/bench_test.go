package compose_test

import (
	"testing"

	"github.com/katalvlaran/lvlfst/compose"
	"github.com/katalvlaran/lvlfst/fst"
)

// benchChain builds a linear acceptor of n arcs cycling through k
// distinct labels.
func benchChain(n, k int) *fst.Lattice {
	lat := fst.NewLattice()
	cur := lat.AddState()
	_ = lat.SetStart(cur)
	for i := 0; i < n; i++ {
		next := lat.AddState()
		l := fst.Label(1 + i%k)
		_ = lat.AddArc(cur, fst.Arc{In: l, Out: l, Weight: 0.5, To: next})
		cur = next
	}
	_ = lat.SetFinal(cur, fst.One())

	return lat
}

// benchLoop builds a one-state identity transducer over labels 1..k.
func benchLoop(k int) *fst.Lattice {
	lat := fst.NewLattice()
	s := lat.AddState()
	_ = lat.SetStart(s)
	_ = lat.SetFinal(s, fst.One())
	for l := 1; l <= k; l++ {
		_ = lat.AddArc(s, fst.Arc{In: fst.Label(l), Out: fst.Label(l), Weight: 0, To: s})
	}

	return lat
}

// BenchmarkCompose_ChainThroughLoop composes a 4096-arc chain with a
// 16-label identity loop.
func BenchmarkCompose_ChainThroughLoop(b *testing.B) {
	a := benchChain(4096, 16)
	filter := benchLoop(16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compose.Compose(a, filter); err != nil {
			b.Fatal(err)
		}
	}
}
