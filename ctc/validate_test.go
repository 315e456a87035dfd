package ctc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfst/ctc"
	"github.com/katalvlaran/lvlfst/fst"
)

// TestValidate_AcceptsWellFormed passes acceptors, the empty lattice
// included.
func TestValidate_AcceptsWellFormed(t *testing.T) {
	assert.NoError(t, ctc.Validate(chain(t, []fst.Label{1, 2, 1}, 0.5)))
	assert.NoError(t, ctc.Validate(fst.NewLattice()))
}

// TestValidate_RejectsTransducer flags the first arc with mismatched
// tapes.
func TestValidate_RejectsTransducer(t *testing.T) {
	lat := chain(t, []fst.Label{1}, 0.5)
	require.NoError(t, lat.AddArc(0, fst.Arc{In: 1, Out: 3, Weight: 1, To: 1}))

	assert.ErrorIs(t, ctc.Validate(lat), ctc.ErrNotAcceptor)
}

// TestValidate_RejectsCycle flags cycles reachable from the start.
func TestValidate_RejectsCycle(t *testing.T) {
	lat := chain(t, []fst.Label{1}, 0.5)
	require.NoError(t, lat.AddArc(1, fst.Arc{In: 2, Out: 2, Weight: 1, To: 0}))

	assert.ErrorIs(t, ctc.Validate(lat), ctc.ErrCyclicLattice)
}

// TestValidate_AcceptorCheckWins reports ErrNotAcceptor when a lattice
// is both a transducer and cyclic: the checks run in that order.
func TestValidate_AcceptorCheckWins(t *testing.T) {
	lat := fst.NewLattice()
	s := lat.AddState()
	require.NoError(t, lat.SetStart(s))
	require.NoError(t, lat.AddArc(s, fst.Arc{In: 1, Out: 2, Weight: 1, To: s}))

	assert.ErrorIs(t, ctc.Validate(lat), ctc.ErrNotAcceptor)
}

// TestValidate_NilLattice rejects nil.
func TestValidate_NilLattice(t *testing.T) {
	assert.ErrorIs(t, ctc.Validate(nil), ctc.ErrNilLattice)
}

// TestValidate_IgnoresUnreachableCycle only inspects what the start
// reaches, matching the transform's path semantics.
func TestValidate_IgnoresUnreachableCycle(t *testing.T) {
	lat := chain(t, []fst.Label{1}, 0.5)
	island := lat.AddState()
	require.NoError(t, lat.AddArc(island, fst.Arc{In: 2, Out: 2, Weight: 1, To: island}))

	assert.NoError(t, ctc.Validate(lat))
}
