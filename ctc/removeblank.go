package ctc

import (
	"fmt"

	"github.com/katalvlaran/lvlfst/compose"
	"github.com/katalvlaran/lvlfst/fst"
)

// RemoveBlank collapses CTC emissions on lat's output tape: a maximal
// run of one non-blank symbol, blanks freely interleaved around it,
// reduces to a single emission, while a blank between two runs of the
// same symbol keeps the runs distinct. Input labels and path weights
// pass through untouched, so the result reads raw frames on the input
// tape and the collapsed string on the output tape.
//
// blank must not be 0 (reserved for epsilon) and lat must satisfy
// Validate. The result is freshly allocated; lat is never modified.
// Applying RemoveBlank to a lattice that is already collapsed and
// blank-free leaves its weighted language unchanged.
//
// Steps:
//  1. reject an epsilon blank;
//  2. validate: acceptor, acyclic;
//  3. collect the output alphabet in first-seen order;
//  4. build the blank-removal filter;
//  5. compose lat with the filter (lat first, filter second).
//
// Complexity: O(states * (1 + k) + k^2) for k distinct symbols, the
// composition's reachable product dominating.
func RemoveBlank(lat *fst.Lattice, blank fst.Label) (*fst.Lattice, error) {
	if blank == fst.Epsilon {
		return nil, ErrInvalidBlank
	}
	if err := Validate(lat); err != nil {
		return nil, err
	}

	filter := NewBlankFilter(CollectAlphabet(lat, blank), blank)
	out, err := compose.Compose(lat, filter)
	if err != nil {
		return nil, fmt.Errorf("ctc: compose: %w", err)
	}

	return out, nil
}
