// Structural property checks: acceptor test, cycle detection and
// topological ordering.
//
// Cycle detection uses the classic three-color walk: White = untouched,
// Gray = on the active path, Black = fully explored; an arc into a Gray
// state is a back edge. The walk keeps an explicit stack so chain depth
// is bounded by memory, not by call depth.

package fst

import "fmt"

// color marks traversal progress per state.
type color uint8

const (
	white color = iota // not yet visited
	gray               // on the current path
	black              // finished
)

// IsAcceptor reports whether every arc carries the same label on both
// tapes.
//
// Complexity: O(states + arcs).
func (l *Lattice) IsAcceptor() bool {
	for s := range l.arcs {
		for _, a := range l.arcs[s] {
			if a.In != a.Out {
				return false
			}
		}
	}

	return true
}

// IsAcyclic reports whether no cycle is reachable from the start state.
// A lattice without a start state is vacuously acyclic; states the
// start cannot reach are ignored, cyclic or not.
func (l *Lattice) IsAcyclic() bool {
	_, err := l.TopOrder()

	return err == nil
}

// frame tracks one state on the walk stack and the index of its next
// unexpanded arc.
type frame struct {
	s   StateID
	arc int
}

// TopOrder returns the states reachable from the start in topological
// order: every arc goes from an earlier to a later position. States the
// start cannot reach are absent; a lattice without a start yields an
// empty order. Returns ErrCyclic when a back edge is found.
//
// Determinism: arcs expand in insertion order, so equal lattices give
// identical orders.
//
// Complexity:
//
//   - Time:   O(states + arcs)
//   - Memory: O(states)
func (l *Lattice) TopOrder() ([]StateID, error) {
	// 1. No start state: nothing is reachable.
	if l.start == NoState {
		return nil, nil
	}

	// 2. Initialize the walk at the start state.
	var (
		colors = make([]color, len(l.arcs))
		stack  = []frame{{s: l.start}}
		order  = make([]StateID, 0, len(l.arcs))
	)
	colors[l.start] = gray

	// 3. Expand one arc at a time off the top frame.
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.arc < len(l.arcs[top.s]) {
			next := l.arcs[top.s][top.arc].To
			top.arc++
			switch colors[next] {
			case white:
				// 3a. First sight: push and keep walking.
				colors[next] = gray
				stack = append(stack, frame{s: next})
			case gray:
				// 3b. Back edge into the active path.
				return nil, fmt.Errorf("%w: back edge into state %d", ErrCyclic, next)
			}

			continue
		}
		// 4. All arcs expanded: finish the state in post-order.
		colors[top.s] = black
		order = append(order, top.s)
		stack = stack[:len(stack)-1]
	}

	// 5. Reverse post-order is topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
