// Package compose builds the weighted product of two lattices: the
// output tape of the first operand is matched, arc by arc, against the
// input tape of the second.
//
// 🚀 What composition does
//
//	Compose(a, b) keeps exactly the paths of a whose output string b
//	accepts on its input tape. A surviving arc pair contributes one arc
//	carrying a's input label, b's output label and the Times-combined
//	cost, so b acts as a rewriting filter over a's output tape:
//	  • a spells raw hypotheses, b normalizes or collapses them
//	  • costs flow through untouched when b's arcs carry weight One
//
// ✨ Key properties:
//   - pair states materialize lazily: only what the start pair reaches
//   - deterministic output: pair states are numbered in discovery order
//     and arcs expand in insertion order, so equal inputs give equal
//     results
//   - b's arcs are indexed by input label per state, so matching is
//     linear in arcs plus matches, not pairwise
//
// ⚠️ Epsilon contract
//
//	An output-epsilon arc of a advances a alone; an input-epsilon arc of
//	b advances b alone. No epsilon filter is applied, so when BOTH
//	operands carry epsilons on the junction tapes the same underlying
//	path can be traced through more than one interleaving and its weight
//	counted more than once. With at most one epsilon-carrying side the
//	construction is exact; every composition performed inside lvlfst is
//	in that class (blank-removal filters have epsilon-free input tapes).
//
// ⚙️ Usage:
//
//	out, err := compose.Compose(lat, filter)
//
// Complexity: O(P + M) for P reachable pair states and M matched arc
// pairs.
package compose
