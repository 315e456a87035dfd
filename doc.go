// Package lvlfst is a weighted finite-state toolkit for speech-style
// lattices — from core acceptor primitives to CTC blank removal over
// whole archives.
//
// 🚀 What is lvlfst?
//
//	A small, focused library plus one command-line tool that together:
//		• Model lattices: weighted acceptors over the tropical semiring
//		• Compose: lattice × transducer product with exact weights
//		• Clean CTC output: delete blank symbols, collapse repeated emissions
//		• Stream archives: Kaldi-style "ark:" tables, binary and text
//		• Scale out: ordered bulk processing with a worker pool
//
// ✨ Why choose lvlfst?
//
//   - Deterministic – same input, same bytes out, any worker count
//   - Explicit errors – every failure names the entry that caused it
//   - Small surface – a handful of types, no framework to learn
//
// Everything is organized under five subpackages and one command:
//
//	fst/     — Lattice, Weight, Arc: the acceptor model + codecs
//	compose/ — finite-state composition
//	ctc/     — blank-removal filter construction and application
//	ark/     — archive readers and writers (rspecifier/wspecifier)
//	bulk/    — read→transform→write loops, sequential or parallel
//	cmd/lattice-remove-ctc-blank — the archive tool built from the above
//
// Quick example with blank symbol 5:
//
//	frames:   5 [3 3] 5 [3] 5 [4]
//	collapse:    3       3     4
//	result:   3 3 4
//
//	the bracketed runs each emit once; the blank between the second and
//	third 3 keeps them separate emissions.
//
// Dive into the package docs for usage, complexity notes and the exact
// archive formats.
//
//	go get github.com/katalvlaran/lvlfst
package lvlfst
