// Package bulk streams every entry of a lattice archive through a
// transform and writes the results to another archive, preserving
// entry order end to end.
//
// 🚀 What it does
//
// Archive tools rarely care about one lattice; they care about ten
// thousand of them. bulk owns the loop around ark.Reader and
// ark.Writer so callers only supply the per-entry Transform:
// fail-fast error handling, optional skipping of broken entries,
// cancellation, and a worker pool all live here.
//
// ✨ Semantics
//
//   - Entries are read, transformed and written in archive order,
//     with any number of workers.
//   - The first failing entry aborts the run with its key in the
//     error; entries written before it remain in the output.
//   - WithSkipBroken(true) downgrades transform failures to skips.
//     Read and write failures always abort.
//   - WithContext cancellation stops the run with ctx.Err().
//
// ⚙️ Usage
//
//	st, err := bulk.Run(r, w, func(key string, lat *fst.Lattice) (*fst.Lattice, error) {
//	    return ctc.RemoveBlank(lat, blank)
//	}, bulk.WithJobs(4))
//
// Determinism: for a given archive and transform, the output archive
// is byte-identical regardless of WithJobs.
package bulk
