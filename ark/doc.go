// Package ark reads and writes keyed lattice archives: flat streams of
// "key, lattice body" entries addressed by Kaldi-style table
// specifiers.
//
// 🚀 Specifiers
//
//	An archive is named by a specifier string, scheme first:
//	  ark:lat.bin      binary archive (the default body encoding)
//	  ark,t:lat.txt    text archive
//	  ark:-            stdin when reading, stdout when writing
//	Sorting and flush hints (s, cs, o, p, f, nf) parse and are ignored;
//	script tables (scp:) and bare paths are rejected with
//	ErrUnsupportedSpecifier before any file is touched.
//
// ✨ Entry framing
//
//	key ' ' \x00 B <binary body>   binary entry (key, space, marker)
//	key \n <text lines> \n         text entry, blank-line terminated
//
//	Readers detect the encoding per entry from the byte after the key,
//	so mixed archives read fine and the ,t hint is only needed for
//	writing. Bodies are the fst codecs' work; this package owns keys,
//	markers and terminators.
//
// ⚙️ Usage:
//
//	r, err := ark.NewReader("ark:in.lat")
//	defer r.Close()
//	for r.Next() {
//		process(r.Key(), r.Lattice())
//	}
//	if err := r.Err(); err != nil { … }
//
// Reader follows the bufio.Scanner shape: Next advances, Key/Lattice
// expose the current entry, Err separates clean end-of-archive from
// failure. Writer flushes after every entry, so everything written
// before a failure is durable on disk.
package ark
