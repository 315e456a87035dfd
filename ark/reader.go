package ark

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvlfst/fst"
)

// Reader iterates one archive sequentially:
//
//	for r.Next() { use(r.Key(), r.Lattice()) }
//	if err := r.Err(); err != nil { … }
//
// Entry encoding is detected from the byte after the key token: a space
// introduces the binary marker, a newline introduces text lines. Next
// returns false at the end of the archive or on the first error; Err
// tells the two apart.
type Reader struct {
	src  io.ReadCloser
	br   *bufio.Reader
	key  string
	lat  *fst.Lattice
	err  error
	done bool
}

// NewReader parses rspecifier and opens the archive for reading; "-"
// reads stdin.
func NewReader(rspecifier string) (*Reader, error) {
	spec, err := ParseRSpecifier(rspecifier)
	if err != nil {
		return nil, err
	}
	var src io.ReadCloser
	if spec.Path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("ark: open archive: %w", err)
		}
		src = f
	}

	return &Reader{src: src, br: bufio.NewReader(src)}, nil
}

// Next advances to the next entry.
func (r *Reader) Next() bool {
	if r.err != nil || r.done {
		return false
	}

	key, sep, err := r.readKey()
	if err == io.EOF {
		r.done = true

		return false
	}
	if err != nil {
		r.err = err

		return false
	}

	var lat *fst.Lattice
	if sep == ' ' {
		lat, err = r.readBinaryBody(key)
	} else {
		lat, err = r.readTextBody(key)
	}
	if err != nil {
		r.err = err

		return false
	}
	r.key, r.lat = key, lat

	return true
}

// Key returns the current entry's key.
func (r *Reader) Key() string { return r.key }

// Lattice returns the current entry's lattice. The reader keeps no
// reference to it; the caller owns it outright.
func (r *Reader) Lattice() *fst.Lattice { return r.lat }

// Err returns the first error encountered; nil after a clean end.
func (r *Reader) Err() error { return r.err }

// Close closes the underlying archive (a no-op for stdin).
func (r *Reader) Close() error { return r.src.Close() }

// readKey skips inter-entry whitespace, then reads the key token and
// its separator: ' ' announces a binary body, '\n' a text body. A clean
// end of archive surfaces as io.EOF.
func (r *Reader) readKey() (string, byte, error) {
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			return "", 0, err
		}
		if b == '\n' || b == '\r' || b == ' ' || b == '\t' {
			continue
		}
		_ = r.br.UnreadByte()

		break
	}

	var sb strings.Builder
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			return "", 0, fmt.Errorf("%w: archive ends inside key %q", ErrBadEntry, sb.String())
		}
		switch b {
		case ' ', '\n':
			return sb.String(), b, nil
		case '\t', '\r', 0x00:
			return "", 0, fmt.Errorf("%w: key %q followed by byte %#x", ErrBadEntry, sb.String(), b)
		}
		sb.WriteByte(b)
	}
}

// readBinaryBody expects the "\x00B" marker, then one fst binary body.
func (r *Reader) readBinaryBody(key string) (*fst.Lattice, error) {
	m0, err0 := r.br.ReadByte()
	m1, err1 := r.br.ReadByte()
	if err0 != nil || err1 != nil || m0 != 0x00 || m1 != 'B' {
		return nil, fmt.Errorf("%w: entry %q: missing binary marker", ErrBadEntry, key)
	}
	lat, err := fst.ReadBinary(r.br)
	if err != nil {
		return nil, fmt.Errorf("%w: entry %q: %v", ErrBadEntry, key, err)
	}

	return lat, nil
}

// readTextBody collects lines until a blank line or end of archive,
// then parses them as one fst text body.
func (r *Reader) readTextBody(key string) (*fst.Lattice, error) {
	var lines []string
	for {
		line, err := r.br.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ark: entry %q: %w", key, err)
		}
		if trimmed == "" {
			break
		}
	}
	lat, err := fst.ParseText(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: entry %q: %v", ErrBadEntry, key, err)
	}

	return lat, nil
}
