package ark

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlfst/fst"
)

// Writer appends keyed entries to one archive in call order. Every
// Write flushes, so a run that aborts midway leaves all previously
// written entries durable and nothing half-written after them.
type Writer struct {
	dst    io.WriteCloser
	bw     *bufio.Writer
	format Format
}

// nopWriteCloser wraps stdout so Close never closes the process stream.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter parses wspecifier and opens (creating or truncating) the
// archive for writing; "-" writes stdout. The body encoding follows the
// specifier: binary by default, text with the ,t option.
func NewWriter(wspecifier string) (*Writer, error) {
	spec, err := ParseWSpecifier(wspecifier)
	if err != nil {
		return nil, err
	}
	var dst io.WriteCloser
	if spec.Path == "-" {
		dst = nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("ark: create archive: %w", err)
		}
		dst = f
	}

	return &Writer{dst: dst, bw: bufio.NewWriter(dst), format: spec.Format}, nil
}

// Write appends one entry. Keys must be non-empty and free of
// whitespace and NUL (ErrBadKey); lat must not be nil.
func (w *Writer) Write(key string, lat *fst.Lattice) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if lat == nil {
		return fmt.Errorf("ark: entry %q: nil lattice", key)
	}

	if _, err := w.bw.WriteString(key); err != nil {
		return fmt.Errorf("ark: entry %q: %w", key, err)
	}
	switch w.format {
	case FormatText:
		// key \n body \n  (the trailing blank line terminates the entry)
		if err := w.bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("ark: entry %q: %w", key, err)
		}
		if err := lat.WriteText(w.bw); err != nil {
			return fmt.Errorf("ark: entry %q: %w", key, err)
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("ark: entry %q: %w", key, err)
		}
	default:
		// key ' ' \x00 B body
		if _, err := w.bw.WriteString(" \x00B"); err != nil {
			return fmt.Errorf("ark: entry %q: %w", key, err)
		}
		if err := lat.WriteBinary(w.bw); err != nil {
			return fmt.Errorf("ark: entry %q: %w", key, err)
		}
	}

	return w.bw.Flush()
}

// Close flushes and closes the archive (a no-op close for stdout).
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		_ = w.dst.Close()

		return err
	}

	return w.dst.Close()
}

// checkKey enforces the key grammar shared with the reader: anything
// the key token scanner would split on is rejected here.
func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrBadKey)
	}
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case ' ', '\t', '\n', '\r', 0x00:
			return fmt.Errorf("%w: %q contains whitespace", ErrBadKey, key)
		}
	}

	return nil
}
