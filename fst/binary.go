// Varint binary codec for one lattice body.
//
// Layout, in stream order:
//
//	magic   "LVLF"                                  4 bytes
//	version 0x01                                    1 byte
//	nstates                                         uvarint
//	start+1 (0 means no start state)                uvarint
//	per state 0..nstates-1:
//	  narcs                                         uvarint
//	  per arc: in, out, to                          uvarint each
//	           weight                               8 bytes, IEEE-754, little endian
//	nfinals                                         uvarint
//	per final: state                                uvarint
//	           weight                               8 bytes, IEEE-754, little endian
//
// Weights keep their exact bit pattern across a round-trip; the varint
// framing keeps small lattices small. The body is self-delimiting, so
// archive readers can decode consecutive entries off one stream.

package fst

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	binaryMagic   = "LVLF"
	binaryVersion = 0x01
)

// binReader is what the decoder needs: varints want a ByteReader, fixed
// fields want a Reader.
type binReader interface {
	io.Reader
	io.ByteReader
}

// WriteBinary encodes l in the binary body layout.
func (l *Lattice) WriteBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var scratch [binary.MaxVarintLen64]byte

	putUvarint := func(x uint64) error {
		n := binary.PutUvarint(scratch[:], x)
		_, err := bw.Write(scratch[:n])

		return err
	}
	putWeight := func(wt Weight) error {
		binary.LittleEndian.PutUint64(scratch[:8], math.Float64bits(float64(wt)))
		_, err := bw.Write(scratch[:8])

		return err
	}

	// 1. Header.
	if _, err := bw.WriteString(binaryMagic); err != nil {
		return err
	}
	if err := bw.WriteByte(binaryVersion); err != nil {
		return err
	}
	if err := putUvarint(uint64(len(l.arcs))); err != nil {
		return err
	}
	if err := putUvarint(uint64(l.start + 1)); err != nil {
		return err
	}

	// 2. Arcs, state by state.
	for s := range l.arcs {
		if err := putUvarint(uint64(len(l.arcs[s]))); err != nil {
			return err
		}
		for _, a := range l.arcs[s] {
			if err := putUvarint(uint64(a.In)); err != nil {
				return err
			}
			if err := putUvarint(uint64(a.Out)); err != nil {
				return err
			}
			if err := putUvarint(uint64(a.To)); err != nil {
				return err
			}
			if err := putWeight(a.Weight); err != nil {
				return err
			}
		}
	}

	// 3. Final weights, sparse.
	nf := 0
	for _, f := range l.final {
		if !f.IsZero() {
			nf++
		}
	}
	if err := putUvarint(uint64(nf)); err != nil {
		return err
	}
	for s, f := range l.final {
		if f.IsZero() {
			continue
		}
		if err := putUvarint(uint64(s)); err != nil {
			return err
		}
		if err := putWeight(f); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadBinary decodes one binary body from r. When r does not implement
// io.ByteReader it is wrapped in a buffered reader, which may consume
// bytes past the body's end; archive readers hand in a ByteReader so
// consecutive entries decode exactly.
func ReadBinary(r io.Reader) (*Lattice, error) {
	br, ok := r.(binReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	// 1. Header: magic, version, state count, start.
	var magic [len(binaryMagic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrBadBinary, err)
	}
	if string(magic[:]) != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadBinary, magic[:])
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrBadBinary, err)
	}
	if version != binaryVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadBinary, version)
	}
	nstates, err := readUvarint(br, "state count")
	if err != nil {
		return nil, err
	}
	if nstates > maxCodecStates {
		return nil, fmt.Errorf("%w: state count %d exceeds the codec bound", ErrBadBinary, nstates)
	}
	start, err := readUvarint(br, "start state")
	if err != nil {
		return nil, err
	}
	if start > nstates {
		return nil, fmt.Errorf("%w: start state %d of %d states", ErrBadBinary, start-1, nstates)
	}

	l := NewLattice()
	for i := uint64(0); i < nstates; i++ {
		l.AddState()
	}
	if start > 0 {
		_ = l.SetStart(StateID(start - 1))
	}

	// 2. Arcs, state by state.
	for s := uint64(0); s < nstates; s++ {
		narcs, err := readUvarint(br, "arc count")
		if err != nil {
			return nil, err
		}
		for i := uint64(0); i < narcs; i++ {
			arc, err := readBinaryArc(br)
			if err != nil {
				return nil, err
			}
			if err = l.AddArc(StateID(s), arc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadBinary, err)
			}
		}
	}

	// 3. Final weights.
	nfinals, err := readUvarint(br, "final count")
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < nfinals; i++ {
		s, err := readUvarint(br, "final state")
		if err != nil {
			return nil, err
		}
		w, err := readBinaryWeight(br)
		if err != nil {
			return nil, err
		}
		if err = l.SetFinal(StateID(s), w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadBinary, err)
		}
	}

	return l, nil
}

func readBinaryArc(br binReader) (Arc, error) {
	in, err := readUvarint(br, "arc input label")
	if err != nil {
		return Arc{}, err
	}
	out, err := readUvarint(br, "arc output label")
	if err != nil {
		return Arc{}, err
	}
	to, err := readUvarint(br, "arc destination")
	if err != nil {
		return Arc{}, err
	}
	w, err := readBinaryWeight(br)
	if err != nil {
		return Arc{}, err
	}

	return Arc{In: Label(in), Out: Label(out), Weight: w, To: StateID(to)}, nil
}

func readBinaryWeight(br binReader) (Weight, error) {
	var buf [8]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return Zero(), fmt.Errorf("%w: reading weight: %v", ErrBadBinary, err)
	}

	return Weight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
}

func readUvarint(br binReader, what string) (uint64, error) {
	v, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrBadBinary, what, err)
	}

	return v, nil
}
