// AT&T-style text codec for one lattice body. Keyed archive framing
// (keys, blank-line terminators, binary markers) lives in package ark;
// this file only renders and parses the bare line format:
//
//	src dst in out weight    one arc
//	src dst in out           one arc, weight One
//	state weight             final state
//	state                    final state, weight One
//
// The source state of the first line is the start state, so start-state
// lines render first. A state with no arcs and no final weight has no
// line of its own; it survives a round-trip only when a higher-numbered
// state anchors the state count.

package fst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxCodecStates bounds the state count a codec will materialize, so a
// corrupt body cannot demand absurd allocations.
const maxCodecStates = 1 << 30

// WriteText renders l in the text line format. A lattice without a
// start state renders as an empty body. Weights print with full float64
// round-trip precision.
func (l *Lattice) WriteText(w io.Writer) error {
	if l.start == NoState {
		return nil
	}
	bw := bufio.NewWriter(w)
	if err := l.writeStateText(bw, l.start); err != nil {
		return fmt.Errorf("fst: write text: %w", err)
	}
	for s := range l.arcs {
		if StateID(s) == l.start {
			continue
		}
		if err := l.writeStateText(bw, StateID(s)); err != nil {
			return fmt.Errorf("fst: write text: %w", err)
		}
	}

	return bw.Flush()
}

// writeStateText emits the arc lines of s followed by its final line.
func (l *Lattice) writeStateText(bw *bufio.Writer, s StateID) error {
	for _, a := range l.arcs[s] {
		line := fmt.Sprintf("%d %d %d %d %s\n", s, a.To, a.In, a.Out, formatWeight(a.Weight))
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	if f := l.final[s]; !f.IsZero() {
		if _, err := bw.WriteString(fmt.Sprintf("%d %s\n", s, formatWeight(f))); err != nil {
			return err
		}
	}

	return nil
}

// formatWeight prints w with the shortest representation that parses
// back to the same float64.
func formatWeight(w Weight) string {
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}

// ParseText builds a lattice from text body lines (newlines already
// stripped). Blank lines are skipped; states named by any line are
// materialized, gaps included, so ids survive a round-trip. Returns
// ErrBadText on any malformed line.
func ParseText(lines []string) (*Lattice, error) {
	l := NewLattice()
	sawFirst := false
	for ln, raw := range lines {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		src, err := parseTextState(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
		}
		if err = l.ensureStates(src); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
		}
		if !sawFirst {
			// First line names the start state.
			_ = l.SetStart(src)
			sawFirst = true
		}

		switch len(fields) {
		case 1, 2:
			// Final line: state [weight].
			w := One()
			if len(fields) == 2 {
				if w, err = parseTextWeight(fields[1]); err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
				}
			}
			if err = l.SetFinal(src, w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
			}
		case 4, 5:
			// Arc line: src dst in out [weight].
			arc, err := parseTextArc(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
			}
			if err = l.ensureStates(arc.To); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
			}
			if err = l.AddArc(src, arc); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadText, ln+1, err)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: %d fields", ErrBadText, ln+1, len(fields))
		}
	}

	return l, nil
}

// parseTextArc decodes fields[1:] of an arc line; fields[0] was already
// consumed as the source state.
func parseTextArc(fields []string) (Arc, error) {
	dst, err := parseTextState(fields[1])
	if err != nil {
		return Arc{}, err
	}
	in, err := strconv.Atoi(fields[2])
	if err != nil {
		return Arc{}, fmt.Errorf("input label %q", fields[2])
	}
	out, err := strconv.Atoi(fields[3])
	if err != nil {
		return Arc{}, fmt.Errorf("output label %q", fields[3])
	}
	w := One()
	if len(fields) == 5 {
		if w, err = parseTextWeight(fields[4]); err != nil {
			return Arc{}, err
		}
	}

	return Arc{In: Label(in), Out: Label(out), Weight: w, To: dst}, nil
}

func parseTextState(field string) (StateID, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return NoState, fmt.Errorf("state id %q", field)
	}

	return StateID(n), nil
}

func parseTextWeight(field string) (Weight, error) {
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return Zero(), fmt.Errorf("weight %q", field)
	}
	if badWeight(Weight(f)) {
		return Zero(), fmt.Errorf("weight %q", field)
	}

	return Weight(f), nil
}

// ensureStates grows the lattice until s is a valid id.
func (l *Lattice) ensureStates(s StateID) error {
	if s >= maxCodecStates {
		return fmt.Errorf("state id %d exceeds the codec bound", s)
	}
	for int(s) >= l.NumStates() {
		l.AddState()
	}

	return nil
}
