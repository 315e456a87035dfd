package ark_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfst/ark"
	"github.com/katalvlaran/lvlfst/fst"
)

// chain builds a linear acceptor over labels whose single path carries
// the given weight on its first arc.
func chain(t *testing.T, labels []fst.Label, w fst.Weight) *fst.Lattice {
	t.Helper()
	lat := fst.NewLattice()
	prev := lat.AddState()
	require.NoError(t, lat.SetStart(prev))
	for i, l := range labels {
		next := lat.AddState()
		aw := fst.One()
		if i == 0 {
			aw = w
		}
		require.NoError(t, lat.AddArc(prev, fst.Arc{In: l, Out: l, Weight: aw, To: next}))
		prev = next
	}
	require.NoError(t, lat.SetFinal(prev, fst.One()))

	return lat
}

// writeArchive writes the given entries in order and closes the writer.
func writeArchive(t *testing.T, wspecifier string, keys []string, lats []*fst.Lattice) {
	t.Helper()
	w, err := ark.NewWriter(wspecifier)
	require.NoError(t, err)
	for i, key := range keys {
		require.NoError(t, w.Write(key, lats[i]))
	}
	require.NoError(t, w.Close())
}

// readArchive drains a reader and returns entries in archive order.
func readArchive(t *testing.T, rspecifier string) ([]string, []*fst.Lattice) {
	t.Helper()
	r, err := ark.NewReader(rspecifier)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	var keys []string
	var lats []*fst.Lattice
	for r.Next() {
		keys = append(keys, r.Key())
		lats = append(lats, r.Lattice())
	}
	require.NoError(t, r.Err())

	return keys, lats
}

// TestArchive_BinaryRoundTrip streams three entries through the binary
// format and gets the same keys and lattices back, in order.
func TestArchive_BinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lat.bin")
	keys := []string{"utt-001", "utt-002", "utt-003"}
	lats := []*fst.Lattice{
		chain(t, []fst.Label{3, 3, 4}, 0.5),
		chain(t, nil, fst.One()),
		chain(t, []fst.Label{7}, 2.25),
	}

	writeArchive(t, "ark:"+path, keys, lats)

	gotKeys, gotLats := readArchive(t, "ark:"+path)
	require.Equal(t, keys, gotKeys)
	for i := range lats {
		assert.True(t, lats[i].Equal(gotLats[i]), "entry %q differs", keys[i])
	}
}

// TestArchive_TextRoundTrip does the same trip through the text format,
// empty-body entry included.
func TestArchive_TextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lat.txt")
	keys := []string{"a", "b"}
	lats := []*fst.Lattice{
		chain(t, []fst.Label{1, 2}, 1.5),
		fst.NewLattice(),
	}

	writeArchive(t, "ark,t:"+path, keys, lats)

	gotKeys, gotLats := readArchive(t, "ark,t:"+path)
	require.Equal(t, keys, gotKeys)
	for i := range lats {
		assert.True(t, lats[i].Equal(gotLats[i]), "entry %q differs", keys[i])
	}
}

// TestArchive_TextLayout pins the on-disk text framing: key line, body
// lines, one blank separator line per entry.
func TestArchive_TextLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lat.txt")
	writeArchive(t, "ark,t:"+path,
		[]string{"utt1"},
		[]*fst.Lattice{chain(t, []fst.Label{3}, 0.5)})

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "utt1\n0 1 3 3 0.5\n1 0\n\n", string(raw))
}

// TestArchive_MixedEncodings reads an archive whose entries alternate
// between binary and text framing; detection is per entry.
func TestArchive_MixedEncodings(t *testing.T) {
	dir := t.TempDir()
	binPart := filepath.Join(dir, "part.bin")
	txtPart := filepath.Join(dir, "part.txt")
	mixed := filepath.Join(dir, "mixed.ark")

	binLat := chain(t, []fst.Label{9, 9}, 0.25)
	txtLat := chain(t, []fst.Label{4}, 1)
	writeArchive(t, "ark:"+binPart, []string{"bin-entry"}, []*fst.Lattice{binLat})
	writeArchive(t, "ark,t:"+txtPart, []string{"txt-entry"}, []*fst.Lattice{txtLat})

	binRaw, err := os.ReadFile(binPart)
	require.NoError(t, err)
	txtRaw, err := os.ReadFile(txtPart)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(mixed, append(binRaw, txtRaw...), 0o644))

	keys, lats := readArchive(t, "ark:"+mixed)
	require.Equal(t, []string{"bin-entry", "txt-entry"}, keys)
	assert.True(t, binLat.Equal(lats[0]))
	assert.True(t, txtLat.Equal(lats[1]))
}

// TestReader_EmptyArchive treats a zero-byte table as a clean end of
// stream, not an error.
func TestReader_EmptyArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ark")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r, err := ark.NewReader("ark:" + path)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
	assert.False(t, r.Next(), "Next must stay false after end of stream")
}

// TestReader_WhitespaceOnly skips inter-entry padding and still ends
// cleanly when nothing follows it.
func TestReader_WhitespaceOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.ark")
	require.NoError(t, os.WriteFile(path, []byte("\n\n \n"), 0o644))

	r, err := ark.NewReader("ark:" + path)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

// TestReader_CorruptEntries maps the common damage patterns onto
// ErrBadEntry: missing binary marker, truncated key, malformed body.
func TestReader_CorruptEntries(t *testing.T) {
	for name, raw := range map[string]string{
		"missing binary marker": "utt1 junk",
		"truncated key":         "utt1",
		"bad text line":         "utt1\n0 1 2\n\n",
		"truncated binary body": "utt1 \x00BLVLF",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.ark")
			require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

			r, err := ark.NewReader("ark:" + path)
			require.NoError(t, err)
			defer func() { require.NoError(t, r.Close()) }()

			assert.False(t, r.Next())
			assert.ErrorIs(t, r.Err(), ark.ErrBadEntry)
		})
	}
}

// TestReader_StopsAtFirstBadEntry surfaces entries before the damage
// and refuses everything after it.
func TestReader_StopsAtFirstBadEntry(t *testing.T) {
	dir := t.TempDir()
	goodPart := filepath.Join(dir, "good.ark")
	path := filepath.Join(dir, "mixed.ark")

	writeArchive(t, "ark,t:"+goodPart,
		[]string{"ok"},
		[]*fst.Lattice{chain(t, []fst.Label{1}, 1)})
	goodRaw, err := os.ReadFile(goodPart)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(goodRaw, "broken\nnot a lattice line\n\n"...), 0o644))

	r, err := ark.NewReader("ark:" + path)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	require.True(t, r.Next())
	assert.Equal(t, "ok", r.Key())
	assert.False(t, r.Next())
	assert.ErrorIs(t, r.Err(), ark.ErrBadEntry)
	assert.ErrorContains(t, r.Err(), "broken")
}

// TestNewReader_Errors separates specifier rejection from filesystem
// failures.
func TestNewReader_Errors(t *testing.T) {
	_, err := ark.NewReader("scp:lat.scp")
	assert.ErrorIs(t, err, ark.ErrUnsupportedSpecifier)

	_, err = ark.NewReader("ark:" + filepath.Join(t.TempDir(), "missing.ark"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ark.ErrUnsupportedSpecifier)
}

// TestWriter_RejectsBadKeys refuses keys that would corrupt the entry
// framing before any bytes reach the archive.
func TestWriter_RejectsBadKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ark")
	w, err := ark.NewWriter("ark:" + path)
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	lat := chain(t, []fst.Label{1}, 1)
	for _, key := range []string{"", "two words", "tab\there", "line\nbreak"} {
		assert.ErrorIs(t, w.Write(key, lat), ark.ErrBadKey, "key %q", key)
	}
	assert.Error(t, w.Write("ok", nil), "nil lattice must be rejected")
}
