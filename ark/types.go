// Specifier model and the package error surface.

package ark

import "errors"

// Format selects the body encoding a Writer emits. Readers auto-detect
// per entry and ignore the hint.
type Format uint8

const (
	// FormatBinary is the default archive body encoding.
	FormatBinary Format = iota
	// FormatText selects the blank-line terminated text encoding.
	FormatText
)

// Specifier is a parsed table specifier: the body format and the
// archive path, "-" standing for stdin or stdout.
type Specifier struct {
	Format Format
	Path   string
}

// Sentinel errors returned by this package.
var (
	// ErrUnsupportedSpecifier indicates a specifier that does not name a
	// readable/writable archive table: script tables, bare paths,
	// unknown options, empty paths.
	ErrUnsupportedSpecifier = errors.New("ark: unsupported table specifier")

	// ErrBadKey indicates an empty key or one containing whitespace.
	ErrBadKey = errors.New("ark: bad entry key")

	// ErrBadEntry indicates a malformed archive entry: a broken key
	// token, a missing binary marker, or a body the fst codecs reject.
	ErrBadEntry = errors.New("ark: bad archive entry")
)
