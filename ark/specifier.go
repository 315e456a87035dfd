package ark

import (
	"fmt"
	"strings"
)

// ParseRSpecifier classifies a read-side table specifier. Only archive
// tables are accepted; anything else is ErrUnsupportedSpecifier.
func ParseRSpecifier(s string) (Specifier, error) {
	return parseSpecifier(s)
}

// ParseWSpecifier classifies a write-side table specifier with the same
// acceptance rules as ParseRSpecifier.
func ParseWSpecifier(s string) (Specifier, error) {
	return parseSpecifier(s)
}

// parseSpecifier splits "opts:path" and folds the comma-separated
// option list. Both read and write sides accept the same surface: the
// write-only and read-only hint letters are tolerated either way, as
// the original table code tolerates them.
func parseSpecifier(s string) (Specifier, error) {
	head, path, ok := strings.Cut(s, ":")
	if !ok {
		return Specifier{}, fmt.Errorf("%w: %q has no table prefix", ErrUnsupportedSpecifier, s)
	}

	spec := Specifier{Format: FormatBinary, Path: path}
	sawArk := false
	for _, opt := range strings.Split(head, ",") {
		switch opt {
		case "ark":
			sawArk = true
		case "scp":
			return Specifier{}, fmt.Errorf("%w: script tables (%q) are not implemented", ErrUnsupportedSpecifier, s)
		case "b":
			spec.Format = FormatBinary
		case "t":
			spec.Format = FormatText
		case "s", "cs", "o", "p", "f", "nf":
			// Sorting, permissive and flush hints: parsed for
			// compatibility, not needed by a strict sequential reader
			// or a flush-per-entry writer.
		default:
			return Specifier{}, fmt.Errorf("%w: unknown option %q in %q", ErrUnsupportedSpecifier, opt, s)
		}
	}
	if !sawArk {
		return Specifier{}, fmt.Errorf("%w: %q is not an archive table", ErrUnsupportedSpecifier, s)
	}
	if path == "" {
		return Specifier{}, fmt.Errorf("%w: %q has an empty path", ErrUnsupportedSpecifier, s)
	}

	return spec, nil
}
