package shm

import (
	"strings"

	platform "github.com/srediag/shmseg/internal/shm"
)

// NameMax is the longest canonical segment name the platform accepts,
// including the leading separator.
const NameMax = platform.NameMax

// FormatName normalizes an identifier into a canonical segment name
// following shm_open naming rules: exactly one leading slash, no interior
// slashes (they are stripped, not replaced), at most NameMax characters. It
// never fails; pathological inputs degenerate to "/".
//
// The rest of the package does not validate names. Run every identifier
// through FormatName before constructing a view, and use the identical
// string in every process attaching to the same segment.
func FormatName(name string) string {
	s := "/" + strings.ReplaceAll(name, "/", "")
	if len(s) > NameMax {
		s = s[:NameMax]
	}
	return s
}
