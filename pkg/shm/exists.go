package shm

import (
	"errors"
	"syscall"

	platform "github.com/srediag/shmseg/internal/shm"
)

// Exists reports whether a segment of the given canonical name currently
// exists, without creating it or extending its lifetime. Access-denied still
// counts as existing; the segment is there, this caller just cannot read it.
// "Does not exist", invalid or overlong names, and descriptor exhaustion all
// report false, so absence is indistinguishable from transient resource
// pressure. That is a limitation of the probe, not a bug.
func Exists(name string) bool {
	fd, err := platform.OpenProbe(name)
	if err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) && (errno == syscall.EACCES || errno == syscall.EEXIST) {
			return true
		}
		return false
	}
	if cerr := platform.Close(fd); cerr != nil {
		internalLogger.warnf("exists probe close %s: %v", name, cerr)
	}
	return true
}
