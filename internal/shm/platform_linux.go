//go:build linux

package shm

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

const devShm = "/dev/shm"

// Path returns the tmpfs entry backing a canonical segment name.
func Path(name string) string {
	return filepath.Join(devShm, strings.TrimPrefix(name, "/"))
}

// Open creates or attaches the named segment. The entry is always opened
// read-write with create, matching shm_open(O_RDWR|O_CREAT); read-only views
// are enforced at mapping time, not here, so that any process may resize the
// segment.
func Open(name string) (int, error) {
	return unix.Open(Path(name), unix.O_RDWR|unix.O_CREAT|unix.O_CLOEXEC, 0777)
}

// OpenProbe opens an existing segment read-only without creating it.
func OpenProbe(name string) (int, error) {
	return unix.Open(Path(name), unix.O_RDONLY|unix.O_CLOEXEC, 0)
}

// Truncate resizes the segment to exactly size bytes. Shrinking an existing
// segment discards the bytes past the new end.
func Truncate(fd int, size int64) error {
	return unix.Ftruncate(fd, size)
}

// Map maps size bytes at offset 0 of fd. writable selects a shared
// read-write mapping visible to every other mapper; otherwise the mapping is
// private copy-on-write, so stray stores land in a local copy and never
// reach other mappers.
func Map(fd, size int, writable bool) ([]byte, error) {
	if writable {
		return unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	}
	return unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE)
}

// Unmap releases a mapping obtained from Map.
func Unmap(data []byte) error {
	return unix.Munmap(data)
}

// Close releases a descriptor. Existing mappings outlive it.
func Close(fd int) error {
	return unix.Close(fd)
}

// Unlink removes the segment name from the namespace. Existing mappings in
// any process stay valid until they are unmapped.
func Unlink(name string) error {
	return unix.Unlink(Path(name))
}
