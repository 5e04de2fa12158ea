//go:build linux

package shm

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// CanCreateOnDevShm reports whether /dev/shm has room for size more bytes at
// the given path. Paths outside /dev/shm, and probe failures, are waved
// through; the subsequent ftruncate surfaces the real error.
func CanCreateOnDevShm(size uint64, path string) bool {
	if !strings.HasPrefix(path, devShm) {
		return true
	}
	stat, err := disk.Usage(devShm)
	if err != nil {
		return true
	}
	return stat.Free >= size
}
