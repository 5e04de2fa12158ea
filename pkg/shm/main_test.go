package shm

import (
	"runtime"
	"testing"

	"github.com/google/uuid"
)

// testName returns a fresh canonical segment name so tests never collide
// with each other or with leftovers from an earlier crashed run.
func testName(t *testing.T) string {
	t.Helper()
	return FormatName("shmseg_test_" + uuid.NewString()[:8])
}

func requireLinux(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("POSIX shared memory tests require linux")
	}
}
