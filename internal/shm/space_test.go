package shm

import (
	"math"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
)

func TestCanCreateOnDevShm(t *testing.T) {
	if runtime.GOOS != "linux" {
		assert.True(t, CanCreateOnDevShm(math.MaxUint64, "anywhere"))
		return
	}
	// Only /dev/shm paths are guarded, everything else is waved through.
	assert.True(t, CanCreateOnDevShm(math.MaxUint64, "sdffafds"))

	stat, err := disk.Usage("/dev/shm")
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, CanCreateOnDevShm(stat.Free, "/dev/shm/xxx"))
	assert.False(t, CanCreateOnDevShm(stat.Free+1<<30, "/dev/shm/yyy"))
}
