package adapter

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srediag/shmseg/pkg/shm"
)

func TestSharedMemoryCheck(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("POSIX shared memory tests require linux")
	}
	check := SharedMemoryCheck("shmseg_health_probe")
	require.NoError(t, check())
	// The probe cleans up after itself.
	assert.False(t, shm.Exists(shm.FormatName("shmseg_health_probe")))
}

func TestHandlerLiveEndpoint(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("POSIX shared memory tests require linux")
	}
	h := NewHandler("shmseg_health_probe")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)
}
