package shm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	_ = c.Write(m)
	return m.GetCounter().GetValue()
}

func TestLifecycleCounters(t *testing.T) {
	requireLinux(t)
	opensBefore := counterValue(segmentOpens)
	closesBefore := counterValue(segmentCloses)

	seg, err := OpenSegment(testName(t), 32, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, seg.Close())

	assert.Equal(t, opensBefore+1, counterValue(segmentOpens))
	assert.Equal(t, closesBefore+1, counterValue(segmentCloses))
}

func TestOpenFailureCounters(t *testing.T) {
	requireLinux(t)
	// An interior NUL makes the open itself fail without touching shm state.
	bad := "/shmseg\x00bad"
	failuresBefore := counterValue(segmentOpenFailures.WithLabelValues("open"))

	_, err := OpenSegment(bad, 32, ReadWrite)
	require.Error(t, err)
	assert.Equal(t, failuresBefore+1, counterValue(segmentOpenFailures.WithLabelValues("open")))
}
