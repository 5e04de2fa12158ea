package shm

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	segmentOpens = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shmseg_segment_opens_total",
		Help: "Total number of segments successfully opened and mapped.",
	})
	segmentOpenFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shmseg_segment_open_failures_total",
		Help: "Total number of failed segment constructions, by failing stage.",
	}, []string{"stage"})
	segmentCloses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shmseg_segment_closes_total",
		Help: "Total number of segments unmapped and unlinked.",
	})
	teardownFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shmseg_teardown_failures_total",
		Help: "Total number of swallowed close/unmap/unlink failures, by operation.",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(segmentOpens, segmentOpenFailures, segmentCloses, teardownFailures)
}
