package shm

import (
	"strconv"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// live tracks every segment this process currently has mapped. Several
// handles may attach to the same name, so entries are keyed per handle.
var (
	live      = cmap.New[*Segment]()
	handleSeq atomic.Uint64
)

func registerSegment(s *Segment) {
	s.id = s.name + "#" + strconv.FormatUint(handleSeq.Add(1), 10)
	live.Set(s.id, s)
}

func unregisterSegment(s *Segment) {
	live.Remove(s.id)
}

// LiveSegments returns the canonical names of every segment this process
// currently has mapped, one entry per handle. Diagnostic only.
func LiveSegments() []string {
	names := make([]string, 0, live.Count())
	for _, s := range live.Items() {
		names = append(names, s.name)
	}
	return names
}
