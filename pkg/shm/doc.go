// Package shm provides safe, typed access to POSIX named shared-memory
// segments for inter-process communication (IPC).
//
// A Segment owns the full lifecycle of one named segment: create-or-attach,
// resize, map, close the descriptor, and on Close unmap and unlink. Object
// and Array lay a typed view over a segment's raw bytes:
//
//	arr, err := shm.NewArray[int32](shm.FormatName("sensor-frame"), 8, shm.ReadWrite)
//	if err != nil {
//		// ...
//	}
//	defer arr.Close()
//	arr.Set(0, 42)
//
// Any number of processes may attach views to the same canonical name; the
// OS-backed region is the single source of truth and the package imposes no
// mutual exclusion of its own. Callers that need a readiness protocol poll
// out-of-band, see Await.
//
// Lifecycle operations are counted with Prometheus and optionally traced and
// metered through OpenTelemetry (OTel Go SDK v1.30.0). Teardown failures are
// never returned; they go to the internal logger and the lifecycle journal.
//
// Platform-specific helpers are in internal/shm.
package shm
