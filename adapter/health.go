// Package adapter integrates shmseg with external monitoring systems.
package adapter

import (
	"errors"

	"github.com/heptiolabs/healthcheck"

	"github.com/srediag/shmseg/pkg/shm"
)

const sentinel = 0x5EED

// SharedMemoryCheck returns a healthcheck verifying that this process can
// create, write, read back and destroy a scratch segment under the given
// identifier. The identifier is canonicalized here; pick one that no real
// segment uses, the check unlinks it on every probe.
func SharedMemoryCheck(name string) healthcheck.Check {
	canonical := shm.FormatName(name)
	return func() error {
		obj, err := shm.NewObject[uint64](canonical, shm.ReadWrite)
		if err != nil {
			return err
		}
		defer func() { _ = obj.Close() }()
		if err := obj.Store(sentinel); err != nil {
			return err
		}
		if obj.Load() != sentinel {
			return errors.New("scratch segment readback mismatch")
		}
		return nil
	}
}

// NewHandler returns a healthcheck handler with the shared-memory liveness
// check installed under "shared-memory".
func NewHandler(scratchName string) healthcheck.Handler {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("shared-memory", SharedMemoryCheck(scratchName))
	return h
}
