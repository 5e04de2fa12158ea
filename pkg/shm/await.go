package shm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrNotReady is returned by Await when the condition never held.
var ErrNotReady = errors.New("shm: peer not ready")

// Await polls cond at the given interval until it reports true, maxPolls
// retries are exhausted, or ctx is done. It packages the caller-level
// readiness protocol used by the demo programs (poll a sentinel until the
// peer has written); the segment lifecycle itself never waits and imposes no
// synchronization of its own.
func Await(ctx context.Context, interval time.Duration, maxPolls uint64, cond func() bool) error {
	op := func() error {
		if cond() {
			return nil
		}
		return ErrNotReady
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), maxPolls), ctx)
	return backoff.Retry(op, b)
}
