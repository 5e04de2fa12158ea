package shm

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAwaitConverges(t *testing.T) {
	var polls atomic.Int32
	err := Await(context.Background(), time.Millisecond, 100, func() bool {
		return polls.Add(1) >= 3
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(3), polls.Load())
}

func TestAwaitExhaustsPolls(t *testing.T) {
	err := Await(context.Background(), time.Millisecond, 5, func() bool { return false })
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestAwaitHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Await(ctx, time.Millisecond, 1000, func() bool { return false })
	assert.Error(t, err)
}
