package semaphore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreAcquireRelease(t *testing.T) {
	ctx := context.Background()
	s := NewSemaphore(2)

	require.NoError(t, s.Acquire(ctx))
	require.NoError(t, s.Acquire(ctx))

	// Both slots held: the next acquire must block until a release.
	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Acquire(ctx2), context.DeadlineExceeded)

	s.Release()
	require.NoError(t, s.Acquire(ctx))
}

func TestSemaphoreBlockedAcquireWakesOnRelease(t *testing.T) {
	ctx := context.Background()
	s := NewSemaphore(1)
	require.NoError(t, s.Acquire(ctx))

	acquired := make(chan error, 1)
	go func() {
		acquired <- s.Acquire(ctx)
	}()

	select {
	case <-acquired:
		t.Fatal("acquire succeeded while the slot was held")
	case <-time.After(10 * time.Millisecond):
	}

	s.Release()

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("acquire did not wake after release")
	}
}

func TestSemaphoreNegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewSemaphore(-1) })
}

func TestSemaphoreZeroCapacity(t *testing.T) {
	s := NewSemaphore(0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Acquire(ctx), context.DeadlineExceeded)
}
