package office

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatPoolTryReserve(t *testing.T) {
	p := NewSeatPool(2)

	assert.True(t, p.TryReserve())
	assert.True(t, p.TryReserve())
	assert.False(t, p.TryReserve())
	assert.Equal(t, 2, p.Occupied())

	// A failed TryReserve must not perturb the counter.
	assert.False(t, p.TryReserve())
	assert.Equal(t, 2, p.Occupied())

	p.DecrementOccupied()
	assert.Equal(t, 1, p.Occupied())
	assert.True(t, p.TryReserve())
}

func TestSeatPoolZeroCapacity(t *testing.T) {
	p := NewSeatPool(0)

	assert.False(t, p.TryReserve())
	assert.Equal(t, 0, p.Occupied())
}

// Two simultaneous admission attempts on the last remaining slot must
// commit exactly one of them.
func TestSeatPoolConcurrentAdmission(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := NewSeatPool(1)

		var (
			wg        sync.WaitGroup
			succeeded [2]bool
		)
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				succeeded[j] = p.TryReserve()
			}(j)
		}
		wg.Wait()

		require.NotEqual(t, succeeded[0], succeeded[1])
		require.Equal(t, 1, p.Occupied())
	}
}

func TestSeatPoolAcquireAfterReserveSucceeds(t *testing.T) {
	ctx := context.Background()
	p := NewSeatPool(3)

	for i := 0; i < 3; i++ {
		require.True(t, p.TryReserve())
		require.NoError(t, p.Acquire(ctx))
	}

	assert.Equal(t, 3, p.Occupied())

	p.Release()
	p.DecrementOccupied()
	assert.Equal(t, 2, p.Occupied())

	require.True(t, p.TryReserve())
	require.NoError(t, p.Acquire(ctx))
}
