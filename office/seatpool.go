package office

import (
	"context"
	"sync"

	"github.com/lhecker/ta-office/semaphore"
)

// SeatPool models the waiting room chairs: a counting semaphore for the
// physical seats plus a lock-guarded occupancy counter that gates
// admission before the blocking acquire.
type SeatPool struct {
	capacity int
	seats    *semaphore.Semaphore

	lock     sync.Mutex
	occupied int
}

func NewSeatPool(capacity int) *SeatPool {
	if capacity < 0 {
		panic("invalid capacity")
	}
	return &SeatPool{
		capacity: capacity,
		seats:    semaphore.NewSemaphore(capacity),
	}
}

// TryReserve atomically checks for a free admission slot and commits to
// it. A caller that gets true must follow up with Acquire; a caller
// that gets false must walk away without touching any other state.
func (p *SeatPool) TryReserve() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.occupied >= p.capacity {
		return false
	}
	p.occupied++
	return true
}

// Acquire takes the physical seat the caller committed to in
// TryReserve. Since occupied was already incremented under the lock,
// a free seat slot is guaranteed to turn up.
func (p *SeatPool) Acquire(ctx context.Context) error {
	return p.seats.Acquire(ctx)
}

func (p *SeatPool) Release() {
	p.seats.Release()
}

func (p *SeatPool) DecrementOccupied() {
	p.lock.Lock()
	p.occupied--
	p.lock.Unlock()
}

func (p *SeatPool) Occupied() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.occupied
}

func (p *SeatPool) Capacity() int {
	return p.capacity
}
