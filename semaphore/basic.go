package semaphore

import (
	"context"
)

// Semaphore is a counting semaphore backed by a buffered channel.
// Acquire takes one of the capacity slots and blocks while all of
// them are held.
type Semaphore struct {
	slots chan struct{}
}

func NewSemaphore(capacity int) *Semaphore {
	if capacity < 0 {
		panic("invalid capacity")
	}
	return &Semaphore{
		slots: make(chan struct{}, capacity),
	}
}

func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Semaphore) Release() {
	<-s.slots
}
