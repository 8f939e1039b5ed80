package semaphore

import (
	"context"
)

// Signal is a counting signal that starts at zero: Wait blocks until a
// matching Post arrives. Post never blocks as long as the number of
// outstanding (unconsumed) units stays within the buffer the producer
// promised at construction time.
type Signal struct {
	units chan struct{}
}

func NewSignal(buffer int) *Signal {
	if buffer < 0 {
		panic("invalid buffer")
	}
	return &Signal{
		units: make(chan struct{}, buffer),
	}
}

func (s *Signal) Post() {
	select {
	case s.units <- struct{}{}:
	default:
		panic("signal overflow")
	}
}

func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.units:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
