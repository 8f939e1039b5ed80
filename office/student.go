package office

import (
	"context"

	"github.com/benbjohnson/clock"
)

type studentActor struct {
	id           int
	seats        *SeatPool
	rendezvous   *Rendezvous
	arrivalDelay DelayFunc
	clock        clock.Clock
	observe      Observer
}

// run walks one student through arrival → seek chair → wait for TA →
// consultation, or balks if no chair is free. Cancellation at any
// suspension point releases whatever the student held at that moment
// and terminates it as errored.
func (s *studentActor) run(ctx context.Context) error {
	err := sleep(ctx, s.clock, s.arrivalDelay())
	if err != nil {
		return s.errored(err)
	}

	s.observe(Event{Kind: EventArrived, Student: s.id, Time: s.clock.Now()})

	if !s.seats.TryReserve() {
		s.observe(Event{Kind: EventBalked, Student: s.id, Time: s.clock.Now()})
		return nil
	}

	err = s.seats.Acquire(ctx)
	if err != nil {
		s.seats.DecrementOccupied()
		return s.errored(err)
	}

	s.observe(Event{
		Kind:     EventSeatTaken,
		Student:  s.id,
		Occupied: s.seats.Occupied(),
		Time:     s.clock.Now(),
	})

	s.rendezvous.presence.Post()

	err = s.rendezvous.summon.Wait(ctx)
	if err != nil {
		s.seats.Release()
		s.seats.DecrementOccupied()
		return s.errored(err)
	}

	// The student leaves the waiting room to go meet the TA, so the
	// chair frees up now, not when the consultation ends.
	s.seats.Release()
	s.seats.DecrementOccupied()

	s.observe(Event{
		Kind:     EventSummoned,
		Student:  s.id,
		Occupied: s.seats.Occupied(),
		Time:     s.clock.Now(),
	})

	err = s.rendezvous.completion.Wait(ctx)
	if err != nil {
		return s.errored(err)
	}

	s.observe(Event{Kind: EventServed, Student: s.id, Time: s.clock.Now()})
	return nil
}

func (s *studentActor) errored(err error) error {
	s.observe(Event{Kind: EventErrored, Student: s.id, Time: s.clock.Now(), Err: err})
	return err
}
