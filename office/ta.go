package office

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

type taActor struct {
	rendezvous *Rendezvous
	helpDelay  DelayFunc
	clock      clock.Clock
	observe    Observer
}

// run is the TA's perpetual loop: one full student cycle per
// iteration. It only ever returns when ctx is canceled, which is
// checked at the presence wait and during the help interval.
func (t *taActor) run(ctx context.Context) {
	for {
		t.observe(Event{Kind: EventTaWaiting, Time: t.clock.Now()})

		err := t.rendezvous.presence.Wait(ctx)
		if err != nil {
			return
		}

		// The paired student is seated and waiting; call them in.
		t.rendezvous.summon.Post()

		duration := t.helpDelay()
		t.observe(Event{Kind: EventTaHelping, Duration: duration, Time: t.clock.Now()})

		err = sleep(ctx, t.clock, duration)
		if err != nil {
			// The paired student observes the same cancellation at
			// its completion wait.
			return
		}

		t.rendezvous.completion.Post()
		t.observe(Event{Kind: EventTaFinished, Time: t.clock.Now()})
	}
}

func sleep(ctx context.Context, c clock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := c.Timer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
