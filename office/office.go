package office

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/lhecker/ta-office/config"
)

// DelayFunc supplies one blocking-sleep duration per call. Arrival
// jitter and consultation length are injected this way so the protocol
// itself never touches a random number generator or the wall clock.
type DelayFunc func() time.Duration

type Option func(*Simulation)

func WithObserver(observe Observer) Option {
	return func(s *Simulation) {
		s.observe = observe
	}
}

func WithClock(c clock.Clock) Option {
	return func(s *Simulation) {
		s.clock = c
	}
}

type Simulation struct {
	config     *config.Config
	seats      *SeatPool
	rendezvous *Rendezvous
	clock      clock.Clock
	observe    Observer

	arrivalDelay DelayFunc
	helpDelay    DelayFunc

	students errgroup.Group
}

// New validates the configuration and assembles a simulation. Nil
// delay functions default to zero-duration delays.
func New(cfg *config.Config, arrivalDelay, helpDelay DelayFunc, opts ...Option) (*Simulation, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if arrivalDelay == nil {
		arrivalDelay = zeroDelay
	}
	if helpDelay == nil {
		helpDelay = zeroDelay
	}

	s := &Simulation{
		config:       cfg,
		seats:        NewSeatPool(cfg.Chairs),
		rendezvous:   NewRendezvous(cfg.Students),
		clock:        clock.New(),
		observe:      func(Event) {},
		arrivalDelay: arrivalDelay,
		helpDelay:    helpDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run starts the TA actor and all student actors. The context is
// observed at every suspension point; with a background context the TA
// keeps looping forever, mirroring the reference behavior.
func (s *Simulation) Run(ctx context.Context) {
	ta := &taActor{
		rendezvous: s.rendezvous,
		helpDelay:  s.helpDelay,
		clock:      s.clock,
		observe:    s.observe,
	}
	go ta.run(ctx)

	for i := 1; i <= s.config.Students; i++ {
		student := &studentActor{
			id:           i,
			seats:        s.seats,
			rendezvous:   s.rendezvous,
			arrivalDelay: s.arrivalDelay,
			clock:        s.clock,
			observe:      s.observe,
		}
		s.students.Go(func() error {
			return student.run(ctx)
		})
	}
}

// AwaitStudents blocks until every student actor reached a terminal
// state. It never waits on the TA. The returned error is the first
// student cancellation, if any.
func (s *Simulation) AwaitStudents() error {
	return s.students.Wait()
}

// Occupied reports the current chair occupancy.
func (s *Simulation) Occupied() int {
	return s.seats.Occupied()
}

func zeroDelay() time.Duration {
	return 0
}
