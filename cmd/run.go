package cmd

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lhecker/ta-office/office"
)

var (
	record bool

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one office hours simulation",
		RunE:  runRun,
	}
)

func init() {
	runCmd.Flags().BoolVarP(&record, "record", "r", false, `record the event transcript to the database`)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
		defer signal.Stop(ch)
		<-ch
	}()

	cfg := singletons.Config
	delays := newRandomDelays(cfg.Seed)
	runID := time.Now().Format(time.RFC3339)

	sim, err := office.New(
		cfg,
		delays.between(cfg.ArrivalDelayMin, cfg.ArrivalDelayMax),
		delays.between(cfg.HelpDelayMin, cfg.HelpDelayMax),
		office.WithObserver(makeObserver(runID)),
	)
	if err != nil {
		return err
	}

	log.Printf("office open: %d chairs, %d students", cfg.Chairs, cfg.Students)

	sim.Run(ctx)

	err = sim.AwaitStudents()
	if err != nil && !isContextCanceledError(err) {
		return err
	}

	log.Println("all students have been processed or have left the office")
	return nil
}

func makeObserver(runID string) office.Observer {
	return func(ev office.Event) {
		narrate(ev)

		if !record {
			return
		}

		err := singletons.Database.AppendEvent(runID, ev)
		if err != nil {
			log.Printf("failed to record event: %v", err)
		}
	}
}

func narrate(ev office.Event) {
	switch ev.Kind {
	case office.EventTaWaiting:
		log.Println("TA: Checking for students or going to sleep...")
	case office.EventTaHelping:
		log.Printf("TA: A student is present. Helping them for %s...", ev.Duration)
	case office.EventTaFinished:
		log.Println("TA: Finished helping the student.")
	case office.EventArrived:
		log.Printf("Student %d: Arrived at TA's office.", ev.Student)
	case office.EventSeatTaken:
		log.Printf("Student %d: Took a chair. (Waiting students in chairs: %d)", ev.Student, ev.Occupied)
	case office.EventBalked:
		log.Printf("Student %d: No chairs available. Leaving and will come back later.", ev.Student)
	case office.EventSummoned:
		log.Printf("Student %d: Consulting with TA.", ev.Student)
	case office.EventServed:
		log.Printf("Student %d: Consultation finished. Leaving the office.", ev.Student)
	case office.EventErrored:
		log.Printf("Student %d: Left early: %v.", ev.Student, ev.Err)
	}
}

// randomDelays hands out durations from a shared seeded source. The
// delay functions are called concurrently from every actor goroutine,
// hence the lock around the unsynchronized rand.Rand.
type randomDelays struct {
	lock sync.Mutex
	rng  *rand.Rand
}

func newRandomDelays(seed int64) *randomDelays {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomDelays{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (d *randomDelays) between(min, max time.Duration) office.DelayFunc {
	if min > max {
		min, max = max, min
	}
	spread := int64(max - min)

	return func() time.Duration {
		if spread == 0 {
			return min
		}

		d.lock.Lock()
		defer d.lock.Unlock()
		return min + time.Duration(d.rng.Int63n(spread+1))
	}
}
