package office

import (
	"time"
)

type EventKind int

const (
	EventArrived EventKind = iota
	EventSeatTaken
	EventBalked
	EventSummoned
	EventServed
	EventErrored
	EventTaWaiting
	EventTaHelping
	EventTaFinished
)

var eventKindNames = map[EventKind]string{
	EventArrived:    "arrived",
	EventSeatTaken:  "seat_taken",
	EventBalked:     "balked",
	EventSummoned:   "summoned",
	EventServed:     "served",
	EventErrored:    "errored",
	EventTaWaiting:  "ta_waiting",
	EventTaHelping:  "ta_helping",
	EventTaFinished: "ta_finished",
}

func (k EventKind) String() string {
	name, ok := eventKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Event describes a single state transition of one actor.
// Student is 0 for TA events, Occupied is only meaningful for
// events that change or depend on chair occupancy.
type Event struct {
	Kind     EventKind
	Student  int
	Occupied int
	Duration time.Duration
	Time     time.Time
	Err      error
}

// Observer receives every event of a running simulation.
// It is invoked from multiple goroutines and must be safe for
// concurrent use.
type Observer func(Event)
