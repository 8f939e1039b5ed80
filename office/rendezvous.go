package office

import (
	"github.com/lhecker/ta-office/semaphore"
)

// Rendezvous carries the three-way student/TA handshake. Each signal is
// single-use per pairing: the TA consumes one presence unit, then posts
// exactly one summon and one completion unit before looping.
//
// All three signals are buffered to the student population. Each
// student posts presence at most once, and the TA posts at most one
// summon and one completion per presence unit consumed, so no signal
// ever accumulates more units than there are students. The TA does not
// wait for a student to consume its summon or completion before
// starting the next cycle, which is why a buffer of one per signal is
// not enough: a student can be preempted (or busy in its observer
// callback) between receiving a summon and waiting for its completion
// while the TA already finishes the next pairing.
type Rendezvous struct {
	presence   *semaphore.Signal
	summon     *semaphore.Signal
	completion *semaphore.Signal
}

func NewRendezvous(students int) *Rendezvous {
	return &Rendezvous{
		presence:   semaphore.NewSignal(students),
		summon:     semaphore.NewSignal(students),
		completion: semaphore.NewSignal(students),
	}
}
