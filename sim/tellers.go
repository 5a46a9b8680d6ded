package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// tellerSlot is one service position. A slot is idle when customer is nil;
// otherwise remaining holds the whole minutes of service left.
type tellerSlot struct {
	customer  *Customer
	remaining int64
}

// TellerPool is a fixed set of identical service slots. Each simulated
// minute the pool is driven in two steps, always in this order:
//
//	done := pool.Advance()        // burn one minute, free finished slots
//	started := pool.Assign(m, q)  // refill idle slots from the queue
//
// Advancing before assigning lets a slot freed this minute pick up a new
// customer in the same minute.
//
// Thread-safety: NOT thread-safe. The pool belongs to a single simulation
// loop.
type TellerPool struct {
	slots   []tellerSlot
	sampler ServiceSampler
	rng     *rand.Rand
}

// NewTellerPool creates a pool of count idle slots drawing service durations
// from sampler via rng. A count below one is raised to one so the simulation
// can always make progress.
func NewTellerPool(count int, sampler ServiceSampler, rng *rand.Rand) *TellerPool {
	if count < 1 {
		logrus.Warnf("teller count %d raised to 1", count)
		count = 1
	}
	return &TellerPool{
		slots:   make([]tellerSlot, count),
		sampler: sampler,
		rng:     rng,
	}
}

// Size returns the number of slots in the pool.
func (p *TellerPool) Size() int {
	return len(p.slots)
}

// BusyCount returns the number of slots currently serving a customer.
func (p *TellerPool) BusyCount() int {
	busy := 0
	for i := range p.slots {
		if p.slots[i].customer != nil {
			busy++
		}
	}
	return busy
}

// AllIdle reports whether no slot is serving a customer.
func (p *TellerPool) AllIdle() bool {
	return p.BusyCount() == 0
}

// Occupant returns the customer held by slot i, or nil if the slot is idle.
func (p *TellerPool) Occupant(i int) *Customer {
	return p.slots[i].customer
}

// Advance burns one minute of service on every busy slot and frees the slots
// whose service just finished. Finished customers are returned in slot order
// with their state set to served.
func (p *TellerPool) Advance() []*Customer {
	var done []*Customer
	for i := range p.slots {
		slot := &p.slots[i]
		if slot.customer == nil {
			continue
		}
		slot.remaining--
		if slot.remaining <= 0 {
			slot.customer.State = StateServed
			done = append(done, slot.customer)
			slot.customer = nil
			slot.remaining = 0
		}
	}
	return done
}

// Assign fills idle slots from the front of the queue, lowest-indexed slot
// first, until the pool is full or the queue is empty. Each assigned customer
// begins service at the given minute with a freshly drawn duration. Returns
// the customers that started service, in assignment order.
func (p *TellerPool) Assign(minute int64, q *WaitQueue) []*Customer {
	var started []*Customer
	for i := range p.slots {
		slot := &p.slots[i]
		if slot.customer != nil {
			continue
		}
		c := q.Dequeue()
		if c == nil {
			break
		}
		c.BeginService(minute)
		d := p.sampler.Duration(p.rng)
		if d < 1 {
			// A zero-length service still occupies the teller for the
			// minute it was assigned in.
			d = 1
		}
		slot.customer = c
		slot.remaining = d
		started = append(started, c)
	}
	return started
}
