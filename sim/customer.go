// Defines the Customer struct that models a single bank customer in the simulation.
// Tracks the arrival minute and the minute service began, from which the wait is derived.

package sim

import (
	"fmt"
)

// ServiceNotStarted is the sentinel ServiceStart value for a customer that is
// still waiting in line.
const ServiceNotStarted int64 = -1

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StateWaiting CustomerState = "waiting"
	StateServing CustomerState = "serving"
	StateServed  CustomerState = "served"
)

// Customer models one visitor for the duration of a simulated day.
// A customer is owned by the WaitQueue from arrival until dequeue, then by
// exactly one teller slot until service completes.
type Customer struct {
	ArrivalTime  int64 // minute the customer joined the line
	ServiceStart int64 // minute a teller accepted the customer; ServiceNotStarted until then

	State CustomerState // waiting, serving, served
}

// NewCustomer creates a customer arriving at the given minute, not yet served.
func NewCustomer(arrivalTime int64) *Customer {
	return &Customer{
		ArrivalTime:  arrivalTime,
		ServiceStart: ServiceNotStarted,
		State:        StateWaiting,
	}
}

// BeginService stamps the minute a teller accepted this customer.
// The stamp is applied exactly once; a second call is a programming error.
func (c *Customer) BeginService(minute int64) {
	if c.ServiceStart != ServiceNotStarted {
		panic(fmt.Sprintf("BeginService called twice (first at %d, again at %d)", c.ServiceStart, minute))
	}
	if minute < c.ArrivalTime {
		panic(fmt.Sprintf("BeginService at %d before arrival at %d", minute, c.ArrivalTime))
	}
	c.ServiceStart = minute
	c.State = StateServing
}

// Wait returns the whole minutes this customer spent in line.
// Only meaningful once service has begun; zero waits are common and valid.
func (c *Customer) Wait() float64 {
	return float64(c.ServiceStart - c.ArrivalTime)
}

// String returns a human-readable representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: (State: %s, ArrivalTime: %d, ServiceStart: %d)", c.State, c.ArrivalTime, c.ServiceStart)
}
