// Implements the WaitQueue, which holds all customers waiting for a teller.
// Customers are enqueued on arrival and leave only by being served.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is the FIFO line of customers waiting to be served.
// Insertion order is service order: there is no priority lane and a customer
// never leaves the line before reaching a teller.
//
// Thread-safety: NOT thread-safe. The simulation loop is the sole owner.
type WaitQueue struct {
	customers []*Customer // FIFO line, head at index 0
}

// Enqueue adds a customer to the back of the line.
func (wq *WaitQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	wq.customers = append(wq.customers, c)
}

// Dequeue removes and returns the customer at the head of the line.
// Returns nil when the line is empty; an empty line is a normal condition,
// not an error.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.customers) == 0 {
		return nil
	}
	head := wq.customers[0]
	wq.customers = wq.customers[1:]
	return head
}

// Len returns the number of customers in line.
func (wq *WaitQueue) Len() int {
	return len(wq.customers)
}

// IsEmpty reports whether the line has no customers.
func (wq *WaitQueue) IsEmpty() bool {
	return len(wq.customers) == 0
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range wq.customers {
		sb.WriteString(fmt.Sprint(c))
		if i < len(wq.customers)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
