package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalProcess generates the number of customers walking in during one
// simulated minute.
type ArrivalProcess interface {
	// CountForMinute returns a non-negative arrival count for the next minute.
	CountForMinute(rng *rand.Rand) int
}

// PoissonProcess draws per-minute arrival counts from a Poisson law with
// mean Lambda (customers per minute), using the multiplicative method:
// multiply uniform(0,1) draws into a running product until it falls to or
// below e^(-lambda); the count is the number of multiplications minus one.
// Exact for the Poisson distribution, no tables or precomputed CDF.
type PoissonProcess struct {
	lambda    float64
	threshold float64 // e^(-lambda), precomputed
}

// NewPoissonProcess creates a Poisson arrival process with the given mean
// rate. Negative rates are floored to zero; lambda = 0 is legal and always
// yields zero arrivals.
func NewPoissonProcess(lambda float64) *PoissonProcess {
	if lambda < 0 {
		logrus.Warnf("negative arrival rate %.3f floored to 0", lambda)
		lambda = 0
	}
	return &PoissonProcess{
		lambda:    lambda,
		threshold: math.Exp(-lambda),
	}
}

// Lambda returns the configured mean arrival rate.
func (p *PoissonProcess) Lambda() float64 {
	return p.lambda
}

func (p *PoissonProcess) CountForMinute(rng *rand.Rand) int {
	product := 1.0
	count := 0
	for {
		count++
		product *= rng.Float64()
		if product <= p.threshold {
			break
		}
	}
	// lambda = 0 makes the threshold 1.0, so the first draw always
	// terminates the loop and the count comes out 0.
	return count - 1
}

// ScriptedArrivals replays a fixed per-minute arrival schedule. Minutes past
// the end of the script have zero arrivals. Used for exact-timing tests and
// trace replay; consumes no entropy.
type ScriptedArrivals struct {
	counts []int
	next   int
}

// NewScriptedArrivals creates an arrival process that returns the given
// counts in order, then zeroes forever.
func NewScriptedArrivals(counts []int) *ScriptedArrivals {
	return &ScriptedArrivals{counts: counts}
}

func (s *ScriptedArrivals) CountForMinute(_ *rand.Rand) int {
	if s.next >= len(s.counts) {
		return 0
	}
	n := s.counts[s.next]
	s.next++
	return n
}
