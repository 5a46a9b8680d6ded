package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ServiceSampler draws the service duration, in whole minutes, for a customer
// at the moment a teller picks them up.
type ServiceSampler interface {
	// Duration returns a service time of at least one minute.
	Duration(rng *rand.Rand) int64
}

// UniformService draws integer durations uniformly from [Min, Max] inclusive.
// Each value in the range is equally likely.
type UniformService struct {
	min int64
	max int64
}

// NewUniformService creates a uniform sampler over [min, max] minutes.
// Bounds are sanitized rather than rejected: a minimum below one minute is
// raised to one, and a maximum below the minimum collapses the range to the
// single value min.
func NewUniformService(min, max int64) *UniformService {
	if min < 1 {
		logrus.Warnf("service minimum %d raised to 1 minute", min)
		min = 1
	}
	if max < min {
		logrus.Warnf("service maximum %d below minimum %d, using %d", max, min, min)
		max = min
	}
	return &UniformService{min: min, max: max}
}

// Bounds returns the inclusive [min, max] duration range.
func (u *UniformService) Bounds() (int64, int64) {
	return u.min, u.max
}

func (u *UniformService) Duration(rng *rand.Rand) int64 {
	span := u.max - u.min + 1
	return u.min + rng.Int63n(span)
}

// ScriptedService replays a fixed sequence of durations, then repeats the
// final value forever. Used for exact-timing tests; consumes no entropy.
type ScriptedService struct {
	durations []int64
	next      int
}

// NewScriptedService creates a sampler that returns the given durations in
// order. The sequence must not be empty.
func NewScriptedService(durations []int64) *ScriptedService {
	if len(durations) == 0 {
		panic("sim: scripted service requires at least one duration")
	}
	return &ScriptedService{durations: durations}
}

func (s *ScriptedService) Duration(_ *rand.Rand) int64 {
	if s.next >= len(s.durations) {
		return s.durations[len(s.durations)-1]
	}
	d := s.durations[s.next]
	s.next++
	return d
}
