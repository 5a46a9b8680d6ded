package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/branch-sim/branch-sim/sim/trace"
)

// Phase is the lifecycle stage of a simulation run.
type Phase int

const (
	// PhaseRunning admits new arrivals: the door is open.
	PhaseRunning Phase = iota
	// PhaseDraining stops arrivals but keeps serving whoever is already
	// inside.
	PhaseDraining
	// PhaseDone is terminal: the line is empty and every teller idle.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseDraining:
		return "draining"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Simulator is the core object that holds simulation time, branch state, and
// the minute loop. Time moves in whole minutes; each Tick processes exactly
// one of them: generate arrivals (while running), advance service and
// harvest finished customers, then assign idle tellers from the line.
//
// Thread-safety: NOT thread-safe. A Simulator belongs to a single goroutine
// for the duration of a run.
type Simulator struct {
	Clock   int64
	Phase   Phase
	Queue   *WaitQueue
	Tellers *TellerPool

	cfg        Config
	arrivals   ArrivalProcess
	arrivalRNG *rand.Rand
	rng        *PartitionedRNG

	waits        []float64
	totalArrived int64
	totalServed  int64
	peakQueue    int
	busyMinutes  int64

	trace *trace.DayTrace
}

// NewSimulator builds a simulator from cfg with Poisson arrivals and uniform
// service durations, both drawn from seed-derived streams. Returns an error
// if cfg fails validation.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSimulator(cfg,
		NewPoissonProcess(cfg.Lambda),
		NewUniformService(cfg.ServiceMin, cfg.ServiceMax)), nil
}

// NewSimulatorWithSources builds a simulator that draws arrivals and service
// durations from the given sources instead of cfg's distributions. The
// remaining cfg fields (tellers, window, seed) apply as usual. Scripted
// sources make exact-timing runs reproducible draw for draw.
func NewSimulatorWithSources(cfg Config, arrivals ArrivalProcess, service ServiceSampler) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSimulator(cfg, arrivals, service), nil
}

func newSimulator(cfg Config, arrivals ArrivalProcess, service ServiceSampler) *Simulator {
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulator{
		Phase:      PhaseRunning,
		Queue:      &WaitQueue{},
		Tellers:    NewTellerPool(cfg.Tellers, service, rng.ForSubsystem(SubsystemService)),
		cfg:        cfg,
		arrivals:   arrivals,
		arrivalRNG: rng.ForSubsystem(SubsystemArrivals),
		rng:        rng,
	}
	if cfg.WindowMinutes == 0 {
		// Door never opens: nothing arrives and nothing needs draining.
		s.Phase = PhaseDone
	}
	return s
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config {
	return s.cfg
}

// AttachTrace makes the simulator record a MinuteRecord into dt for every
// tick from now on. Attach before Run for a full day trace.
func (s *Simulator) AttachTrace(dt *trace.DayTrace) {
	s.trace = dt
}

// Tick simulates one minute. The order inside a minute is fixed: new
// arrivals join the line first, then every busy teller burns one minute of
// service and finished customers leave (their wait is recorded), then idle
// tellers pick up from the front of the line. A teller freed this minute
// therefore takes a new customer in the same minute.
//
// Once the simulation is done, Tick is a no-op.
func (s *Simulator) Tick() {
	if s.Phase == PhaseDone {
		return
	}

	numArrived := 0
	if s.Phase == PhaseRunning {
		numArrived = s.arrivals.CountForMinute(s.arrivalRNG)
		for i := 0; i < numArrived; i++ {
			s.Queue.Enqueue(NewCustomer(s.Clock))
		}
		s.totalArrived += int64(numArrived)
	}

	done := s.Tellers.Advance()
	for _, c := range done {
		s.waits = append(s.waits, c.Wait())
		s.totalServed++
	}

	started := s.Tellers.Assign(s.Clock, s.Queue)

	depth := s.Queue.Len()
	if depth > s.peakQueue {
		s.peakQueue = depth
	}
	busy := s.Tellers.BusyCount()
	s.busyMinutes += int64(busy)

	logrus.Debugf("[minute %03d] %s: arrived=%d completed=%d started=%d queue=%d busy=%d",
		s.Clock, s.Phase, numArrived, len(done), len(started), depth, busy)

	if s.trace != nil {
		s.trace.Record(trace.MinuteRecord{
			Minute:      s.Clock,
			Phase:       s.Phase.String(),
			Arrivals:    numArrived,
			Completions: len(done),
			Started:     len(started),
			QueueDepth:  depth,
			BusyTellers: busy,
		})
	}

	s.Clock++
	if s.Phase == PhaseRunning && s.Clock >= s.cfg.WindowMinutes {
		s.Phase = PhaseDraining
		logrus.Infof("[minute %03d] door closed, draining %d waiting and %d in service",
			s.Clock, depth, busy)
	}
	if s.Phase == PhaseDraining && s.Queue.IsEmpty() && s.Tellers.AllIdle() {
		s.Phase = PhaseDone
		logrus.Infof("[minute %03d] simulation done: %d arrived, %d served",
			s.Clock, s.totalArrived, s.totalServed)
	}
}

// Run ticks the simulation to completion and returns the final report.
// Termination is guaranteed: the arrival window is finite and once it
// closes, each minute strictly reduces the work left in the branch.
func (s *Simulator) Run() *Report {
	for s.Phase != PhaseDone {
		s.Tick()
	}
	return s.Report()
}

// Report assembles the end-of-run summary. Call after Run; a report taken
// mid-run covers only the minutes simulated so far.
func (s *Simulator) Report() *Report {
	r := &Report{
		Lambda:         s.cfg.Lambda,
		Tellers:        s.Tellers.Size(),
		WindowMinutes:  s.cfg.WindowMinutes,
		TotalMinutes:   s.Clock,
		TotalArrived:   s.totalArrived,
		TotalServed:    s.totalServed,
		PeakQueueDepth: s.peakQueue,
		Waits:          NewWaitStats(s.waits),
	}
	if s.Clock > 0 {
		r.TellerUtilization = float64(s.busyMinutes) / float64(int64(s.Tellers.Size())*s.Clock)
	}
	return r
}
