// Package sim provides the core discrete-time simulation engine for a bank
// branch: Poisson customer arrivals, one FIFO waiting line, and a fixed pool
// of tellers with random service durations.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (waiting → serving → served) and wait accounting
//   - tellers.go: The slot pool, service countdown, and queue assignment
//   - simulator.go: The minute loop and the running/draining/done phases
//
// # Architecture
//
// Time advances in fixed one-minute ticks. Each minute, the loop admits the
// minute's arrivals (while the door is open), burns one minute of service on
// every busy teller, records the wait of each customer whose service just
// finished, and refills idle tellers from the front of the line. After the
// operating window closes, the loop keeps ticking without arrivals until the
// branch is empty, then the run's wait samples feed the statistics in
// stats.go.
//
// Randomness is explicit: all draws come from seed-derived streams
// (rng.go), one per subsystem, so a run is reproducible from its Config
// alone and arrival sequences are comparable across staffing levels.
//
// Extension points are small interfaces with scripted counterparts for
// exact-timing tests:
//   - ArrivalProcess: per-minute arrival counts (Poisson or scripted)
//   - ServiceSampler: per-customer service durations (uniform or scripted)
//
// Per-minute state snapshots can be captured via sim/trace.
package sim
