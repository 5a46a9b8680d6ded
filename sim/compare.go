package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CompareTellerCounts replays the same day under different staffing levels:
// one full run per teller count, all from cfg's seed. Arrival and service
// draws live on separate RNG streams, so every run sees the identical
// arrival sequence and the reports differ only by capacity. Results come
// back in the order the counts were given.
func CompareTellerCounts(cfg Config, counts []int) ([]*Report, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("at least one teller count required")
	}
	reports := make([]*Report, 0, len(counts))
	for _, n := range counts {
		runCfg := cfg
		runCfg.Tellers = n
		s, err := NewSimulator(runCfg)
		if err != nil {
			return nil, fmt.Errorf("teller count %d: %w", n, err)
		}
		r := s.Run()
		logrus.Debugf("capacity run with %d tellers: served %d of %d, peak queue %d",
			n, r.TotalServed, r.TotalArrived, r.PeakQueueDepth)
		reports = append(reports, r)
	}
	return reports, nil
}
