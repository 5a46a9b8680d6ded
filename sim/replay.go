package sim

import (
	"fmt"

	"github.com/branch-sim/branch-sim/sim/trace"
)

// ReplayArrivals turns a recorded day trace back into an arrival source: the
// running-phase arrival counts become a scripted process and the number of
// running minutes becomes the admitting window. Draining-phase records carry
// no arrivals and are skipped. Service durations are not replayed, so the
// same recorded day can be rerun under different staffing or service ranges.
func ReplayArrivals(dt *trace.DayTrace) (*ScriptedArrivals, int64, error) {
	if dt == nil || dt.Len() == 0 {
		return nil, 0, fmt.Errorf("replay trace has no recorded minutes")
	}
	var counts []int
	for _, rec := range dt.Minutes {
		if rec.Phase != PhaseRunning.String() {
			continue
		}
		if rec.Arrivals < 0 {
			return nil, 0, fmt.Errorf("replay trace has %d arrivals at minute %d", rec.Arrivals, rec.Minute)
		}
		counts = append(counts, rec.Arrivals)
	}
	return NewScriptedArrivals(counts), int64(len(counts)), nil
}
