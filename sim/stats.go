package sim

import (
	"math"
	"sort"
)

// Statistics over completed-wait samples. All helpers treat the input as
// read-only: anything that needs ordering sorts a private copy. Results on
// empty input are zero values; callers that must distinguish "no samples"
// from "zero wait" should use NewWaitStats, which reports the empty case
// explicitly.

// Mean returns the arithmetic mean of samples, or 0 for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// StdDev returns the population standard deviation of samples (divisor N,
// not N-1), or 0 for an empty slice.
func StdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := Mean(samples)
	sumSq := 0.0
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// Median returns the middle sample, averaging the two central values when
// the count is even. The input slice is left untouched.
func Median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Mode returns the most frequent sample after rounding each value to the
// nearest whole minute, halves away from zero. Ties resolve to the smallest
// such value. Returns 0 for an empty slice.
func Mode(samples []float64) int64 {
	if len(samples) == 0 {
		return 0
	}
	rounded := make([]int64, len(samples))
	for i, s := range samples {
		rounded[i] = int64(math.Round(s))
	}
	sort.Slice(rounded, func(i, j int) bool { return rounded[i] < rounded[j] })

	best := rounded[0]
	bestCount := 0
	run := rounded[0]
	runCount := 0
	for _, v := range rounded {
		if v != run {
			run = v
			runCount = 0
		}
		runCount++
		// Strictly greater keeps the smallest value on ties, since the
		// scan visits values in ascending order.
		if runCount > bestCount {
			best = run
			bestCount = runCount
		}
	}
	return best
}

// Max returns the largest sample, or 0 for an empty slice.
func Max(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m := samples[0]
	for _, s := range samples[1:] {
		if s > m {
			m = s
		}
	}
	return m
}

// WaitStats summarizes the waiting times of every customer who finished
// service during a run.
type WaitStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_minutes"`
	StdDev float64 `json:"stddev_minutes"`
	Median float64 `json:"median_minutes"`
	Mode   int64   `json:"mode_minutes"`
	Max    float64 `json:"max_minutes"`
}

// NewWaitStats computes the full summary over samples. Returns nil when
// samples is empty, so callers can tell a run that served nobody apart from
// one whose customers never waited.
func NewWaitStats(samples []float64) *WaitStats {
	if len(samples) == 0 {
		return nil
	}
	return &WaitStats{
		Count:  len(samples),
		Mean:   Mean(samples),
		StdDev: StdDev(samples),
		Median: Median(samples),
		Mode:   Mode(samples),
		Max:    Max(samples),
	}
}
