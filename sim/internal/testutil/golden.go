// Package testutil provides shared test infrastructure for the branch
// simulator: the golden dataset of scripted days with hand-computed expected
// reports, and float assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one fully scripted branch day: per-minute arrival counts,
// the service durations drawn in assignment order, and the exact report the
// run must produce.
type GoldenTestCase struct {
	Name             string       `json:"name"`
	Tellers          int          `json:"tellers"`
	WindowMinutes    int64        `json:"window_minutes"`
	ArrivalsByMinute []int        `json:"arrivals_by_minute"`
	ServiceDurations []int64      `json:"service_durations"`
	Expect           GoldenReport `json:"expect"`
}

// GoldenReport holds the expected end-of-run figures for a golden case.
// The wait statistics are meaningful only when TotalServed > 0; a zero-served
// case expects the report's stats block to be absent entirely.
type GoldenReport struct {
	TotalArrived      int64   `json:"total_arrived"`
	TotalServed       int64   `json:"total_served"`
	TotalMinutes      int64   `json:"total_minutes"`
	PeakQueueDepth    int     `json:"peak_queue_depth"`
	TellerUtilization float64 `json:"teller_utilization"`

	MeanWait   float64 `json:"mean_wait"`
	MedianWait float64 `json:"median_wait"`
	ModeWait   int64   `json:"mode_wait"`
	StdDevWait float64 `json:"stddev_wait"`
	MaxWait    float64 `json:"max_wait"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
