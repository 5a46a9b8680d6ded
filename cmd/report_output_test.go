package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/branch-sim/branch-sim/sim"
)

func sampleReport() *sim.Report {
	return &sim.Report{
		Lambda:            0.5,
		Tellers:           2,
		WindowMinutes:     480,
		TotalMinutes:      492,
		TotalArrived:      241,
		TotalServed:       241,
		PeakQueueDepth:    7,
		TellerUtilization: 0.631,
		Waits: &sim.WaitStats{
			Count:  241,
			Mean:   1.52,
			StdDev: 1.85,
			Median: 1.0,
			Mode:   0,
			Max:    9.0,
		},
	}
}

func TestRenderReport_FramedSummary(t *testing.T) {
	// GIVEN a served day
	var buf bytes.Buffer

	// WHEN rendered
	renderReport(&buf, sampleReport())
	out := buf.String()

	// THEN the frame carries every reported figure
	assert.Contains(t, out, "===== BANK QUEUE SIMULATION REPORT =====")
	assert.Contains(t, out, "Simulation length          : 492 minutes (480 open + 12 drain)")
	assert.Contains(t, out, "Lambda (arrivals / minute) : 0.500")
	assert.Contains(t, out, "Tellers                    : 2")
	assert.Contains(t, out, "Total customers arrived    : 241")
	assert.Contains(t, out, "Total customers served     : 241")
	assert.Contains(t, out, "Recorded wait samples      : 241")
	assert.Contains(t, out, "Peak queue depth           : 7")
	assert.Contains(t, out, "Teller utilization         : 63.1 %")
	assert.Contains(t, out, "Mean wait time             : 1.52 minutes")
	assert.Contains(t, out, "Median wait time           : 1.00 minutes")
	assert.Contains(t, out, "Mode wait time (rounded)   : 0 minutes")
	assert.Contains(t, out, "Std. Deviation of waits    : 1.85 minutes")
	assert.Contains(t, out, "Longest wait time          : 9.00 minutes")
}

func TestRenderReport_EmptyDay_SingleMessage(t *testing.T) {
	// GIVEN a day that served nobody
	r := &sim.Report{Lambda: 0, Tellers: 1, WindowMinutes: 480, TotalMinutes: 480}
	var buf bytes.Buffer

	// WHEN rendered
	renderReport(&buf, r)

	// THEN a single message replaces the frame of zeros
	want := "No customers were served during the simulation.\n"
	if buf.String() != want {
		t.Errorf("empty-day output: got %q, want %q", buf.String(), want)
	}
}

func TestRenderComparison_OneRowPerStaffingLevel(t *testing.T) {
	// GIVEN reports for two staffing levels, one of them an empty day
	served := sampleReport()
	empty := &sim.Report{Tellers: 5, WindowMinutes: 480, TotalMinutes: 480}
	var buf bytes.Buffer

	// WHEN rendered
	renderComparison(&buf, []*sim.Report{served, empty})
	out := buf.String()

	// THEN there is a header, one line per report, and the ranking line;
	// the empty day is listed but cannot win the ranking
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("comparison lines: got %d, want 4 (header + 2 rows + ranking)", len(lines))
	}
	assert.Contains(t, lines[0], "Tellers")
	assert.Contains(t, lines[1], "241")
	assert.Contains(t, lines[2], "5")
	assert.Equal(t, "Lowest mean wait: 2 tellers (1.52 minutes)", lines[3])
}

func TestRenderComparison_AllEmptyDays_NoRankingLine(t *testing.T) {
	// GIVEN staffing levels that all served nobody
	var buf bytes.Buffer
	renderComparison(&buf, []*sim.Report{
		{Tellers: 1, WindowMinutes: 480, TotalMinutes: 480},
		{Tellers: 2, WindowMinutes: 480, TotalMinutes: 480},
	})

	// THEN no staffing is named best
	assert.NotContains(t, buf.String(), "Lowest mean wait")
}

func TestWriteReportJSON_RoundTrips(t *testing.T) {
	// GIVEN a report written to disk
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, writeReportJSON(path, sampleReport()))

	// WHEN read back
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got sim.Report
	require.NoError(t, json.Unmarshal(data, &got))

	// THEN the figures survive
	assert.Equal(t, int64(241), got.TotalArrived)
	require.NotNil(t, got.Waits)
	assert.Equal(t, 1.52, got.Waits.Mean)
}

func TestWriteReportJSON_EmptyDayOmitsWaits(t *testing.T) {
	// The no-customers outcome must stay distinct in the export too
	path := filepath.Join(t.TempDir(), "empty.json")
	r := &sim.Report{Lambda: 0, Tellers: 1, WindowMinutes: 480, TotalMinutes: 480}
	require.NoError(t, writeReportJSON(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "waits")
}

func TestWriteReportsJSON_Array(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, writeReportsJSON(path, []*sim.Report{sampleReport(), sampleReport()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []*sim.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 2)
}
