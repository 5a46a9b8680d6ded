package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sim "github.com/branch-sim/branch-sim/sim"
)

// renderReport writes the human-readable end-of-day report. A day that
// served nobody gets a single message instead of a frame of zeros.
func renderReport(w io.Writer, r *sim.Report) {
	if !r.ServedAnyone() {
		fmt.Fprintln(w, "No customers were served during the simulation.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== BANK QUEUE SIMULATION REPORT =====")
	fmt.Fprintf(w, "Simulation length          : %d minutes (%d open + %d drain)\n",
		r.TotalMinutes, r.WindowMinutes, r.DrainMinutes())
	fmt.Fprintf(w, "Lambda (arrivals / minute) : %.3f\n", r.Lambda)
	fmt.Fprintf(w, "Tellers                    : %d\n", r.Tellers)
	fmt.Fprintf(w, "Total customers arrived    : %d\n", r.TotalArrived)
	fmt.Fprintf(w, "Total customers served     : %d\n", r.TotalServed)
	fmt.Fprintf(w, "Recorded wait samples      : %d\n", r.Waits.Count)
	fmt.Fprintf(w, "Peak queue depth           : %d\n", r.PeakQueueDepth)
	fmt.Fprintf(w, "Teller utilization         : %.1f %%\n", r.TellerUtilization*100)
	fmt.Fprintln(w, "-----------------------------------------")
	fmt.Fprintf(w, "Mean wait time             : %.2f minutes\n", r.Waits.Mean)
	fmt.Fprintf(w, "Median wait time           : %.2f minutes\n", r.Waits.Median)
	fmt.Fprintf(w, "Mode wait time (rounded)   : %d minutes\n", r.Waits.Mode)
	fmt.Fprintf(w, "Std. Deviation of waits    : %.2f minutes\n", r.Waits.StdDev)
	fmt.Fprintf(w, "Longest wait time          : %.2f minutes\n", r.Waits.Max)
	fmt.Fprintln(w, "=========================================")
}

// renderComparison writes one row per staffing level, same day throughout,
// then names the staffing with the lowest mean wait. Days that served nobody
// are listed but never ranked.
func renderComparison(w io.Writer, reports []*sim.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s %8s %8s %10s %10s %11s %7s %6s\n",
		"Tellers", "Arrived", "Served", "MeanWait", "MaxWait", "PeakQueue", "Drain", "Util")
	for _, r := range reports {
		meanWait, maxWait := 0.0, 0.0
		if r.Waits != nil {
			meanWait, maxWait = r.Waits.Mean, r.Waits.Max
		}
		fmt.Fprintf(w, "%-8d %8d %8d %9.2fm %9.2fm %11d %6dm %5.1f%%\n",
			r.Tellers, r.TotalArrived, r.TotalServed, meanWait, maxWait,
			r.PeakQueueDepth, r.DrainMinutes(), r.TellerUtilization*100)
	}

	best := -1
	for i, r := range reports {
		if r.Waits == nil {
			continue
		}
		if best < 0 || r.Waits.Mean < reports[best].Waits.Mean {
			best = i
		}
	}
	if best >= 0 {
		fmt.Fprintf(w, "Lowest mean wait: %d tellers (%.2f minutes)\n",
			reports[best].Tellers, reports[best].Waits.Mean)
	}
}

// writeReportJSON writes a single report as indented JSON.
func writeReportJSON(path string, r *sim.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// writeReportsJSON writes a comparison's reports as one JSON array.
func writeReportsJSON(path string, reports []*sim.Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling reports: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}
	return nil
}
