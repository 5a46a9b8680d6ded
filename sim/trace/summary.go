package trace

// DaySummary aggregates statistics from a DayTrace.
type DaySummary struct {
	Minutes          int
	TotalArrivals    int
	TotalCompletions int
	PeakQueueDepth   int
	PeakQueueMinute  int64 // first minute the peak depth was observed
	PeakBusyTellers  int
	MeanQueueDepth   float64
	IdleMinutes      int // minutes with an empty line and no teller busy
}

// Summarize computes aggregate statistics from a DayTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(dt *DayTrace) *DaySummary {
	summary := &DaySummary{}
	if dt == nil || len(dt.Minutes) == 0 {
		return summary
	}

	summary.Minutes = len(dt.Minutes)
	depthSum := 0
	for _, m := range dt.Minutes {
		summary.TotalArrivals += m.Arrivals
		summary.TotalCompletions += m.Completions
		depthSum += m.QueueDepth
		if m.QueueDepth > summary.PeakQueueDepth {
			summary.PeakQueueDepth = m.QueueDepth
			summary.PeakQueueMinute = m.Minute
		}
		if m.BusyTellers > summary.PeakBusyTellers {
			summary.PeakBusyTellers = m.BusyTellers
		}
		if m.QueueDepth == 0 && m.BusyTellers == 0 {
			summary.IdleMinutes++
		}
	}
	summary.MeanQueueDepth = float64(depthSum) / float64(len(dt.Minutes))

	return summary
}
