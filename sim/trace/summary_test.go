package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	dt := NewDayTrace()

	// WHEN summarized
	summary := Summarize(dt)

	// THEN all counts are zero
	if summary.Minutes != 0 {
		t.Errorf("expected 0 minutes, got %d", summary.Minutes)
	}
	if summary.TotalArrivals != 0 || summary.TotalCompletions != 0 {
		t.Error("expected 0 arrivals and completions")
	}
	if summary.PeakQueueDepth != 0 || summary.PeakBusyTellers != 0 {
		t.Error("expected 0 peaks")
	}
	if summary.MeanQueueDepth != 0 {
		t.Errorf("expected 0 mean queue depth, got %f", summary.MeanQueueDepth)
	}
}

func TestSummarize_NilTrace_Safe(t *testing.T) {
	summary := Summarize(nil)
	if summary == nil {
		t.Fatal("Summarize(nil) returned nil")
	}
	if summary.Minutes != 0 {
		t.Errorf("expected 0 minutes for nil trace, got %d", summary.Minutes)
	}
}

func TestSummarize_PopulatedTrace_CorrectAggregates(t *testing.T) {
	// GIVEN four recorded minutes with a mid-day queue spike
	dt := NewDayTrace()
	dt.Record(MinuteRecord{Minute: 0, Phase: "running", Arrivals: 2, Started: 1, QueueDepth: 1, BusyTellers: 1})
	dt.Record(MinuteRecord{Minute: 1, Phase: "running", Arrivals: 3, QueueDepth: 4, BusyTellers: 1})
	dt.Record(MinuteRecord{Minute: 2, Phase: "running", Completions: 1, Started: 1, QueueDepth: 3, BusyTellers: 1})
	dt.Record(MinuteRecord{Minute: 3, Phase: "draining", Completions: 1, QueueDepth: 0, BusyTellers: 0})

	// WHEN summarized
	summary := Summarize(dt)

	// THEN the aggregates match the records
	if summary.Minutes != 4 {
		t.Errorf("Minutes: got %d, want 4", summary.Minutes)
	}
	if summary.TotalArrivals != 5 {
		t.Errorf("TotalArrivals: got %d, want 5", summary.TotalArrivals)
	}
	if summary.TotalCompletions != 2 {
		t.Errorf("TotalCompletions: got %d, want 2", summary.TotalCompletions)
	}
	if summary.PeakQueueDepth != 4 {
		t.Errorf("PeakQueueDepth: got %d, want 4", summary.PeakQueueDepth)
	}
	if summary.PeakQueueMinute != 1 {
		t.Errorf("PeakQueueMinute: got %d, want 1", summary.PeakQueueMinute)
	}
	if summary.PeakBusyTellers != 1 {
		t.Errorf("PeakBusyTellers: got %d, want 1", summary.PeakBusyTellers)
	}
	if summary.MeanQueueDepth != 2.0 {
		t.Errorf("MeanQueueDepth: got %f, want 2.0", summary.MeanQueueDepth)
	}
	if summary.IdleMinutes != 1 {
		t.Errorf("IdleMinutes: got %d, want 1", summary.IdleMinutes)
	}
}

func TestSummarize_PeakQueueMinute_FirstOccurrenceWins(t *testing.T) {
	// GIVEN the same depth reached twice
	dt := NewDayTrace()
	dt.Record(MinuteRecord{Minute: 0, QueueDepth: 2})
	dt.Record(MinuteRecord{Minute: 1, QueueDepth: 5})
	dt.Record(MinuteRecord{Minute: 2, QueueDepth: 5})

	summary := Summarize(dt)

	// THEN the earlier minute is reported
	if summary.PeakQueueMinute != 1 {
		t.Errorf("PeakQueueMinute: got %d, want 1", summary.PeakQueueMinute)
	}
}
