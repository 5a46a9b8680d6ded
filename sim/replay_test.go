package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-sim/branch-sim/sim/trace"
)

func TestReplayArrivals_RunningMinutesOnly(t *testing.T) {
	// GIVEN a trace of a three-minute window plus two draining minutes
	dt := trace.NewDayTrace()
	dt.Record(trace.MinuteRecord{Minute: 0, Phase: "running", Arrivals: 2})
	dt.Record(trace.MinuteRecord{Minute: 1, Phase: "running", Arrivals: 0})
	dt.Record(trace.MinuteRecord{Minute: 2, Phase: "running", Arrivals: 1})
	dt.Record(trace.MinuteRecord{Minute: 3, Phase: "draining"})
	dt.Record(trace.MinuteRecord{Minute: 4, Phase: "draining"})

	// WHEN the arrivals are rebuilt
	arrivals, window, err := ReplayArrivals(dt)
	require.NoError(t, err)

	// THEN the window covers only the running minutes and the counts replay
	// in order, then go quiet
	assert.Equal(t, int64(3), window)
	want := []int{2, 0, 1, 0}
	for i, w := range want {
		if got := arrivals.CountForMinute(nil); got != w {
			t.Errorf("minute %d: got %d arrivals, want %d", i, got, w)
		}
	}
}

func TestReplayArrivals_EmptyTrace_Error(t *testing.T) {
	_, _, err := ReplayArrivals(nil)
	assert.Error(t, err)
	_, _, err = ReplayArrivals(trace.NewDayTrace())
	assert.Error(t, err)
}

func TestReplayArrivals_ReproducesRecordedDay(t *testing.T) {
	// GIVEN a recorded day with scripted sources
	cfg := scriptedConfig(1, 3)
	original, err := NewSimulatorWithSources(cfg,
		NewScriptedArrivals([]int{2, 0, 1}),
		NewScriptedService([]int64{2, 3, 2}))
	require.NoError(t, err)
	dt := trace.NewDayTrace()
	original.AttachTrace(dt)
	first := original.Run()

	// WHEN the trace is replayed with the same service script
	arrivals, window, err := ReplayArrivals(dt)
	require.NoError(t, err)
	replayCfg := cfg
	replayCfg.WindowMinutes = window
	replayed, err := NewSimulatorWithSources(replayCfg,
		arrivals, NewScriptedService([]int64{2, 3, 2}))
	require.NoError(t, err)
	second := replayed.Run()

	// THEN the rerun is the same day, report for report
	assert.Equal(t, first, second)
}

func TestReplayArrivals_DifferentStaffing_SameArrivals(t *testing.T) {
	// GIVEN a recorded understaffed day
	cfg := DefaultConfig()
	cfg.Lambda = 1.2
	cfg.WindowMinutes = 60
	cfg.Seed = 3
	original, err := NewSimulator(cfg)
	require.NoError(t, err)
	dt := trace.NewDayTrace()
	original.AttachTrace(dt)
	first := original.Run()

	// WHEN the day is replayed with twice the tellers
	arrivals, window, err := ReplayArrivals(dt)
	require.NoError(t, err)
	replayCfg := cfg
	replayCfg.Tellers = 2
	replayCfg.WindowMinutes = window
	replayed, err := NewSimulatorWithSources(replayCfg,
		arrivals, NewUniformService(cfg.ServiceMin, cfg.ServiceMax))
	require.NoError(t, err)
	second := replayed.Run()

	// THEN the same customers walk in, into a better-staffed branch
	assert.Equal(t, first.TotalArrived, second.TotalArrived)
	assert.Equal(t, second.TotalArrived, second.TotalServed)
	assert.Equal(t, int64(60), window)
}
