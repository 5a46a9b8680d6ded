// Package trace provides minute-by-minute recording of a branch simulation.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// MinuteRecord captures the state of the branch at the end of one simulated
// minute, after completions and assignments for that minute were processed.
type MinuteRecord struct {
	Minute      int64
	Phase       string // "running", "draining" or "done"
	Arrivals    int    // customers who walked in this minute
	Completions int    // customers whose service finished this minute
	Started     int    // customers a teller picked up this minute
	QueueDepth  int    // customers left waiting at the minute boundary
	BusyTellers int    // tellers serving at the minute boundary
}
