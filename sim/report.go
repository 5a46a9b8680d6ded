package sim

// Report is the end-of-run summary assembled once a simulation reaches the
// done phase. Pure data, JSON-exportable; the cmd layer owns human-readable
// rendering.
type Report struct {
	Lambda        float64 `json:"lambda"`
	Tellers       int     `json:"tellers"`
	WindowMinutes int64   `json:"window_minutes"`
	// TotalMinutes covers the arrival window plus the drain that finished
	// serving customers still inside at closing time.
	TotalMinutes int64 `json:"total_minutes"`

	TotalArrived int64 `json:"total_arrived"`
	TotalServed  int64 `json:"total_served"`

	// PeakQueueDepth is the largest number of customers waiting in line at
	// any minute boundary.
	PeakQueueDepth int `json:"peak_queue_depth"`
	// TellerUtilization is the fraction of teller-minutes spent serving,
	// over the full run including drain. In [0, 1].
	TellerUtilization float64 `json:"teller_utilization"`

	// Waits is nil when no customer finished service, which is a distinct
	// outcome from everyone being served instantly.
	Waits *WaitStats `json:"waits,omitempty"`
}

// ServedAnyone reports whether at least one customer completed service.
func (r *Report) ServedAnyone() bool {
	return r.Waits != nil
}

// DrainMinutes returns how long the branch ran past closing time to finish
// the customers already inside.
func (r *Report) DrainMinutes() int64 {
	return r.TotalMinutes - r.WindowMinutes
}
