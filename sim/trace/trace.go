package trace

// DayTrace collects per-minute records over a full simulation run, in minute
// order.
type DayTrace struct {
	Minutes []MinuteRecord
}

// NewDayTrace creates a DayTrace ready for recording.
func NewDayTrace() *DayTrace {
	return &DayTrace{Minutes: make([]MinuteRecord, 0)}
}

// Record appends one minute record.
func (dt *DayTrace) Record(rec MinuteRecord) {
	dt.Minutes = append(dt.Minutes, rec)
}

// Len returns the number of recorded minutes.
func (dt *DayTrace) Len() int {
	return len(dt.Minutes)
}
