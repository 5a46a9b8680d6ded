package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvColumns is the header row for exported day traces.
var csvColumns = []string{
	"minute", "phase", "arrivals", "completions", "started", "queue_depth", "busy_tellers",
}

// WriteCSV exports the trace as a CSV file with one row per recorded minute.
func WriteCSV(dt *DayTrace, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, m := range dt.Minutes {
		row := []string{
			strconv.FormatInt(m.Minute, 10),
			m.Phase,
			strconv.Itoa(m.Arrivals),
			strconv.Itoa(m.Completions),
			strconv.Itoa(m.Started),
			strconv.Itoa(m.QueueDepth),
			strconv.Itoa(m.BusyTellers),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for minute %d: %w", m.Minute, err)
		}
	}
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing trace CSV: %w", err)
	}
	return nil
}

// ReadCSV loads a day trace previously written by WriteCSV. The header row is
// checked column for column, so a file of the wrong shape fails up front
// rather than producing a half-parsed trace.
func ReadCSV(path string) (*DayTrace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return nil, fmt.Errorf("trace header has %d columns, expected %d", len(header), len(csvColumns))
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return nil, fmt.Errorf("trace header column %d is %q, expected %q", i, header[i], want)
		}
	}

	dt := NewDayTrace()
	rowIdx := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading trace csv at row %d: %w", rowIdx, err)
		}
		rec, err := parseMinuteRow(row, rowIdx)
		if err != nil {
			return nil, err
		}
		dt.Record(rec)
		rowIdx++
	}
	return dt, nil
}

func parseMinuteRow(row []string, idx int) (MinuteRecord, error) {
	var rec MinuteRecord
	minute, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return rec, fmt.Errorf("invalid minute at row %d: %w", idx, err)
	}
	counts := make([]int, 5)
	for i, col := range []int{2, 3, 4, 5, 6} {
		n, err := strconv.Atoi(row[col])
		if err != nil {
			return rec, fmt.Errorf("invalid %s at row %d: %w", csvColumns[col], idx, err)
		}
		counts[i] = n
	}
	rec = MinuteRecord{
		Minute:      minute,
		Phase:       row[1],
		Arrivals:    counts[0],
		Completions: counts[1],
		Started:     counts[2],
		QueueDepth:  counts[3],
		BusyTellers: counts[4],
	}
	return rec, nil
}
