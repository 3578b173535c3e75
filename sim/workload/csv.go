package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// CSV rows are id,burst,arrival[,priority], the column order of the classic
// scheduling assignment files. A leading header row is skipped.

// ReadCSV parses a process list from CSV.
func ReadCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	procs := make([]sim.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("csv line %d: expected 3 or 4 fields (id,burst,arrival[,priority]), got %d", i+1, len(row))
		}
		if i == 0 && isHeader(row) {
			logrus.Warnf("csv line 1 looks like a header %v; skipping", row)
			continue
		}
		p := sim.Process{ID: strings.TrimSpace(row[0])}
		if p.Burst, err = parseField(row[1], "burst", i); err != nil {
			return nil, err
		}
		if p.Arrival, err = parseField(row[2], "arrival", i); err != nil {
			return nil, err
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			prio, err := parseField(row[3], "priority", i)
			if err != nil {
				return nil, err
			}
			p.Priority = sim.PriorityPtr(prio)
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// WriteCSV writes procs as id,burst,arrival[,priority] rows with no header.
func WriteCSV(w io.Writer, procs []sim.Process) error {
	cw := csv.NewWriter(w)
	for _, p := range procs {
		row := []string{p.ID, strconv.FormatInt(p.Burst, 10), strconv.FormatInt(p.Arrival, 10)}
		if p.Priority != nil {
			row = append(row, strconv.FormatInt(*p.Priority, 10))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func isHeader(row []string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	return err != nil
}

func parseField(s, field string, line int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("csv line %d: %s: %w", line+1, field, err)
	}
	return v, nil
}
