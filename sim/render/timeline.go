// Package render formats scheduling results for terminals and files: the two-line ASCII
// Gantt timeline, tablewriter schedule and comparison tables, and indented JSON.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// IdleLabel marks intervals during which no process held the CPU.
const IdleLabel = "idle"

// Timeline renders slots as two lines: process cells and the time at each cell boundary,
// right-aligned under the cell it closes. Gaps between slots render as IdleLabel cells.
//
//	| P0 | P1 |
//	0    5    8
func Timeline(slots []sim.GanttSlot) string {
	if len(slots) == 0 {
		return ""
	}
	var cells, times strings.Builder
	times.WriteString("0")
	var clock int64
	cell := func(label string, end int64) {
		fmt.Fprintf(&cells, "| %s ", label)
		mark := strconv.FormatInt(end, 10)
		pad := cells.Len() - times.Len() - len(mark)
		times.WriteString(strings.Repeat(" ", max(pad, 1)))
		times.WriteString(mark)
	}
	for _, s := range slots {
		if s.Start > clock {
			cell(IdleLabel, s.Start)
		}
		cell(s.ProcessID, s.End)
		clock = s.End
	}
	cells.WriteString("|")
	return cells.String() + "\n" + times.String()
}

// WriteTimeline writes the timeline of slots followed by a newline.
func WriteTimeline(w io.Writer, slots []sim.GanttSlot) error {
	if len(slots) == 0 {
		_, err := fmt.Fprintln(w, "(empty schedule)")
		return err
	}
	_, err := fmt.Fprintln(w, Timeline(slots))
	return err
}
