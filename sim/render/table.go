package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
)

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteSchedule writes a titled report of one run: the Gantt timeline and a per-process
// table in completion order, with the run's averages in the footer.
func WriteSchedule(w io.Writer, res *sim.Result, summary sim.Summary) error {
	writeTitle(w, res.Policy)
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if err := WriteTimeline(w, res.Gantt); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	rows := make([][]string, 0, len(res.Processes))
	for _, p := range res.Processes {
		prio := "-"
		if p.Priority != nil {
			prio = strconv.FormatInt(*p.Priority, 10)
		}
		rows = append(rows, []string{
			p.ID, prio,
			strconv.FormatInt(p.Burst, 10),
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Waiting, 10),
			strconv.FormatInt(p.Turnaround, 10),
			strconv.FormatInt(p.Response, 10),
			strconv.FormatInt(p.Completion, 10),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", summary.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", summary.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", summary.AvgResponse),
		fmt.Sprintf("Throughput\n%.2f/t", summary.Throughput)})
	table.Render()
	return nil
}

// WriteComparison writes one row per summary, in the given order.
func WriteComparison(w io.Writer, summaries []sim.Summary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response",
		"P90 Wait", "Makespan", "Utilization", "Throughput", "Switches"})
	for _, s := range summaries {
		table.Append([]string{
			s.Policy,
			fmt.Sprintf("%.2f", s.AvgWaiting),
			fmt.Sprintf("%.2f", s.AvgTurnaround),
			fmt.Sprintf("%.2f", s.AvgResponse),
			fmt.Sprintf("%.2f", s.WaitingP90),
			strconv.FormatInt(s.Makespan, 10),
			fmt.Sprintf("%.1f%%", s.CPUUtilization*100),
			fmt.Sprintf("%.3f/t", s.Throughput),
			strconv.Itoa(s.ContextSwitches),
		})
	}
	table.Render()
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
