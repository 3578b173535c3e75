// Aggregates per-run statistics such as average waiting, turnaround, and response time.

package sim

import "fmt"

// Summary aggregates statistics about a run for final reporting.
type Summary struct {
	Policy          string  `json:"policy"`
	Processes       int     `json:"processes"`
	AvgWaiting      float64 `json:"avg_waiting"`
	AvgTurnaround   float64 `json:"avg_turnaround"`
	AvgResponse     float64 `json:"avg_response"`
	MaxWaiting      int64   `json:"max_waiting"`
	Makespan        int64   `json:"makespan"`        // clock of the last completion
	BusyTime        int64   `json:"busy_time"`       // sum of slot durations
	IdleTime        int64   `json:"idle_time"`       // CPU idle units before the last completion
	Throughput      float64 `json:"throughput"`      // processes per time unit over the makespan
	CPUUtilization  float64 `json:"cpu_utilization"` // BusyTime / Makespan
	ContextSwitches int     `json:"context_switches"`
	WaitingP90      float64 `json:"waiting_p90"`
}

// Summarize computes the Summary of a result. A result with no processes yields zero values.
func Summarize(res *Result) Summary {
	s := Summary{Policy: res.Policy, Processes: len(res.Processes), IdleTime: res.IdleTime,
		ContextSwitches: res.ContextSwitches}
	if len(res.Processes) == 0 {
		return s
	}

	waits := make([]int64, 0, len(res.Processes))
	var turnarounds, responses []int64
	for _, p := range res.Processes {
		waits = append(waits, p.Waiting)
		turnarounds = append(turnarounds, p.Turnaround)
		responses = append(responses, p.Response)
		s.MaxWaiting = max(s.MaxWaiting, p.Waiting)
		s.Makespan = max(s.Makespan, p.Completion)
	}
	for _, g := range res.Gantt {
		s.BusyTime += g.Duration()
	}

	s.AvgWaiting = CalculateMean(waits)
	s.AvgTurnaround = CalculateMean(turnarounds)
	s.AvgResponse = CalculateMean(responses)
	s.WaitingP90 = CalculatePercentile(waits, 90)
	if s.Makespan > 0 {
		s.Throughput = float64(s.Processes) / float64(s.Makespan)
		s.CPUUtilization = float64(s.BusyTime) / float64(s.Makespan)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: avg waiting %.2f, avg turnaround %.2f, avg response %.2f, throughput %.3f/t",
		s.Policy, s.AvgWaiting, s.AvgTurnaround, s.AvgResponse, s.Throughput)
}
