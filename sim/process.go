// Defines the input and output records of a scheduling run.

package sim

import "fmt"

// Process is one unit of work submitted to a scheduling policy.
// It is created by the caller and never mutated by the simulator.
type Process struct {
	ID      string `json:"id" yaml:"id"`           // Unique identifier
	Arrival int64  `json:"arrival" yaml:"arrival"` // Time unit at which the process becomes ready (>= 0)
	Burst   int64  `json:"burst" yaml:"burst"`     // Total CPU time required (> 0)
	// Priority is optional. Lower value = higher priority.
	// Required by the priority policies only.
	Priority *int64 `json:"priority,omitempty" yaml:"priority,omitempty"`
}

func (p Process) String() string {
	if p.Priority == nil {
		return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d)", p.ID, p.Arrival, p.Burst)
	}
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d, Priority: %d)", p.ID, p.Arrival, p.Burst, *p.Priority)
}

// PriorityPtr returns a pointer to v, for building Process literals.
func PriorityPtr(v int64) *int64 {
	return &v
}

// ScheduledProcess is the per-process outcome of a run. Exactly one is emitted per input process.
type ScheduledProcess struct {
	Process
	Waiting    int64 `json:"waiting" yaml:"waiting"`       // Turnaround - Burst
	Turnaround int64 `json:"turnaround" yaml:"turnaround"` // Completion - Arrival
	Completion int64 `json:"completion" yaml:"completion"` // Clock value when the last unit finished
	Response   int64 `json:"response" yaml:"response"`     // First dispatch - Arrival
}

// GanttSlot records which process held the CPU during [Start, End).
type GanttSlot struct {
	ProcessID string `json:"process_id" yaml:"process_id"`
	Start     int64  `json:"start" yaml:"start"`
	End       int64  `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (g GanttSlot) Duration() int64 {
	return g.End - g.Start
}

// Result is the complete output of one policy run.
type Result struct {
	Policy          string             `json:"policy"`
	Processes       []ScheduledProcess `json:"processes"` // completion order
	Gantt           []GanttSlot        `json:"gantt"`     // sorted by Start, coalesced
	IdleTime        int64              `json:"idle_time"` // CPU idle units before the last completion
	ContextSwitches int                `json:"context_switches"`
}

// clone deep-copies the input so the caller's slice (and priority pointers) are never aliased.
func cloneProcesses(procs []Process) []Process {
	out := make([]Process, len(procs))
	for i, p := range procs {
		out[i] = p
		if p.Priority != nil {
			out[i].Priority = PriorityPtr(*p.Priority)
		}
	}
	return out
}
