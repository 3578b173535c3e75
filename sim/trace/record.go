// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/ and stores pure data types.
package trace

// AdmissionRecord captures a process entering the ready structure.
type AdmissionRecord struct {
	ProcessID string
	Clock     int64 // clock at which admission was observed (>= arrival)
	Arrival   int64
}

// DispatchRecord captures a single selection decision: which process got the CPU,
// when, for how many units, and from which queue level (0 outside MLFQ).
type DispatchRecord struct {
	ProcessID string
	Clock     int64
	Slice     int64
	Level     int
	Ready     int // tasks still waiting in the ready structure after selection
}

// PreemptRecord captures an unfinished process being returned to the ready structure.
// For MLFQ, ToLevel > FromLevel unless FromLevel is already the last level.
type PreemptRecord struct {
	ProcessID string
	Clock     int64
	Remaining int64
	FromLevel int
	ToLevel   int
}

// CompletionRecord captures a process finishing its burst.
type CompletionRecord struct {
	ProcessID  string
	Clock      int64
	Turnaround int64
	Waiting    int64
}
