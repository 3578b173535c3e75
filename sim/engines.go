package sim

// Entry points, one per policy. Each validates its parameters and input before any
// simulation work, runs on a private copy of procs, and returns processes in completion
// order with coalesced Gantt slots.

// FCFS runs first-come-first-served.
func FCFS(procs []Process, opts ...Option) (*Result, error) {
	return Run(procs, NewFCFS(), opts...)
}

// SJF runs non-preemptive shortest-job-first.
func SJF(procs []Process, opts ...Option) (*Result, error) {
	return Run(procs, NewSJF(), opts...)
}

// SRTF runs preemptive shortest-remaining-time-first.
func SRTF(procs []Process, opts ...Option) (*Result, error) {
	return Run(procs, NewSRTF(), opts...)
}

// RoundRobin runs Round Robin with the given quantum (must be > 0).
func RoundRobin(procs []Process, quantum int64, opts ...Option) (*Result, error) {
	policy, err := NewRoundRobin(quantum)
	if err != nil {
		return nil, err
	}
	return Run(procs, policy, opts...)
}

// PriorityNonPreemptive runs non-preemptive priority scheduling. Every process needs a priority.
func PriorityNonPreemptive(procs []Process, opts ...Option) (*Result, error) {
	return Run(procs, NewPriorityNonPreemptive(), opts...)
}

// PriorityPreemptive runs preemptive priority scheduling. Every process needs a priority.
func PriorityPreemptive(procs []Process, opts ...Option) (*Result, error) {
	return Run(procs, NewPriorityPreemptive(), opts...)
}

// MLFQ runs a multilevel feedback queue. A nil quantums uses DefaultMLFQQuantums.
func MLFQ(procs []Process, quantums []int64, opts ...Option) (*Result, error) {
	policy, err := NewMLFQ(quantums)
	if err != nil {
		return nil, err
	}
	return Run(procs, policy, opts...)
}

// RunNamed creates the named policy with params and runs it over procs.
func RunNamed(name string, procs []Process, params PolicyParams, opts ...Option) (*Result, error) {
	policy, err := NewPolicy(name, params)
	if err != nil {
		return nil, err
	}
	return Run(procs, policy, opts...)
}
