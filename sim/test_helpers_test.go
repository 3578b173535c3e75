package sim

import (
	"fmt"
	"math/rand"
)

// proc builds a Process without a priority.
func proc(id string, arrival, burst int64) Process {
	return Process{ID: id, Arrival: arrival, Burst: burst}
}

// prioProc builds a Process with a priority.
func prioProc(id string, arrival, burst, priority int64) Process {
	return Process{ID: id, Arrival: arrival, Burst: burst, Priority: PriorityPtr(priority)}
}

func slot(id string, start, end int64) GanttSlot {
	return GanttSlot{ProcessID: id, Start: start, End: end}
}

// waitingByID indexes waiting times by process ID.
func waitingByID(res *Result) map[string]int64 {
	out := make(map[string]int64, len(res.Processes))
	for _, p := range res.Processes {
		out[p.ID] = p.Waiting
	}
	return out
}

// completionOrder returns the IDs of res.Processes in order.
func completionOrder(res *Result) []string {
	ids := make([]string, len(res.Processes))
	for i, p := range res.Processes {
		ids[i] = p.ID
	}
	return ids
}

// testRandomProcesses mirrors the shape of the workload generator without importing it:
// arrival in [0, maxArrival), burst in [1, maxBurst], priority in [0, 5).
func testRandomProcesses(seed int64, n int, maxArrival, maxBurst int64) []Process {
	rng := rand.New(rand.NewSource(seed))
	procs := make([]Process, n)
	for i := range procs {
		procs[i] = Process{
			ID:       fmt.Sprintf("P%d", i),
			Arrival:  rng.Int63n(maxArrival),
			Burst:    rng.Int63n(maxBurst) + 1,
			Priority: PriorityPtr(rng.Int63n(5)),
		}
	}
	return procs
}

// allPolicyRunners returns one runner per policy with fixed parameters.
func allPolicyRunners() []struct {
	name string
	run  func([]Process, ...Option) (*Result, error)
} {
	return []struct {
		name string
		run  func([]Process, ...Option) (*Result, error)
	}{
		{PolicyFCFS, FCFS},
		{PolicySJF, SJF},
		{PolicySRTF, SRTF},
		{PolicyRoundRobin, func(p []Process, o ...Option) (*Result, error) { return RoundRobin(p, 3, o...) }},
		{PolicyPriority, PriorityNonPreemptive},
		{PolicyPriorityPreemptive, PriorityPreemptive},
		{PolicyMLFQ, func(p []Process, o ...Option) (*Result, error) { return MLFQ(p, nil, o...) }},
	}
}
