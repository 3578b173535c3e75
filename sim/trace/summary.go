package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches  int
	TotalPreemptions int
	Demotions        int            // preemptions that moved a process to a lower level
	MaxLevel         int            // deepest queue level any process was dispatched from
	DispatchCounts   map[string]int // process ID → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchCounts[d.ProcessID]++
		if d.Level > summary.MaxLevel {
			summary.MaxLevel = d.Level
		}
	}

	summary.TotalPreemptions = len(st.Preemptions)
	for _, p := range st.Preemptions {
		if p.ToLevel > p.FromLevel {
			summary.Demotions++
		}
	}

	return summary
}
