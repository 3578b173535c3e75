package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDispatches != 0 || summary.TotalPreemptions != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if summary.Demotions != 0 || summary.MaxLevel != 0 {
		t.Errorf("expected zero demotions and level, got %+v", summary)
	}
	if len(summary.DispatchCounts) != 0 {
		t.Error("expected empty dispatch counts")
	}
}

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalDispatches != 0 || summary.DispatchCounts == nil {
		t.Errorf("expected zero summary with non-nil map, got %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CountsDemotions(t *testing.T) {
	// GIVEN a trace with two demotions and one preemption at the last level
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordDispatch(DispatchRecord{ProcessID: "A", Clock: 0, Slice: 2, Level: 0})
	st.RecordPreemption(PreemptRecord{ProcessID: "A", Clock: 2, Remaining: 10, FromLevel: 0, ToLevel: 1})
	st.RecordDispatch(DispatchRecord{ProcessID: "A", Clock: 2, Slice: 4, Level: 1})
	st.RecordPreemption(PreemptRecord{ProcessID: "A", Clock: 6, Remaining: 6, FromLevel: 1, ToLevel: 2})
	st.RecordDispatch(DispatchRecord{ProcessID: "A", Clock: 6, Slice: 4, Level: 2})
	st.RecordPreemption(PreemptRecord{ProcessID: "A", Clock: 10, Remaining: 2, FromLevel: 2, ToLevel: 2})
	st.RecordDispatch(DispatchRecord{ProcessID: "A", Clock: 10, Slice: 2, Level: 2})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalDispatches != 4 {
		t.Errorf("expected 4 dispatches, got %d", summary.TotalDispatches)
	}
	if summary.TotalPreemptions != 3 {
		t.Errorf("expected 3 preemptions, got %d", summary.TotalPreemptions)
	}
	if summary.Demotions != 2 {
		t.Errorf("expected 2 demotions, got %d", summary.Demotions)
	}
	if summary.MaxLevel != 2 {
		t.Errorf("expected max level 2, got %d", summary.MaxLevel)
	}
	if summary.DispatchCounts["A"] != 4 {
		t.Errorf("expected 4 dispatches of A, got %d", summary.DispatchCounts["A"])
	}
}
