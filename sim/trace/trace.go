package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures dispatch, preemption and completion decisions.
	TraceLevelDecisions TraceLevel = "decisions"
	// TraceLevelAll additionally captures every admission.
	TraceLevelAll TraceLevel = "all"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	TraceLevelAll:       true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during one policy run.
type SimulationTrace struct {
	Config      TraceConfig
	Admissions  []AdmissionRecord
	Dispatches  []DispatchRecord
	Preemptions []PreemptRecord
	Completions []CompletionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Admissions:  make([]AdmissionRecord, 0),
		Dispatches:  make([]DispatchRecord, 0),
		Preemptions: make([]PreemptRecord, 0),
		Completions: make([]CompletionRecord, 0),
	}
}

// Enabled reports whether decisions should be recorded at all.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level != TraceLevelNone && st.Config.Level != ""
}

// RecordAdmission appends an admission record. Only kept at TraceLevelAll.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	if st.Config.Level != TraceLevelAll {
		return
	}
	st.Admissions = append(st.Admissions, record)
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptRecord) {
	st.Preemptions = append(st.Preemptions, record)
}

// RecordCompletion appends a completion record.
func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	st.Completions = append(st.Completions, record)
}

// LevelHistory returns the sequence of queue levels each process was dispatched from,
// in dispatch order.
func (st *SimulationTrace) LevelHistory() map[string][]int {
	history := make(map[string][]int)
	for _, d := range st.Dispatches {
		history[d.ProcessID] = append(history[d.ProcessID], d.Level)
	}
	return history
}
