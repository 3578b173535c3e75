// Package sim provides the discrete-time CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: input Process, output ScheduledProcess / GanttSlot / Result
//   - simulator.go: the admission/selection loop shared by every policy
//   - policy.go: the Policy strategy interface and the NewPolicy factory
//
// # Policies
//
// Each policy owns its ready structure and decides how long a dispatch may run:
//   - scheduler.go: FCFS (FIFO, whole burst), SJF/SRTF and the two priority variants
//     (ordered ready heap; preemptive variants reselect every time unit)
//   - round_robin.go: FIFO with a fixed quantum
//   - mlfq.go: one FIFO per level, strict priority across levels, demotion only
//
// engines.go exposes one entry point per policy (FCFS, SJF, SRTF, RoundRobin,
// PriorityNonPreemptive, PriorityPreemptive, MLFQ). All of them validate the input and
// parameters before any work and never mutate the caller's slice, so the same process
// list may be run by several policies, concurrently if desired.
//
// # Sub-packages
//   - sim/workload/: synthetic workload generation, YAML/CSV workload files
//   - sim/render/: ASCII timeline, schedule and comparison tables, JSON
//   - sim/bench/: wall-clock timing of whole-engine invocations
//   - sim/trace/: decision trace records (dispatch, preemption, completion)
package sim
