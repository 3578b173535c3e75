// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Simulator is the discrete-time admission/selection loop shared by every policy.
// It holds the clock, the arrival-sorted tasks not yet admitted, and the run's output.
type Simulator struct {
	Clock int64

	policy   Policy
	incoming []*Task // sorted by arrival, stable on input order
	next     int     // index of the next task in incoming to admit

	gantt     GanttRecorder
	completed []ScheduledProcess
	idleTime  int64

	trace *trace.SimulationTrace
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithTrace records every decision of the run into st.
func WithTrace(st *trace.SimulationTrace) Option {
	return func(sim *Simulator) {
		sim.trace = st
	}
}

// NewSimulator builds a simulator over a private copy of procs.
// procs must already be valid (see Run); policy must be fresh.
func NewSimulator(procs []Process, policy Policy, opts ...Option) *Simulator {
	if policy == nil {
		panic("NewSimulator: policy must not be nil")
	}
	clones := cloneProcesses(procs)
	incoming := make([]*Task, len(clones))
	for i, p := range clones {
		incoming[i] = newTask(p, i)
	}
	sort.SliceStable(incoming, func(i, j int) bool {
		return incoming[i].Arrival < incoming[j].Arrival
	})

	sim := &Simulator{
		policy:    policy,
		incoming:  incoming,
		completed: make([]ScheduledProcess, 0, len(incoming)),
	}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

// Run validates procs against the common contract and the policy's own requirements,
// then simulates them to completion. No simulation work happens if validation fails.
func Run(procs []Process, policy Policy, opts ...Option) (*Result, error) {
	if policy == nil {
		return nil, errors.New("policy must not be nil")
	}
	if err := validateProcesses(procs); err != nil {
		return nil, err
	}
	if v, ok := policy.(inputValidator); ok {
		if err := v.ValidateInput(procs); err != nil {
			return nil, err
		}
	}
	return NewSimulator(procs, policy, opts...).Run(), nil
}

// admit moves every task with Arrival <= Clock into the policy's ready structure.
func (sim *Simulator) admit() {
	for sim.next < len(sim.incoming) && sim.incoming[sim.next].Arrival <= sim.Clock {
		t := sim.incoming[sim.next]
		t.State = StateReady
		sim.policy.Admit(t)
		if sim.trace.Enabled() {
			sim.trace.RecordAdmission(trace.AdmissionRecord{ProcessID: t.ID, Clock: sim.Clock, Arrival: t.Arrival})
		}
		logrus.Tracef("[tick %07d] << Arrival: %s", sim.Clock, t.ID)
		sim.next++
	}
}

// Run drives the loop until every task has completed and returns the run's result.
func (sim *Simulator) Run() *Result {
	for sim.next < len(sim.incoming) || sim.policy.Ready() > 0 {
		sim.admit()

		t := sim.policy.Next(sim.Clock)
		if t == nil {
			if sim.next >= len(sim.incoming) {
				panic(fmt.Sprintf("[tick %07d] %s reports %d ready tasks but selected none",
					sim.Clock, sim.policy.Name(), sim.policy.Ready()))
			}
			// CPU idles until the next arrival; admission runs again at that tick.
			nextArrival := sim.incoming[sim.next].Arrival
			logrus.Debugf("[tick %07d] CPU idle until %d", sim.Clock, nextArrival)
			sim.idleTime += nextArrival - sim.Clock
			sim.Clock = nextArrival
			continue
		}
		sim.execute(t)
	}
	logrus.Debugf("[tick %07d] %s finished: %d processes, %d slots", sim.Clock, sim.policy.Name(),
		len(sim.completed), sim.gantt.Len())

	return &Result{
		Policy:          sim.policy.Name(),
		Processes:       sim.completed,
		Gantt:           sim.gantt.Slots(),
		IdleTime:        sim.idleTime,
		ContextSwitches: sim.gantt.ContextSwitches(),
	}
}

// execute runs one dispatch of t, then re-checks arrivals before t is completed or returned
// to the ready structure, so a process arriving exactly at the slice boundary is ahead of it.
func (sim *Simulator) execute(t *Task) {
	allotment := sim.policy.Allotment(t)
	if allotment <= 0 {
		panic(fmt.Sprintf("%s returned non-positive allotment %d for %s", sim.policy.Name(), allotment, t.ID))
	}
	slice := min(allotment, t.Remaining)

	start := sim.Clock
	if t.FirstRun < 0 {
		t.FirstRun = start
	}
	t.LastDispatched = start
	t.State = StateRunning
	if sim.trace.Enabled() {
		sim.trace.RecordDispatch(trace.DispatchRecord{
			ProcessID: t.ID, Clock: start, Slice: slice, Level: t.Level, Ready: sim.policy.Ready(),
		})
	}
	logrus.Debugf("[tick %07d] dispatch %s for %d (remaining %d, level %d)", start, t.ID, slice, t.Remaining, t.Level)

	sim.Clock += slice
	t.Remaining -= slice
	sim.gantt.Record(t.ID, start, sim.Clock)

	sim.admit()

	if t.Remaining == 0 {
		sim.complete(t)
		return
	}
	fromLevel := t.Level
	t.State = StateReady
	sim.policy.Preempt(t, sim.Clock)
	if sim.trace.Enabled() {
		sim.trace.RecordPreemption(trace.PreemptRecord{
			ProcessID: t.ID, Clock: sim.Clock, Remaining: t.Remaining, FromLevel: fromLevel, ToLevel: t.Level,
		})
	}
	logrus.Tracef("[tick %07d] preempt %s (remaining %d, level %d -> %d)", sim.Clock, t.ID, t.Remaining, fromLevel, t.Level)
}

func (sim *Simulator) complete(t *Task) {
	t.State = StateCompleted
	turnaround := sim.Clock - t.Arrival
	sp := ScheduledProcess{
		Process:    t.Process,
		Waiting:    turnaround - t.Burst,
		Turnaround: turnaround,
		Completion: sim.Clock,
		Response:   t.FirstRun - t.Arrival,
	}
	sim.completed = append(sim.completed, sp)
	if sim.trace.Enabled() {
		sim.trace.RecordCompletion(trace.CompletionRecord{
			ProcessID: t.ID, Clock: sim.Clock, Turnaround: sp.Turnaround, Waiting: sp.Waiting,
		})
	}
	logrus.Debugf("[tick %07d] Finished %s: turnaround %d, waiting %d", sim.Clock, t.ID, sp.Turnaround, sp.Waiting)
}
