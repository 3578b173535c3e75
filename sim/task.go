// Defines the Task struct, the per-run working copy of a Process.

package sim

import "fmt"

// TaskState represents the lifecycle state of a task within one run.
type TaskState string

const (
	StatePending   TaskState = "pending" // not yet arrived
	StateReady     TaskState = "ready"
	StateRunning   TaskState = "running"
	StateCompleted TaskState = "completed"
)

// Task is owned exclusively by one simulator run and discarded when the run returns.
type Task struct {
	Process

	State          TaskState
	Remaining      int64 // CPU time left
	Level          int   // MLFQ queue level; starts at 0 and never decreases
	LastDispatched int64 // Clock of the most recent dispatch
	FirstRun       int64 // Clock of the first dispatch, -1 until dispatched

	seq int // index in the caller's input, the final tie-break
}

func newTask(p Process, seq int) *Task {
	return &Task{
		Process:        p,
		State:          StatePending,
		Remaining:      p.Burst,
		LastDispatched: -1,
		FirstRun:       -1,
		seq:            seq,
	}
}

// priority returns the task's priority; callers must have validated its presence.
func (t *Task) priority() int64 {
	return *t.Priority
}

func (t *Task) String() string {
	return fmt.Sprintf("Task: (ID: %s, State: %s, Remaining: %d, Level: %d)", t.ID, t.State, t.Remaining, t.Level)
}
