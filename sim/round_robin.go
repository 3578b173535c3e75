package sim

import "fmt"

// RoundRobinPolicy dispatches the head of a FIFO queue for at most Quantum units.
// A preempted task re-enters at the tail only after the tasks that arrived during
// its slice, which the simulator admits before calling Preempt.
type RoundRobinPolicy struct {
	Quantum int64
	ready   ReadyQueue
}

// NewRoundRobin creates a Round Robin policy. quantum must be positive.
func NewRoundRobin(quantum int64) (*RoundRobinPolicy, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: round robin quantum must be positive, got %d", ErrInvalidParameter, quantum)
	}
	return &RoundRobinPolicy{Quantum: quantum}, nil
}

func (r *RoundRobinPolicy) Name() string            { return PolicyRoundRobin }
func (r *RoundRobinPolicy) Admit(t *Task)           { r.ready.Enqueue(t) }
func (r *RoundRobinPolicy) Next(_ int64) *Task      { return r.ready.Dequeue() }
func (r *RoundRobinPolicy) Allotment(_ *Task) int64 { return r.Quantum }
func (r *RoundRobinPolicy) Ready() int              { return r.ready.Len() }

func (r *RoundRobinPolicy) Preempt(t *Task, _ int64) {
	r.ready.Enqueue(t)
}
