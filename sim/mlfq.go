package sim

import "fmt"

// MLFQPolicy is a multilevel feedback queue with one FIFO queue per configured quantum.
//
// Level 0 has the highest priority. New arrivals always enter level 0. The head of the
// lowest-index non-empty queue is dispatched for at most that level's quantum; a task
// that does not finish is demoted one level (capped at the last level) and appended to
// that queue's tail. There is no aging: levels only ever increase, so a task preempted at
// the last level round-robins there until it completes.
type MLFQPolicy struct {
	Quantums []int64
	queues   []ReadyQueue
	ready    int
}

// NewMLFQ creates an MLFQ policy. A nil or empty quantums uses DefaultMLFQQuantums.
// Every quantum must be positive.
func NewMLFQ(quantums []int64) (*MLFQPolicy, error) {
	if len(quantums) == 0 {
		quantums = DefaultMLFQQuantums
	}
	for level, q := range quantums {
		if q <= 0 {
			return nil, fmt.Errorf("%w: mlfq quantum for level %d must be positive, got %d", ErrInvalidParameter, level, q)
		}
	}
	qs := make([]int64, len(quantums))
	copy(qs, quantums)
	return &MLFQPolicy{
		Quantums: qs,
		queues:   make([]ReadyQueue, len(qs)),
	}, nil
}

func (m *MLFQPolicy) Name() string { return PolicyMLFQ }
func (m *MLFQPolicy) Ready() int   { return m.ready }

// Levels returns the number of queue levels.
func (m *MLFQPolicy) Levels() int {
	return len(m.queues)
}

// Admit places a new arrival at the tail of level 0.
func (m *MLFQPolicy) Admit(t *Task) {
	t.Level = 0
	m.push(t)
}

// Next dequeues from the lowest-index non-empty level.
func (m *MLFQPolicy) Next(_ int64) *Task {
	for level := range m.queues {
		if m.queues[level].Len() > 0 {
			m.ready--
			return m.queues[level].Dequeue()
		}
	}
	return nil
}

func (m *MLFQPolicy) Allotment(t *Task) int64 {
	return m.Quantums[t.Level]
}

// Preempt demotes t by one level, capped at the last level.
func (m *MLFQPolicy) Preempt(t *Task, _ int64) {
	t.Level = min(t.Level+1, len(m.queues)-1)
	m.push(t)
}

func (m *MLFQPolicy) push(t *Task) {
	m.queues[t.Level].Enqueue(t)
	m.ready++
}
