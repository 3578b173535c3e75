// Implements the ReadyQueue, the FIFO ready structure used by FCFS, Round Robin and each MLFQ level.

package sim

import "strings"

// ReadyQueue is a FIFO queue of tasks waiting for the CPU.
type ReadyQueue struct {
	queue []*Task
}

// Enqueue adds a task to the back of the queue.
func (rq *ReadyQueue) Enqueue(t *Task) {
	if t == nil {
		panic("Enqueue: task must not be nil")
	}
	rq.queue = append(rq.queue, t)
}

// Dequeue removes and returns the task at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	t := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return t
}

// Peek returns the task at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of tasks in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range rq.queue {
		sb.WriteString(t.ID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
