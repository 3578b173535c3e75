package sim

import "container/heap"

// lessFunc orders two ready tasks; the task for which it returns true is dispatched first.
type lessFunc func(a, b *Task) bool

// taskHeap implements heap.Interface over ready tasks.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type taskHeap struct {
	tasks []*Task
	less  lessFunc
}

func (h taskHeap) Len() int           { return len(h.tasks) }
func (h taskHeap) Less(i, j int) bool { return h.less(h.tasks[i], h.tasks[j]) }
func (h taskHeap) Swap(i, j int)      { h.tasks[i], h.tasks[j] = h.tasks[j], h.tasks[i] }

func (h *taskHeap) Push(x any) {
	h.tasks = append(h.tasks, x.(*Task))
}

func (h *taskHeap) Pop() any {
	old := h.tasks
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.tasks = old[0 : n-1]
	return item
}

// ReadyHeap is a ready set that always yields its minimum task under an ordering.
// The ordering must be total (end with the admission sequence) so that
// dispatch is deterministic regardless of heap layout.
type ReadyHeap struct {
	h taskHeap
}

// NewReadyHeap creates an empty ReadyHeap ordered by less.
func NewReadyHeap(less lessFunc) *ReadyHeap {
	if less == nil {
		panic("NewReadyHeap: less must not be nil")
	}
	return &ReadyHeap{h: taskHeap{less: less}}
}

// Push adds a task to the ready set.
func (r *ReadyHeap) Push(t *Task) {
	heap.Push(&r.h, t)
}

// Pop removes and returns the minimum task, or nil if the set is empty.
func (r *ReadyHeap) Pop() *Task {
	if r.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&r.h).(*Task)
}

// Len returns the number of ready tasks.
func (r *ReadyHeap) Len() int {
	return r.h.Len()
}

// byArrivalThenSeq breaks ties on earlier arrival, then on original input order.
func byArrivalThenSeq(a, b *Task) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.seq < b.seq
}

func byBurst(a, b *Task) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	return byArrivalThenSeq(a, b)
}

func byRemaining(a, b *Task) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return byArrivalThenSeq(a, b)
}

func byPriority(a, b *Task) bool {
	if a.priority() != b.priority() {
		return a.priority() < b.priority()
	}
	return byArrivalThenSeq(a, b)
}
