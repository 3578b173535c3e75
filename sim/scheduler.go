package sim

// FCFSPolicy dispatches tasks in admission order, each for its whole burst.
// Admission order is arrival order, stable on input order for equal arrivals.
type FCFSPolicy struct {
	ready ReadyQueue
}

// NewFCFS creates a first-come-first-served policy.
func NewFCFS() *FCFSPolicy {
	return &FCFSPolicy{}
}

func (f *FCFSPolicy) Name() string            { return PolicyFCFS }
func (f *FCFSPolicy) Admit(t *Task)           { f.ready.Enqueue(t) }
func (f *FCFSPolicy) Next(_ int64) *Task      { return f.ready.Dequeue() }
func (f *FCFSPolicy) Allotment(t *Task) int64 { return t.Remaining }
func (f *FCFSPolicy) Ready() int              { return f.ready.Len() }

// Preempt is never reached: every dispatch runs the whole burst.
func (f *FCFSPolicy) Preempt(t *Task, _ int64) { f.ready.Enqueue(t) }

// orderedPolicy dispatches the minimum ready task under an ordering.
// Non-preemptive variants run the whole burst; preemptive variants run one unit
// and put the task back, so every unit is a fresh selection among all ready tasks.
type orderedPolicy struct {
	name       string
	ready      *ReadyHeap
	preemptive bool
}

func (o *orderedPolicy) Name() string       { return o.name }
func (o *orderedPolicy) Admit(t *Task)      { o.ready.Push(t) }
func (o *orderedPolicy) Next(_ int64) *Task { return o.ready.Pop() }
func (o *orderedPolicy) Ready() int         { return o.ready.Len() }

func (o *orderedPolicy) Allotment(t *Task) int64 {
	if o.preemptive {
		return 1
	}
	return t.Remaining
}

func (o *orderedPolicy) Preempt(t *Task, _ int64) {
	o.ready.Push(t)
}

// ShortestJobPolicy implements SJF (non-preemptive, minimum burst) and
// SRTF (preemptive, minimum remaining time).
// Ties go to the earlier arrival, then to the earlier input position.
// Warning: both variants can starve long jobs under a steady stream of short ones.
type ShortestJobPolicy struct {
	orderedPolicy
}

// NewSJF creates a non-preemptive shortest-job-first policy.
func NewSJF() *ShortestJobPolicy {
	return &ShortestJobPolicy{orderedPolicy{name: PolicySJF, ready: NewReadyHeap(byBurst)}}
}

// NewSRTF creates a preemptive shortest-remaining-time-first policy.
func NewSRTF() *ShortestJobPolicy {
	return &ShortestJobPolicy{orderedPolicy{name: PolicySRTF, ready: NewReadyHeap(byRemaining), preemptive: true}}
}

// PriorityPolicy dispatches the ready task with the lowest priority value.
// Ties go to the earlier arrival, then to the earlier input position.
// Every process must carry a priority.
type PriorityPolicy struct {
	orderedPolicy
}

// NewPriorityNonPreemptive creates a priority policy that runs each dispatch to completion.
func NewPriorityNonPreemptive() *PriorityPolicy {
	return &PriorityPolicy{orderedPolicy{name: PolicyPriority, ready: NewReadyHeap(byPriority)}}
}

// NewPriorityPreemptive creates a priority policy that reselects every time unit,
// so a newly arrived higher-priority process takes the CPU at the next unit.
func NewPriorityPreemptive() *PriorityPolicy {
	return &PriorityPolicy{orderedPolicy{name: PolicyPriorityPreemptive, ready: NewReadyHeap(byPriority), preemptive: true}}
}

// ValidateInput requires a priority on every process.
func (p *PriorityPolicy) ValidateInput(procs []Process) error {
	return requirePriority(procs)
}
