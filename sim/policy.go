package sim

import (
	"fmt"
	"strings"
)

// Policy is the selection strategy plugged into the shared discrete-time loop.
// A Policy owns its ready structure, so an instance serves exactly one run;
// obtain a fresh one from NewPolicy (or a constructor) per run.
type Policy interface {
	// Name returns the canonical policy name (one of PolicyNames()).
	Name() string
	// Admit places a newly arrived task into the ready structure.
	Admit(t *Task)
	// Next removes and returns the task to dispatch at clock now, or nil if none is ready.
	Next(now int64) *Task
	// Allotment returns the maximum number of units t may run in this dispatch (> 0).
	// The simulator runs min(Allotment(t), t.Remaining) units.
	Allotment(t *Task) int64
	// Preempt returns an unfinished task to the ready structure after its slice,
	// once arrivals up to now have been admitted.
	Preempt(t *Task, now int64)
	// Ready returns the number of tasks currently waiting in the ready structure.
	Ready() int
}

// inputValidator is implemented by policies with requirements beyond the common field checks.
type inputValidator interface {
	ValidateInput(procs []Process) error
}

// Canonical policy names.
const (
	PolicyFCFS               = "fcfs"
	PolicySJF                = "sjf"
	PolicySRTF               = "srtf"
	PolicyRoundRobin         = "rr"
	PolicyPriority           = "priority"
	PolicyPriorityPreemptive = "priority-preemptive"
	PolicyMLFQ               = "mlfq"
)

// policyOrder lists policies in presentation order.
var policyOrder = []string{
	PolicyFCFS, PolicySJF, PolicySRTF, PolicyRoundRobin,
	PolicyPriority, PolicyPriorityPreemptive, PolicyMLFQ,
}

// ValidPolicies is the set of recognized policy names.
// Shared by IsValidPolicy() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{
	PolicyFCFS: true, PolicySJF: true, PolicySRTF: true, PolicyRoundRobin: true,
	PolicyPriority: true, PolicyPriorityPreemptive: true, PolicyMLFQ: true,
}

// DefaultMLFQQuantums is the per-level allotment used when none is configured.
var DefaultMLFQQuantums = []int64{2, 4, 8}

// DefaultQuantum is the Round Robin quantum used by the CLI when none is configured.
const DefaultQuantum int64 = 4

// PolicyParams carries the policy-specific parameters.
// Quantum is read by Round Robin only; Quantums by MLFQ only (nil = DefaultMLFQQuantums).
type PolicyParams struct {
	Quantum  int64   `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Quantums []int64 `json:"quantums,omitempty" yaml:"quantums,omitempty"`
}

// IsValidPolicy reports whether name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// PolicyNames returns all policy names in presentation order.
func PolicyNames() []string {
	out := make([]string, len(policyOrder))
	copy(out, policyOrder)
	return out
}

// RequiresPriority reports whether the named policy needs every process to carry a priority.
func RequiresPriority(name string) bool {
	return name == PolicyPriority || name == PolicyPriorityPreemptive
}

// NewPolicy creates a Policy by name.
// Returns an error wrapping ErrInvalidParameter for bad quantums, or a plain error for unknown names.
func NewPolicy(name string, params PolicyParams) (Policy, error) {
	if !IsValidPolicy(name) {
		return nil, fmt.Errorf("unknown policy %q; valid: %s", name, strings.Join(policyOrder, ", "))
	}
	switch name {
	case PolicyFCFS:
		return NewFCFS(), nil
	case PolicySJF:
		return NewSJF(), nil
	case PolicySRTF:
		return NewSRTF(), nil
	case PolicyRoundRobin:
		return NewRoundRobin(params.Quantum)
	case PolicyPriority:
		return NewPriorityNonPreemptive(), nil
	case PolicyPriorityPreemptive:
		return NewPriorityPreemptive(), nil
	case PolicyMLFQ:
		return NewMLFQ(params.Quantums)
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
