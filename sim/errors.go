package sim

import (
	"errors"
	"fmt"
	"math"
)

// Error categories returned by the engines. All are raised before any simulation work.
var (
	// ErrInvalidParameter reports a non-positive quantum or an empty MLFQ quantum list.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMissingField reports a process without a priority submitted to a priority policy.
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedInput reports a negative arrival, non-positive burst, empty/duplicate id, or a
	// workload whose last completion would not fit in an int64 clock.
	ErrMalformedInput = errors.New("malformed input")
)

// ProcessError identifies the process that made the input unacceptable.
type ProcessError struct {
	ProcessID string
	Field     string
	Err       error // one of the sentinel categories above
	Reason    string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%v: process %q: %s %s", e.Err, e.ProcessID, e.Field, e.Reason)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// validateProcesses checks the fields every policy relies on. No schedule ends later than
// the latest arrival plus the total burst, so bounding that sum keeps the clock from wrapping.
func validateProcesses(procs []Process) error {
	seen := make(map[string]bool, len(procs))
	var maxArrival, totalBurst int64
	for _, p := range procs {
		if p.ID == "" {
			return &ProcessError{Field: "id", Err: ErrMalformedInput, Reason: "must not be empty"}
		}
		if seen[p.ID] {
			return &ProcessError{ProcessID: p.ID, Field: "id", Err: ErrMalformedInput, Reason: "is duplicated"}
		}
		seen[p.ID] = true
		if p.Arrival < 0 {
			return &ProcessError{ProcessID: p.ID, Field: "arrival", Err: ErrMalformedInput,
				Reason: fmt.Sprintf("must be non-negative, got %d", p.Arrival)}
		}
		if p.Burst <= 0 {
			return &ProcessError{ProcessID: p.ID, Field: "burst", Err: ErrMalformedInput,
				Reason: fmt.Sprintf("must be positive, got %d", p.Burst)}
		}
		maxArrival = max(maxArrival, p.Arrival)
		if p.Burst > math.MaxInt64-totalBurst || totalBurst+p.Burst > math.MaxInt64-maxArrival {
			return &ProcessError{ProcessID: p.ID, Field: "burst", Err: ErrMalformedInput,
				Reason: fmt.Sprintf("pushes the schedule end past %d", int64(math.MaxInt64))}
		}
		totalBurst += p.Burst
	}
	return nil
}

// requirePriority fails on the first process without a priority.
func requirePriority(procs []Process) error {
	for _, p := range procs {
		if p.Priority == nil {
			return &ProcessError{ProcessID: p.ID, Field: "priority", Err: ErrMissingField, Reason: "is required"}
		}
	}
	return nil
}
