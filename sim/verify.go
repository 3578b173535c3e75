package sim

import (
	"errors"
	"fmt"
)

// ErrInvariant reports a result that violates a scheduling invariant.
var ErrInvariant = errors.New("invariant violated")

// Verify checks res against the input it was produced from:
//   - one ScheduledProcess per input process, no duplicates, none missing
//   - turnaround = completion - arrival >= burst, waiting = turnaround - burst >= 0
//   - Gantt slots non-empty, sorted, non-overlapping, maximally coalesced
//   - per process, slot time equals its burst and its last slot ends at its completion
func Verify(input []Process, res *Result) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrInvariant)
	}
	if len(res.Processes) != len(input) {
		return fmt.Errorf("%w: %d scheduled processes for %d inputs", ErrInvariant, len(res.Processes), len(input))
	}

	want := make(map[string]Process, len(input))
	for _, p := range input {
		want[p.ID] = p
	}
	completion := make(map[string]int64, len(res.Processes))
	for _, sp := range res.Processes {
		in, ok := want[sp.ID]
		if !ok {
			return fmt.Errorf("%w: unexpected process %q in result", ErrInvariant, sp.ID)
		}
		if _, dup := completion[sp.ID]; dup {
			return fmt.Errorf("%w: process %q completed twice", ErrInvariant, sp.ID)
		}
		completion[sp.ID] = sp.Completion
		if sp.Arrival != in.Arrival || sp.Burst != in.Burst {
			return fmt.Errorf("%w: process %q input fields changed", ErrInvariant, sp.ID)
		}
		if sp.Turnaround != sp.Completion-sp.Arrival {
			return fmt.Errorf("%w: process %q turnaround %d != completion %d - arrival %d",
				ErrInvariant, sp.ID, sp.Turnaround, sp.Completion, sp.Arrival)
		}
		if sp.Waiting != sp.Turnaround-sp.Burst {
			return fmt.Errorf("%w: process %q waiting %d != turnaround %d - burst %d",
				ErrInvariant, sp.ID, sp.Waiting, sp.Turnaround, sp.Burst)
		}
		if sp.Waiting < 0 || sp.Turnaround < sp.Burst {
			return fmt.Errorf("%w: process %q has waiting %d, turnaround %d", ErrInvariant, sp.ID, sp.Waiting, sp.Turnaround)
		}
		if sp.Response < 0 || sp.Response > sp.Waiting {
			return fmt.Errorf("%w: process %q response %d outside [0, waiting %d]", ErrInvariant, sp.ID, sp.Response, sp.Waiting)
		}
	}

	ran := make(map[string]int64, len(input))
	lastEnd := make(map[string]int64, len(input))
	for i, g := range res.Gantt {
		if g.End <= g.Start {
			return fmt.Errorf("%w: slot %d [%d, %d) is empty", ErrInvariant, i, g.Start, g.End)
		}
		if i > 0 {
			prev := res.Gantt[i-1]
			if g.Start < prev.End {
				return fmt.Errorf("%w: slot %d starts at %d before previous end %d", ErrInvariant, i, g.Start, prev.End)
			}
			if g.ProcessID == prev.ProcessID {
				return fmt.Errorf("%w: slots %d and %d both belong to %q", ErrInvariant, i-1, i, g.ProcessID)
			}
		}
		if _, ok := want[g.ProcessID]; !ok {
			return fmt.Errorf("%w: slot %d belongs to unknown process %q", ErrInvariant, i, g.ProcessID)
		}
		if g.Start < want[g.ProcessID].Arrival {
			return fmt.Errorf("%w: %q runs at %d before arriving at %d", ErrInvariant, g.ProcessID, g.Start, want[g.ProcessID].Arrival)
		}
		ran[g.ProcessID] += g.Duration()
		lastEnd[g.ProcessID] = g.End
	}
	for id, p := range want {
		if ran[id] != p.Burst {
			return fmt.Errorf("%w: process %q ran %d units, burst is %d", ErrInvariant, id, ran[id], p.Burst)
		}
		if lastEnd[id] != completion[id] {
			return fmt.Errorf("%w: process %q last slot ends at %d, completion is %d", ErrInvariant, id, lastEnd[id], completion[id])
		}
	}
	return nil
}
