package sim

import "fmt"

// GanttRecorder accumulates execution intervals in clock order.
// An interval that continues the previous slot of the same process extends it
// instead of opening a new slot, so consecutive dispatches show as one run.
type GanttRecorder struct {
	slots []GanttSlot
}

// Record appends the interval [start, end) for processID.
// Panics if the interval is empty or starts before the previous one ended;
// the simulator never produces either.
func (g *GanttRecorder) Record(processID string, start, end int64) {
	if end <= start {
		panic(fmt.Sprintf("Record: empty interval [%d, %d) for %s", start, end, processID))
	}
	if n := len(g.slots); n > 0 {
		last := &g.slots[n-1]
		if start < last.End {
			panic(fmt.Sprintf("Record: interval [%d, %d) for %s overlaps [%d, %d) for %s",
				start, end, processID, last.Start, last.End, last.ProcessID))
		}
		if last.ProcessID == processID && last.End == start {
			last.End = end
			return
		}
	}
	g.slots = append(g.slots, GanttSlot{ProcessID: processID, Start: start, End: end})
}

// Len returns the number of slots recorded so far.
func (g *GanttRecorder) Len() int {
	return len(g.slots)
}

// Slots returns a copy of the recorded slots.
func (g *GanttRecorder) Slots() []GanttSlot {
	out := make([]GanttSlot, len(g.slots))
	copy(out, g.slots)
	return out
}

// ContextSwitches counts adjacent slot pairs that belong to different processes.
func (g *GanttRecorder) ContextSwitches() int {
	n := 0
	for i := 1; i < len(g.slots); i++ {
		if g.slots[i].ProcessID != g.slots[i-1].ProcessID {
			n++
		}
	}
	return n
}
