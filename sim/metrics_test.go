package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_RoundRobinExample(t *testing.T) {
	// GIVEN the RR(4) run of P0 (burst 5) and P1 (burst 3) at time 0
	res, err := RoundRobin([]Process{proc("P0", 0, 5), proc("P1", 0, 3)}, 4)
	require.NoError(t, err)

	// WHEN it is summarized
	s := Summarize(res)

	// THEN averages and utilization follow from waiting 3/4, turnaround 8/7
	assert.Equal(t, PolicyRoundRobin, s.Policy)
	assert.Equal(t, 2, s.Processes)
	assert.InDelta(t, 3.5, s.AvgWaiting, 1e-9)
	assert.InDelta(t, 7.5, s.AvgTurnaround, 1e-9)
	assert.InDelta(t, 2.0, s.AvgResponse, 1e-9)
	assert.Equal(t, int64(4), s.MaxWaiting)
	assert.Equal(t, int64(8), s.Makespan)
	assert.Equal(t, int64(8), s.BusyTime)
	assert.InDelta(t, 1.0, s.CPUUtilization, 1e-9)
	assert.InDelta(t, 0.25, s.Throughput, 1e-9)
	assert.Equal(t, 2, s.ContextSwitches)
	assert.InDelta(t, 3.9, s.WaitingP90, 1e-9)
}

func TestSummarize_IdleLowersUtilization(t *testing.T) {
	res, err := FCFS([]Process{proc("A", 2, 3), proc("B", 10, 1)})
	require.NoError(t, err)

	s := Summarize(res)

	assert.Equal(t, int64(11), s.Makespan)
	assert.Equal(t, int64(4), s.BusyTime)
	assert.Equal(t, int64(7), s.IdleTime)
	assert.InDelta(t, 4.0/11.0, s.CPUUtilization, 1e-9)
}

func TestSummarize_EmptyResult_ZeroValues(t *testing.T) {
	s := Summarize(&Result{Policy: PolicyFCFS})
	assert.Equal(t, Summary{Policy: PolicyFCFS}, s)
	assert.Contains(t, s.String(), "fcfs")
}
