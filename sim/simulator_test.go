package sim

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim/trace"
)

func TestRun_IdleGap_JumpsToNextArrival(t *testing.T) {
	// GIVEN a gap between A's completion (5) and B's arrival (10)
	procs := []Process{proc("A", 2, 3), proc("B", 10, 1)}

	// WHEN FCFS runs
	res, err := FCFS(procs)
	require.NoError(t, err)

	// THEN no slot covers the idle intervals and idle time counts them
	assert.Equal(t, []GanttSlot{slot("A", 2, 5), slot("B", 10, 11)}, res.Gantt)
	assert.Equal(t, int64(7), res.IdleTime)
	assert.Equal(t, 1, res.ContextSwitches)
}

func TestRun_UnsortedInput_IsOrderedByArrival(t *testing.T) {
	procs := []Process{proc("late", 5, 1), proc("early", 0, 2)}

	res, err := FCFS(procs)
	require.NoError(t, err)

	assert.Equal(t, []string{"early", "late"}, completionOrder(res))
	assert.Equal(t, int64(3), res.IdleTime)
}

func TestRun_EmptyInput_EmptyResult(t *testing.T) {
	for _, r := range allPolicyRunners() {
		res, err := r.run(nil)
		require.NoError(t, err, r.name)
		assert.Empty(t, res.Processes, r.name)
		assert.Empty(t, res.Gantt, r.name)
		assert.Equal(t, r.name, res.Policy)
	}
}

func TestRun_MalformedInput_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		procs []Process
		field string
	}{
		{"zero burst", []Process{proc("A", 0, 0)}, "burst"},
		{"negative burst", []Process{proc("A", 0, -2)}, "burst"},
		{"negative arrival", []Process{proc("A", -1, 2)}, "arrival"},
		{"empty id", []Process{proc("", 0, 2)}, "id"},
		{"duplicate id", []Process{proc("A", 0, 2), proc("A", 1, 2)}, "id"},
		{"clock overflow", []Process{proc("P0", math.MaxInt64-1, 5)}, "burst"},
		{"burst sum overflow", []Process{proc("A", 0, math.MaxInt64), proc("B", 0, 1)}, "burst"},
		{"late arrival overflow", []Process{proc("A", 0, 10), proc("B", math.MaxInt64-10, 1)}, "burst"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, r := range allPolicyRunners() {
				res, err := r.run(tc.procs)
				require.ErrorIs(t, err, ErrMalformedInput, r.name)
				var perr *ProcessError
				require.ErrorAs(t, err, &perr, r.name)
				assert.Equal(t, tc.field, perr.Field, r.name)
				assert.Nil(t, res, r.name)
			}
		})
	}
}

func TestRun_ScheduleEndingAtMaxClock_Accepted(t *testing.T) {
	// GIVEN a workload whose last completion lands exactly on the largest clock value
	procs := []Process{proc("A", math.MaxInt64-5, 5)}

	// WHEN scheduled FCFS
	res, err := FCFS(procs)

	// THEN it runs without wrapping
	require.NoError(t, err)
	assert.Equal(t, []GanttSlot{slot("A", math.MaxInt64-5, math.MaxInt64)}, res.Gantt)
	assert.Equal(t, int64(math.MaxInt64-5), res.IdleTime)
	assert.NoError(t, Verify(procs, res))
}

func TestRun_NilPolicy_ReturnsError(t *testing.T) {
	_, err := Run([]Process{proc("A", 0, 1)}, nil)
	assert.Error(t, err)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	// GIVEN an input list with priorities
	procs := []Process{prioProc("B", 3, 4, 1), prioProc("A", 0, 6, 2)}
	before := cloneProcesses(procs)

	// WHEN every policy runs over the same slice
	for _, r := range allPolicyRunners() {
		res, err := r.run(procs)
		require.NoError(t, err, r.name)
		// mutating the result must not reach the caller's data either
		*res.Processes[0].Priority = 99
	}

	// THEN the caller's slice and its priority values are unchanged
	assert.Equal(t, before, procs)
}

func TestRun_ConcurrentRunsOnSharedInput(t *testing.T) {
	// GIVEN one shared workload
	procs := testRandomProcesses(3, 40, 50, 20)
	want := make(map[string]*Result)
	for _, r := range allPolicyRunners() {
		res, err := r.run(procs)
		require.NoError(t, err)
		want[r.name] = res
	}

	// WHEN every policy runs it several times concurrently
	var wg sync.WaitGroup
	results := make(chan *Result, 4*len(want))
	for i := 0; i < 4; i++ {
		for _, r := range allPolicyRunners() {
			r := r
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := r.run(procs)
				if err == nil {
					results <- res
				}
			}()
		}
	}
	wg.Wait()
	close(results)

	// THEN every run matches the sequential result
	n := 0
	for res := range results {
		assert.Equal(t, want[res.Policy], res, res.Policy)
		n++
	}
	assert.Equal(t, 4*len(want), n)
}

func TestRun_Deterministic(t *testing.T) {
	procs := testRandomProcesses(11, 30, 20, 10)
	for _, r := range allPolicyRunners() {
		a, err := r.run(procs)
		require.NoError(t, err)
		b, err := r.run(procs)
		require.NoError(t, err)
		assert.Equal(t, a, b, r.name)
	}
}

func TestRun_RandomWorkloads_SatisfyInvariants(t *testing.T) {
	// GIVEN random workloads with dense and sparse arrivals
	for seed := int64(1); seed <= 20; seed++ {
		maxArrival := int64(10)
		if seed%2 == 0 {
			maxArrival = 200
		}
		procs := testRandomProcesses(seed, 30, maxArrival, 20)
		for _, r := range allPolicyRunners() {
			t.Run(fmt.Sprintf("%s/seed=%d", r.name, seed), func(t *testing.T) {
				// WHEN the policy runs
				res, err := r.run(procs)
				require.NoError(t, err)

				// THEN all scheduling invariants hold
				assert.NoError(t, Verify(procs, res))
				s := Summarize(res)
				assert.Equal(t, s.Makespan, s.BusyTime+s.IdleTime)
			})
		}
	}
}

func TestRun_SRTFMinimizesAverageWaiting(t *testing.T) {
	// SRTF is optimal for average waiting time on a single CPU with known bursts
	for seed := int64(1); seed <= 10; seed++ {
		procs := testRandomProcesses(seed, 25, 30, 15)
		srtf, err := SRTF(procs)
		require.NoError(t, err)
		best := Summarize(srtf).AvgWaiting
		for _, r := range allPolicyRunners() {
			res, err := r.run(procs)
			require.NoError(t, err)
			assert.LessOrEqual(t, best, Summarize(res).AvgWaiting+1e-9, "seed %d: %s beat srtf", seed, r.name)
		}
	}
}

func TestRun_Trace_RecordsDecisions(t *testing.T) {
	// GIVEN a trace at level "all"
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelAll})
	procs := []Process{proc("P0", 0, 5), proc("P1", 0, 3)}

	// WHEN Round Robin runs with quantum 4
	_, err := RoundRobin(procs, 4, WithTrace(st))
	require.NoError(t, err)

	// THEN admissions, dispatches, the one preemption and both completions are captured
	assert.Len(t, st.Admissions, 2)
	require.Len(t, st.Dispatches, 3)
	assert.Equal(t, trace.DispatchRecord{ProcessID: "P0", Clock: 0, Slice: 4, Level: 0, Ready: 1}, st.Dispatches[0])
	require.Len(t, st.Preemptions, 1)
	assert.Equal(t, trace.PreemptRecord{ProcessID: "P0", Clock: 4, Remaining: 1}, st.Preemptions[0])
	assert.Len(t, st.Completions, 2)
}

func TestRun_Response_IsFirstDispatchMinusArrival(t *testing.T) {
	procs := []Process{proc("P0", 0, 5), proc("P1", 1, 3)}
	res, err := RoundRobin(procs, 2)
	require.NoError(t, err)

	// P0 0-2, P1 2-4, P0 4-6, P1 6-7, P0 7-8
	for _, p := range res.Processes {
		switch p.ID {
		case "P0":
			assert.Equal(t, int64(0), p.Response)
			assert.Equal(t, int64(8), p.Completion)
		case "P1":
			assert.Equal(t, int64(1), p.Response)
			assert.Equal(t, int64(7), p.Completion)
		}
	}
}

func BenchmarkSRTF(b *testing.B) {
	procs := testRandomProcesses(1, 200, 500, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SRTF(procs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundRobin(b *testing.B) {
	procs := testRandomProcesses(1, 200, 500, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RoundRobin(procs, 4); err != nil {
			b.Fatal(err)
		}
	}
}
