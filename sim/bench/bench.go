// Package bench times whole-engine invocations over a shared workload.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Case names a policy and the parameters it runs with.
type Case struct {
	Policy string
	Params sim.PolicyParams
}

// Timing is the wall-clock cost of Runs invocations of one Case.
type Timing struct {
	Policy string        `json:"policy"`
	Runs   int           `json:"runs"`
	Total  time.Duration `json:"total_ns"`
	Mean   time.Duration `json:"mean_ns"`
	Min    time.Duration `json:"min_ns"`
	Max    time.Duration `json:"max_ns"`

	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// DefaultCases returns one Case per policy, in presentation order.
func DefaultCases(params sim.PolicyParams) []Case {
	names := sim.PolicyNames()
	cases := make([]Case, len(names))
	for i, name := range names {
		cases[i] = Case{Policy: name, Params: params}
	}
	return cases
}

// Run invokes every case runs times over procs and returns one Timing per case, in case
// order. Cases and runs execute one after another so no two invocations share the CPU.
// Cancelling ctx stops before the next run and returns ctx.Err().
func Run(ctx context.Context, procs []sim.Process, cases []Case, runs int) ([]Timing, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", runs)
	}
	for _, c := range cases {
		if !sim.IsValidPolicy(c.Policy) {
			return nil, fmt.Errorf("unknown policy %q", c.Policy)
		}
	}

	timings := make([]Timing, len(cases))
	for i, c := range cases {
		t, err := runCase(ctx, procs, c, runs)
		if err != nil {
			return nil, fmt.Errorf("benchmarking %s: %w", c.Policy, err)
		}
		timings[i] = t
	}
	return timings, nil
}

func runCase(ctx context.Context, procs []sim.Process, c Case, runs int) (Timing, error) {
	t := Timing{Policy: c.Policy, Runs: runs, Started: time.Now()}
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return Timing{}, err
		}
		start := time.Now()
		if _, err := sim.RunNamed(c.Policy, procs, c.Params); err != nil {
			return Timing{}, err
		}
		elapsed := time.Since(start)

		t.Total += elapsed
		if i == 0 || elapsed < t.Min {
			t.Min = elapsed
		}
		t.Max = max(t.Max, elapsed)
	}
	t.Finished = time.Now()
	t.Mean = t.Total / time.Duration(runs)
	logrus.Debugf("bench %s: %d runs, mean %v", c.Policy, runs, t.Mean)
	return t, nil
}
