package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

// TestExampleWorkloads verifies that every shipped example workload loads and
// runs under every policy.
func TestExampleWorkloads(t *testing.T) {
	for _, name := range []string{"textbook.yaml", "processes.csv"} {
		t.Run(name, func(t *testing.T) {
			// GIVEN the example workload
			procs, err := Load(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)
			require.NotEmpty(t, procs)

			// THEN every process carries a priority and every policy accepts it
			for _, p := range procs {
				assert.NotNil(t, p.Priority, p.ID)
			}
			for _, policy := range sim.PolicyNames() {
				res, err := sim.RunNamed(policy, procs, sim.PolicyParams{Quantum: sim.DefaultQuantum})
				require.NoError(t, err, policy)
				assert.NoError(t, sim.Verify(procs, res), policy)
			}
		})
	}
}

func TestExampleWorkloads_TextbookFCFS(t *testing.T) {
	procs, err := Load(filepath.Join("..", "..", "examples", "textbook.yaml"))
	require.NoError(t, err)

	res, err := sim.FCFS(procs)
	require.NoError(t, err)

	// P1 0-10, P2 10-11, P3 11-13, P4 13-14, P5 14-19
	assert.InDelta(t, 7.6, sim.Summarize(res).AvgWaiting, 1e-9)
}
