package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/render"
)

// compareCmd runs every policy over one workload
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every policy over a workload and compare their averages",
	Run: func(cmd *cobra.Command, args []string) {
		procs := mustLoadWorkload(workloadPath)
		logrus.Infof("Comparing %d policies on %d processes", len(sim.PolicyNames()), len(procs))
		if err := comparePolicies(cmd.OutOrStdout(), procs, currentParams()); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// comparePolicies runs the policies concurrently and writes their summaries in
// presentation order. Priority policies are skipped when a process has no priority.
func comparePolicies(w io.Writer, procs []sim.Process, params sim.PolicyParams) error {
	var names []string
	for _, name := range sim.PolicyNames() {
		if sim.RequiresPriority(name) && !allHavePriority(procs) {
			logrus.Warnf("Skipping %s: not every process has a priority", name)
			continue
		}
		names = append(names, name)
	}

	results := make([]*sim.Result, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = sim.RunNamed(name, procs, params)
		}()
	}
	wg.Wait()

	summaries := make([]sim.Summary, len(names))
	for i, name := range names {
		if errs[i] != nil {
			return fmt.Errorf("%s: %w", name, errs[i])
		}
		if verifyResult {
			if err := sim.Verify(procs, results[i]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		summaries[i] = sim.Summarize(results[i])
	}

	switch outputFormat {
	case formatJSON:
		return render.WriteJSON(w, summaries)
	case formatTable:
		return render.WriteComparison(w, summaries)
	default:
		return fmt.Errorf("unknown output format %q; valid: %s, %s", outputFormat, formatTable, formatJSON)
	}
}

func allHavePriority(procs []sim.Process) bool {
	for _, p := range procs {
		if p.Priority == nil {
			return false
		}
	}
	return true
}

func init() {
	addScheduleFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
