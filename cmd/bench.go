package cmd

import (
	"context"
	"io"
	"os/signal"
	"slices"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/bench"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	benchCount    int      // Processes in the generated workload
	benchSeed     int64    // Seed for the generated workload
	benchRuns     int      // Invocations per policy
	benchPolicies []string // Policies to time; empty = all
)

// benchCmd times whole-engine invocations on a generated workload
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time each policy on a generated workload",
	Run: func(cmd *cobra.Command, args []string) {
		procs, err := workload.Generate(workload.DefaultGenConfig(benchCount, benchSeed))
		if err != nil {
			logrus.Fatalf("Unable to generate workload: %v", err)
		}
		cases, err := benchCases(benchPolicies, currentParams())
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logrus.Infof("Timing %d policies, %d runs each, on %d processes", len(cases), benchRuns, len(procs))
		timings, err := bench.Run(ctx, procs, cases, benchRuns)
		if err != nil {
			logrus.Fatalf("Benchmark failed: %v", err)
		}
		writeTimings(cmd.OutOrStdout(), timings)
	},
}

func benchCases(policies []string, params sim.PolicyParams) ([]bench.Case, error) {
	if len(policies) == 0 {
		return bench.DefaultCases(params), nil
	}
	cases := make([]bench.Case, 0, len(policies))
	for _, name := range policies {
		if _, err := sim.NewPolicy(name, params); err != nil {
			return nil, err
		}
		cases = append(cases, bench.Case{Policy: name, Params: params})
	}
	return cases, nil
}

func writeTimings(w io.Writer, timings []bench.Timing) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Runs", "Mean", "Min", "Max", "Total"})
	for _, t := range timings {
		table.Append([]string{t.Policy, strconv.Itoa(t.Runs), t.Mean.String(), t.Min.String(), t.Max.String(), t.Total.String()})
	}
	table.Render()
}

func init() {
	benchCmd.Flags().IntVar(&benchCount, "count", 1000, "Number of generated processes")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "Seed for random workload generation")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 10, "Invocations per policy")
	benchCmd.Flags().StringSliceVar(&benchPolicies, "policy", nil, "Policies to time (default all)")
	benchCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round Robin time quantum")
	benchCmd.Flags().Int64SliceVar(&mlfqQuantums, "mlfq-quantums", slices.Clone(sim.DefaultMLFQQuantums), "Comma-separated MLFQ quantums, level 0 first")
	rootCmd.AddCommand(benchCmd)
}
