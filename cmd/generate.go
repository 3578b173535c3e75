package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim/workload"
)

var (
	genCount          int    // Number of processes
	genSeed           int64  // Seed for the workload RNG
	genMaxArrival     int64  // Arrivals drawn from [0, max)
	genMaxBurst       int64  // Bursts drawn from [1, max]
	genPriorityLevels int64  // Priorities drawn from [0, levels)
	genFormat         string // yaml or csv
)

// generateCmd writes a synthetic workload to stdout
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic workload",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := workload.GenConfig{
			Count:          genCount,
			Seed:           genSeed,
			MaxArrival:     genMaxArrival,
			MaxBurst:       genMaxBurst,
			PriorityLevels: genPriorityLevels,
		}
		if err := generate(cmd.OutOrStdout(), cfg, genFormat); err != nil {
			logrus.Fatalf("Unable to generate workload: %v", err)
		}
	},
}

func generate(w io.Writer, cfg workload.GenConfig, format string) error {
	procs, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		return workload.WriteWorkload(w, procs)
	case "csv":
		return workload.WriteCSV(w, procs)
	default:
		return fmt.Errorf("unknown workload format %q; valid: yaml, csv", format)
	}
}

func init() {
	generateCmd.Flags().IntVar(&genCount, "count", 10, "Number of processes")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random workload generation")
	generateCmd.Flags().Int64Var(&genMaxArrival, "max-arrival", workload.DefaultMaxArrival, "Arrivals are drawn from [0, max-arrival)")
	generateCmd.Flags().Int64Var(&genMaxBurst, "max-burst", workload.DefaultMaxBurst, "Bursts are drawn from [1, max-burst]")
	generateCmd.Flags().Int64Var(&genPriorityLevels, "priority-levels", workload.DefaultPriorityLevels, "Priorities are drawn from [0, levels); 0 omits priorities")
	generateCmd.Flags().StringVar(&genFormat, "format", "yaml", "Workload format (yaml, csv)")
	rootCmd.AddCommand(generateCmd)
}
