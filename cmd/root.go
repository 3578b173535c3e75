package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/render"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// Global flags
	logLevel   string // Log verbosity level
	configPath string // Optional defaults file (schedsim.yaml)

	// Scheduling flags shared by run and compare
	workloadPath string  // YAML or CSV workload file
	quantum      int64   // Round Robin time quantum
	mlfqQuantums []int64 // MLFQ per-level time quantums, level 0 first
	outputFormat string  // table or json
	verifyResult bool    // Check scheduling invariants of every result

	// run-only flags
	policyName string // Policy to run
	traceLevel string // Decision trace verbosity
)

// Output formats for run and compare.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time CPU scheduling simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The flag level applies while the config loads; the config may then change it.
		if err := setLogLevel(logLevel); err != nil {
			return err
		}
		if err := applyConfig(cmd, configPath); err != nil {
			return err
		}
		return setLogLevel(logLevel)
	},
}

func setLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", name)
	}
	logrus.SetLevel(level)
	return nil
}

// runCmd schedules one workload with one policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		if !sim.IsValidPolicy(policyName) {
			logrus.Fatalf("Unknown policy %q. Valid: %s", policyName, strings.Join(sim.PolicyNames(), ", "))
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q. Valid: none, decisions, all", traceLevel)
		}
		procs := mustLoadWorkload(workloadPath)
		logrus.Infof("Scheduling %d processes with %s", len(procs), policyName)

		st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		if err := runPolicy(cmd.OutOrStdout(), procs, policyName, currentParams(), st); err != nil {
			logrus.Fatalf("%s failed: %v", policyName, err)
		}
		if st.Enabled() {
			ts := trace.Summarize(st)
			logrus.Infof("Trace: %d dispatches, %d preemptions, %d demotions, deepest level %d",
				ts.TotalDispatches, ts.TotalPreemptions, ts.Demotions, ts.MaxLevel)
		}
		logrus.Info("Simulation complete.")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func currentParams() sim.PolicyParams {
	return sim.PolicyParams{Quantum: quantum, Quantums: mlfqQuantums}
}

func mustLoadWorkload(path string) []sim.Process {
	if path == "" {
		logrus.Fatalf("Workload file not provided (--workload).")
	}
	procs, err := workload.Load(path)
	if err != nil {
		logrus.Fatalf("Unable to load workload: %v", err)
	}
	return procs
}

// runPolicy runs one policy and writes the result in the selected output format.
func runPolicy(w io.Writer, procs []sim.Process, name string, params sim.PolicyParams, st *trace.SimulationTrace) error {
	var opts []sim.Option
	if st.Enabled() {
		opts = append(opts, sim.WithTrace(st))
	}
	res, err := sim.RunNamed(name, procs, params, opts...)
	if err != nil {
		return err
	}
	if verifyResult {
		if err := sim.Verify(procs, res); err != nil {
			return err
		}
	}
	summary := sim.Summarize(res)
	switch outputFormat {
	case formatJSON:
		return render.WriteJSON(w, struct {
			*sim.Result
			Summary sim.Summary `json:"summary"`
		}{res, summary})
	case formatTable:
		return render.WriteSchedule(w, res, summary)
	default:
		return fmt.Errorf("unknown output format %q; valid: %s, %s", outputFormat, formatTable, formatJSON)
	}
}

// addScheduleFlags registers the flags shared by run and compare.
func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&workloadPath, "workload", "", "Workload file (.yaml, .yml or .csv)")
	cmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round Robin time quantum")
	cmd.Flags().Int64SliceVar(&mlfqQuantums, "mlfq-quantums", slices.Clone(sim.DefaultMLFQQuantums), "Comma-separated MLFQ quantums, level 0 first")
	cmd.Flags().StringVar(&outputFormat, "format", formatTable, "Output format (table, json)")
	cmd.Flags().BoolVar(&verifyResult, "verify", false, "Check scheduling invariants of every result")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (default ./schedsim.yaml if present)")

	addScheduleFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFCFS, "Scheduling policy ("+strings.Join(sim.PolicyNames(), ", ")+")")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions, all)")

	rootCmd.AddCommand(runCmd)
}
