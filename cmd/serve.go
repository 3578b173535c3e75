package cmd

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/api"
	"github.com/schedsim/schedsim/sim"
)

var servePort int // HTTP listen port

// serveCmd exposes the engines over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engines over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		config := &api.Config{
			Port:     servePort,
			Quantum:  quantum,
			Quantums: mlfqQuantums,
			Verify:   verifyResult,
		}
		app := api.NewApp(config)
		logrus.Infof("Listening on :%d", config.Port)
		if err := app.Listen(fmt.Sprintf(":%d", config.Port)); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 9095, "HTTP listen port")
	serveCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Default Round Robin time quantum")
	serveCmd.Flags().Int64SliceVar(&mlfqQuantums, "mlfq-quantums", slices.Clone(sim.DefaultMLFQQuantums), "Default MLFQ quantums, level 0 first")
	serveCmd.Flags().BoolVar(&verifyResult, "verify", false, "Check scheduling invariants before responding")
	rootCmd.AddCommand(serveCmd)
}
