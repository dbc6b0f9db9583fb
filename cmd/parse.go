package cmd

import (
	"fmt"
	"os"

	"github.com/solverlab/drbench/internal/runner"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <logfile>",
		Short: "Extract timing metrics from a saved solver log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading log %s: %w", args[0], err)
			}
			m, err := runner.ParseLog(string(data))
			if err != nil {
				return fmt.Errorf("parsing log %s: %w", args[0], err)
			}
			fmt.Printf("Unknowns: %s\n", orDash(m.Unknowns))
			fmt.Printf("Setup time: %s\n", orDash(m.SetupTime))
			fmt.Printf("Solve time: %s\n", orDash(m.SolveTime))
			fmt.Printf("Iterations: %s\n", m.IterCount)
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
