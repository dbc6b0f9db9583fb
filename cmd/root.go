package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drbench",
		Short: "Timing sweep driver for DRSmoother solver benchmarks",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "drbench.yaml", "config file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newParseCmd())
	return root
}
