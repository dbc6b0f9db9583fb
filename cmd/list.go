package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the effective sweep matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Printf("Orders: %d..%d\n", cfg.Orders.From, cfg.Orders.To-1)
			fmt.Printf("Refine: %d\n", cfg.Refine)
			fmt.Printf("Mesh: %s\n", cfg.Mesh)
			fmt.Printf("Devices: %s\n", strings.Join(cfg.Devices, ", "))
			fmt.Printf("Smoothers: %s\n", strings.Join(cfg.Smoothers, ", "))
			runs := (cfg.Orders.To - cfg.Orders.From) * len(cfg.Devices) * len(cfg.Smoothers)
			fmt.Printf("\n%d solver invocations per sweep\n", runs)
			return nil
		},
	}
}
