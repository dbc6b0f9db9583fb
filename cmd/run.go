package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/solverlab/drbench/internal/config"
	"github.com/solverlab/drbench/internal/report"
	"github.com/solverlab/drbench/internal/result"
	"github.com/solverlab/drbench/internal/runner"
	"github.com/spf13/cobra"
)

var (
	flagOrderRange []int
	flagRefine     int
	flagMesh       string
	flagDevices    []string
	flagSmoothers  []string
	flagTimeout    time.Duration
	flagFormat     string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <executable>",
		Short: "Run the device × smoother timing sweep over a range of orders",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().IntSliceVarP(&flagOrderRange, "order-range", "o", []int{4, 9}, "inclusive-exclusive polynomial order range")
	cmd.Flags().IntVarP(&flagRefine, "refine", "r", 5, "mesh refinement level")
	cmd.Flags().StringVarP(&flagMesh, "mesh", "m", "../data/inline-hex.mesh", "mesh file path")
	cmd.Flags().StringSliceVar(&flagDevices, "device", nil, "restrict to these device backends")
	cmd.Flags().StringSliceVar(&flagSmoothers, "smoother", nil, "restrict to these smoother variants")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-invocation timeout (0 = none)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format (table, markdown, json)")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	exe, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}
	if _, err := os.Stat(exe); err != nil {
		return fmt.Errorf("could not find %s: %w", exe, err)
	}

	ctx := context.Background()

	var results []result.OrderResult
	for order := cfg.Orders.From; order < cfg.Orders.To; order++ {
		r := runner.New(buildBaseArgs(exe, order, cfg.Refine, cfg.Mesh),
			runner.WithMatrix(cfg.Devices, cfg.Smoothers),
			runner.WithTimeout(cfg.Timeout),
			runner.WithProgress(os.Stdout))
		if err := r.Run(ctx); err != nil {
			return err
		}
		setup, solve, iters := r.Get()
		results = append(results, result.OrderResult{
			Order:     order,
			Unknowns:  r.Unknowns(),
			SetupTime: setup,
			SolveTime: solve,
			IterCount: iters,
		})
		fmt.Println()
		if err := report.Write(results, cfg.Format, os.Stdout); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// loadConfig reads the config file when present and falls back to the
// built-in defaults otherwise. An explicit but unreadable path is still
// an error.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return config.Load(cfgFile)
}

// applyFlags overlays flags the user actually set on top of the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("order-range") {
		if len(flagOrderRange) != 2 || flagOrderRange[0] >= flagOrderRange[1] {
			return fmt.Errorf("order-range wants two values FROM,TO with FROM < TO, got %v", flagOrderRange)
		}
		cfg.Orders = config.Orders{From: flagOrderRange[0], To: flagOrderRange[1]}
	}
	if flags.Changed("refine") {
		cfg.Refine = flagRefine
	}
	if flags.Changed("mesh") {
		cfg.Mesh = flagMesh
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("format") {
		switch flagFormat {
		case "table", "markdown", "json":
		default:
			return fmt.Errorf("unknown format %q (want table, markdown or json)", flagFormat)
		}
		cfg.Format = flagFormat
	}
	if len(flagDevices) > 0 {
		cfg.Devices = filterMatrix(cfg.Devices, flagDevices)
	}
	if len(flagSmoothers) > 0 {
		cfg.Smoothers = filterMatrix(cfg.Smoothers, flagSmoothers)
	}
	if len(cfg.Devices) == 0 {
		return fmt.Errorf("device filter %v matched nothing", flagDevices)
	}
	if len(cfg.Smoothers) == 0 {
		return fmt.Errorf("smoother filter %v matched nothing", flagSmoothers)
	}
	return nil
}

// filterMatrix keeps the elements of all that appear in wanted,
// preserving the sweep order of all.
func filterMatrix(all, wanted []string) []string {
	keep := map[string]bool{}
	for _, w := range wanted {
		keep[w] = true
	}
	var filtered []string
	for _, v := range all {
		if keep[v] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// buildBaseArgs assembles the fixed per-order argument list the sweep
// appends device and smoother flags to.
func buildBaseArgs(exe string, order, refine int, mesh string) []string {
	return []string{
		exe,
		"-o", strconv.Itoa(order),
		"-r", strconv.Itoa(refine),
		"-no-vis",
		"--mesh", mesh,
	}
}
