package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Devices and Smoothers are the sweep axes, in invocation order. The
// solver only understands these values, so there is no discovery step.
var (
	Devices   = []string{"cpu", "cuda"}
	Smoothers = []string{"J", "DR"}
)

// Runner executes one solver binary under a fixed base argument list
// across every device/smoother combination and accumulates the metrics
// reported on its stdout.
type Runner struct {
	baseArgs  []string
	devices   []string
	smoothers []string
	timeout   time.Duration
	progress  io.Writer

	setupTime map[string]map[string]string
	solveTime map[string]map[string]string
	iterCount map[string]map[string]string
	unknowns  string
}

type Option func(*Runner)

// WithMatrix restricts the sweep to the given device and smoother sets.
// Order is preserved; empty slices keep the defaults.
func WithMatrix(devices, smoothers []string) Option {
	return func(r *Runner) {
		if len(devices) > 0 {
			r.devices = devices
		}
		if len(smoothers) > 0 {
			r.smoothers = smoothers
		}
	}
}

// WithTimeout bounds each solver invocation. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithProgress directs per-invocation progress lines to w.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) { r.progress = w }
}

// New builds a Runner over the base argument list: the executable path
// followed by its fixed flags (order, refinement, mesh, no-vis).
func New(baseArgs []string, opts ...Option) *Runner {
	r := &Runner{
		baseArgs:  baseArgs,
		devices:   Devices,
		smoothers: Smoothers,
		progress:  io.Discard,
		setupTime: map[string]map[string]string{},
		solveTime: map[string]map[string]string{},
		iterCount: map[string]map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run sweeps the device × smoother matrix sequentially. Any non-zero
// exit aborts the whole sweep; no combination after the failing one is
// attempted.
func (r *Runner) Run(ctx context.Context) error {
	for _, device := range r.devices {
		deviceArgs := append(append([]string{}, r.baseArgs...), "--device", device)
		for _, smoother := range r.smoothers {
			argv := append(append([]string{}, deviceArgs...), "--smoother", smoother)
			fmt.Fprintf(r.progress, "Running %s\t", strings.Join(argv, " "))
			stdout, err := r.invoke(ctx, argv)
			if err != nil {
				fmt.Fprintln(r.progress, "failed")
				return err
			}
			if err := r.parseOutput(stdout, device, smoother); err != nil {
				fmt.Fprintln(r.progress, "failed")
				return err
			}
			fmt.Fprintln(r.progress, "success")
		}
	}
	return nil
}

// invoke runs one solver process to completion, argument-vector exec
// with no shell, both streams buffered in memory.
func (r *Runner) invoke(ctx context.Context, argv []string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// Don't wait on orphaned solver children holding the pipes open
	// after a timeout kill.
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%s timed out after %s", strings.Join(argv, " "), r.timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", fmt.Errorf("%s raised returncode %d:\nstdout: %s\nstderr: %s",
			strings.Join(argv, " "), exitErr.ExitCode(), stdout.String(), stderr.String())
	}
	return "", fmt.Errorf("running %s: %w", strings.Join(argv, " "), err)
}

// Get returns the accumulated setup-time, solve-time and iteration-count
// maps, each keyed by device, then smoother, holding the literal
// captured strings.
func (r *Runner) Get() (setup, solve, iters map[string]map[string]string) {
	return r.setupTime, r.solveTime, r.iterCount
}

// Unknowns returns the last finite-element unknown count seen on any
// run's output. The solver prints it once per invocation and later runs
// overwrite earlier ones.
func (r *Runner) Unknowns() string {
	return r.unknowns
}
