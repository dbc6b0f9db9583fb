package runner

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns matched against each stdout line, in priority order. The
// first pattern that matches consumes the line; later ones are not
// tried. Captures are kept as literal strings so the report shows the
// solver's own formatting.
var (
	reUnknowns = regexp.MustCompile(`^Number of finite element unknowns: ([0-9]+)`)
	reSetup    = regexp.MustCompile(`^Setup time = ([0-9]+\.[0-9]+)`)
	reSolve    = regexp.MustCompile(`^Solve time = ([0-9]+\.[0-9]+)`)
	reIter     = regexp.MustCompile(`\s+Iteration :\s+([0-9]+)`)
)

// LogMetrics holds the metrics extracted from one solver invocation's
// stdout. When a pattern matches more than once the last occurrence
// wins; a field is empty when its pattern never matched.
type LogMetrics struct {
	Unknowns  string
	SetupTime string
	SolveTime string
	IterCount string
}

// ErrMissingIteration reports solver output with no "Iteration :" line.
// Valid solver output always reports at least one iteration, so its
// absence means the solve never ran.
type ErrMissingIteration struct{}

func (ErrMissingIteration) Error() string { return "missing iteration data in solver output" }

// ParseLog scans solver stdout line by line and extracts the unknown
// count, setup time, solve time and last iteration count.
func ParseLog(out string) (*LogMetrics, error) {
	var m LogMetrics
	for _, line := range strings.Split(out, "\n") {
		if g := reUnknowns.FindStringSubmatch(line); g != nil {
			m.Unknowns = g[1]
			continue
		}
		if g := reSetup.FindStringSubmatch(line); g != nil {
			m.SetupTime = g[1]
			continue
		}
		if g := reSolve.FindStringSubmatch(line); g != nil {
			m.SolveTime = g[1]
			continue
		}
		if g := reIter.FindStringSubmatch(line); g != nil {
			m.IterCount = g[1]
		}
	}
	if m.IterCount == "" {
		return nil, ErrMissingIteration{}
	}
	return &m, nil
}

// parseOutput folds one invocation's metrics into the runner's maps.
// Each device's inner map is replaced wholesale on every pass, so only
// the most recent smoother's entry survives per device. Downstream
// consumers depend on this last-value-wins behavior.
func (r *Runner) parseOutput(out, device, smoother string) error {
	if _, ok := r.setupTime[device]; !ok {
		r.setupTime[device] = map[string]string{}
	}
	if _, ok := r.solveTime[device]; !ok {
		r.solveTime[device] = map[string]string{}
	}
	if _, ok := r.iterCount[device]; !ok {
		r.iterCount[device] = map[string]string{}
	}

	m, err := ParseLog(out)
	if err != nil {
		return fmt.Errorf("parsing output for device=%s smoother=%s: %w", device, smoother, err)
	}

	if m.Unknowns != "" {
		r.unknowns = m.Unknowns
	}
	if m.SetupTime != "" {
		r.setupTime[device] = map[string]string{smoother: m.SetupTime}
	}
	if m.SolveTime != "" {
		r.solveTime[device] = map[string]string{smoother: m.SolveTime}
	}
	r.iterCount[device] = map[string]string{smoother: m.IterCount}
	return nil
}
