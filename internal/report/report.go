package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/solverlab/drbench/internal/result"
)

// Write prints the accumulated per-order results to w in the requested
// format. Metric values are printed verbatim as captured from the
// solver; a dash marks a combination with no recorded value.
func Write(results []result.OrderResult, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeMarkdown(results, w)
	case "json":
		return writeJSON(results, w)
	default:
		return writeTable(results, w)
	}
}

type row struct {
	order    int
	device   string
	smoother string
	unknowns string
	setup    string
	solve    string
	iters    string
}

func flatten(results []result.OrderResult) []row {
	var rows []row
	for _, res := range results {
		for _, device := range sortedKeys(res.IterCount) {
			for _, smoother := range sortedKeys(res.IterCount[device]) {
				rows = append(rows, row{
					order:    res.Order,
					device:   device,
					smoother: smoother,
					unknowns: res.Unknowns,
					setup:    lookup(res.SetupTime, device, smoother),
					solve:    lookup(res.SolveTime, device, smoother),
					iters:    lookup(res.IterCount, device, smoother),
				})
			}
		}
	}
	return rows
}

func lookup(m map[string]map[string]string, device, smoother string) string {
	v, ok := m[device][smoother]
	if !ok {
		return "-"
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeTable(results []result.OrderResult, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tDEVICE\tSMOOTHER\tUNKNOWNS\tSETUP\tSOLVE\tITERS")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, r := range flatten(results) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.order, r.device, r.smoother, r.unknowns, r.setup, r.solve, r.iters)
	}
	return tw.Flush()
}

func writeMarkdown(results []result.OrderResult, w io.Writer) error {
	fmt.Fprintln(w, "| Order | Device | Smoother | Unknowns | Setup | Solve | Iters |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	for _, r := range flatten(results) {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
			r.order, r.device, r.smoother, r.unknowns, r.setup, r.solve, r.iters)
	}
	return nil
}

func writeJSON(results []result.OrderResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
