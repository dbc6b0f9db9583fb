package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/solverlab/drbench/internal/report"
	"github.com/solverlab/drbench/internal/result"
)

func sampleResults() []result.OrderResult {
	return []result.OrderResult{
		{
			Order:    4,
			Unknowns: "1000",
			SetupTime: map[string]map[string]string{
				"cpu":  {"DR": "0.5"},
				"cuda": {"DR": "0.1"},
			},
			SolveTime: map[string]map[string]string{
				"cpu":  {"DR": "1.2"},
				"cuda": {"DR": "0.4"},
			},
			IterCount: map[string]map[string]string{
				"cpu":  {"DR": "3"},
				"cuda": {"DR": "5"},
			},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleResults(), "table", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ORDER", "cpu", "cuda", "1000", "0.5", "1.2", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMissingEntries(t *testing.T) {
	results := sampleResults()
	results[0].SetupTime["cpu"] = map[string]string{}

	var buf bytes.Buffer
	if err := report.Write(results, "markdown", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "| 4 | cpu | DR | 1000 | - | 1.2 | 3 |") {
		t.Errorf("expected dash for missing setup entry:\n%s", buf.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleResults(), "markdown", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "| Order |") {
		t.Errorf("markdown output missing header:\n%s", out)
	}
	if !strings.Contains(out, "| 4 | cpu | DR | 1000 | 0.5 | 1.2 | 3 |") {
		t.Errorf("markdown output missing cpu row:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleResults(), "json", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded []result.OrderResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding JSON output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Order != 4 {
		t.Errorf("decoded = %+v, want one order-4 result", decoded)
	}
	if decoded[0].SetupTime["cpu"]["DR"] != "0.5" {
		t.Errorf("setup[cpu][DR] = %q, want %q", decoded[0].SetupTime["cpu"]["DR"], "0.5")
	}
}
