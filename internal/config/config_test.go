package config_test

import (
	"testing"

	"github.com/solverlab/drbench/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Orders.From != 4 || cfg.Orders.To != 9 {
		t.Errorf("orders = [%d,%d), want [4,9)", cfg.Orders.From, cfg.Orders.To)
	}
	if cfg.Refine != 5 {
		t.Errorf("refine = %d, want 5", cfg.Refine)
	}
	if cfg.Mesh != "../data/inline-hex.mesh" {
		t.Errorf("mesh = %q, want default mesh asset", cfg.Mesh)
	}
	if len(cfg.Devices) != 2 || cfg.Devices[0] != "cpu" || cfg.Devices[1] != "cuda" {
		t.Errorf("devices = %v, want [cpu cuda]", cfg.Devices)
	}
	if len(cfg.Smoothers) != 2 || cfg.Smoothers[0] != "J" || cfg.Smoothers[1] != "DR" {
		t.Errorf("smoothers = %v, want [J DR]", cfg.Smoothers)
	}
}

func TestLoadMinimal(t *testing.T) {
	cfg, err := config.Load("../../testdata/minimal.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Orders.From != 2 || cfg.Orders.To != 4 {
		t.Errorf("orders = [%d,%d), want [2,4)", cfg.Orders.From, cfg.Orders.To)
	}
	if cfg.Refine != 3 {
		t.Errorf("refine = %d, want 3", cfg.Refine)
	}
	if cfg.Mesh != "data/star.mesh" {
		t.Errorf("mesh = %q, want data/star.mesh", cfg.Mesh)
	}
	// Unset fields keep their defaults.
	if len(cfg.Devices) != 2 {
		t.Errorf("devices = %v, want default set", cfg.Devices)
	}
	if cfg.Format != "table" {
		t.Errorf("format = %q, want table", cfg.Format)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := config.Load("../../testdata/full.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "markdown" {
		t.Errorf("format = %q, want markdown", cfg.Format)
	}
	if len(cfg.Smoothers) != 2 {
		t.Errorf("smoothers = %v, want [J DR]", cfg.Smoothers)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load("nonexistent.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := config.Load("../../testdata/invalid.yaml")
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadBadOrders(t *testing.T) {
	_, err := config.Load("../../testdata/bad-orders.yaml")
	if err == nil {
		t.Error("expected error for empty order range")
	}
}

func TestLoadBadDevice(t *testing.T) {
	_, err := config.Load("../../testdata/bad-device.yaml")
	if err == nil {
		t.Error("expected error for unknown device")
	}
}
