package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Orders    Orders        `yaml:"orders"`
	Refine    int           `yaml:"refine"`
	Mesh      string        `yaml:"mesh"`
	Devices   []string      `yaml:"devices"`
	Smoothers []string      `yaml:"smoothers"`
	// Timeout is flag-only; yaml.v3 has no native duration decoding.
	Timeout   time.Duration `yaml:"-"`
	Format    string        `yaml:"format"`
}

// Orders is an inclusive-exclusive polynomial order range.
type Orders struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Default returns the configuration used when no config file is given:
// the standard cpu/cuda × J/DR matrix over orders 4..8.
func Default() *Config {
	return &Config{
		Orders:    Orders{From: 4, To: 9},
		Refine:    5,
		Mesh:      "../data/inline-hex.mesh",
		Devices:   []string{"cpu", "cuda"},
		Smoothers: []string{"J", "DR"},
		Format:    "table",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Orders.From >= cfg.Orders.To {
		return fmt.Errorf("order range [%d,%d) is empty", cfg.Orders.From, cfg.Orders.To)
	}
	if cfg.Orders.From < 1 {
		return fmt.Errorf("polynomial order must be at least 1, got %d", cfg.Orders.From)
	}
	if cfg.Refine < 0 {
		return fmt.Errorf("refine must be non-negative, got %d", cfg.Refine)
	}
	if cfg.Mesh == "" {
		return fmt.Errorf("mesh path is required")
	}
	if len(cfg.Devices) == 0 {
		return fmt.Errorf("no devices defined")
	}
	for _, d := range cfg.Devices {
		if d != "cpu" && d != "cuda" {
			return fmt.Errorf("unknown device %q (want cpu or cuda)", d)
		}
	}
	if len(cfg.Smoothers) == 0 {
		return fmt.Errorf("no smoothers defined")
	}
	for _, s := range cfg.Smoothers {
		if s != "J" && s != "DR" {
			return fmt.Errorf("unknown smoother %q (want J or DR)", s)
		}
	}
	switch cfg.Format {
	case "table", "markdown", "json":
	default:
		return fmt.Errorf("unknown format %q (want table, markdown or json)", cfg.Format)
	}
	return nil
}
