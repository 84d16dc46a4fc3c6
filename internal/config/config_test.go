package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %s, got %s", DefaultDataDir, cfg.DataDir)
	}
	if cfg.Output.PlotWidth <= 0 {
		t.Error("plot width should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moltop.yaml")
	data := []byte("log:\n  level: debug\noutput:\n  format: json\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Log.Level)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected json output, got %s", cfg.Output.Format)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("unset field should keep default, got %s", cfg.Log.Format)
	}
	if cfg.Output.PlotHeight != DefaultPlotHeight {
		t.Errorf("unset field should keep default, got %d", cfg.Output.PlotHeight)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moltop.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown output format")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moltop.yaml")
	cfg := DefaultConfig()
	cfg.DataDir = "snapshots"
	cfg.Output.PlotWidth = 120

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"json logs", func(c *Config) { c.Log.Format = "json" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, false},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"zero plot", func(c *Config) { c.Output.PlotHeight = 0 }, false},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, false},
		{"mono palette", func(c *Config) { c.Output.Palette = "mono" }, true},
		{"empty palette", func(c *Config) { c.Output.Palette = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
