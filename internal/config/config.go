package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = ".moltop"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultOutput     = "text"
	DefaultPalette    = "cpk"
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 10
)

type Config struct {
	DataDir string       `yaml:"data_dir"`
	Log     LogConfig    `yaml:"log"`
	Output  OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	Format     string `yaml:"format"`
	Palette    string `yaml:"palette"`
	PlotWidth  int    `yaml:"plot_width"`
	PlotHeight int    `yaml:"plot_height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			Format:     DefaultOutput,
			Palette:    DefaultPalette,
			PlotWidth:  DefaultPlotWidth,
			PlotHeight: DefaultPlotHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}
	if c.Output.PlotWidth <= 0 || c.Output.PlotHeight <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Output.PlotWidth, c.Output.PlotHeight)
	}
	if c.Output.Palette == "" {
		return fmt.Errorf("output palette must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}
