// Package config loads front-end settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window         Window `yaml:"window"`
	TicksPerSecond int    `yaml:"ticksPerSecond"`
	LevelsFile     string `yaml:"levelsFile"` // empty selects the embedded set
	StartLevel     int    `yaml:"startLevel"`
	Debug          bool   `yaml:"debug"`
	Log            Log    `yaml:"log"`
	Save           Save   `yaml:"save"`
}

type Window struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TileSize int    `yaml:"tileSize"`
}

type Log struct {
	Level       string   `yaml:"level"`
	Encoding    string   `yaml:"encoding"` // json or console
	OutputPaths []string `yaml:"outputPaths"`
}

// Save controls persistence of the selected level.
type Save struct {
	Enabled bool   `yaml:"enabled"`
	Resume  bool   `yaml:"resume"`
	AppName string `yaml:"appName"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:    "Sokoban",
			Width:    800,
			Height:   600,
			TileSize: 32,
		},
		TicksPerSecond: 60,
		Log: Log{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
		},
		Save: Save{
			Enabled: true,
			Resume:  true,
			AppName: "sokoban",
		},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size %d must be positive", c.Window.TileSize))
	}
	if c.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticksPerSecond %d must be positive", c.TicksPerSecond))
	}
	if c.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("startLevel %d must not be negative", c.StartLevel))
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log encoding %q must be json or console", c.Log.Encoding))
	}
	if c.Save.Enabled && c.Save.AppName == "" {
		errs = append(errs, errors.New("save.appName is required when saving is enabled"))
	}
	return errors.Join(errs...)
}
