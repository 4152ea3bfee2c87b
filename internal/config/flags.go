package config

import (
	"flag"
)

// Flags are the command-line overrides shared by the front-ends.
type Flags struct {
	ConfigPath string
	LevelsFile string
	Level      int
	Debug      bool
	LogLevel   string
}

// Register binds the shared flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.LevelsFile, "levels", "", "path to a YAML level set (default: built-in levels)")
	fs.IntVar(&f.Level, "level", -1, "zero-based level to start on (default: resume saved progress)")
	fs.BoolVar(&f.Debug, "debug", false, "enable the debug overlay and debug logging")
	fs.StringVar(&f.LogLevel, "log-level", "", "override the configured log level")
}

// Resolve loads the config file named by the flags and applies the overrides.
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if f.LevelsFile != "" {
		cfg.LevelsFile = f.LevelsFile
	}
	if f.Level >= 0 {
		cfg.StartLevel = f.Level
		// an explicit level wins over saved progress
		cfg.Save.Resume = false
	}
	if f.Debug {
		cfg.Debug = true
		cfg.Log.Level = "debug"
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	return cfg, cfg.Validate()
}
