package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"sdrthumb/internal/config"
)

type renderFlags struct {
	width  int
	height int
	jobs   int
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	defaults := config.Default().Render
	fs.IntVar(&f.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&f.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVarP(&f.jobs, "jobs", "j", defaults.Jobs, "Number of sox processes to run at once")
}

// apply copies explicitly set flags over the config values.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *config.Render) error {
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("invalid --width %d: must be positive", cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("invalid --height %d: must be positive", cfg.Height)
	}
	if cfg.Jobs <= 0 {
		return fmt.Errorf("invalid --jobs %d: must be positive", cfg.Jobs)
	}
	return nil
}

type logFlags struct {
	level  string
	format string
}

func (f *logFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.format, "log-format", "", "Log format (console, json)")
}

func (f *logFlags) apply(fs *pflag.FlagSet, cfg *config.Logging) {
	if fs.Changed("log-level") {
		cfg.Level = f.level
	}
	if fs.Changed("log-format") {
		cfg.Format = f.format
	}
}
