package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"yaplc/internal/config"
)

// loadSettings reads the configuration file and applies every flag the user
// set explicitly on top of it.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	root := cmd.Root().PersistentFlags()
	path, err := root.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = config.Discover(wd)
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	if err := applyFlags(&cfg, root, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with flags that were set on the command line.
// Flags left at their defaults do not shadow the file.
func applyFlags(cfg *config.Config, root, local *pflag.FlagSet) error {
	strs := []struct {
		set  *pflag.FlagSet
		name string
		dst  *string
	}{
		{root, "color", &cfg.Check.Color},
		{root, "trace", &cfg.Trace.Output},
		{root, "trace-level", &cfg.Trace.Level},
		{local, "format", &cfg.Check.Format},
	}
	for _, f := range strs {
		if f.set.Lookup(f.name) == nil || !f.set.Changed(f.name) {
			continue
		}
		v, err := f.set.GetString(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}

	ints := []struct {
		set  *pflag.FlagSet
		name string
		dst  *int
	}{
		{root, "max-diagnostics", &cfg.Check.MaxDiagnostics},
		{local, "jobs", &cfg.Check.Jobs},
		{local, "max-errors", &cfg.Check.MaxErrors},
	}
	for _, f := range ints {
		if f.set.Lookup(f.name) == nil || !f.set.Changed(f.name) {
			continue
		}
		v, err := f.set.GetInt(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	return nil
}
