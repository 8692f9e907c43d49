// Package config loads yaplc.toml or yaplc.yaml. Values from the file are
// defaults for the CLI; explicit flags win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are probed in this order in every directory.
var FileNames = []string{"yaplc.toml", "yaplc.yaml", "yaplc.yml"}

// Config mirrors the configuration file.
type Config struct {
	Path  string      `toml:"-" yaml:"-"` // file the values came from, "" for defaults
	Check CheckConfig `toml:"check" yaml:"check"`
	Trace TraceConfig `toml:"trace" yaml:"trace"`
}

type CheckConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	MaxErrors      int    `toml:"max_errors" yaml:"max_errors"`
	Format         string `toml:"format" yaml:"format"`
	Jobs           int    `toml:"jobs" yaml:"jobs"`
	Color          string `toml:"color" yaml:"color"`
}

type TraceConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Output string `toml:"output" yaml:"output"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Check: CheckConfig{
			MaxDiagnostics: 100,
			Format:         "pretty",
			Color:          "auto",
		},
		Trace: TraceConfig{
			Level:  "off",
			Format: "auto",
		},
	}
}

// Find walks up from startDir looking for a configuration file.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest configuration file above startDir,
// falling back to Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Default(), err
	}
	return Load(path)
}

// Load reads path on top of Default. The format follows the extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var issues []string
	if c.Check.MaxDiagnostics < 0 {
		issues = append(issues, "[check].max_diagnostics must be >= 0")
	}
	if c.Check.MaxErrors < 0 {
		issues = append(issues, "[check].max_errors must be >= 0")
	}
	if c.Check.Jobs < 0 {
		issues = append(issues, "[check].jobs must be >= 0")
	}
	switch c.Check.Format {
	case "pretty", "json", "short":
	default:
		issues = append(issues, fmt.Sprintf("[check].format %q is not one of pretty|json|short", c.Check.Format))
	}
	switch c.Check.Color {
	case "auto", "on", "off":
	default:
		issues = append(issues, fmt.Sprintf("[check].color %q is not one of auto|on|off", c.Check.Color))
	}
	if len(issues) == 0 {
		return nil
	}
	return errors.New(strings.Join(issues, "; "))
}
