package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" || cfg.Check.MaxDiagnostics != 100 || cfg.Check.Format != "pretty" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTOMLFromParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yaplc.toml"), `
[check]
max_errors = 5
format = "short"

[trace]
level = "phase"
`)
	nested := filepath.Join(root, "src", "demo")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != filepath.Join(root, "yaplc.toml") {
		t.Fatalf("unexpected path %q", cfg.Path)
	}
	if cfg.Check.MaxErrors != 5 || cfg.Check.Format != "short" || cfg.Trace.Level != "phase" {
		t.Fatalf("values not decoded: %+v", cfg)
	}
	if cfg.Check.MaxDiagnostics != 100 || cfg.Check.Color != "auto" {
		t.Fatalf("unset keys must keep defaults: %+v", cfg.Check)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yaplc.yaml")
	writeFile(t, path, "check:\n  jobs: 4\n  color: off\ntrace:\n  output: trace.ndjson\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Check.Jobs != 4 || cfg.Check.Color != "off" || cfg.Trace.Output != "trace.ndjson" {
		t.Fatalf("values not decoded: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"yaplc.toml": "[check]\nformat = \"xml\"\n",
		"yaplc.yml":  "check:\n  max_errors: -1\n",
		"bad.toml":   "[check]\nunknown_key = 1\n",
		"junk.yaml":  "check:\n  colour: on\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		writeFile(t, path, content)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("%s: expected error mentioning the path, got %v", name, err)
		}
	}
}
