package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.PageRank.Damping != 0.85 {
		t.Errorf("PageRank.Damping = %f, want 0.85", cfg.PageRank.Damping)
	}
	if cfg.PageRank.MaxIterations != 100 {
		t.Errorf("PageRank.MaxIterations = %d, want 100", cfg.PageRank.MaxIterations)
	}
	if cfg.PageRank.Tolerance != 1e-6 {
		t.Errorf("PageRank.Tolerance = %g, want 1e-6", cfg.PageRank.Tolerance)
	}
	if cfg.Report.TopNodes != 10 {
		t.Errorf("Report.TopNodes = %d, want 10", cfg.Report.TopNodes)
	}
	if !cfg.Report.ShowCycles {
		t.Error("Report.ShowCycles should be true by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true by default")
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "auspex.toml")

	content := `
[pagerank]
damping = 0.9
max_iterations = 50

[report]
top_nodes = 25

[output]
format = "json"
color = false
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.PageRank.Damping != 0.9 {
		t.Errorf("PageRank.Damping = %f, want 0.9", cfg.PageRank.Damping)
	}
	if cfg.PageRank.MaxIterations != 50 {
		t.Errorf("PageRank.MaxIterations = %d, want 50", cfg.PageRank.MaxIterations)
	}
	if cfg.PageRank.Tolerance != 1e-6 {
		t.Errorf("PageRank.Tolerance = %g, want default 1e-6", cfg.PageRank.Tolerance)
	}
	if cfg.Report.TopNodes != 25 {
		t.Errorf("Report.TopNodes = %d, want 25", cfg.Report.TopNodes)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "auspex.yaml")

	content := `
pagerank:
  damping: 0.7

output:
  format: markdown
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.PageRank.Damping != 0.7 {
		t.Errorf("PageRank.Damping = %f, want 0.7", cfg.PageRank.Damping)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %s, want markdown", cfg.Output.Format)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "auspex.json")

	content := `{
  "report": {
    "top_nodes": 3
  },
  "output": {
    "format": "json"
  }
}`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Report.TopNodes != 3 {
		t.Errorf("Report.TopNodes = %d, want 3", cfg.Report.TopNodes)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadOrDefaultWithoutFiles(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg := LoadOrDefault()
	if cfg.PageRank.Damping != 0.85 {
		t.Errorf("PageRank.Damping = %f, want default 0.85", cfg.PageRank.Damping)
	}
}
