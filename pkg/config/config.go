// Package config loads auspex configuration from TOML, YAML or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for auspex.
type Config struct {
	// PageRank iteration parameters
	PageRank PageRankConfig `koanf:"pagerank"`

	// Report settings
	Report ReportConfig `koanf:"report"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// PageRankConfig tunes the power-iteration pass.
type PageRankConfig struct {
	Damping       float64 `koanf:"damping"`
	MaxIterations int     `koanf:"max_iterations"`
	Tolerance     float64 `koanf:"tolerance"`
}

// ReportConfig controls how much detail reports include.
type ReportConfig struct {
	TopNodes   int  `koanf:"top_nodes"`
	ShowCycles bool `koanf:"show_cycles"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PageRank: PageRankConfig{
			Damping:       0.85,
			MaxIterations: 100,
			Tolerance:     1e-6,
		},
		Report: ReportConfig{
			TopNodes:   10,
			ShowCycles: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"auspex.toml",
		"auspex.yaml",
		"auspex.yml",
		"auspex.json",
		".auspex.toml",
		".auspex.yaml",
		".auspex.yml",
		".auspex.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}
	return DefaultConfig()
}
