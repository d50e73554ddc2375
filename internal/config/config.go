// Package config loads pj settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "PJ_CONFIG"

// Format is the encoding of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// Config holds all pj settings.
type Config struct {
	Parser   ParserConfig   `toml:"parser" yaml:"parser"`
	Analyzer AnalyzerConfig `toml:"analyzer" yaml:"analyzer"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// ParserConfig holds syntax analyzer settings.
type ParserConfig struct {
	Debug bool `toml:"debug" yaml:"debug"`
}

// AnalyzerConfig holds semantic analyzer settings.
type AnalyzerConfig struct {
	Debug       bool `toml:"debug" yaml:"debug"`
	Suggestions bool `toml:"suggestions" yaml:"suggestions"`
}

// OutputConfig controls what the CLI prints.
type OutputConfig struct {
	// Color is one of auto, always, never.
	Color string `toml:"color" yaml:"color"`
	// Indent is the number of spaces per level in linearized trees.
	Indent int `toml:"indent" yaml:"indent"`
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{Suggestions: true},
		Output:   OutputConfig{Color: ColorAuto, Indent: 1},
	}
}

// Load reads a config file. The format follows the extension: .yaml and .yml
// are YAML, everything else TOML. Keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config content on top of the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve finds and loads the configuration. The first of these wins: the
// explicit path, $PJ_CONFIG, ./pj.toml, ./pj.yaml. Without any of them the
// defaults are returned.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(os.ExpandEnv(path))
	}
	for _, path := range []string{"pj.toml", "pj.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) applyDefaults() {
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 1
	}
	if c.Log.File != "" {
		c.Log.File = os.ExpandEnv(c.Log.File)
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	if c.Log.Verbosity < -4 || c.Log.Verbosity > 2 {
		return fmt.Errorf("log.verbosity must be between -4 and 2, got %d", c.Log.Verbosity)
	}
	return nil
}

// IndentString is the per-level indentation for linearized trees.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Output.Indent)
}

// LogPath returns the log file for commonlog.Configure, or nil for stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
