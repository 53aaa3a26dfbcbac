// Package config loads the CLI configuration from TOML or YAML.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete CLI configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Generate GenerateConfig `toml:"generate" yaml:"generate"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
	Serve    ServeConfig    `toml:"serve" yaml:"serve"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// GenerateConfig holds defaults for printing generations
type GenerateConfig struct {
	Generations int  `toml:"generations" yaml:"generations"`
	Styled      bool `toml:"styled" yaml:"styled"`
}

// RenderConfig holds the external tools of the render pipeline
type RenderConfig struct {
	Python     string   `toml:"python" yaml:"python"`
	Convert    string   `toml:"convert" yaml:"convert"`
	WorkDir    string   `toml:"work_dir" yaml:"work_dir"`
	Keep       bool     `toml:"keep" yaml:"keep"`
	Resize     string   `toml:"resize" yaml:"resize"`
	Background string   `toml:"background" yaml:"background"`
	Delay      int      `toml:"delay" yaml:"delay"`
	Timeout    Duration `toml:"timeout" yaml:"timeout"`
}

// ServeConfig holds the chart server settings
type ServeConfig struct {
	Addr        string `toml:"addr" yaml:"addr"`
	Generations int    `toml:"generations" yaml:"generations"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a .toml, .yaml or .yml file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	cfg.Render.WorkDir = os.ExpandEnv(cfg.Render.WorkDir)

	return &cfg, nil
}

// LoadFromEnv loads the file named by LSYSTEM_CONFIG, or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LSYSTEM_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./lsystem.toml",
			"./lsystem.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/lsystem/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Generate.Generations == 0 {
		c.Generate.Generations = 8
	}

	if c.Render.Python == "" {
		c.Render.Python = "python3"
	}
	if c.Render.Convert == "" {
		c.Render.Convert = "convert"
	}
	if c.Render.WorkDir == "" {
		c.Render.WorkDir = os.TempDir()
	}
	if c.Render.Resize == "" {
		c.Render.Resize = "512x512"
	}
	if c.Render.Background == "" {
		c.Render.Background = "black"
	}
	if c.Render.Delay == 0 {
		c.Render.Delay = 75
	}
	if c.Render.Timeout.Duration == 0 {
		c.Render.Timeout.Duration = 2 * time.Minute
	}

	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8081"
	}
	if c.Serve.Generations == 0 {
		c.Serve.Generations = 10
	}
}

// ParseLevel maps a level name to a slog level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the structured logger described by the general section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(c.General.LogLevel)}
	if strings.EqualFold(c.General.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
