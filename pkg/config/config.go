// Package config provides configuration loading and management for gobart.
// It handles loading configuration from YAML or TOML files, applies
// environment overrides and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrToolboxNotConfigured is returned when no toolbox location is known.
var ErrToolboxNotConfigured = errors.New("config: toolbox path not configured (set TOOLBOX_PATH)")

// Config represents the application configuration
type Config struct {
	// Toolbox locates the external executable
	Toolbox struct {
		// Path is the toolbox installation directory or the executable itself
		Path string `yaml:"path" toml:"path" env:"TOOLBOX_PATH"`

		// Binary is the executable name looked up inside Path
		Binary string `yaml:"binary" toml:"binary"`
	} `yaml:"toolbox" toml:"toolbox"`

	// Invocation parameters
	Run struct {
		// TempDir is the root under which per-call workspaces are created.
		// Empty means the system temporary directory.
		TempDir string `yaml:"tempDir" toml:"temp_dir" env:"GOBART_TEMP_DIR"`

		// KeepTemp leaves workspaces on disk after the call, for debugging
		KeepTemp bool `yaml:"keepTemp" toml:"keep_temp" env:"GOBART_KEEP_TEMP"`

		// Timeout bounds a single invocation; zero disables it
		Timeout time.Duration `yaml:"timeout" toml:"timeout" env:"GOBART_TIMEOUT"`

		// Debug logs every command line before it runs
		Debug bool `yaml:"debug" toml:"debug" env:"GOBART_DEBUG"`
	} `yaml:"run" toml:"run"`

	// Logging parameters
	Log struct {
		// Level is a zerolog level name
		Level string `yaml:"level" toml:"level" env:"GOBART_LOG_LEVEL"`

		// Console selects human readable output instead of JSON
		Console bool `yaml:"console" toml:"console"`
	} `yaml:"log" toml:"log"`

	History struct {
		// Path of the SQLite database; empty disables the history
		Path string `yaml:"path" toml:"path" env:"GOBART_HISTORY"`
	} `yaml:"history" toml:"history"`

	Telemetry struct {
		// Endpoint is an OTLP/HTTP traces URL; empty keeps tracing off
		Endpoint string `yaml:"endpoint" toml:"endpoint" env:"GOBART_OTEL_ENDPOINT"`
	} `yaml:"telemetry" toml:"telemetry"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Toolbox.Binary = "bart"

	cfg.Run.TempDir = ""
	cfg.Run.KeepTemp = false
	cfg.Run.Timeout = 0

	cfg.Log.Level = "info"
	cfg.Log.Console = true

	return cfg
}

// LoadConfig loads configuration from a YAML or TOML file, chosen by
// extension, then applies environment overrides.
// If the file doesn't exist, the defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(cfg *Config, configPath string) error {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	if isTOML(configPath) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

// ParseEnv applies environment variables to target. Variables that are not
// set leave the current value untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SaveConfig saves the configuration to a YAML or TOML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isTOML(configPath) {
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(cfg)
		data = []byte(sb.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}

// Validate reports configuration that cannot be used to run the toolbox.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Toolbox.Path) == "" {
		return ErrToolboxNotConfigured
	}
	if c.Run.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %s", c.Run.Timeout)
	}
	return nil
}

// Executable resolves the toolbox executable. Path may name the installation
// directory (the usual TOOLBOX_PATH) or the executable itself.
func (c *Config) Executable() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	binary := c.Toolbox.Binary
	if binary == "" {
		binary = "bart"
	}

	info, err := os.Stat(c.Toolbox.Path)
	if err == nil && !info.IsDir() {
		return c.Toolbox.Path, nil
	}
	return filepath.Join(c.Toolbox.Path, binary), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
