package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider     = "gemini"
	DefaultOutputFormat = "text"
	DefaultConcurrency  = 3
	DefaultBatchSize    = 50
)

// settings read from the YAML config file; flags override these
type Config struct {
	// character set of input files, see internal/charset
	Encoding     string `yaml:"encoding"`
	OutputFormat string `yaml:"output_format"`

	Translate struct {
		Provider       string `yaml:"provider"`
		Model          string `yaml:"model"`
		TargetLanguage string `yaml:"target_language"`
		Concurrency    int    `yaml:"concurrency"`
		BatchSize      int    `yaml:"batch_size"`
	} `yaml:"translate"`

	path string
}

func Default() *Config {
	c := &Config{}
	c.OutputFormat = DefaultOutputFormat
	c.Translate.Provider = DefaultProvider
	c.Translate.Concurrency = DefaultConcurrency
	c.Translate.BatchSize = DefaultBatchSize
	return c
}

// DefaultPath is $XDG_CONFIG_HOME/srtparse/config.yaml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "srtparse", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error unless
// the path was given explicitly.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path of the file the config was loaded from, empty for defaults.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) normalize() {
	c.Encoding = strings.TrimSpace(strings.ToLower(c.Encoding))
	c.OutputFormat = strings.TrimSpace(strings.ToLower(c.OutputFormat))
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}

	c.Translate.Provider = strings.TrimSpace(strings.ToLower(c.Translate.Provider))
	if c.Translate.Provider == "" {
		c.Translate.Provider = DefaultProvider
	}
	c.Translate.Model = strings.TrimSpace(c.Translate.Model)
	c.Translate.TargetLanguage = strings.TrimSpace(c.Translate.TargetLanguage)
	if c.Translate.Concurrency == 0 {
		c.Translate.Concurrency = DefaultConcurrency
	}
	if c.Translate.BatchSize == 0 {
		c.Translate.BatchSize = DefaultBatchSize
	}
}
