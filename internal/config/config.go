package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ContinueMenu returns to the shape menu after an unrecognised answer to
	// the continue prompt.
	ContinueMenu = "menu"
	// ContinueReprompt asks the continue question again.
	ContinueReprompt = "reprompt"

	DefaultLogLevel = "warn"
)

type Config struct {
	ContinueMode string `yaml:"continue_mode"`
	LogLevel     string `yaml:"log_level"`
	URDFTag      bool   `yaml:"urdf_tag"`
}

func DefaultConfig() *Config {
	return &Config{
		ContinueMode: ContinueMenu,
		LogLevel:     DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Init writes the default configuration to path. An existing file is left
// untouched.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return Save(path, DefaultConfig())
}

func (c *Config) Validate() error {
	switch c.ContinueMode {
	case ContinueMenu, ContinueReprompt:
	default:
		return fmt.Errorf("%w: continue_mode %q", ErrInvalidConfig, c.ContinueMode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
