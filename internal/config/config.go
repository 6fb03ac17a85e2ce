// Package config loads the optional sedu configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration resolved from the config file.
// Zero values mean "not set" so flags and defaults can take over.
type Config struct {
	// ServerURL is the backend API base URL.
	ServerURL string
	// PollInterval is the job tracker polling interval.
	PollInterval time.Duration
	// Reviewer is the default reviewer name for review commands.
	Reviewer string
}

// Load reads a YAML config file from the given filesystem. A missing file is
// not an error: it returns an empty config.
func Load(filesystem fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(filesystem, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// fileConfig represents the YAML structure of the config file.
type fileConfig struct {
	ServerURL           string `yaml:"server_url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	Reviewer            string `yaml:"reviewer"`
}

func (c fileConfig) validate() error {
	if c.PollIntervalSeconds < 0 {
		return fmt.Errorf("poll_interval_seconds must not be negative, got: %d", c.PollIntervalSeconds)
	}
	return nil
}

func (c fileConfig) toModel() Config {
	return Config{
		ServerURL:    c.ServerURL,
		PollInterval: time.Duration(c.PollIntervalSeconds) * time.Second,
		Reviewer:     c.Reviewer,
	}
}
