// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package config loads the settings of the robdd command from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/dalzilio/robdd"
	"gopkg.in/yaml.v3"
)

// Config holds the sizes of the BDD tables and the logging settings.
type Config struct {
	Nodesize    int    `yaml:"nodesize"`
	Cachesize   int    `yaml:"cachesize"`
	Maxnodesize int    `yaml:"maxnodesize"`
	Verbosity   int    `yaml:"verbosity"`
	LogFile     string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Nodesize:  1 << 10,
		Cachesize: 1 << 10,
	}
}

// Load reads the configuration in file path. Missing keys keep their default
// value. An empty path returns the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error if one of the table sizes cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Nodesize < 0:
		return fmt.Errorf("nodesize must not be negative (%d)", c.Nodesize)
	case c.Cachesize < 0:
		return fmt.Errorf("cachesize must not be negative (%d)", c.Cachesize)
	case c.Maxnodesize < 0:
		return fmt.Errorf("maxnodesize must not be negative (%d)", c.Maxnodesize)
	case c.Maxnodesize == 1:
		return fmt.Errorf("maxnodesize must be 0 (no limit) or at least 2")
	}
	return nil
}

// NewBDD returns an empty BDD sized according to c.
func (c Config) NewBDD() (*robdd.BDD, error) {
	return robdd.New(
		robdd.Nodesize(c.Nodesize),
		robdd.Cachesize(c.Cachesize),
		robdd.Maxnodesize(c.Maxnodesize),
	)
}

// LogPath returns the log file as expected by commonlog.Configure, that is nil
// when logging to stderr.
func (c Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	return &c.LogFile
}
