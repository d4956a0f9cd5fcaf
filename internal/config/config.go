// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package config loads service configuration with koanf v2, layered as
// defaults < YAML file < environment variables. Config is immutable after
// Load and safe for concurrent reads.
//
// Environment variables map to koanf paths by lowercasing and splitting on
// the first underscore-separated prefix: SMR_SERVER_ADDR → server.addr,
// SMR_DATA_TAG_TYPES → data.tag_types.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of all recognized environment variables.
const EnvPrefix = "SMR_"

// ConfigPathEnvVar names the environment variable that points at the
// config file.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// Sentinel validation errors.
var (
	ErrNoDataPath   = errors.New("config: data.path is required")
	ErrNoItemColumn = errors.New("config: data.item_column is required")
	ErrNoTagTypes   = errors.New("config: data.tag_types must name at least one column")
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Data    DataConfig    `koanf:"data"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig describes the transaction table and how to build the
// recommender from it.
type DataConfig struct {
	// Path is the CSV transaction table.
	Path string `koanf:"path"`

	// ItemColumn names the item identity column.
	ItemColumn string `koanf:"item_column"`

	// TagTypes names the tag columns, in column-block order.
	TagTypes []string `koanf:"tag_types"`

	// TagTypeWeights, when non-empty, is applied as tag-type weights after
	// construction (recycled or truncated to the tag type count).
	TagTypeWeights []float64 `koanf:"tag_type_weights"`

	// Normalize brings every tag-type block's maximum entry to 1 after
	// weighting.
	Normalize bool `koanf:"normalize"`
}

// LoggingConfig configures the shared logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			ItemColumn: "item",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file
// (SMR_CONFIG or ./smr.yaml), and SMR_-prefixed environment variables, in
// rising precedence, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path; the file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return load(path)
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps SMR_SERVER_ADDR → server.addr. The first underscore
// after the prefix separates the section; the remainder keeps its
// underscores (tag_types, item_column).
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat("smr.yaml"); err == nil {
		return "smr.yaml"
	}
	return ""
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return ErrNoDataPath
	}
	if c.Data.ItemColumn == "" {
		return ErrNoItemColumn
	}
	if len(c.Data.TagTypes) == 0 {
		return ErrNoTagTypes
	}
	for _, tt := range c.Data.TagTypes {
		if tt == c.Data.ItemColumn {
			return fmt.Errorf("config: tag type %q equals data.item_column", tt)
		}
	}
	return nil
}
