// Package config provides configuration loading and validation for the
// regiondex CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidThreshold = errors.New("config: rebalance threshold must be positive")
	ErrInvalidFormat    = errors.New("config: output format must be table or yaml")
	ErrInvalidLogLevel  = errors.New("config: log level must be one of debug, info, warn, error")
)

// Default configuration values.
const (
	defaultThreshold = 15
	defaultFormat    = "table"
	defaultLogLevel  = "info"
)

// Config holds all configuration for the regiondex CLI.
type Config struct {
	Tree    TreeConfig    `mapstructure:"tree"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TreeConfig holds interval-tree tuning.
type TreeConfig struct {
	RebalanceThreshold int `mapstructure:"rebalance_threshold"`
}

// OutputConfig holds rendering options.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file and REGIONDEX_*
// environment variables. A missing config file is not an error; a
// malformed or invalid one is.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("regiondex")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/regiondex")
	}

	viperCfg.SetEnvPrefix("REGIONDEX")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("config: read failed: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("config: unmarshal failed: %w", unmarshalErr)
	}

	validateErr := validate(&cfg)
	if validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("tree.rebalance_threshold", defaultThreshold)
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.no_color", false)
	viperCfg.SetDefault("logging.level", defaultLogLevel)
}

// validate checks cross-field constraints.
func validate(cfg *Config) error {
	if cfg.Tree.RebalanceThreshold < 1 {
		return ErrInvalidThreshold
	}

	if cfg.Output.Format != "table" && cfg.Output.Format != "yaml" {
		return ErrInvalidFormat
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return ErrInvalidLogLevel
	}
}
