// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rovshanmuradov/marginal/internal/margin"
	"github.com/spf13/viper"
)

type Config struct {
	DebugLogging    bool   `mapstructure:"debug_logging"`
	LogFile         string `mapstructure:"log_file"`
	DefaultLeverage string `mapstructure:"default_leverage"`
	DefaultOrder    string `mapstructure:"default_order"`
}

const (
	DefaultLogFile  = "logs/marginal.log"
	DefaultLeverage = "1/10"
	DefaultOrder    = "buy"

	envPrefix = "MARGINAL"
)

// LoadConfig reads the config file at path, if there is one, and applies
// MARGINAL_* environment overrides on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"debug_logging":    false,
		"log_file":         DefaultLogFile,
		"default_leverage": DefaultLeverage,
		"default_order":    DefaultOrder,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.LogFile) == "" {
		return errors.New("log_file is empty")
	}
	if _, err := cfg.Leverage(); err != nil {
		return fmt.Errorf("invalid default_leverage: %w", err)
	}
	if _, err := cfg.Order(); err != nil {
		return fmt.Errorf("invalid default_order: %w", err)
	}
	return nil
}

// Leverage returns the configured starting leverage.
func (c *Config) Leverage() (margin.Leverage, error) {
	return margin.ParseLeverage(c.DefaultLeverage)
}

// Order returns the configured starting order type.
func (c *Config) Order() (margin.OrderType, error) {
	return margin.ParseOrderType(c.DefaultOrder)
}

// InitialForm returns an empty form primed with the configured defaults.
// LoadConfig has already validated both values.
func (c *Config) InitialForm() margin.Form {
	form := margin.NewForm()
	if l, err := c.Leverage(); err == nil {
		form.Leverage = l
	}
	if o, err := c.Order(); err == nil {
		form.Order = o
	}
	return form
}
