// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config reads runtime settings (RPC endpoint, network, verify tuning) that
// viper has collected from flags, VEBANNY_* environment variables and cli.yaml.
// Resolver tables live in globalconfig instead.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	return &Config{v: viper.GetViper()}
}

// NewWithViper wraps a dedicated viper instance, used by tests.
func NewWithViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigIntValue(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetConfigDurationValue(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}
