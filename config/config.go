package config

import (
	"fmt"

	"github.com/kbukum/guard/logger"
)

// Config holds the settings shared by the guard packages. Projects embed it
// in their own config structs:
//
//	type MyConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Listen string `yaml:"listen" mapstructure:"listen"`
//	}
type Config struct {
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Invariant InvariantConfig `yaml:"invariant" mapstructure:"invariant"`
}

// InvariantConfig controls how invariant violations are reported.
type InvariantConfig struct {
	// Log reports every violation through the logger at error level.
	Log bool `yaml:"log" mapstructure:"log"`
	// Stack captures the goroutine stack into each violation.
	Stack bool `yaml:"stack" mapstructure:"stack"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
