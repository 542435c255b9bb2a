package config

import (
	"fmt"
	"time"
)

// MaxCheckValue bounds the operand range of a law check; the number of facts
// grows with the square of it.
const MaxCheckValue = 256

// CheckConfig configures the law checker.
type CheckConfig struct {
	MaxValue int      `yaml:"max_value"` // operands are 0..MaxValue
	Workers  int      `yaml:"workers"`   // concurrent fact generators
	Timeout  string   `yaml:"timeout"`
	Laws     []string `yaml:"laws,omitempty"` // empty = all laws
}

// Validate checks that the check limits are within acceptable ranges.
func (c *CheckConfig) Validate() error {
	if c.MaxValue < 1 || c.MaxValue > MaxCheckValue {
		return fmt.Errorf("check.max_value must be in [1, %d]", MaxCheckValue)
	}
	if c.Workers < 1 {
		return fmt.Errorf("check.workers must be >= 1")
	}
	return nil
}

// GetTimeout returns the check timeout as a duration.
func (c *CheckConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
