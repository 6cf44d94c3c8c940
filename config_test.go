package sentiment

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}

	tests := []struct {
		mutate func(*Config)
		target error
		desc   string
	}{
		{func(c *Config) { c.PositiveThreshold = 1.5 }, ErrInvalidConfig, "Positive threshold too high"},
		{func(c *Config) { c.NegativeThreshold = 0.1 }, ErrInvalidConfig, "Negative threshold above zero"},
		{func(c *Config) { c.NegationWindow = 0 }, ErrInvalidConfig, "Empty negation window"},
		{func(c *Config) { c.NegationScalar = 0.5 }, ErrInvalidConfig, "Non-negating scalar"},
		{func(c *Config) { c.Alpha = 0 }, ErrInvalidConfig, "Zero alpha"},
		{func(c *Config) { c.Alpha = math.Inf(1) }, ErrInvalidConfig, "Infinite alpha"},
		{func(c *Config) { c.ExclamationBoost = -1 }, ErrInvalidConfig, "Negative emphasis"},
		{func(c *Config) { c.MaxExclamations = -1 }, ErrInvalidConfig, "Negative exclamation cap"},
		{func(c *Config) { c.ContrastAfter = math.NaN() }, ErrInvalidConfig, "NaN contrast weight"},
		{func(c *Config) { c.Reduction = "soundex" }, ErrUnknownReduction, "Unknown reduction"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, tt.target) {
				t.Errorf("Validate() = %v, want %v", err, tt.target)
			}
		})
	}
}
