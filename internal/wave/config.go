package wave

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tension pass variants.
const (
	// TensionInPlace is the shipped default: a single sequential scan
	// that reads and writes live array state.
	TensionInPlace = "inplace"
	// TensionBuffered accumulates transfers from start-of-tick state
	// before applying them.
	TensionBuffered = "buffered"
)

// Config controls the wave field dimensions and damping.
type Config struct {
	// Samples is the number of surface samples across the width.
	Samples int `yaml:"samples"`
	// Width and Height are the field dimensions in world units. Samples
	// are spaced Width/(Samples-1) apart and relax toward Height/2.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// DecayRate controls per-tick velocity damping. The effective
	// multiplier is 1 - DecayRate/10, so values at or above 10 amplify;
	// useful settings stay in (0, 0.3].
	DecayRate float64 `yaml:"decay_rate"`
	// Tension selects the tension pass variant. Empty means
	// TensionInPlace.
	Tension string `yaml:"tension"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Samples:   96,
		Width:     12,
		Height:    6,
		DecayRate: 0.02,
		Tension:   TensionInPlace,
	}
}

// Validate reports whether the configuration is usable. All violations
// wrap ErrInvalidArgument.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidArgument, c.Samples)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width must be non-negative, got %v", ErrInvalidArgument, c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("%w: height must be non-negative, got %v", ErrInvalidArgument, c.Height)
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("%w: decay_rate must be non-negative, got %v", ErrInvalidArgument, c.DecayRate)
	}
	switch c.Tension {
	case "", TensionInPlace, TensionBuffered:
	default:
		return fmt.Errorf("%w: unknown tension variant %q", ErrInvalidArgument, c.Tension)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["samples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Samples = parsed
		}
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["decay_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.DecayRate = parsed
		}
	}
	if v, ok := cfg["tension"]; ok {
		if v == TensionInPlace || v == TensionBuffered {
			c.Tension = v
		}
	}
	return c
}

// LoadConfig reads a YAML configuration file on top of the defaults and
// validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
