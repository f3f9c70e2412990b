package hexdump

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config is the resolved configuration handed to [New].
type Config struct {
	// Mode is the display mode. Empty means TwoByteHex.
	Mode Mode `yaml:"mode,omitempty"`
	// Offset is the number of leading bytes to skip.
	Offset int `yaml:"offset,omitempty"`
	// Length limits the number of bytes interpreted after Offset.
	// Zero means no limit.
	Length int `yaml:"length,omitempty"`
}

// Normalize replaces negative Offset and Length with their absolute values
// and resolves an empty Mode to TwoByteHex.
func (c Config) Normalize() Config {
	c.Offset = abs(c.Offset)
	c.Length = abs(c.Length)
	if c.Mode == "" {
		c.Mode = TwoByteHex
	}
	return c
}

// Validate reports whether the mode is one of [Modes].
func (c Config) Validate() error {
	_, _, err := c.Mode.resolve()
	return err
}

// LoadConfig decodes a YAML config document from r. Unknown keys are
// rejected. An empty document yields the default config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg.Normalize(), nil
}

// WriteConfig encodes cfg as YAML to w.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// abs saturates math.MinInt to math.MaxInt.
func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}
