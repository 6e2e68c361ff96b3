package pathtree

import (
	"fmt"

	"github.com/signadot/pathtree/hashindex"
)

// Config holds store limits.  Zero limits are unbounded.
type Config struct {
	// MaxDirectories bounds the number of directories, root included.
	MaxDirectories int `json:"max_directories,omitempty" yaml:"max_directories,omitempty"`
	// MaxValueBytes bounds the length of a single value.
	MaxValueBytes int `json:"max_value_bytes,omitempty" yaml:"max_value_bytes,omitempty"`
	// InitialCapacity is the initial slot count of the value index.
	InitialCapacity int `json:"initial_capacity,omitempty" yaml:"initial_capacity,omitempty"`
	// MaxCapacity bounds the slot count of the value index.
	MaxCapacity int `json:"max_capacity,omitempty" yaml:"max_capacity,omitempty"`
}

// DefaultConfig returns an unbounded configuration.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: hashindex.DefaultCapacity,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.MaxDirectories != 0 {
		c.MaxDirectories = source.MaxDirectories
	}
	if source.MaxValueBytes != 0 {
		c.MaxValueBytes = source.MaxValueBytes
	}
	if source.InitialCapacity != 0 {
		c.InitialCapacity = source.InitialCapacity
	}
	if source.MaxCapacity != 0 {
		c.MaxCapacity = source.MaxCapacity
	}
}

func (c *Config) Validate() error {
	switch {
	case c.MaxDirectories < 0:
		return fmt.Errorf("max_directories %d is negative", c.MaxDirectories)
	case c.MaxValueBytes < 0:
		return fmt.Errorf("max_value_bytes %d is negative", c.MaxValueBytes)
	case c.InitialCapacity < 2:
		return fmt.Errorf("initial_capacity %d is below 2", c.InitialCapacity)
	case c.MaxCapacity < 0:
		return fmt.Errorf("max_capacity %d is negative", c.MaxCapacity)
	case c.MaxCapacity > 0 && c.MaxCapacity < c.InitialCapacity:
		return fmt.Errorf("max_capacity %d is below initial_capacity %d", c.MaxCapacity, c.InitialCapacity)
	}
	return nil
}
