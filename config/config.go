package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"

	"github.com/sck451/BitPacker/shared"
)

const (
	MinBufferCapacity = 1 << 4
	MaxBufferCapacity = 1 << 30

	MaxCompactThreshold = 1 << 30
)

const (
	DefaultDataDirName = "data"

	DefaultBufferCapacity   = 1 << 6
	DefaultCompactThreshold = 1 << 12
)

var (
	DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "bitpacker", DefaultDataDirName)
)

type Config struct {
	DataDir string `mapstructure:"datadir"`

	// Buffer tuning.
	BufferCapacity   uint `mapstructure:"buffer-capacity"`
	CompactThreshold uint `mapstructure:"compact-threshold"`
}

func (cfg *Config) Validate() error {
	if !shared.IsPowerOfTwo(uint64(cfg.BufferCapacity)) {
		return fmt.Errorf("invalid `BufferCapacity`; expected: a power of 2, given: %d", cfg.BufferCapacity)
	}

	if cfg.BufferCapacity < MinBufferCapacity {
		return fmt.Errorf("invalid `BufferCapacity`; expected: >= %d, given: %d", MinBufferCapacity, cfg.BufferCapacity)
	}

	if cfg.BufferCapacity > MaxBufferCapacity {
		return fmt.Errorf("invalid `BufferCapacity`; expected: <= %d, given: %d", MaxBufferCapacity, cfg.BufferCapacity)
	}

	if cfg.CompactThreshold < cfg.BufferCapacity {
		return fmt.Errorf("invalid `CompactThreshold`; expected: >= `BufferCapacity` (%d), given: %d", cfg.BufferCapacity, cfg.CompactThreshold)
	}

	if cfg.CompactThreshold > MaxCompactThreshold {
		return fmt.Errorf("invalid `CompactThreshold`; expected: <= %d, given: %d", MaxCompactThreshold, cfg.CompactThreshold)
	}

	return nil
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:          DefaultDataDir,
		BufferCapacity:   DefaultBufferCapacity,
		CompactThreshold: DefaultCompactThreshold,
	}
}
