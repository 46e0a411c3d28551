package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	csum "github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	streamcfg "github.com/iamNilotpal/checksum/internal/core/domain/config"
	"github.com/iamNilotpal/checksum/internal/core/services/segment"
	"github.com/iamNilotpal/checksum/pkg/crc"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Checksum    ChecksumConfig    `yaml:"checksum"`
	Compression CompressionConfig `yaml:"compression"`
	Segment     SegmentConfig     `yaml:"segment"`
	Logging     LoggingConfig     `yaml:"logging"`
	Output      OutputConfig      `yaml:"output"`
}

// Selects the checksum algorithm.
type ChecksumConfig struct {
	Algorithm  string `yaml:"algorithm"`        // crc32-ieee, crc32-castagnoli, crc32-koopman, crc32-custom, adler32
	Polynomial string `yaml:"polynomial"`       // Hex polynomial for crc32-custom, reversed form
	BitOrder   string `yaml:"bit_order"`        // reflected or normal
	TableCache int    `yaml:"table_cache_size"` // Number of cached CRC tables
}

type CompressionConfig struct {
	Source string `yaml:"source"` // Codec of the inputs
	Sink   string `yaml:"sink"`   // Codec of the tee copy
	Level  uint8  `yaml:"level"`  // Encoder level (1-9)
}

type SegmentConfig struct {
	ChunkSize         uint32 `yaml:"chunk_size"`         // Read size
	SegmentSize       int64  `yaml:"segment_size"`       // Parallel segment size
	Workers           int    `yaml:"workers"`            // Concurrent segments
	ParallelThreshold int64  `yaml:"parallel_threshold"` // Smallest file split in parallel
}

type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // Human readable output
}

type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml or proto
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Checksum: ChecksumConfig{
			Algorithm:  string(csum.CRC32IEEE),
			Polynomial: fmt.Sprintf("%#08x", uint32(crc.IEEE)),
			BitOrder:   crc.Reflected.String(),
			TableCache: crc.DefaultTableCacheSize,
		},
		Compression: CompressionConfig{
			Source: string(compression.None),
			Sink:   string(compression.None),
			Level:  compression.DefaultLevel,
		},
		Segment: SegmentConfig{
			ChunkSize:         streamcfg.DefaultChunkSize,
			SegmentSize:       streamcfg.DefaultSegmentSize,
			Workers:           segment.DefaultOptions().Workers,
			ParallelThreshold: segment.DefaultParallelThreshold,
		},
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Format: "text"},
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their defaults.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if _, err := ParsePolynomial(config.Checksum.Polynomial); err != nil {
		return fmt.Errorf("checksum.polynomial: %w", err)
	}

	if _, err := crc.ParseBitOrder(config.Checksum.BitOrder); err != nil {
		return fmt.Errorf("checksum.bit_order: %w", err)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	switch config.Output.Format {
	case "text", "json", "yaml", "proto":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, proto")
	}

	return nil
}

// ParsePolynomial parses a polynomial written in hex with or without a 0x
// prefix.
func ParsePolynomial(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid polynomial %q: %w", s, err)
	}
	return uint32(v), nil
}

// ToOptions converts the file configuration into service options. The
// options are validated by the service itself.
func (c *Config) ToOptions() (*domain.ChecksumServiceOptions, error) {
	poly, err := ParsePolynomial(c.Checksum.Polynomial)
	if err != nil {
		return nil, err
	}

	order, err := crc.ParseBitOrder(c.Checksum.BitOrder)
	if err != nil {
		return nil, err
	}

	return &domain.ChecksumServiceOptions{
		Checksum: &domain.ChecksumOptions{
			Algorithm:      domain.ChecksumAlgorithm(c.Checksum.Algorithm),
			Polynomial:     poly,
			BitOrder:       order,
			TableCacheSize: c.Checksum.TableCache,
		},
		Compression: &domain.CompressionOptions{
			Source: domain.CompressionCodec(c.Compression.Source),
			Sink:   domain.CompressionCodec(c.Compression.Sink),
			Level:  c.Compression.Level,
		},
		Segment: &domain.SegmentOptions{
			Workers:           c.Segment.Workers,
			ParallelThreshold: c.Segment.ParallelThreshold,
		},
		Stream: &streamcfg.StreamConfig{
			ChunkSize:   c.Segment.ChunkSize,
			SegmentSize: c.Segment.SegmentSize,
		},
	}, nil
}
