package config

import (
	"fmt"
)

const (
	// MinChunkSize is the smallest read size accepted for streaming. Smaller
	// reads spend more time in system calls than in the checksum loop.
	MinChunkSize = 512

	// DefaultChunkSize matches the engines' own default read size.
	DefaultChunkSize = 8 * 1024 // 8KB.

	// MaxChunkSize bounds the memory held by one in-flight read.
	MaxChunkSize = 4 * 1024 * 1024 // 4MB.

	// MinSegmentSize is the smallest segment a file is split into for
	// parallel checksumming. Each segment costs one combine, which is
	// logarithmic in the segment length.
	MinSegmentSize = 64 * 1024 // 64KB.

	// DefaultSegmentSize is the recommended segment size for most files.
	DefaultSegmentSize = 8 * 1024 * 1024 // 8MB.

	// MaxSegmentSize defines the upper limit for one segment.
	MaxSegmentSize = 1024 * 1024 * 1024 // 1GB.
)

// StreamConfig holds the size constraints for streaming a source through a
// checksum engine.
type StreamConfig struct {
	// ChunkSize is the size of each read from the source.
	ChunkSize uint32

	// SegmentSize is the length of the segments used by parallel
	// checksumming.
	SegmentSize int64
}

// StreamConfigOption defines the signature for configuration options.
type StreamConfigOption func(*StreamConfig)

// WithChunkSize sets the read size. Values outside
// [MinChunkSize, MaxChunkSize] are ignored.
func WithChunkSize(size uint32) StreamConfigOption {
	return func(c *StreamConfig) {
		if size >= MinChunkSize && size <= MaxChunkSize {
			c.ChunkSize = size
		}
	}
}

// WithSegmentSize sets the segment size. Values outside
// [MinSegmentSize, MaxSegmentSize] are ignored.
func WithSegmentSize(size int64) StreamConfigOption {
	return func(c *StreamConfig) {
		if size >= MinSegmentSize && size <= MaxSegmentSize {
			c.SegmentSize = size
		}
	}
}

// Initializes a StreamConfig with default values and applies any provided
// options.
func NewStreamConfig(opts ...StreamConfigOption) *StreamConfig {
	cfg := DefaultStreamConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// StreamValidationError represents specific configuration validation errors.
type StreamValidationError struct {
	Field   string
	Value   int64
	Details string
}

func (e *StreamValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s (%d): %s", e.Field, e.Value, e.Details)
}

// Validate checks every size against its bounds.
func (c *StreamConfig) Validate() error {
	if c.ChunkSize < MinChunkSize {
		return &StreamValidationError{
			Field:   "ChunkSize",
			Value:   int64(c.ChunkSize),
			Details: fmt.Sprintf("below minimum allowed value of %d", MinChunkSize),
		}
	}

	if c.ChunkSize > MaxChunkSize {
		return &StreamValidationError{
			Field:   "ChunkSize",
			Value:   int64(c.ChunkSize),
			Details: fmt.Sprintf("exceeds maximum allowed value of %d", MaxChunkSize),
		}
	}

	if c.SegmentSize < MinSegmentSize {
		return &StreamValidationError{
			Field:   "SegmentSize",
			Value:   c.SegmentSize,
			Details: fmt.Sprintf("below minimum allowed value of %d", MinSegmentSize),
		}
	}

	if c.SegmentSize > MaxSegmentSize {
		return &StreamValidationError{
			Field:   "SegmentSize",
			Value:   c.SegmentSize,
			Details: fmt.Sprintf("exceeds maximum allowed value of %d", MaxSegmentSize),
		}
	}

	if int64(c.ChunkSize) > c.SegmentSize {
		return &StreamValidationError{
			Field:   "ChunkSize",
			Value:   int64(c.ChunkSize),
			Details: fmt.Sprintf("greater than SegmentSize (%d)", c.SegmentSize),
		}
	}

	return nil
}
