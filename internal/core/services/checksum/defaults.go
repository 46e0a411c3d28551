package checksum

import (
	csum "github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/domain/config"
	"github.com/iamNilotpal/checksum/internal/core/services/segment"
)

func prepareDefaults(opts *domain.ChecksumServiceOptions) *domain.ChecksumServiceOptions {
	if opts.Checksum == nil {
		opts.Checksum = csum.DefaultOptions()
	} else if opts.Checksum.Algorithm == "" && opts.Checksum.Custom == nil {
		opts.Checksum.Algorithm = csum.CRC32IEEE
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	} else {
		if opts.Compression.Source == "" {
			opts.Compression.Source = compression.None
		}
		if opts.Compression.Sink == "" {
			opts.Compression.Sink = compression.None
		}
		if opts.Compression.Level == 0 {
			opts.Compression.Level = compression.DefaultLevel
		}
	}

	if opts.Segment == nil {
		opts.Segment = segment.DefaultOptions()
	} else if opts.Segment.Workers == 0 {
		opts.Segment.Workers = segment.DefaultOptions().Workers
	}

	if opts.Stream == nil {
		opts.Stream = config.DefaultStreamConfig()
	} else {
		if opts.Stream.ChunkSize == 0 {
			opts.Stream.ChunkSize = config.DefaultChunkSize
		}
		if opts.Stream.SegmentSize == 0 {
			opts.Stream.SegmentSize = config.DefaultSegmentSize
		}
	}

	return opts
}
