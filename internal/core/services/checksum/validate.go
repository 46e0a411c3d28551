package checksum

import (
	csum "github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/services/segment"
)

// Validate checks every member of opts. Defaults must already be applied.
func Validate(opts *domain.ChecksumServiceOptions) error {
	if err := csum.Validate(opts.Checksum); err != nil {
		return err
	}

	if err := compression.Validate(opts.Compression); err != nil {
		return err
	}

	if err := segment.Validate(opts.Segment); err != nil {
		return err
	}

	if err := opts.Stream.Validate(); err != nil {
		return err
	}

	return nil
}
