package domain

import "github.com/iamNilotpal/checksum/internal/core/domain/config"

// ChecksumServiceOptions bundles everything the checksum service needs.
// Nil members are replaced by their package defaults.
type ChecksumServiceOptions struct {
	Checksum    *ChecksumOptions
	Compression *CompressionOptions
	Segment     *SegmentOptions
	Stream      *config.StreamConfig
}
