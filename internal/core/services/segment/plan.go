// Package segment splits a byte range into contiguous segments that can be
// checksummed independently.
package segment

import (
	"fmt"

	errs "github.com/iamNilotpal/checksum/pkg/errors"
)

// Range is the half-open byte range [Offset, Offset+Length).
type Range struct {
	Index  int
	Offset int64
	Length int64
}

// End returns the offset one past the last byte of r.
func (r Range) End() int64 {
	return r.Offset + r.Length
}

// Plan splits [0, size) into ranges of segmentSize bytes. The last range may
// be shorter. An empty input yields no ranges.
func Plan(size, segmentSize int64) ([]Range, error) {
	if size < 0 {
		return nil, errs.NewValidationError("size", size, fmt.Errorf("must not be negative"))
	}
	if segmentSize <= 0 {
		return nil, errs.NewValidationError("segmentSize", segmentSize, fmt.Errorf("must be positive"))
	}

	count := (size + segmentSize - 1) / segmentSize
	ranges := make([]Range, 0, count)

	for offset := int64(0); offset < size; offset += segmentSize {
		ranges = append(ranges, Range{
			Index:  len(ranges),
			Offset: offset,
			Length: min(segmentSize, size-offset),
		})
	}

	return ranges, nil
}
