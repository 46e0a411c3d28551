package ports

import (
	"hash"
	"io"
)

// Defines an interface for calculating and verifying data checksums.
type ChecksumPort interface {
	// Calculates the checksum of data in one shot.
	Calculate(data []byte) uint64

	// Reports whether the checksum of data equals expected.
	Verify(data []byte, expected uint64) bool

	// Size returns the checksum width in bytes.
	Size() uint8

	// Name returns the algorithm name.
	Name() string

	// NewHash returns a fresh incremental hash for streaming use.
	NewHash() hash.Hash32
}

// Combiner is implemented by checksums whose values for adjacent blocks can
// be merged without rereading the data.
type Combiner interface {
	// Combine returns the checksum of A followed by B from the checksums of
	// A and B and the length of B.
	Combine(sumA, sumB uint32, lenB int64) uint32
}

// StreamHasher is implemented by hashes that drive their own read loop.
type StreamHasher interface {
	hash.Hash32

	// ChecksumStream reads src to io.EOF, copying every byte to sink when it
	// is non-nil, and returns the checksum.
	ChecksumStream(src io.Reader, sink io.Writer) (uint32, error)

	// TotalBytesRead returns the number of bytes consumed by the last
	// ChecksumStream.
	TotalBytesRead() int64
}
