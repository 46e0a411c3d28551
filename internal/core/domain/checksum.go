package domain

import (
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/crc"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions defines which checksum the service computes.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32IEEE if not specified.
	Algorithm ChecksumAlgorithm

	// Polynomial is the generator polynomial used by the custom CRC-32
	// algorithm, written in reversed (LSB-first) form. It is ignored by the
	// preset algorithms.
	Polynomial uint32

	// BitOrder selects LSB-first (Reflected) or MSB-first (Normal) processing
	// for the custom CRC-32 algorithm. The presets are always Reflected.
	//
	// Default: crc.Reflected
	BitOrder crc.BitOrder

	// TableCacheSize bounds the number of CRC lookup tables kept in memory
	// and shared between engines.
	//
	// Default: 16
	TableCacheSize int

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.ChecksumPort
}
