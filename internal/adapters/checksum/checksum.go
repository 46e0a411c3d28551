package checksum

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/crc"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC32Castagnoli uses the Castagnoli (CRC-32C) polynomial
	CRC32Castagnoli domain.ChecksumAlgorithm = "crc32-castagnoli"

	// CRC32Koopman uses the Koopman polynomial
	CRC32Koopman domain.ChecksumAlgorithm = "crc32-koopman"

	// CRC32Custom uses the polynomial and bit order from the options
	CRC32Custom domain.ChecksumAlgorithm = "crc32-custom"

	// Adler32 provides the zlib Adler-32 checksum
	Adler32 domain.ChecksumAlgorithm = "adler32"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm:      CRC32IEEE,
		Polynomial:     crc.IEEE,
		BitOrder:       crc.Reflected,
		TableCacheSize: crc.DefaultTableCacheSize,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom != nil {
		return nil
	}

	switch input.Algorithm {
	case CRC32IEEE, CRC32Castagnoli, CRC32Koopman, Adler32:
	case CRC32Custom:
		if input.Polynomial == 0 {
			return errs.NewValidationError("polynomial", input.Polynomial, fmt.Errorf("must not be zero"))
		}
		if input.BitOrder != crc.Reflected && input.BitOrder != crc.Normal {
			return errs.NewValidationError("bitOrder", input.BitOrder, fmt.Errorf("unknown bit order"))
		}
	default:
		return errs.NewValidationError(
			"algorithm", input.Algorithm, fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm),
		)
	}

	if input.TableCacheSize < 0 {
		return errs.NewValidationError("tableCacheSize", input.TableCacheSize, fmt.Errorf("must not be negative"))
	}
	return nil
}

// New returns the checksum selected by opts. CRC algorithms share one table
// cache per call and apply engineOpts to every engine they create.
func New(opts *domain.ChecksumOptions, engineOpts ...crc.Option) (ports.ChecksumPort, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	if opts.Algorithm == Adler32 {
		return NewAdler32(), nil
	}

	cache, err := crc.NewTableCache(opts.TableCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create table cache: %w", err)
	}

	switch opts.Algorithm {
	case CRC32Castagnoli:
		return NewCRC32(CRC32Castagnoli, crc.Castagnoli, crc.Reflected, cache, engineOpts...), nil
	case CRC32Koopman:
		return NewCRC32(CRC32Koopman, crc.Koopman, crc.Reflected, cache, engineOpts...), nil
	case CRC32Custom:
		return NewCRC32(CRC32Custom, opts.Polynomial, opts.BitOrder, cache, engineOpts...), nil
	default:
		return NewCRC32(CRC32IEEE, crc.IEEE, crc.Reflected, cache, engineOpts...), nil
	}
}
