package checksum

import (
	"context"
	"fmt"
	"io"

	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/internal/core/services/segment"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/system"
	"golang.org/x/sync/errgroup"
)

// SumFileParallel checksums the file at path by splitting it into segments,
// checksumming them concurrently and merging the segment checksums with
// combine. The result equals SumFile's.
//
// It requires a combinable (CRC) algorithm and an uncompressed source. Files
// below the parallel threshold are checksummed sequentially.
func (s *Service) SumFileParallel(ctx context.Context, path string) (*domain.Result, error) {
	combiner, ok := s.checksum.(ports.Combiner)
	if !ok {
		return nil, errs.NewValidationError(
			"algorithm", s.checksum.Name(), fmt.Errorf("checksums cannot be combined"),
		)
	}
	if s.source.Name() != string(compression.None) {
		return nil, errs.NewValidationError(
			"source", s.source.Name(), fmt.Errorf("compressed sources cannot be split"),
		)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorStorage, "stat", path, err)
	}

	size := info.Size()
	if size < s.options.Segment.ParallelThreshold {
		return s.SumFile(ctx, path)
	}

	ranges, err := segment.Plan(size, s.options.Stream.SegmentSize)
	if err != nil {
		return nil, err
	}
	if len(ranges) < 2 {
		return s.SumFile(ctx, path)
	}

	file, err := s.fs.Open(path)
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorStorage, "open", path, err)
	}
	defer file.Close()

	sums := make([]uint32, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Segment.Workers)

	for _, r := range ranges {
		r := r
		g.Go(func() error {
			section := io.NewSectionReader(file, r.Offset, r.Length)

			sum, n, err := s.stream(s.checksum.NewHash(), system.Reader(gctx, section), nil)
			if err != nil {
				return err
			}
			if n != r.Length {
				return fmt.Errorf("segment %d: read %d of %d bytes: %w", r.Index, n, r.Length, io.ErrUnexpectedEOF)
			}

			sums[r.Index] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Errorw("parallel checksum failed", "path", path, "error", err)
		return nil, errs.NewOperationError(errs.ErrorStorage, "checksum", path, err)
	}

	total := sums[0]
	for _, r := range ranges[1:] {
		total = combiner.Combine(total, sums[r.Index], r.Length)
	}

	s.log.Infow(
		"checksum computed",
		"path", path,
		"algorithm", s.checksum.Name(),
		"checksum", fmt.Sprintf("%08x", total),
		"bytes", size,
		"segments", len(ranges),
	)

	return &domain.Result{
		Path:      path,
		Algorithm: s.checksum.Name(),
		Checksum:  total,
		Size:      size,
		Segments:  len(ranges),
	}, nil
}
