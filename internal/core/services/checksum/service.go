// Package checksum computes and verifies checksums of readers, files and
// directory trees.
package checksum

import (
	"context"
	"fmt"
	"hash"
	"io"

	csum "github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/crc"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/pool"
	"github.com/iamNilotpal/checksum/pkg/system"
	"go.uber.org/zap"
)

// Service streams sources through a checksum engine. It is safe for
// concurrent use: every call gets its own engine.
type Service struct {
	options  *domain.ChecksumServiceOptions
	checksum ports.ChecksumPort
	source   ports.CompressionPort // Decodes inputs before checksumming.
	sink     ports.CompressionPort // Encodes the tee copy.
	fs       ports.FileSystemPort
	buffers  *pool.BufferPool
	log      *zap.SugaredLogger
}

func New(opts *domain.ChecksumServiceOptions, log *zap.SugaredLogger) (*Service, error) {
	if opts == nil {
		opts = &domain.ChecksumServiceOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	buffers := pool.NewBufferPool(int(opts.Stream.ChunkSize))

	sum, err := csum.New(opts.Checksum, crc.WithBufferPool(buffers))
	if err != nil {
		return nil, err
	}

	source, err := compression.New(opts.Compression.Source, opts.Compression)
	if err != nil {
		return nil, err
	}

	sink, err := compression.New(opts.Compression.Sink, opts.Compression)
	if err != nil {
		return nil, err
	}

	log.Debugw(
		"checksum service ready",
		"algorithm", sum.Name(),
		"source", source.Name(),
		"sink", sink.Name(),
		"chunkSize", opts.Stream.ChunkSize,
	)

	return &Service{
		options:  opts,
		checksum: sum,
		source:   source,
		sink:     sink,
		fs:       fs.NewLocalFileSystem(),
		buffers:  buffers,
		log:      log,
	}, nil
}

// Algorithm returns the name of the checksum in use.
func (s *Service) Algorithm() string {
	return s.checksum.Name()
}

// SumReader decodes r with the source codec and checksums the payload. When
// sink is non-nil the payload is also encoded with the sink codec and written
// to it. Cancellation of ctx is observed between reads.
func (s *Service) SumReader(ctx context.Context, r io.Reader, sink io.Writer) (*domain.Result, error) {
	if r == nil {
		return nil, errs.NewNullInputError("reader")
	}
	return s.sumReader(ctx, "", r, sink)
}

func (s *Service) sumReader(ctx context.Context, path string, r io.Reader, sink io.Writer) (*domain.Result, error) {
	decoded, err := s.source.NewReader(system.Reader(ctx, r))
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorCompression, "decode", path, err)
	}
	defer decoded.Close()

	var encoder io.WriteCloser
	var out io.Writer
	if sink != nil {
		encoder, err = s.sink.NewWriter(system.Writer(ctx, sink))
		if err != nil {
			return nil, errs.NewOperationError(errs.ErrorCompression, "encode", path, err)
		}
		out = encoder
	}

	sum, n, err := s.stream(s.checksum.NewHash(), decoded, out)
	if encoder != nil {
		if cerr := encoder.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorStorage, "checksum", path, err)
	}

	return &domain.Result{
		Path:      path,
		Algorithm: s.checksum.Name(),
		Checksum:  sum,
		Size:      n,
		Segments:  1,
	}, nil
}

// stream feeds r into h, copying to w when it is non-nil, and returns the
// checksum and the number of bytes consumed.
func (s *Service) stream(h hash.Hash32, r io.Reader, w io.Writer) (uint32, int64, error) {
	if sh, ok := h.(ports.StreamHasher); ok {
		sum, err := sh.ChecksumStream(r, w)
		return sum, sh.TotalBytesRead(), err
	}

	chunk := s.buffers.Get()
	defer s.buffers.Put(chunk)

	dst := io.Writer(h)
	if w != nil {
		dst = io.MultiWriter(h, w)
	}

	n, err := io.CopyBuffer(dst, r, *chunk)
	if err != nil {
		return 0, n, err
	}
	return h.Sum32(), n, nil
}

// SumFile checksums the file at path.
func (s *Service) SumFile(ctx context.Context, path string) (*domain.Result, error) {
	return s.SumFileTo(ctx, path, nil)
}

// SumFileTo checksums the file at path and tees the payload to sink.
func (s *Service) SumFileTo(ctx context.Context, path string, sink io.Writer) (*domain.Result, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorStorage, "open", path, err)
	}
	defer file.Close()

	result, err := s.sumReader(ctx, path, file, sink)
	if err != nil {
		s.log.Errorw("checksum failed", "path", path, "error", err)
		return nil, err
	}

	s.log.Infow(
		"checksum computed",
		"path", path,
		"algorithm", result.Algorithm,
		"checksum", fmt.Sprintf("%08x", result.Checksum),
		"bytes", result.Size,
	)
	return result, nil
}

// SumTree checksums every regular file below dir whose extension matches
// ext, or every file when ext is empty. Results are ordered by path.
func (s *Service) SumTree(ctx context.Context, dir, ext string) ([]*domain.Result, error) {
	files, err := s.fs.ListFiles(dir, ext)
	if err != nil {
		return nil, errs.NewOperationError(errs.ErrorStorage, "list", dir, err)
	}

	results := make([]*domain.Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := s.SumFile(ctx, file)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	s.log.Infow("tree checksummed", "directory", dir, "files", len(results))
	return results, nil
}

// Verify checksums the file at path and compares it with expected. A
// difference is reported as a *errors.MismatchError.
func (s *Service) Verify(ctx context.Context, path string, expected uint32) error {
	result, err := s.SumFile(ctx, path)
	if err != nil {
		return err
	}

	if result.Checksum != expected {
		s.log.Warnw(
			"checksum mismatch",
			"path", path,
			"expected", fmt.Sprintf("%08x", expected),
			"actual", fmt.Sprintf("%08x", result.Checksum),
		)
		return errs.NewOperationError(
			errs.ErrorIntegrity, "verify", path,
			&errs.MismatchError{Expected: expected, Actual: result.Checksum},
		)
	}
	return nil
}
