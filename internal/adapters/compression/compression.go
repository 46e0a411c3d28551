package compression

import (
	"fmt"
	"io"
	"runtime"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
)

const (
	None   domain.CompressionCodec = "none"
	Zstd   domain.CompressionCodec = "zstd"
	Gzip   domain.CompressionCodec = "gzip"
	Snappy domain.CompressionCodec = "snappy"
)

// Compression level constants define the trade-off between compression ratio and speed.
// Higher levels provide better compression at the cost of increased CPU usage and time.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 3 // Balanced between speed and compression ratio
	BestLevel    uint8 = 9 // Maximum compression ratio, higher CPU usage
)

// Returns CompressionOptions struct initialized with recommended default
// values. Both directions are uncompressed.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Source: None,
		Sink:   None,
		Level:  DefaultLevel,
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if !supported(input.Source) {
		return errs.NewValidationError("source", input.Source, fmt.Errorf("unsupported codec: %s", input.Source))
	}
	if !supported(input.Sink) {
		return errs.NewValidationError("sink", input.Sink, fmt.Errorf("unsupported codec: %s", input.Sink))
	}

	if input.Level < FastestLevel || input.Level > BestLevel {
		return errs.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level),
		)
	}

	if int(input.EncoderConcurrency) > runtime.NumCPU() {
		return errs.NewValidationError(
			"encoderConcurrency", input.EncoderConcurrency,
			fmt.Errorf("encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency),
		)
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return errs.NewValidationError(
			"decoderConcurrency", input.DecoderConcurrency,
			fmt.Errorf("decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency),
		)
	}

	return nil
}

func supported(codec domain.CompressionCodec) bool {
	switch codec {
	case None, Zstd, Gzip, Snappy:
		return true
	}
	return false
}

// New returns the codec named by codec, configured from opts.
func New(codec domain.CompressionCodec, opts *domain.CompressionOptions) (ports.CompressionPort, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}

	switch codec {
	case None, "":
		return NewNoCompression(), nil
	case Zstd:
		return NewZstdCompression(opts), nil
	case Gzip:
		return NewGzipCompression(opts.Level), nil
	case Snappy:
		return NewSnappyCompression(), nil
	default:
		return nil, errs.NewValidationError("codec", codec, fmt.Errorf("unsupported codec: %s", codec))
	}
}

type noCompression struct{}

// NewNoCompression returns a pass-through codec.
func NewNoCompression() *noCompression {
	return &noCompression{}
}

func (noCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (noCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (noCompression) Name() string {
	return string(None)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
