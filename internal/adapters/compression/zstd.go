package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompression implements CompressionPort using the zstd compression
// algorithm. Each reader and writer owns its own decoder or encoder.
type ZstdCompression struct {
	level              zstd.EncoderLevel
	encoderConcurrency int
	decoderConcurrency int
}

// NewZstdCompression creates a zstd codec. The 1-9 level is mapped onto
// zstd's speed presets the same way the reference zstd levels are.
func NewZstdCompression(opts *domain.CompressionOptions) *ZstdCompression {
	return &ZstdCompression{
		level:              zstd.EncoderLevelFromZstd(int(opts.Level)),
		encoderConcurrency: int(opts.EncoderConcurrency),
		decoderConcurrency: int(opts.DecoderConcurrency),
	}
}

// NewReader returns a streaming decoder over r. Closing it releases the
// decoder's goroutines.
func (z *ZstdCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	var opts []zstd.DOption
	if z.decoderConcurrency > 0 {
		opts = append(opts, zstd.WithDecoderConcurrency(z.decoderConcurrency))
	}

	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}

// NewWriter returns a streaming encoder writing frames to w.
func (z *ZstdCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	opts := []zstd.EOption{zstd.WithEncoderLevel(z.level)}
	if z.encoderConcurrency > 0 {
		opts = append(opts, zstd.WithEncoderConcurrency(z.encoderConcurrency))
	}

	encoder, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}
	return encoder, nil
}

// Level returns the zstd encoder level in use.
func (z *ZstdCompression) Level() zstd.EncoderLevel {
	return z.level
}

func (z *ZstdCompression) Name() string {
	return string(Zstd)
}
