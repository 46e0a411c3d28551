package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCompression implements CompressionPort with the gzip format. The gzip
// trailer carries a CRC-32/IEEE of the payload.
type GzipCompression struct {
	level int
}

func NewGzipCompression(level uint8) *GzipCompression {
	return &GzipCompression{level: int(level)}
}

func (g *GzipCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip header: %w", err)
	}
	return reader, nil
}

func (g *GzipCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	writer, err := gzip.NewWriterLevel(w, g.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}
	return writer, nil
}

func (g *GzipCompression) Name() string {
	return string(Gzip)
}
