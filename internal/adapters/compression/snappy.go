package compression

import (
	"io"

	"github.com/golang/snappy"
)

// SnappyCompression implements CompressionPort with the snappy framing
// format. It has no levels.
type SnappyCompression struct{}

func NewSnappyCompression() *SnappyCompression {
	return &SnappyCompression{}
}

func (s *SnappyCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

func (s *SnappyCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

func (s *SnappyCompression) Name() string {
	return string(Snappy)
}
