package ports

import "io"

// Defines the interface for compression operations.
// This allows us to swap compression algorithms without changing core logic.
type CompressionPort interface {
	// NewReader returns a reader yielding the decoded contents of r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter returns a writer encoding everything written to it into w.
	// Close flushes the encoder but does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// Name returns the codec name.
	Name() string
}
