package domain

// CompressionCodec names a stream compression format.
type CompressionCodec string

// CompressionOptions configures how sources are decoded before they are
// checksummed and how the tee copy is encoded.
type CompressionOptions struct {
	// Source is the codec the input is compressed with. The checksum always
	// covers the decoded payload.
	//
	// Default: "none"
	Source CompressionCodec

	// Sink is the codec used to encode the tee copy of the payload.
	//
	// Default: "none"
	Sink CompressionCodec

	// Level defines the encoder level on a 1 (fastest) to 9 (best) scale.
	// zstd maps it onto its four speed presets, gzip uses it verbatim and
	// snappy ignores it.
	//
	// Default: 3
	Level uint8

	// EncoderConcurrency specifies the number of goroutines used by the zstd
	// encoder. Zero lets the codec pick.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of goroutines used by the zstd
	// decoder. Zero lets the codec pick.
	DecoderConcurrency uint8
}
