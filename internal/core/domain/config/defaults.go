package config

// Returns a StreamConfig with recommended defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{
		ChunkSize:   DefaultChunkSize,
		SegmentSize: DefaultSegmentSize,
	}
}

// Returns config tuned for many small files.
func DefaultSmallStreamConfig() *StreamConfig {
	return &StreamConfig{
		ChunkSize:   4 * 1024,
		SegmentSize: MinSegmentSize,
	}
}

// Returns config tuned for large files on fast storage.
func DefaultLargeStreamConfig() *StreamConfig {
	return &StreamConfig{
		ChunkSize:   256 * 1024,
		SegmentSize: 64 * 1024 * 1024,
	}
}
