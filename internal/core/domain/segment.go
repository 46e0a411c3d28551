package domain

// SegmentOptions controls parallel checksumming of large files. A file is
// split into contiguous segments which are checksummed independently and
// merged with CRC combine.
type SegmentOptions struct {
	// Workers bounds the number of segments checksummed at once.
	// Must be between 1 and 256. Default is the number of CPUs.
	Workers int

	// ParallelThreshold is the smallest file size that is split. Smaller
	// files are checksummed sequentially.
	//
	// Default: 16MB
	ParallelThreshold int64
}
