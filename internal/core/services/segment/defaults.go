package segment

import (
	"runtime"

	"github.com/iamNilotpal/checksum/internal/core/domain"
)

const (
	MinWorkers = 1
	MaxWorkers = 256

	DefaultParallelThreshold = 16 * 1024 * 1024 // 16MB
)

// DefaultOptions returns a SegmentOptions struct with recommended defaults.
func DefaultOptions() *domain.SegmentOptions {
	return &domain.SegmentOptions{
		Workers:           min(max(runtime.NumCPU(), MinWorkers), MaxWorkers),
		ParallelThreshold: DefaultParallelThreshold,
	}
}
