package segment

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
)

// It ensures that all options are within acceptable ranges.
func Validate(opts *domain.SegmentOptions) error {
	if opts.Workers < MinWorkers || opts.Workers > MaxWorkers {
		return errs.NewValidationError(
			"workers", opts.Workers, fmt.Errorf("must be between %d and %d", MinWorkers, MaxWorkers),
		)
	}

	if opts.ParallelThreshold < 0 {
		return errs.NewValidationError("parallelThreshold", opts.ParallelThreshold, fmt.Errorf("must not be negative"))
	}

	return nil
}
