package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNullInput is matched by every NullInputError through errors.Is.
	ErrNullInput = errors.New("required input is nil")

	// ErrChecksumMismatch is matched by every MismatchError through errors.Is.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ErrorCategory classifies the errors raised by the checksum service so
// callers can decide how to report them without inspecting messages.
type ErrorCategory int

const (
	// ErrorInput indicates a missing or malformed argument supplied by the caller.
	ErrorInput ErrorCategory = iota + 1

	// ErrorStorage indicates errors related to underlying storage operations
	// such as opening, reading or writing files.
	ErrorStorage

	// ErrorCompression indicates a failure while decoding a compressed source
	// or encoding the tee copy.
	ErrorCompression

	// ErrorIntegrity indicates that a computed checksum did not match the
	// expected value.
	ErrorIntegrity
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorInput:
		return "input"
	case ErrorStorage:
		return "storage"
	case ErrorCompression:
		return "compression"
	case ErrorIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// NullInputError reports that a required buffer or stream was not supplied.
// It is fatal to the call that raised it.
type NullInputError struct {
	Argument string // Name of the argument that was nil.
}

// NewNullInputError creates a NullInputError for the named argument.
func NewNullInputError(argument string) *NullInputError {
	return &NullInputError{Argument: argument}
}

func (e *NullInputError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Argument)
}

func (e *NullInputError) Is(target error) bool {
	return target == ErrNullInput
}

// IsNullInputError reports whether err, or any error it wraps, is a NullInputError.
func IsNullInputError(err error) bool {
	return errors.Is(err, ErrNullInput)
}

// MismatchError is returned by verification when the computed checksum
// differs from the expected one.
type MismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %08x, got %08x", e.Expected, e.Actual)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// OperationError decorates a failure of a service level operation with the
// operation name, the path being processed and a category. Errors raised by
// the checksum engines themselves are never wrapped in it.
type OperationError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewOperationError creates an OperationError stamped with the current time.
func NewOperationError(category ErrorCategory, operation, path string, err error) *OperationError {
	return &OperationError{
		Err:       err,
		Path:      path,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *OperationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *OperationError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStorage:
		// Storage errors might be temporary (e.g. a file still being written).
		return true
	default:
		return false
	}
}

// CategoryOf returns the category of the first OperationError in err's chain,
// or zero when there is none.
func CategoryOf(err error) ErrorCategory {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Category
	}
	return 0
}
