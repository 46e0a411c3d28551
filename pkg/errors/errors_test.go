package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullInputError(t *testing.T) {
	err := fmt.Errorf("checksum: %w", NewNullInputError("source"))

	assert.True(t, IsNullInputError(err))
	assert.True(t, errors.Is(err, ErrNullInput))
	assert.Contains(t, err.Error(), "source must not be nil")
	assert.False(t, IsNullInputError(io.EOF))
}

func TestMismatchError(t *testing.T) {
	err := &MismatchError{Expected: 0xcbf43926, Actual: 0}

	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	assert.Equal(t, "checksum mismatch: expected cbf43926, got 00000000", err.Error())
}

func TestOperationError(t *testing.T) {
	err := NewOperationError(ErrorStorage, "open", "/tmp/x", io.ErrUnexpectedEOF)

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, ErrorStorage, CategoryOf(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, err.IsRetryAble())
	assert.Equal(t, "[storage] open /tmp/x: unexpected EOF", err.Error())

	integrity := NewOperationError(ErrorIntegrity, "verify", "", &MismatchError{})
	assert.False(t, integrity.IsRetryAble())
	assert.ErrorIs(t, integrity, ErrChecksumMismatch)
	assert.Equal(t, ErrorCategory(0), CategoryOf(io.EOF))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("config: %w", NewValidationError("chunkSize", 0, errors.New("must be positive")))

	require.True(t, IsValidationError(err))
	ve := AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "chunkSize", ve.Field)
	assert.Equal(t, 0, ve.Value)
	assert.Nil(t, AsValidationError(io.EOF))
}

func TestErrorCategoryString(t *testing.T) {
	cases := map[ErrorCategory]string{
		ErrorInput:       "input",
		ErrorStorage:     "storage",
		ErrorCompression: "compression",
		ErrorIntegrity:   "integrity",
		ErrorCategory(9): "unknown",
	}
	for category, want := range cases {
		assert.Equal(t, want, category.String())
	}
}
