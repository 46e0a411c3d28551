package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(16)
	require.Equal(t, 16, bp.Size())

	chunk := bp.Get()
	require.NotNil(t, chunk)
	assert.Len(t, *chunk, 16)

	*chunk = (*chunk)[:3]
	bp.Put(chunk)

	again := bp.Get()
	assert.Len(t, *again, 16)
}

func TestBufferPoolRejectsForeignChunks(t *testing.T) {
	bp := NewBufferPool(8)

	foreign := make([]byte, 32)
	bp.Put(&foreign)
	bp.Put(nil)

	assert.Len(t, *bp.Get(), 8)
}

func TestBufferPoolMinimumSize(t *testing.T) {
	assert.Equal(t, 1, NewBufferPool(0).Size())
}
