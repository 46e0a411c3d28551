package pool

import "sync"

// BufferPool manages a pool of fixed size byte chunks used as read buffers
// while streaming data through a checksum engine.
type BufferPool struct {
	size int       // Length of each chunk.
	pool sync.Pool // Thread-safe pool of chunks.
}

// Creates a new buffer pool handing out chunks of the given size.
func NewBufferPool(size int) *BufferPool {
	if size <= 0 {
		size = 1
	}

	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				chunk := make([]byte, size)
				return &chunk
			},
		},
	}
}

// Size returns the length of the chunks handed out by the pool.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Retrieves a chunk from the pool. The chunk always has length Size().
func (bp *BufferPool) Get() *[]byte {
	chunk := bp.pool.Get().(*[]byte)
	*chunk = (*chunk)[:bp.size]
	return chunk
}

// Returns a chunk to the pool.
func (bp *BufferPool) Put(chunk *[]byte) {
	// Don't pool chunks that were replaced or resized by the caller.
	if chunk == nil || cap(*chunk) != bp.size {
		return
	}
	bp.pool.Put(chunk)
}
