package crc

import (
	"fmt"
	"io"

	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/pool"
)

const (
	// Size of a CRC-32 checksum in bytes.
	Size = 4

	// DefaultChunkSize is the read size used by ChecksumStream.
	DefaultChunkSize = 8192

	initialRegister uint32 = 0xffffffff
)

// Engine computes a CRC-32 incrementally. It keeps the raw register; the
// public checksum is always Finalize(register).
//
// An Engine is not safe for concurrent use. Its table is immutable and may be
// shared with other engines through a TableCache.
type Engine struct {
	poly  uint32
	order BitOrder
	table *Table

	register       uint32
	totalBytesRead int64

	chunkSize int
	buffers   *pool.BufferPool
	cache     *TableCache

	// One-zero-byte operator, built on first Combine.
	zeros *matrix
}

// Option configures an Engine.
type Option func(*Engine)

// WithChunkSize sets the read size used by ChecksumStream. Non-positive
// sizes are ignored.
func WithChunkSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.chunkSize = size
		}
	}
}

// WithBufferPool makes ChecksumStream borrow its read buffers from bp. The
// chunk size becomes bp.Size().
func WithBufferPool(bp *pool.BufferPool) Option {
	return func(e *Engine) {
		if bp != nil {
			e.buffers = bp
			e.chunkSize = bp.Size()
		}
	}
}

// WithTableCache makes the engine take its table from c instead of building
// a private one.
func WithTableCache(c *TableCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// New returns an engine for the given polynomial and bit order. The
// polynomial is not validated: a wrong choice only yields checksums that do
// not match the intended standard.
func New(poly uint32, order BitOrder, opts ...Option) *Engine {
	e := &Engine{
		poly:      poly,
		order:     order,
		register:  initialRegister,
		chunkSize: DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.cache != nil {
		e.table = e.cache.Get(poly, order)
	} else {
		e.table = BuildTable(poly, order)
	}

	return e
}

// NewIEEE returns an engine computing CRC-32/IEEE.
func NewIEEE(opts ...Option) *Engine {
	return New(IEEE, Reflected, opts...)
}

// Finalize converts a raw register into its public checksum.
func Finalize(register uint32) uint32 {
	return ^register
}

// Unfinalize converts a public checksum back into the raw register that
// produced it.
func Unfinalize(checksum uint32) uint32 {
	return ^checksum
}

// Polynomial returns the polynomial the engine was built with.
func (e *Engine) Polynomial() uint32 { return e.poly }

// Order returns the bit order the engine was built with.
func (e *Engine) Order() BitOrder { return e.order }

// Table returns the engine's lookup table. It must not be modified.
func (e *Engine) Table() *Table { return e.table }

// Register returns the raw, un-finalized accumulator.
func (e *Engine) Register() uint32 { return e.register }

// TotalBytesRead returns the number of bytes consumed since the last Reset
// or the start of the last ChecksumStream.
func (e *Engine) TotalBytesRead() int64 { return e.totalBytesRead }

// Sum32 returns the current public checksum.
func (e *Engine) Sum32() uint32 { return Finalize(e.register) }

// Sum appends the big-endian checksum to in.
func (e *Engine) Sum(in []byte) []byte {
	s := e.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Size returns the number of bytes Sum will append.
func (e *Engine) Size() int { return Size }

// BlockSize returns the engine's block size.
func (e *Engine) BlockSize() int { return 1 }

// Reset restores the register to its initial state and clears the byte
// counter. The table is kept.
func (e *Engine) Reset() {
	e.register = initialRegister
	e.totalBytesRead = 0
}

// Write feeds p into the engine. It never returns an error.
func (e *Engine) Write(p []byte) (int, error) {
	e.update(p)
	return len(p), nil
}

// Update feeds p into the engine. A nil buffer is rejected with a
// NullInputError; an empty one is a no-op.
func (e *Engine) Update(p []byte) error {
	if p == nil {
		return errs.NewNullInputError("buffer")
	}
	e.update(p)
	return nil
}

// UpdateRange feeds p[offset:offset+count] into the engine.
func (e *Engine) UpdateRange(p []byte, offset, count int) error {
	if p == nil {
		return errs.NewNullInputError("buffer")
	}
	if offset < 0 || offset > len(p) {
		return errs.NewValidationError("offset", offset, fmt.Errorf("must be within [0, %d]", len(p)))
	}
	if count < 0 || count > len(p)-offset {
		return errs.NewValidationError("count", count, fmt.Errorf("must be within [0, %d]", len(p)-offset))
	}
	e.update(p[offset : offset+count])
	return nil
}

// UpdateByte feeds a single byte into the engine.
func (e *Engine) UpdateByte(b byte) {
	e.register = e.step(e.register, b)
	e.totalBytesRead++
}

// UpdateRepeated feeds b into the engine n times.
func (e *Engine) UpdateRepeated(b byte, n int) {
	r := e.register
	for i := 0; i < n; i++ {
		r = e.step(r, b)
	}
	e.register = r
	if n > 0 {
		e.totalBytesRead += int64(n)
	}
}

func (e *Engine) step(r uint32, b byte) uint32 {
	if e.order == Normal {
		return r<<8 ^ e.table[byte(r>>24)^b]
	}
	return r>>8 ^ e.table[byte(r)^b]
}

func (e *Engine) update(p []byte) {
	r := e.register
	if e.order == Normal {
		for _, b := range p {
			r = r<<8 ^ e.table[byte(r>>24)^b]
		}
	} else {
		for _, b := range p {
			r = r>>8 ^ e.table[byte(r)^b]
		}
	}
	e.register = r
	e.totalBytesRead += int64(len(p))
}

// ChecksumStream reads src until io.EOF, feeding every chunk into the engine
// and, when sink is non-nil, writing the identical bytes to it. The byte
// counter restarts at zero; the register continues from its current state,
// so a fresh or Reset engine yields the checksum of src alone.
//
// Errors from src or sink are returned unchanged. A nil src fails with a
// NullInputError.
func (e *Engine) ChecksumStream(src io.Reader, sink io.Writer) (uint32, error) {
	if src == nil {
		return 0, errs.NewNullInputError("source")
	}

	var buf []byte
	if e.buffers != nil {
		chunk := e.buffers.Get()
		defer e.buffers.Put(chunk)
		buf = *chunk
	} else {
		buf = make([]byte, e.chunkSize)
	}

	e.totalBytesRead = 0
	for {
		n, err := src.Read(buf)
		if n > 0 {
			e.update(buf[:n])
			if sink != nil {
				nw, werr := sink.Write(buf[:n])
				if werr != nil {
					return 0, werr
				}
				if nw != n {
					return 0, io.ErrShortWrite
				}
			}
		}

		if err == io.EOF {
			return e.Sum32(), nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Combine folds the checksum crcB of a block of lenB bytes into the engine,
// as if that block had been fed after everything the engine has already
// consumed. A non-positive lenB is the identity.
func (e *Engine) Combine(crcB uint32, lenB int64) {
	if lenB <= 0 {
		return
	}
	if e.zeros == nil {
		e.zeros = zeroByteOperator(e.poly, e.order)
	}

	crcA := Finalize(e.register)
	e.register = Unfinalize(advance(e.zeros, crcA, lenB) ^ crcB)
}

// Restore replaces the register with the one that produces checksum. It lets
// a computation resume from a previously published value.
func (e *Engine) Restore(checksum uint32) {
	e.register = Unfinalize(checksum)
}
