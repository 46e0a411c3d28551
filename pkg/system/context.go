package system

import (
	"context"
	"io"
)

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

// Reader wraps r so that every Read first checks ctx. Once ctx is done the
// wrapped reader returns ctx.Err() instead of reading, which stops any
// consumer looping until io.EOF at the next chunk boundary.
//
// The underlying Read is not interrupted; cancellation takes effect between
// calls.
func Reader(ctx context.Context, r io.Reader) io.Reader {
	if ctx == nil || ctx.Done() == nil {
		return r
	}
	return &contextReader{ctx: ctx, r: r}
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

type contextWriter struct {
	ctx context.Context
	w   io.Writer
}

// Writer is the io.Writer counterpart of Reader.
func Writer(ctx context.Context, w io.Writer) io.Writer {
	if ctx == nil || ctx.Done() == nil {
		return w
	}
	return &contextWriter{ctx: ctx, w: w}
}

func (cw *contextWriter) Write(p []byte) (int, error) {
	if err := cw.ctx.Err(); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}
