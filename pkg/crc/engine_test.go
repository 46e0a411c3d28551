package crc

import (
	"bytes"
	"errors"
	"hash"
	"hash/crc32"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ hash.Hash32 = (*Engine)(nil)

const checkInput = "123456789"

func randomBytes(t *testing.T, seed int64, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.New(rand.NewSource(seed)).Read(buf)
	require.NoError(t, err)
	return buf
}

// msbReference is a bit-at-a-time MSB-first CRC used to check Normal order.
func msbReference(poly uint32, data []byte) uint32 {
	q := Reverse32(poly)
	r := uint32(0xffffffff)
	for _, b := range data {
		r ^= uint32(b) << 24
		for i := 0; i < 8; i++ {
			if r&0x80000000 != 0 {
				r = r<<1 ^ q
			} else {
				r <<= 1
			}
		}
	}
	return ^r
}

func checksumOf(t *testing.T, poly uint32, order BitOrder, data []byte) uint32 {
	t.Helper()
	e := New(poly, order)
	require.NoError(t, e.Update(data))
	return e.Sum32()
}

func TestEngineCheckValues(t *testing.T) {
	tests := []struct {
		name  string
		poly  uint32
		order BitOrder
		input string
		want  uint32
	}{
		{name: "ieee empty", poly: IEEE, order: Reflected, input: "", want: 0x00000000},
		{name: "ieee check", poly: IEEE, order: Reflected, input: checkInput, want: 0xcbf43926},
		{name: "castagnoli check", poly: Castagnoli, order: Reflected, input: checkInput, want: 0xe3069283},
		{name: "bzip2 check", poly: IEEE, order: Normal, input: checkInput, want: 0xfc891918},
		{name: "normal empty", poly: IEEE, order: Normal, input: "", want: 0x00000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksumOf(t, tt.poly, tt.order, []byte(tt.input)))
		})
	}
}

func TestEngineMatchesStandardLibrary(t *testing.T) {
	data := randomBytes(t, 1, 64*1024+13)

	for _, poly := range []uint32{IEEE, Castagnoli, Koopman} {
		want := crc32.Checksum(data, crc32.MakeTable(poly))
		assert.Equal(t, want, checksumOf(t, poly, Reflected, data), "poly %08x", poly)
	}
}

func TestEngineNormalOrderMatchesBitwiseReference(t *testing.T) {
	data := randomBytes(t, 2, 4099)

	for _, poly := range []uint32{IEEE, Castagnoli, Koopman, 0x1} {
		assert.Equal(t, msbReference(poly, data), checksumOf(t, poly, Normal, data), "poly %08x", poly)
	}
}

func TestEngineChunkBoundaryIndependence(t *testing.T) {
	data := randomBytes(t, 3, 10000)

	for _, order := range []BitOrder{Reflected, Normal} {
		want := checksumOf(t, IEEE, order, data)

		for _, size := range []int{1, 2, 7, 255, 4096, 9999} {
			e := New(IEEE, order)
			for rest := data; len(rest) > 0; {
				n := min(size, len(rest))
				_, err := e.Write(rest[:n])
				require.NoError(t, err)
				rest = rest[n:]
			}
			assert.Equal(t, want, e.Sum32(), "order %s chunk %d", order, size)
			assert.Equal(t, int64(len(data)), e.TotalBytesRead())
		}

		byByte := New(IEEE, order)
		for _, b := range data {
			byByte.UpdateByte(b)
		}
		assert.Equal(t, want, byByte.Sum32())
	}
}

func TestEngineReset(t *testing.T) {
	data := []byte(checkInput)

	e := NewIEEE()
	require.NoError(t, e.Update([]byte("garbage")))
	e.Reset()
	assert.Equal(t, int64(0), e.TotalBytesRead())
	assert.Equal(t, uint32(0xffffffff), e.Register())

	require.NoError(t, e.Update(data))
	assert.Equal(t, checksumOf(t, IEEE, Reflected, data), e.Sum32())

	table := e.Table()
	e.Reset()
	assert.Same(t, table, e.Table())
}

func TestEngineNullInput(t *testing.T) {
	e := NewIEEE()

	err := e.Update(nil)
	require.Error(t, err)
	assert.True(t, errs.IsNullInputError(err))

	_, err = e.ChecksumStream(nil, nil)
	assert.True(t, errs.IsNullInputError(err))

	assert.True(t, errs.IsNullInputError(e.UpdateRange(nil, 0, 0)))

	// An empty, non-nil buffer is valid and leaves the checksum untouched.
	require.NoError(t, e.Update([]byte{}))
	assert.Equal(t, uint32(0), e.Sum32())
}

func TestEngineUpdateRange(t *testing.T) {
	data := []byte("xx" + checkInput + "yy")

	e := NewIEEE()
	require.NoError(t, e.UpdateRange(data, 2, len(checkInput)))
	assert.Equal(t, uint32(0xcbf43926), e.Sum32())

	tests := []struct {
		name          string
		offset, count int
		field         string
	}{
		{name: "negative offset", offset: -1, count: 1, field: "offset"},
		{name: "offset past end", offset: len(data) + 1, count: 0, field: "offset"},
		{name: "count past end", offset: 4, count: len(data), field: "count"},
		{name: "negative count", offset: 0, count: -3, field: "count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewIEEE().UpdateRange(data, tt.offset, tt.count)
			ve := errs.AsValidationError(err)
			require.NotNil(t, ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestEngineUpdateRepeated(t *testing.T) {
	for _, order := range []BitOrder{Reflected, Normal} {
		want := New(IEEE, order)
		require.NoError(t, want.Update(bytes.Repeat([]byte{0xa5}, 300)))

		got := New(IEEE, order)
		got.UpdateRepeated(0xa5, 300)
		got.UpdateRepeated(0xa5, 0)
		got.UpdateRepeated(0xa5, -4)

		assert.Equal(t, want.Sum32(), got.Sum32())
		assert.Equal(t, int64(300), got.TotalBytesRead())
	}
}

func TestStep(t *testing.T) {
	table := BuildTable(IEEE, Reflected)
	w := uint32(0xffffffff)
	for _, b := range []byte(checkInput) {
		w = Step(w, b, table)
	}
	assert.Equal(t, uint32(0xcbf43926), Finalize(w))
}

func TestEngineSum(t *testing.T) {
	data := []byte(checkInput)
	std := crc32.NewIEEE()
	_, _ = std.Write(data)

	e := NewIEEE()
	_, _ = e.Write(data)

	assert.Equal(t, std.Sum([]byte{0x01}), e.Sum([]byte{0x01}))
	assert.Equal(t, std.Size(), e.Size())
	assert.Equal(t, std.BlockSize(), e.BlockSize())
}

func TestChecksumStream(t *testing.T) {
	data := randomBytes(t, 4, 3*DefaultChunkSize+17)
	want := crc32.ChecksumIEEE(data)

	readers := map[string]func() io.Reader{
		"plain":    func() io.Reader { return bytes.NewReader(data) },
		"one byte": func() io.Reader { return iotest.OneByteReader(bytes.NewReader(data)) },
		"half":     func() io.Reader { return iotest.HalfReader(bytes.NewReader(data)) },
		"data eof": func() io.Reader { return iotest.DataErrReader(bytes.NewReader(data)) },
	}

	for name, newReader := range readers {
		t.Run(name, func(t *testing.T) {
			var sink bytes.Buffer
			e := NewIEEE()

			sum, err := e.ChecksumStream(newReader(), &sink)
			require.NoError(t, err)
			assert.Equal(t, want, sum)
			assert.Equal(t, int64(len(data)), e.TotalBytesRead())
			assert.Equal(t, data, sink.Bytes())
		})
	}
}

func TestChecksumStreamOptions(t *testing.T) {
	data := randomBytes(t, 5, 1000)
	want := crc32.ChecksumIEEE(data)

	small := NewIEEE(WithChunkSize(3), WithChunkSize(-1))
	sum, err := small.ChecksumStream(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, want, sum)

	bp := pool.NewBufferPool(64)
	pooled := NewIEEE(WithBufferPool(bp))
	sum, err = pooled.ChecksumStream(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, want, sum)
}

func TestChecksumStreamContinuesRegister(t *testing.T) {
	e := NewIEEE()
	require.NoError(t, e.Update([]byte("1234")))

	sum, err := e.ChecksumStream(strings.NewReader("56789"), nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xcbf43926), sum)
	assert.Equal(t, int64(5), e.TotalBytesRead())
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestChecksumStreamPropagatesErrors(t *testing.T) {
	readErr := errors.New("network reset")
	_, err := NewIEEE().ChecksumStream(iotest.ErrReader(readErr), nil)
	assert.Same(t, readErr, err)

	timeout := iotest.TimeoutReader(strings.NewReader(checkInput))
	_, err = NewIEEE(WithChunkSize(2)).ChecksumStream(timeout, nil)
	assert.ErrorIs(t, err, iotest.ErrTimeout)

	writeErr := errors.New("disk full")
	_, err = NewIEEE().ChecksumStream(strings.NewReader(checkInput), failingWriter{writeErr})
	assert.Same(t, writeErr, err)

	_, err = NewIEEE().ChecksumStream(strings.NewReader(checkInput), shortWriter{})
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestEngineDeterminism(t *testing.T) {
	data := randomBytes(t, 6, 777)
	a := New(Koopman, Normal)
	b := New(Koopman, Normal)

	_, _ = a.Write(data)
	for _, c := range data {
		b.UpdateByte(c)
	}

	assert.Equal(t, a.Sum32(), b.Sum32())
	assert.Equal(t, uint32(Koopman), a.Polynomial())
	assert.Equal(t, Normal, a.Order())
}
