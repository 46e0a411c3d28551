package compression

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand"
	"testing"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/pkg/adler"
	"github.com/iamNilotpal/checksum/pkg/crc"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, n int) []byte {
	t.Helper()
	data := make([]byte, n)
	_, err := rand.New(rand.NewSource(42)).Read(data)
	require.NoError(t, err)
	// Repeat a prefix so the codecs have something to compress.
	copy(data[n/2:], data[:n/2])
	return data
}

func encode(t *testing.T, codec domain.CompressionCodec, data []byte) []byte {
	t.Helper()
	c, err := New(codec, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	data := payload(t, 200*1024)

	for _, codec := range []domain.CompressionCodec{None, Zstd, Gzip, Snappy} {
		t.Run(string(codec), func(t *testing.T) {
			c, err := New(codec, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, string(codec), c.Name())

			encoded := encode(t, codec, data)
			if codec != None {
				assert.NotEqual(t, data, encoded)
			}

			r, err := c.NewReader(bytes.NewReader(encoded))
			require.NoError(t, err)
			decoded, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, data, decoded)
		})
	}
}

func TestGzipTrailerMatchesCRC(t *testing.T) {
	data := payload(t, 50*1024)
	encoded := encode(t, Gzip, data)

	// The gzip trailer is CRC-32/IEEE then ISIZE, both little endian.
	trailer := encoded[len(encoded)-8:]
	e := crc.NewIEEE()
	require.NoError(t, e.Update(data))
	assert.Equal(t, binary.LittleEndian.Uint32(trailer), e.Sum32())
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(trailer[4:]))
}

func TestZlibTrailerMatchesAdler(t *testing.T) {
	data := payload(t, 50*1024)

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	encoded := buf.Bytes()
	assert.Equal(t, binary.BigEndian.Uint32(encoded[len(encoded)-4:]), adler.Checksum(data))
}

func TestGzipRejectsGarbage(t *testing.T) {
	c, err := New(Gzip, nil)
	require.NoError(t, err)
	_, err = c.NewReader(bytes.NewReader([]byte("not gzip at all")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*domain.CompressionOptions)
		field string
	}{
		{name: "source", mod: func(o *domain.CompressionOptions) { o.Source = "lz4" }, field: "source"},
		{name: "sink", mod: func(o *domain.CompressionOptions) { o.Sink = "brotli" }, field: "sink"},
		{name: "level low", mod: func(o *domain.CompressionOptions) { o.Level = 0 }, field: "level"},
		{name: "level high", mod: func(o *domain.CompressionOptions) { o.Level = 10 }, field: "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(opts)
			ve := errs.AsValidationError(Validate(opts))
			require.NotNil(t, ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	_, err := New("lz4", DefaultOptions())
	assert.True(t, errs.IsValidationError(err))
}
