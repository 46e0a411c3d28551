package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity() *matrix {
	m := new(matrix)
	for i := range m {
		m[i] = 1 << i
	}
	return m
}

func TestTimes(t *testing.T) {
	id := identity()
	for _, v := range []uint32{0, 1, 0x80000000, 0xdeadbeef} {
		assert.Equal(t, v, times(id, v))
	}

	var m matrix
	m[0], m[3] = 0xf0, 0x0f
	assert.Equal(t, uint32(0xff), times(&m, 0b1001))
	assert.Equal(t, uint32(0xf0), times(&m, 0b0111))
}

func TestSquare(t *testing.T) {
	assert.Equal(t, identity(), square(identity()))

	op := zeroBitOperator(IEEE, Reflected)
	sq := square(op)
	for _, v := range []uint32{1, 0x12345678, 0xffffffff} {
		assert.Equal(t, times(op, times(op, v)), times(sq, v))
	}
}

func TestZeroByteOperatorMatchesTable(t *testing.T) {
	for _, order := range []BitOrder{Reflected, Normal} {
		e := New(Castagnoli, order)
		op := zeroByteOperator(Castagnoli, order)

		for _, r := range []uint32{0, 1, 0x80000000, 0xffffffff, 0x9abcdef0} {
			assert.Equal(t, e.step(r, 0), times(op, r), "order %s register %08x", order, r)
		}
	}
}

func TestAdvance(t *testing.T) {
	for _, order := range []BitOrder{Reflected, Normal} {
		e := New(IEEE, order)
		op := zeroByteOperator(IEEE, order)

		r := uint32(0x13579bdf)
		for n := int64(0); n <= 70; n++ {
			require.Equal(t, r, advance(op, 0x13579bdf, n), "order %s n %d", order, n)
			r = e.step(r, 0)
		}
	}
}

func TestCombine(t *testing.T) {
	a, b := []byte("1234"), []byte("56789")
	crcA := checksumOf(t, IEEE, Reflected, a)
	crcB := checksumOf(t, IEEE, Reflected, b)

	assert.Equal(t, uint32(0xcbf43926), Combine(IEEE, Reflected, crcA, crcB, int64(len(b))))
	assert.Equal(t, crcA, Combine(IEEE, Reflected, crcA, crcB, 0))
	assert.Equal(t, crcA, Combine(IEEE, Reflected, crcA, crcB, -1))
}

func TestCombineMatchesConcatenation(t *testing.T) {
	data := randomBytes(t, 7, 70000)
	splits := []int{0, 1, 2, 17, 255, 256, 4096, 65535, 69999, 70000}

	for _, poly := range []uint32{IEEE, Castagnoli, Koopman} {
		for _, order := range []BitOrder{Reflected, Normal} {
			want := checksumOf(t, poly, order, data)

			for _, split := range splits {
				head, tail := data[:split], data[split:]
				crcA := checksumOf(t, poly, order, head)
				crcB := checksumOf(t, poly, order, tail)

				got := Combine(poly, order, crcA, crcB, int64(len(tail)))
				require.Equal(t, want, got, "poly %08x order %s split %d", poly, order, split)
			}
		}
	}
}

func TestEngineCombine(t *testing.T) {
	for _, order := range []BitOrder{Reflected, Normal} {
		e := New(IEEE, order)
		require.NoError(t, e.Update([]byte("1234")))

		crcB := checksumOf(t, IEEE, order, []byte("56789"))
		e.Combine(crcB, 5)

		want := checksumOf(t, IEEE, order, []byte(checkInput))
		assert.Equal(t, want, e.Sum32(), "order %s", order)

		// Further updates continue from the combined register.
		require.NoError(t, e.Update([]byte("0")))
		assert.Equal(t, checksumOf(t, IEEE, order, []byte(checkInput+"0")), e.Sum32())

		before := e.Sum32()
		e.Combine(0xdeadbeef, 0)
		assert.Equal(t, before, e.Sum32())
	}
}

func TestEngineCombineEmptyHead(t *testing.T) {
	e := NewIEEE()
	crcB := checksumOf(t, IEEE, Reflected, []byte(checkInput))

	e.Combine(crcB, int64(len(checkInput)))
	assert.Equal(t, uint32(0xcbf43926), e.Sum32())
}

func TestEngineRestore(t *testing.T) {
	e := NewIEEE()
	e.Restore(checksumOf(t, IEEE, Reflected, []byte("1234")))
	require.NoError(t, e.Update([]byte("56789")))
	assert.Equal(t, uint32(0xcbf43926), e.Sum32())
}
