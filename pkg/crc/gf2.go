package crc

// Feeding a zero byte into the register is linear over GF(2), so advancing a
// register across n zero bytes is a 32x32 bit matrix raised to the n-th
// power. Combine uses this to append the effect of a block it never sees.

// matrix is a 32x32 GF(2) matrix stored by column: m[i] is the image of the
// unit vector with only bit i set.
type matrix [32]uint32

// times returns the product of m and the bit vector v, which is the XOR of
// the columns selected by the set bits of v.
func times(m *matrix, v uint32) uint32 {
	var sum uint32
	for i := 0; v != 0; i++ {
		if v&1 != 0 {
			sum ^= m[i]
		}
		v >>= 1
	}
	return sum
}

// square returns m*m.
func square(m *matrix) *matrix {
	sq := new(matrix)
	for i := range m {
		sq[i] = times(m, m[i])
	}
	return sq
}

// zeroBitOperator returns the matrix that advances a register by one zero bit.
func zeroBitOperator(poly uint32, order BitOrder) *matrix {
	m := new(matrix)
	if order == Normal {
		// The register shifts left and the top bit feeds back the polynomial
		// in its MSB-first form.
		for i := 0; i < 31; i++ {
			m[i] = 1 << (i + 1)
		}
		m[31] = Reverse32(poly)
		return m
	}

	m[0] = poly
	for i := 1; i < 32; i++ {
		m[i] = 1 << (i - 1)
	}
	return m
}

// zeroByteOperator returns the matrix that advances a register by one zero byte.
func zeroByteOperator(poly uint32, order BitOrder) *matrix {
	m := zeroBitOperator(poly, order)
	for i := 0; i < 3; i++ {
		m = square(m)
	}
	return m
}

// advance applies the n-th power of op to v by square-and-multiply. op is the
// one-zero-byte operator; successive squares advance by 2, 4, 8... zero bytes.
func advance(op *matrix, v uint32, n int64) uint32 {
	for m := op; n > 0; n >>= 1 {
		if n&1 != 0 {
			v = times(m, v)
		}
		if n > 1 {
			m = square(m)
		}
	}
	return v
}

// Combine returns the checksum of A‖B given only the checksum of A, the
// checksum of B and the length of B. Both checksums must have been computed
// with the same polynomial and bit order. A non-positive lenB leaves crcA
// unchanged.
func Combine(poly uint32, order BitOrder, crcA, crcB uint32, lenB int64) uint32 {
	if lenB <= 0 {
		return crcA
	}
	return advance(zeroByteOperator(poly, order), crcA, lenB) ^ crcB
}
