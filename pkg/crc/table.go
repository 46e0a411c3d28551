package crc

import (
	"fmt"
	"strings"
)

// BitOrder selects the order in which the division circuit consumes the
// bits of each input byte.
type BitOrder uint8

const (
	// Reflected consumes bits least-significant first and shifts the register
	// right. This is the order used by CRC-32/IEEE as found in zip, gzip and png.
	Reflected BitOrder = iota

	// Normal consumes bits most-significant first and shifts the register left.
	Normal
)

// Predefined polynomials, all given in the reversed (LSB-first) notation
// accepted by BuildTable.
const (
	// IEEE is by far and away the most common CRC-32 polynomial.
	IEEE = 0xedb88320

	// Castagnoli's polynomial, used in iSCSI.
	Castagnoli = 0x82f63b78

	// Koopman's polynomial.
	Koopman = 0xeb31d82e
)

// String returns the string representation of the BitOrder.
func (o BitOrder) String() string {
	switch o {
	case Reflected:
		return "reflected"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// ParseBitOrder parses the textual form produced by String.
func ParseBitOrder(s string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reflected", "lsb", "":
		return Reflected, nil
	case "normal", "msb":
		return Normal, nil
	default:
		return 0, fmt.Errorf("unknown bit order %q", s)
	}
}

// Table is a 256-word lookup table. It is never mutated after BuildTable
// returns, so it may be shared freely between goroutines.
type Table [256]uint32

// BuildTable returns the lookup table for the given polynomial and bit order.
// The polynomial is interpreted in reversed notation; in Normal order the
// table is mirrored so that every entry and every index is bit-reversed.
func BuildTable(poly uint32, order BitOrder) *Table {
	t := new(Table)
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}

		if order == Normal {
			t[Reverse8(uint8(i))] = Reverse32(crc)
		} else {
			t[i] = crc
		}
	}
	return t
}

// Reverse32 returns v with its bit order reversed.
func Reverse32(v uint32) uint32 {
	v = (v&0x55555555)<<1 | (v>>1)&0x55555555
	v = (v&0x33333333)<<2 | (v>>2)&0x33333333
	v = (v&0x0f0f0f0f)<<4 | (v>>4)&0x0f0f0f0f
	v = (v&0x00ff00ff)<<8 | (v>>8)&0x00ff00ff
	return v<<16 | v>>16
}

// Reverse8 returns b with its bit order reversed.
func Reverse8(b uint8) uint8 {
	return uint8(Reverse32(uint32(b)) >> 24)
}

// Step advances an LSB-first register w by one byte using t. It does not
// depend on any engine state and is meant for callers that manage their own
// register.
func Step(w uint32, b byte, t *Table) uint32 {
	return t[byte(w)^b] ^ (w >> 8)
}
