// Package adler implements the Adler-32 checksum defined in RFC 1950.
//
// Adler-32 is composed of two sums accumulated per byte: s1 is the sum of
// all bytes, s2 is the sum of all s1 values, both modulo 65521. The state of
// a computation is the 32-bit value s2<<16 | s1, so a computation is resumed
// simply by passing the previous result back in as the seed.
package adler

const (
	// Base is the largest prime that is less than 65536.
	Base = 65521

	// NMax is the largest n such that
	// 255 * n * (n+1) / 2 + (n+1) * (Base-1) <= 2^32-1.
	// Blocks of this size can be summed without reducing modulo Base.
	NMax = 5552

	// Size of an Adler-32 checksum in bytes.
	Size = 4

	// Seed is the initial value of every computation.
	Seed uint32 = 1
)

// Adler32 continues the computation held in seed over buf. A nil buf returns
// the initial value 1, not seed.
func Adler32(seed uint32, buf []byte) uint32 {
	if buf == nil {
		return Seed
	}

	s1, s2 := seed&0xffff, (seed>>16)&0xffff
	for len(buf) > 0 {
		n := min(len(buf), NMax)
		p := buf[:n]
		buf = buf[n:]

		for len(p) >= 16 {
			s1 += uint32(p[0])
			s2 += s1
			s1 += uint32(p[1])
			s2 += s1
			s1 += uint32(p[2])
			s2 += s1
			s1 += uint32(p[3])
			s2 += s1
			s1 += uint32(p[4])
			s2 += s1
			s1 += uint32(p[5])
			s2 += s1
			s1 += uint32(p[6])
			s2 += s1
			s1 += uint32(p[7])
			s2 += s1
			s1 += uint32(p[8])
			s2 += s1
			s1 += uint32(p[9])
			s2 += s1
			s1 += uint32(p[10])
			s2 += s1
			s1 += uint32(p[11])
			s2 += s1
			s1 += uint32(p[12])
			s2 += s1
			s1 += uint32(p[13])
			s2 += s1
			s1 += uint32(p[14])
			s2 += s1
			s1 += uint32(p[15])
			s2 += s1
			p = p[16:]
		}
		for _, b := range p {
			s1 += uint32(b)
			s2 += s1
		}

		s1 %= Base
		s2 %= Base
	}
	return s2<<16 | s1
}

// Checksum returns the Adler-32 checksum of data.
func Checksum(data []byte) uint32 {
	return Adler32(Seed, data)
}
