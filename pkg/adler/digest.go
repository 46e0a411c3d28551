package adler

// Digest is a hash.Hash32 over Adler32. Its Sum method lays the value out in
// big-endian byte order.
type Digest struct {
	sum uint32
}

// New returns a Digest starting from the initial value.
func New() *Digest {
	return &Digest{sum: Seed}
}

// NewFrom returns a Digest resuming from a previously computed value.
func NewFrom(seed uint32) *Digest {
	return &Digest{sum: seed}
}

func (d *Digest) Reset() { d.sum = Seed }

// ResetTo makes the digest resume from seed.
func (d *Digest) ResetTo(seed uint32) { d.sum = seed }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 4 }

func (d *Digest) Write(p []byte) (int, error) {
	if len(p) > 0 {
		d.sum = Adler32(d.sum, p)
	}
	return len(p), nil
}

func (d *Digest) Sum32() uint32 { return d.sum }

func (d *Digest) Sum(in []byte) []byte {
	s := d.sum
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
