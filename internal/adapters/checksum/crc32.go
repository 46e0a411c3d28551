package checksum

import (
	"hash"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/pkg/crc"
)

type crc32Checksum struct {
	name  string
	poly  uint32
	order crc.BitOrder
	opts  []crc.Option
}

// NewCRC32 returns a CRC-32 checksum over poly in the given bit order. cache
// may be nil, in which case every hash builds its own table. opts are applied
// to every engine handed out by NewHash.
func NewCRC32(
	name domain.ChecksumAlgorithm, poly uint32, order crc.BitOrder, cache *crc.TableCache, opts ...crc.Option,
) *crc32Checksum {
	if cache != nil {
		opts = append(opts[:len(opts):len(opts)], crc.WithTableCache(cache))
	}

	return &crc32Checksum{
		name:  string(name),
		poly:  poly,
		order: order,
		opts:  opts,
	}
}

func (c *crc32Checksum) engine() *crc.Engine {
	return crc.New(c.poly, c.order, c.opts...)
}

func (c *crc32Checksum) Calculate(data []byte) uint64 {
	e := c.engine()
	_, _ = e.Write(data)
	return uint64(e.Sum32())
}

func (c *crc32Checksum) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc32Checksum) Size() uint8 {
	return crc.Size
}

func (c *crc32Checksum) Name() string {
	return c.name
}

// NewHash returns a *crc.Engine.
func (c *crc32Checksum) NewHash() hash.Hash32 {
	return c.engine()
}

func (c *crc32Checksum) Combine(sumA, sumB uint32, lenB int64) uint32 {
	return crc.Combine(c.poly, c.order, sumA, sumB, lenB)
}
