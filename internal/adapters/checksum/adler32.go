package checksum

import (
	"hash"

	"github.com/iamNilotpal/checksum/pkg/adler"
)

type adler32Checksum struct {
	name string
}

func NewAdler32() *adler32Checksum {
	return &adler32Checksum{name: string(Adler32)}
}

func (a *adler32Checksum) Calculate(data []byte) uint64 {
	return uint64(adler.Checksum(data))
}

func (a *adler32Checksum) Verify(data []byte, expected uint64) bool {
	return a.Calculate(data) == expected
}

func (a *adler32Checksum) Size() uint8 {
	return adler.Size
}

func (a *adler32Checksum) Name() string {
	return a.name
}

func (a *adler32Checksum) NewHash() hash.Hash32 {
	return adler.New()
}
