package mozlz4

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/mozlz4/lz4block"
)

// Ported decodes with the in-process lz4block decoder. Decode only.
// Malformed blocks surface as lz4block typed errors carrying exact
// positions, which makes this the backend of choice for diagnostics.
type Ported struct{}

// NewPorted returns the in-process backend.
func NewPorted() *Ported { return &Ported{} }

func (p *Ported) CompressBlock([]byte) ([]byte, error) {
	return nil, errors.Wrap(ErrCompressUnsupported, "ported")
}

func (p *Ported) DecompressBlock(block []byte, size uint32) ([]byte, error) {
	out, err := lz4block.Decompress(make([]byte, 0, size), block)
	if err != nil {
		return nil, err
	}
	return out, nil
}
