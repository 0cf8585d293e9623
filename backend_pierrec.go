package mozlz4

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/pierrec/lz4/v4"
)

// Level selects high compression effort. Zero means default.
type Level int

const (
	// LevelHCDefault is used when NewPierrecHC gets level 0.
	LevelHCDefault Level = 9
	// LevelHCMax is the highest level pierrec accepts; higher requests
	// are clamped to it.
	LevelHCMax Level = 12
)

// Pierrec compresses and decompresses blocks with pierrec/lz4 v4.
// Compressor state is reused between calls, so a value is not safe for
// concurrent use. The zero value is decode only; use NewPierrec or
// NewPierrecHC for compression.
type Pierrec struct {
	fast *lz4.Compressor
	hc   *lz4.CompressorHC
}

// NewPierrec returns a fast mode backend.
func NewPierrec() *Pierrec {
	return &Pierrec{fast: &lz4.Compressor{}}
}

// NewPierrecHC returns a high compression backend at the given level.
func NewPierrecHC(l Level) *Pierrec {
	if l == 0 {
		l = LevelHCDefault
	} else {
		l = Level(math.Min(float64(l), float64(LevelHCMax)))
	}
	return &Pierrec{hc: &lz4.CompressorHC{Level: lz4.CompressionLevel(1 << (8 + l))}}
}

func (p *Pierrec) CompressBlock(src []byte) ([]byte, error) {
	if len(src) == 0 {
		// Empty payload is represented by an empty block.
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	var (
		n   int
		err error
	)
	switch {
	case p.hc != nil:
		n, err = p.hc.CompressBlock(src, dst)
	case p.fast != nil:
		n, err = p.fast.CompressBlock(src, dst)
	default:
		return nil, errors.New("backend was not configured for compression")
	}
	if err != nil {
		return nil, errors.Wrap(err, "lz4 block")
	}
	return dst[:n], nil
}

func (p *Pierrec) DecompressBlock(block []byte, size uint32) ([]byte, error) {
	if len(block) == 0 {
		return nil, nil
	}
	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(block, dst)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 block")
	}
	return dst[:n], nil
}
