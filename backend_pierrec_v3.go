package mozlz4

import (
	"github.com/go-faster/errors"
	lz4v3 "github.com/pierrec/lz4/v3"

	"github.com/go-faster/mozlz4/lz4block"
)

// PierrecV3 drives pierrec/lz4 v3 in high compression mode, kept as an
// independent second implementation to cross-check v4 output. v3 signals
// incompressible input by returning an empty block, so those inputs fall
// back to a literal-only block and the result stays a valid container.
type PierrecV3 struct {
	depth int
}

// NewPierrecV3 returns the v3 backend with default search depth.
func NewPierrecV3() *PierrecV3 { return &PierrecV3{depth: -1} }

func (p *PierrecV3) CompressBlock(src []byte) ([]byte, error) {
	dst := make([]byte, lz4v3.CompressBlockBound(len(src)))
	n, err := lz4v3.CompressBlockHC(src, dst, p.depth)
	if err != nil {
		return nil, errors.Wrap(err, "lz4hc block")
	}
	if n == 0 {
		// Incompressible for v3. Store as literals.
		return lz4block.AppendLiterals(nil, src), nil
	}
	return dst[:n], nil
}

func (p *PierrecV3) DecompressBlock(block []byte, size uint32) ([]byte, error) {
	if len(block) == 0 {
		return nil, nil
	}
	dst := make([]byte, size)
	n, err := lz4v3.UncompressBlock(block, dst)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 block")
	}
	return dst[:n], nil
}
