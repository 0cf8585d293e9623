package mozlz4

import (
	"encoding/binary"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/s2"
)

// S2 decodes by transcoding the LZ4 block into an S2 block with
// klauspost/compress and decoding that. Decode only: the converter has
// no reverse direction. The detour buys a very fast decoder and an
// independent opinion on block validity, since the converter checks
// every sequence itself.
type S2 struct{}

// NewS2 returns the converting backend.
func NewS2() *S2 { return &S2{} }

func (s *S2) CompressBlock([]byte) ([]byte, error) {
	return nil, errors.Wrap(ErrCompressUnsupported, "s2")
}

func (s *S2) DecompressBlock(block []byte, size uint32) ([]byte, error) {
	if len(block) == 0 {
		return nil, nil
	}
	bound := s2.MaxEncodedLen(int(size))
	if bound < 0 {
		return nil, errors.Errorf("declared size %d out of s2 range", size)
	}
	conv, n, err := new(s2.LZ4Converter).ConvertBlock(make([]byte, 0, bound), block)
	if err != nil {
		if errors.Is(err, s2.ErrDstTooSmall) {
			// Output ran past the declared size mid-block.
			return nil, errors.Wrapf(ErrTooShort, "block decodes past declared size %d", size)
		}
		return nil, errors.Wrap(err, "convert")
	}
	// ConvertBlock leaves out the uvarint length header an S2 block
	// starts with; restore it before decoding.
	s2block := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen32+len(conv)), uint64(n))
	s2block = append(s2block, conv...)
	out, err := s2.Decode(make([]byte, n), s2block)
	if err != nil {
		return nil, errors.Wrap(err, "s2")
	}
	return out, nil
}
