package mozlz4

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/mozlz4/lz4block"
)

// Decode parses a mozLz4 container and returns the uncompressed payload,
// decoding the block with b.
//
// Input is untrusted: the header is checked before the block is touched,
// and the declared size is validated against hard bounds before any
// allocation, so a hostile header cannot make Decode reserve gigabytes
// for a four byte file.
func Decode(data []byte, b Backend) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, errors.Wrapf(ErrTooShort, "header needs %d bytes, got %d", HeaderSize, len(data))
	}
	if string(data[:MagicLen]) != Magic {
		e := &BadHeaderError{}
		copy(e.Actual[:], data[:MagicLen])
		return nil, e
	}
	var (
		size  = bin.Uint32(data[MagicLen:HeaderSize])
		block = data[HeaderSize:]
	)
	// No LZ4 block expands more than 255x plus change, and no conforming
	// encoder accepts input above MaxInputSize. A declared size beyond
	// either bound cannot come from a valid container.
	if maxSize := uint64(len(block))*255 + 16; uint64(size) > maxSize {
		return nil, errors.Wrapf(ErrTooShort, "declared size %d exceeds %d byte block capacity %d", size, len(block), maxSize)
	}
	if size > lz4block.MaxInputSize {
		return nil, errors.Wrapf(ErrTooShort, "declared size %d exceeds input ceiling %d", size, lz4block.MaxInputSize)
	}
	out, err := b.DecompressBlock(block, size)
	if err != nil {
		return nil, errors.Wrapf(err, "block (declared size %d)", size)
	}
	if len(out) != int(size) {
		return nil, &SizeMismatchError{Declared: size, Actual: len(out)}
	}
	return out, nil
}
