// Package lz4block implements a checked decoder for raw LZ4 blocks.
//
// A block is a sequence of records. Each record starts with a token byte:
// the high nibble is the literal count, the low nibble the match length,
// and a nibble value of 15 is extended by further length bytes. Literals
// are copied verbatim; a match re-reads already decoded bytes at a two-byte
// little-endian distance back from the write position. The block format
// carries no frame header, no checksums and no block chaining.
//
// Every read is bounds-checked and malformed input is reported with a typed
// error carrying the position of the defect. Decompress never panics, no
// matter how hostile the input.
package lz4block

import (
	"encoding/binary"
	"fmt"
)

const (
	// MaxInputSize is the largest input a conforming block encoder
	// accepts. Inputs past it cannot be represented in a single block.
	MaxInputSize = 0x7E000000

	// minMatch is the implicit length added to every match. A match
	// shorter than four bytes never wins over literals, so the format
	// does not spend token space on them.
	minMatch = 4
)

// CompressBound returns the worst case compressed size for n input bytes.
// It returns 0 when n is negative or exceeds MaxInputSize, meaning no
// valid single block can hold the input.
func CompressBound(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}
	return n + n/255 + 16
}

// OffsetError reports a match referencing data before the start of the
// decoded output, or a zero distance. Pos is the position of the offending
// offset field within the block.
type OffsetError struct {
	Pos    int
	Offset int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("lz4block: invalid offset %d at position %d", e.Offset, e.Pos)
}

// TruncatedError reports a block ending in the middle of a record. Pos is
// the position at which the decoder needed another byte.
type TruncatedError struct {
	Pos int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("lz4block: truncated block at position %d", e.Pos)
}

// Decompress appends the decoded contents of src to dst and returns the
// extended slice. Pass dst with the expected capacity to avoid regrowth; a
// nil dst is valid. Matches may only reference bytes decoded during this
// call, never prior dst content.
//
// src must be a whole block. Decoding ends when input runs out directly
// after a non-empty literal run; an empty src decodes to nothing. A block
// ending anywhere else, a zero-literal token at end of input included, is
// reported as truncated.
func Decompress(dst, src []byte) ([]byte, error) {
	base := len(dst)
	for i := 0; i < len(src); {
		token := src[i]
		i++

		if litLen := int(token >> 4); litLen > 0 {
			l := litLen + 240
			for l == 255 {
				if i >= len(src) {
					return dst, &TruncatedError{Pos: i}
				}
				l = int(src[i])
				i++
				litLen += l
			}
			if i+litLen > len(src) {
				return dst, &TruncatedError{Pos: len(src)}
			}
			dst = append(dst, src[i:i+litLen]...)
			i += litLen
			if i == len(src) {
				break
			}
		}

		if i+2 > len(src) {
			return dst, &TruncatedError{Pos: i}
		}
		offset := int(binary.LittleEndian.Uint16(src[i:]))
		i += 2
		if offset == 0 || offset > len(dst)-base {
			return dst, &OffsetError{Pos: i - 2, Offset: offset}
		}

		matchLen := int(token & 0x0F)
		l := matchLen + 240
		for l == 255 {
			if i >= len(src) {
				return dst, &TruncatedError{Pos: i}
			}
			l = int(src[i])
			i++
			matchLen += l
		}

		// Byte at a time on purpose: an offset smaller than the match
		// length re-reads bytes written moments ago, expanding a short
		// seed into a run.
		pos := len(dst) - offset
		end := len(dst) + matchLen + minMatch
		for len(dst) < end {
			dst = append(dst, dst[pos])
			pos++
		}
	}
	return dst, nil
}

// AppendLiterals appends a single literal-only record encoding src to dst.
// The result is a valid block of its own and is what encoders fall back to
// for incompressible input. An empty src appends nothing, matching the
// empty block representation.
func AppendLiterals(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}
	if n < 15 {
		dst = append(dst, byte(n)<<4)
	} else {
		dst = append(dst, 0xF0)
		for n -= 15; n >= 255; n -= 255 {
			dst = append(dst, 255)
		}
		dst = append(dst, byte(n))
	}
	return append(dst, src...)
}
