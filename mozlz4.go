// Package mozlz4 implements the "mozLz4" container format Firefox uses for
// session store and bookmark backup files: an eight byte magic, a little
// endian uncompressed size and a single raw LZ4 block. There is no frame
// header, no checksum and no block chaining; the trailing NUL of the magic
// is part of the format.
//
// Block compression itself is pluggable. Every operation takes a Backend
// explicitly; the built-in ones are enumerated by Library and differ in
// capability, declared by Facts. Decoding is defensive: malformed input of
// any shape yields an error, never a panic and never a silently wrong
// buffer.
package mozlz4

import "encoding/binary"

const (
	// Magic identifies a mozLz4 container. Firefox writes exactly these
	// eight bytes before the size field.
	Magic = "mozLz40\x00"
	// MagicLen is len(Magic).
	MagicLen = len(Magic)
	// HeaderSize is the full container header: magic plus a uint32
	// little endian uncompressed size.
	HeaderSize = MagicLen + 4
)

var bin = binary.LittleEndian
