package mozlz4

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrTooShort means data ended before the structure it announces:
	// a header cut mid-magic, a declared size with no room for its
	// payload, or a block that stops short of the promised output.
	ErrTooShort = errors.New("too short")
	// ErrTooLarge means plaintext above MaxInputSize was passed to Encode.
	ErrTooLarge = errors.New("input too large")
	// ErrCompressUnsupported is returned by decode-only backends.
	ErrCompressUnsupported = errors.New("compression not supported")
)

// BadHeaderError means the first eight bytes are not Magic.
type BadHeaderError struct {
	Actual [MagicLen]byte
}

func (e *BadHeaderError) Error() string {
	return fmt.Sprintf("bad header: %q (expected %q)", e.Actual[:], Magic)
}

// SizeMismatchError means the block decoded cleanly but to a different
// length than the header declared.
type SizeMismatchError struct {
	Declared uint32
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch: header declares %d, block decodes to %d", e.Declared, e.Actual)
}
