package mozlz4

import "github.com/go-faster/errors"

// Backend implements raw LZ4 block coding for the container.
//
// CompressBlock turns plaintext into exactly one block; decode-only
// backends return an error wrapping ErrCompressUnsupported instead.
// DecompressBlock reverses it; size is the uncompressed size the
// container header declared, passed down so implementations can size
// output buffers up front. Callers validate size against hard bounds
// before invoking either method, implementations may rely on that.
type Backend interface {
	CompressBlock(src []byte) ([]byte, error)
	DecompressBlock(block []byte, size uint32) ([]byte, error)
}

// Facts are capabilities a Library declares up front, without running
// anything. Tests hold each backend to its declaration.
type Facts struct {
	// Compression reports whether CompressBlock works at all.
	Compression bool
	// SameAsFirefox reports whether CompressBlock output is expected to
	// be byte identical to what Firefox itself would write. No built-in
	// backend promises this; block compressors are free to pick any
	// valid encoding.
	SameAsFirefox bool
}

//go:generate go run github.com/dmarkham/enumer -type Library -trimprefix Library -output library_enum.go

// Library enumerates the built-in backends.
type Library byte

const (
	// LibraryPierrec is github.com/pierrec/lz4/v4, fast mode by default.
	LibraryPierrec Library = iota
	// LibraryPierrecV3 is github.com/pierrec/lz4/v3 in high compression
	// mode, kept around to cross-check v4 output.
	LibraryPierrecV3
	// LibraryS2 decodes through the klauspost/compress LZ4 to S2 block
	// converter. Decode only.
	LibraryS2
	// LibraryPorted is the checked in-process decoder in lz4block.
	// Decode only.
	LibraryPorted
)

// Facts returns the declared capabilities of l.
func (l Library) Facts() Facts {
	switch l {
	case LibraryPierrec, LibraryPierrecV3:
		return Facts{Compression: true}
	default:
		return Facts{}
	}
}

// Backend returns a fresh backend. Values are not safe for concurrent
// use; hand each goroutine its own.
func (l Library) Backend() Backend {
	switch l {
	case LibraryPierrec:
		return NewPierrec()
	case LibraryPierrecV3:
		return NewPierrecV3()
	case LibraryS2:
		return NewS2()
	case LibraryPorted:
		return NewPorted()
	default:
		panic(errors.Errorf("unknown library: %d", l))
	}
}
