package mozlz4

import (
	"io"

	"github.com/go-faster/errors"

	"github.com/go-faster/mozlz4/lz4block"
)

// Encoded is a compressed container ready to be written out. The header
// is synthesized on demand; payload bytes are stored once and never
// copied until the caller asks for them.
type Encoded struct {
	payload []byte
	size    uint32
	off     int // Read cursor over header + payload.
}

// Encode compresses src with b and returns the container.
//
// Inputs longer than lz4block.MaxInputSize are rejected with ErrTooLarge
// before the backend runs. Backends without compression support report
// ErrCompressUnsupported.
func Encode(src []byte, b Backend) (*Encoded, error) {
	if len(src) > lz4block.MaxInputSize {
		return nil, errors.Wrapf(ErrTooLarge, "%d bytes, ceiling is %d", len(src), lz4block.MaxInputSize)
	}
	block, err := b.CompressBlock(src)
	if err != nil {
		return nil, errors.Wrap(err, "compress")
	}
	return &Encoded{
		payload: block,
		size:    uint32(len(src)),
	}, nil
}

// Header returns the container header: magic plus the little endian
// uncompressed size.
func (e *Encoded) Header() [HeaderSize]byte {
	var h [HeaderSize]byte
	copy(h[:], Magic)
	bin.PutUint32(h[MagicLen:], e.size)
	return h
}

// Size is the uncompressed payload size declared in the header.
func (e *Encoded) Size() uint32 { return e.size }

// Payload is the raw LZ4 block without the header. The slice aliases
// internal storage and must not be modified.
func (e *Encoded) Payload() []byte { return e.payload }

// Len is the total container length, header included.
func (e *Encoded) Len() int { return HeaderSize + len(e.payload) }

// Bytes returns the complete container as a fresh slice.
func (e *Encoded) Bytes() []byte {
	buf := make([]byte, 0, e.Len())
	h := e.Header()
	buf = append(buf, h[:]...)
	return append(buf, e.payload...)
}

// Read streams the container: header first, then the payload, then
// io.EOF. The cursor is not rewindable; use Bytes for random access.
func (e *Encoded) Read(p []byte) (int, error) {
	if e.off >= e.Len() {
		return 0, io.EOF
	}
	var n int
	if e.off < HeaderSize {
		h := e.Header()
		n = copy(p, h[e.off:])
		e.off += n
		if n == len(p) {
			return n, nil
		}
	}
	m := copy(p[n:], e.payload[e.off-HeaderSize:])
	e.off += m
	return n + m, nil
}

// WriteTo writes the whole container to w in two writes, header then
// payload, without assembling it in memory.
func (e *Encoded) WriteTo(w io.Writer) (int64, error) {
	h := e.Header()
	n, err := w.Write(h[:])
	if err != nil {
		return int64(n), errors.Wrap(err, "header")
	}
	m, err := w.Write(e.payload)
	if err != nil {
		return int64(n + m), errors.Wrap(err, "payload")
	}
	return int64(n + m), nil
}
