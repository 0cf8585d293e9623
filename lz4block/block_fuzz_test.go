package lz4block

import (
	"bytes"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func FuzzDecompress(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x15, 0x61, 0x01, 0x00})
	f.Add([]byte{0xF0, 0xFF, 0x1E})
	f.Add([]byte{0x10, 0x61, 0x00, 0x00})
	f.Add(AppendLiterals(nil, []byte("{\"version\":[\"sessionrestore\",1]}")))
	f.Fuzz(func(t *testing.T, block []byte) {
		const limit = 1 << 20
		out, err := Decompress(make([]byte, 0, 64), block)
		if err != nil {
			return
		}
		if len(out) > limit {
			return
		}
		// Anything we accept that the reference decoder also accepts
		// must decode identically. The reference rejecting it is fine:
		// it applies stricter terminal rules than the port.
		ref := make([]byte, limit)
		n, err := lz4.UncompressBlock(block, ref)
		if err != nil {
			return
		}
		if !bytes.Equal(ref[:n], out) {
			t.Errorf("divergent decode: got %d bytes, reference %d bytes", len(out), n)
		}
	})
}
