package mozlz4

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/mozlz4/lz4block"
)

func TestLibrary(t *testing.T) {
	t.Run("Strings", func(t *testing.T) {
		require.Equal(t, []string{"Pierrec", "PierrecV3", "S2", "Ported"}, LibraryStrings())
		for _, l := range LibraryValues() {
			require.True(t, l.IsALibrary())
			parsed, err := LibraryString(l.String())
			require.NoError(t, err)
			require.Equal(t, l, parsed)
		}
	})
	t.Run("CaseInsensitive", func(t *testing.T) {
		l, err := LibraryString("ported")
		require.NoError(t, err)
		require.Equal(t, LibraryPorted, l)
	})
	t.Run("Unknown", func(t *testing.T) {
		_, err := LibraryString("zstd")
		require.Error(t, err)

		l := Library(200)
		require.False(t, l.IsALibrary())
		require.Equal(t, "Library(200)", l.String())
		require.Panics(t, func() { l.Backend() })
	})
}

func TestFacts(t *testing.T) {
	t.Run("Declared", func(t *testing.T) {
		for _, tc := range []struct {
			Library Library
			Facts   Facts
		}{
			{LibraryPierrec, Facts{Compression: true}},
			{LibraryPierrecV3, Facts{Compression: true}},
			{LibraryS2, Facts{}},
			{LibraryPorted, Facts{}},
		} {
			require.Equal(t, tc.Facts, tc.Library.Facts(), tc.Library)
		}
	})
	t.Run("MatchBehavior", func(t *testing.T) {
		var (
			input = readFixture(t, "sessionstore.json")
			want  = readFixture(t, "sessionstore.jsonlz4")
		)
		for _, l := range LibraryValues() {
			t.Run(l.String(), func(t *testing.T) {
				facts := l.Facts()
				e, err := Encode(input, l.Backend())
				if !facts.Compression {
					require.ErrorIs(t, err, ErrCompressUnsupported)
					return
				}
				require.NoError(t, err)
				out, err := Decode(e.Bytes(), l.Backend())
				require.NoError(t, err)
				require.Equal(t, input, out)

				if facts.SameAsFirefox {
					require.Equal(t, want, e.Bytes())
				}
			})
		}
	})
}

func TestPierrecHC(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789abcdef"), 640)

	fast, err := Encode(input, NewPierrec())
	require.NoError(t, err)
	hc, err := Encode(input, NewPierrecHC(0))
	require.NoError(t, err)
	// High compression never loses to fast mode on repetitive data.
	require.LessOrEqual(t, len(hc.Payload()), len(fast.Payload()))

	// Levels above the cap are clamped, not passed through.
	clamped, err := Encode(input, NewPierrecHC(100))
	require.NoError(t, err)
	out, err := Decode(clamped.Bytes(), NewPorted())
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestPierrecV3IncompressibleFallback(t *testing.T) {
	// Strictly increasing bytes have no repeated 4-byte window, so v3
	// finds no match and reports the input incompressible.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}

	block, err := NewPierrecV3().CompressBlock(input)
	require.NoError(t, err)
	require.Equal(t, lz4block.AppendLiterals(nil, input), block)

	out, err := lz4block.Decompress(nil, block)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestS2DeclaredTooSmall(t *testing.T) {
	// A header lying about the size makes the converter run out of room
	// mid-block. That must surface as an error, not an oversized result.
	data := readFixture(t, "sessionstore.jsonlz4")
	_, err := Decode(container(10, data[HeaderSize:]), NewS2())
	require.ErrorIs(t, err, ErrTooShort)
}

func TestBackendFresh(t *testing.T) {
	// Library.Backend hands out new values, not shared state.
	require.NotSame(t, LibraryPierrec.Backend(), LibraryPierrec.Backend())
}
