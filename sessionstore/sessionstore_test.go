package sessionstore

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/mozlz4"
)

func readFixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecode(t *testing.T) {
	st, err := Decode(readFixture(t, "sessionstore.jsonlz4"), mozlz4.NewPorted())
	require.NoError(t, err)

	require.Equal(t, Version{Name: "sessionrestore", Major: 1}, st.Version)
	require.Equal(t, int64(1), st.SelectedWindow)
	require.Empty(t, st.ClosedWindows)
	require.NotNil(t, st.Session)
	require.Equal(t, int64(1724500201000), st.Session.LastUpdate)
	require.Equal(t, int64(1724410000000), st.Session.StartTime)

	require.Len(t, st.Windows, 1)
	w := st.Windows[0]
	require.Equal(t, int64(2), w.Selected)
	require.Equal(t, "normal", w.SizeMode)
	require.Equal(t, int64(1280), w.Width)
	require.Equal(t, int64(800), w.Height)
	require.Len(t, w.Tabs, 2)

	first := w.Tabs[0]
	require.Equal(t, int64(2), first.Index)
	entry, ok := first.CurrentEntry()
	require.True(t, ok)
	require.Equal(t, "https://example.com/docs/", entry.URL)
	require.Equal(t, "https://example.com/docs/", first.URL())
	require.Equal(t, "Example Domain Docs", first.Title())

	second := w.Tabs[1]
	require.True(t, second.Pinned)
	require.False(t, second.Hidden)
	require.Equal(t, "https://go.dev/blog/", second.URL())
	require.Equal(t, "The Go Blog", second.Title())
}

func TestRead(t *testing.T) {
	st, err := Read(bytes.NewReader(readFixture(t, "sessionstore.jsonlz4")), mozlz4.NewPierrec())
	require.NoError(t, err)
	require.Len(t, st.Windows, 1)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("Container", func(t *testing.T) {
		_, err := Decode([]byte("not a container"), mozlz4.NewPorted())

		var headerErr *mozlz4.BadHeaderError
		require.ErrorAs(t, err, &headerErr)
	})
	t.Run("JSON", func(t *testing.T) {
		e, err := mozlz4.Encode([]byte(`{"version": [`), mozlz4.NewPierrec())
		require.NoError(t, err)
		_, err = Decode(e.Bytes(), mozlz4.NewPorted())
		require.Error(t, err)
	})
}

func TestCurrentEntry(t *testing.T) {
	entries := []Entry{{URL: "a"}, {URL: "b"}}
	for _, tc := range []struct {
		Name string
		Tab  Tab
		URL  string
		OK   bool
	}{
		{Name: "First", Tab: Tab{Entries: entries, Index: 1}, URL: "a", OK: true},
		{Name: "Second", Tab: Tab{Entries: entries, Index: 2}, URL: "b", OK: true},
		{Name: "Absent", Tab: Tab{Entries: entries}},
		{Name: "PastEnd", Tab: Tab{Entries: entries, Index: 3}},
		{Name: "Negative", Tab: Tab{Entries: entries, Index: -1}},
		{Name: "NoEntries", Tab: Tab{Index: 1}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			e, ok := tc.Tab.CurrentEntry()
			require.Equal(t, tc.OK, ok)
			if tc.OK {
				require.Equal(t, tc.URL, e.URL)
			} else {
				require.Empty(t, tc.Tab.URL())
				require.Empty(t, tc.Tab.Title())
			}
		})
	}
}

func TestVersionJSON(t *testing.T) {
	var v Version
	require.NoError(t, json.Unmarshal([]byte(`["sessionrestore", 1]`), &v))
	require.Equal(t, Version{Name: "sessionrestore", Major: 1}, v)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `["sessionrestore", 1]`, string(out))

	require.Error(t, json.Unmarshal([]byte(`"sessionrestore"`), &v))
}

func TestMarshalStable(t *testing.T) {
	// One decode + encode settles the document; a second round must not
	// change a byte.
	st, err := Decode(readFixture(t, "sessionstore.jsonlz4"), mozlz4.NewPorted())
	require.NoError(t, err)

	first, err := json.Marshal(st)
	require.NoError(t, err)

	var again Store
	require.NoError(t, json.Unmarshal(first, &again))
	second, err := json.Marshal(&again)
	require.NoError(t, err)

	require.JSONEq(t, string(first), string(second))
}
