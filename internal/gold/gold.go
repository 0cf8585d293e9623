// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// NormalizeNewlines normalizes \r\n (windows) and \r (mac) into \n (unix).
func NormalizeNewlines(d []byte) []byte {
	d = bytes.ReplaceAll(d, []byte{13, 10}, []byte{10})
	d = bytes.ReplaceAll(d, []byte{13}, []byte{10})
	return d
}

// name derives golden file name, falling back to test name and adding
// ext when no extension is provided.
func name(t testing.TB, ext string, elems ...string) []string {
	if len(elems) == 0 {
		elems = []string{strings.ReplaceAll(t.Name(), "/", "_")}
	}
	if last := len(elems) - 1; filepath.Ext(elems[last]) == "" {
		elems[last] += ext
	}
	return elems
}

// update writes data as new golden file content.
func update(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("golden dir %s: %+v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("golden file %s: %+v", p, err)
	}
}

// Bytes checks golden file with provided byte slice, updating it when
// requested. File name defaults to test name with ".raw" extension.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	elems = name(t, ".raw", elems...)
	if Update {
		update(t, data, elems...)
	}
	expected := ReadFile(t, elems...)
	require.Equal(t, expected, data, "golden file %s", path.Join(elems...))
}

// Str checks golden file with provided string. Newlines are normalized
// on both sides. File name defaults to test name with ".txt" extension.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()

	elems = name(t, ".txt", elems...)
	normalized := NormalizeNewlines([]byte(s))
	if Update {
		update(t, normalized, elems...)
	}
	expected := NormalizeNewlines(ReadFile(t, elems...))
	require.Equal(t, string(expected), string(normalized), "golden file %s", path.Join(elems...))
}
