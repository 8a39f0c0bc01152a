// Package bundletest builds bundle archives and icons for tests.
package bundletest

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Entry is a single file written into a test bundle. A trailing slash in
// Name writes a directory entry.
type Entry struct {
	Name string
	Data []byte
}

// PNG returns an encoded solid-colour image of the given size
func PNG(t testing.TB, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WriteBundle writes a zip archive at path with entries in the given order
func WriteBundle(t testing.TB, path string, entries ...Entry) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		if len(e.Data) > 0 {
			_, err = w.Write(e.Data)
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return path
}

// WriteIconBundle writes a bundle holding iconEntry and a manifest at manifestName.
// An empty manifestName leaves the manifest out.
func WriteIconBundle(t testing.TB, path, iconEntry, manifestName string) string {
	t.Helper()
	entries := []Entry{
		{Name: "data/"},
		{Name: iconEntry, Data: PNG(t, 4, 4, color.NRGBA{R: 200, G: 40, B: 90, A: 255})},
	}
	if manifestName != "" {
		entries = append(entries, Entry{Name: manifestName, Data: []byte("name = test\n")})
	}
	return WriteBundle(t, path, entries...)
}
