package bundleFs_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-launcher/pkg/bundleFs"
	"bundle-launcher/pkg/bundleFs/bundletest"
)

func TestArchivePrimitives(t *testing.T) {
	path := bundletest.WriteBundle(t, filepath.Join(t.TempDir(), "a.bundle"),
		bundletest.Entry{Name: "assets/"},
		bundletest.Entry{Name: "assets/readme.txt", Data: []byte("hello")},
		bundletest.Entry{Name: "icon.png", Data: []byte("not really a png")},
	)

	archive, err := bundleFs.OpenArchive(path)
	require.NoError(t, err)
	defer archive.Close()

	assert.Equal(t, path, archive.Path())
	assert.Equal(t, 3, archive.NumEntries())

	name, err := archive.EntryName(1)
	require.NoError(t, err)
	assert.Equal(t, "assets/readme.txt", name)
	assert.True(t, archive.IsDir(0))
	assert.False(t, archive.IsDir(1))

	data, err := archive.ReadEntry("assets/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = archive.ReadEntryAt(2)
	require.NoError(t, err)
	assert.Equal(t, "not really a png", string(data))

	_, err = archive.ReadEntry("missing.png")
	assert.ErrorIs(t, err, bundleFs.ErrEntryNotFound)
	_, err = archive.ReadEntryAt(3)
	assert.ErrorIs(t, err, bundleFs.ErrEntryNotFound)
	_, err = archive.EntryName(-1)
	assert.ErrorIs(t, err, bundleFs.ErrEntryNotFound)
}

func TestOpenArchiveRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.bundle")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, err := bundleFs.OpenArchive(path)
	assert.Error(t, err)
}

func TestCachePath(t *testing.T) {
	assert.Equal(t, filepath.Join("cache", "game.bundle.png"), bundleFs.CachePath("cache", "game.bundle"))
}

func TestExtractIconToCache(t *testing.T) {
	dir := t.TempDir()
	bundle := bundletest.WriteIconBundle(t, filepath.Join(dir, "bundles", "game.bundle"), "icon.png", "")
	cachePath := bundleFs.CachePath(filepath.Join(dir, "cache"), "game.bundle")

	require.NoError(t, bundleFs.ExtractIconToCache(bundle, "icon.png", cachePath))

	img, err := bundleFs.DecodeCachedIcon(cachePath)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())

	leftovers, err := filepath.Glob(filepath.Join(dir, "cache", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestExtractIconToCacheFailures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		entries []bundletest.Entry
	}{
		{"icon entry missing", []bundletest.Entry{{Name: "other.png", Data: bundletest.PNG(t, 2, 2, color.White)}}},
		{"icon is not an image", []bundletest.Entry{{Name: "icon.png", Data: []byte("plain text")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := bundletest.WriteBundle(t, filepath.Join(dir, tt.name+".bundle"), tt.entries...)
			cachePath := bundleFs.CachePath(filepath.Join(dir, "cache"), filepath.Base(bundle))

			err := bundleFs.ExtractIconToCache(bundle, "icon.png", cachePath)
			assert.ErrorIs(t, err, bundleFs.ErrIconDecodeFailed)
			assert.NoFileExists(t, cachePath)
		})
	}

	t.Run("bundle is not an archive", func(t *testing.T) {
		bundle := filepath.Join(dir, "plain.bundle")
		require.NoError(t, os.WriteFile(bundle, []byte("nope"), 0o644))

		err := bundleFs.ExtractIconToCache(bundle, "icon.png", filepath.Join(dir, "cache", "plain.bundle.png"))
		assert.ErrorIs(t, err, bundleFs.ErrIconDecodeFailed)
	})
}

func TestDecodeCachedIconRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.bundle.png")
	require.NoError(t, os.WriteFile(path, []byte("corrupt"), 0o644))

	_, err := bundleFs.DecodeCachedIcon(path)
	assert.ErrorIs(t, err, bundleFs.ErrIconDecodeFailed)

	_, err = bundleFs.DecodeCachedIcon(filepath.Join(t.TempDir(), "absent.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindManifest(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		entries  []bundletest.Entry
		suffix   string
		wantName string
		wantErr  error
	}{
		{
			name: "nested path",
			entries: []bundletest.Entry{
				{Name: "icon.png", Data: []byte{1}},
				{Name: "meta/v2/app.manifest", Data: []byte("raw")},
			},
			suffix:   ".manifest",
			wantName: "meta/v2/app.manifest",
		},
		{
			name: "first match in index order wins",
			entries: []bundletest.Entry{
				{Name: "b.manifest", Data: []byte("first")},
				{Name: "a.manifest", Data: []byte("second")},
			},
			suffix:   ".manifest",
			wantName: "b.manifest",
		},
		{
			name: "suffix match is case-insensitive",
			entries: []bundletest.Entry{
				{Name: "APP.MANIFEST", Data: []byte("raw")},
			},
			suffix:   ".manifest",
			wantName: "APP.MANIFEST",
		},
		{
			name: "directories are skipped",
			entries: []bundletest.Entry{
				{Name: "odd.manifest/"},
				{Name: "odd.manifest/real.manifest", Data: []byte("raw")},
			},
			suffix:   ".manifest",
			wantName: "odd.manifest/real.manifest",
		},
		{
			name:    "absent",
			entries: []bundletest.Entry{{Name: "icon.png", Data: []byte{1}}},
			suffix:  ".manifest",
			wantErr: bundleFs.ErrManifestNotFound,
		},
		{
			name:    "empty suffix",
			entries: []bundletest.Entry{{Name: "x.manifest", Data: []byte{1}}},
			suffix:  "",
			wantErr: bundleFs.ErrManifestNotFound,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := bundletest.WriteBundle(t, filepath.Join(dir, string(rune('a'+i))+".bundle"), tt.entries...)

			name, data, err := bundleFs.FindManifest(bundle, tt.suffix)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.NotEmpty(t, data)
		})
	}
}
