package bundleFs

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrIconDecodeFailed wraps every failure to produce a cached icon
var ErrIconDecodeFailed = errors.New("icon decode failed")

// CachePath returns the cache file for a bundle: <cacheDir>/<bundle-filename>.png
func CachePath(cacheDir, bundleFileName string) string {
	return filepath.Join(cacheDir, bundleFileName+".png")
}

// ExtractIconToCache reads entryName from the bundle, decodes it and writes
// it to cachePath as PNG. The cache file is replaced atomically so a failed
// write never leaves a truncated image behind.
func ExtractIconToCache(bundlePath, entryName, cachePath string) error {
	archive, err := OpenArchive(bundlePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIconDecodeFailed, err)
	}
	defer archive.Close()

	data, err := archive.ReadEntry(entryName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIconDecodeFailed, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s in %s: %v", ErrIconDecodeFailed, entryName, bundlePath, err)
	}

	if err := writePNG(cachePath, img); err != nil {
		return fmt.Errorf("%w: %v", ErrIconDecodeFailed, err)
	}

	return nil
}

func writePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// DecodeCachedIcon loads a cached PNG icon
func DecodeCachedIcon(cachePath string) (image.Image, error) {
	f, err := os.Open(cachePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIconDecodeFailed, cachePath, err)
	}
	return img, nil
}
