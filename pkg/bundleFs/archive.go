package bundleFs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxEntrySize caps how many bytes are read from a single archive entry
const MaxEntrySize = 32 << 20

var (
	// ErrEntryNotFound is returned when a named entry is not in the archive
	ErrEntryNotFound = errors.New("archive entry not found")
	// ErrEntryTooLarge is returned when an entry exceeds MaxEntrySize
	ErrEntryTooLarge = errors.New("archive entry too large")
)

// Archive is a read-only view of a bundle's compressed entries
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// OpenArchive opens a bundle for reading
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return &Archive{path: path, zr: zr}, nil
}

// Path returns the bundle path the archive was opened from
func (a *Archive) Path() string {
	return a.path
}

// NumEntries returns the number of entries in the archive index
func (a *Archive) NumEntries() int {
	return len(a.zr.File)
}

// EntryName returns the name of the entry at index i
func (a *Archive) EntryName(i int) (string, error) {
	if i < 0 || i >= len(a.zr.File) {
		return "", fmt.Errorf("%w: index %d of %d", ErrEntryNotFound, i, len(a.zr.File))
	}
	return a.zr.File[i].Name, nil
}

// IsDir reports whether the entry at index i is a directory
func (a *Archive) IsDir(i int) bool {
	if i < 0 || i >= len(a.zr.File) {
		return false
	}
	f := a.zr.File[i]
	return f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/")
}

// ReadEntry reads the entry with exactly the given name
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	for i, f := range a.zr.File {
		if f.Name == name {
			return a.ReadEntryAt(i)
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, name, a.path)
}

// ReadEntryAt reads the entry at index i
func (a *Archive) ReadEntryAt(i int) ([]byte, error) {
	if i < 0 || i >= len(a.zr.File) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrEntryNotFound, i, len(a.zr.File))
	}
	f := a.zr.File[i]
	if f.UncompressedSize64 > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrEntryTooLarge, f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// Headers can lie about the size, so bound the read as well
	data, err := io.ReadAll(io.LimitReader(rc, MaxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
	}
	if len(data) > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}
	return data, nil
}

// Close releases the underlying file
func (a *Archive) Close() error {
	return a.zr.Close()
}
