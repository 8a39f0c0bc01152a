package bundleFs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrManifestNotFound is returned when no entry name ends with the manifest suffix
var ErrManifestNotFound = errors.New("manifest not found")

// FindManifest scans the archive index in order and returns the first
// non-directory entry whose name ends with suffix (case-insensitive),
// together with its raw bytes. The manifest path inside a bundle is not
// fixed, so there is no direct lookup.
func FindManifest(bundlePath, suffix string) (string, []byte, error) {
	if suffix == "" {
		return "", nil, fmt.Errorf("%w: empty suffix", ErrManifestNotFound)
	}

	archive, err := OpenArchive(bundlePath)
	if err != nil {
		return "", nil, err
	}
	defer archive.Close()

	return findManifest(archive, suffix)
}

func findManifest(archive *Archive, suffix string) (string, []byte, error) {
	suffix = strings.ToLower(suffix)
	for i := 0; i < archive.NumEntries(); i++ {
		if archive.IsDir(i) {
			continue
		}
		name, err := archive.EntryName(i)
		if err != nil {
			return "", nil, err
		}
		if !strings.HasSuffix(strings.ToLower(name), suffix) {
			continue
		}

		data, err := archive.ReadEntryAt(i)
		if err != nil {
			return name, nil, err
		}
		return name, data, nil
	}
	return "", nil, fmt.Errorf("%w: *%s in %s", ErrManifestNotFound, suffix, archive.Path())
}
