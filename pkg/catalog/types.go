package catalog

import (
	"errors"

	"bundle-launcher/pkg/sharedTypes"
)

// ErrDirectoryNotFound is returned when the bundles path is missing or not a directory
var ErrDirectoryNotFound = errors.New("bundles directory not found")

// Icon is a decoded, render-ready image owned by exactly one Entry
type Icon interface {
	Release()
}

// IconLoader turns a cached image file into an Icon. It returns an error
// rather than a nil Icon when the file is absent or unreadable.
type IconLoader interface {
	LoadIcon(path string) (Icon, error)
}

// Entry is one discovered bundle with its derived display data
type Entry struct {
	sharedTypes.Bundle

	// Icon is nil when neither the cache nor the bundle produced an image
	Icon      Icon
	CachePath string
}

// HasIcon reports whether the entry holds a loaded icon
func (e *Entry) HasIcon() bool {
	return e.Icon != nil
}

func (e *Entry) releaseIcon() {
	if e.Icon != nil {
		e.Icon.Release()
		e.Icon = nil
	}
}

// Options configures what a scan treats as a bundle and where icons are cached
type Options struct {
	// BundleExt is matched case-insensitively against file names, e.g. ".bundle"
	BundleExt string
	// IconEntry is the fixed archive entry holding the bundle icon
	IconEntry string
	// ManifestSuffix is matched against archive entry names to locate the manifest
	ManifestSuffix string
	// CacheDir holds one PNG per bundle. Empty means a "cache" directory
	// next to the scanned directory.
	CacheDir string
}

// Stats counts what the last Scan or ReloadIcons did
type Stats struct {
	Bundles        int
	CacheHits      int
	Extractions    int
	IconFailures   int
	ManifestsFound int
}
