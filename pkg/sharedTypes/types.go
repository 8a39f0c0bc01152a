package sharedTypes

import "github.com/google/uuid"

// Placeholder metadata used until manifests are parsed
const (
	PlaceholderVersion = "unknown"
)

// Bundle describes one launchable application package on disk
type Bundle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Path     string `json:"path"` // absolute
	Version  string `json:"version"`

	// Manifest is the archive entry located as the bundle manifest, empty when none was found
	Manifest     string `json:"manifest,omitempty"`
	ManifestSize int    `json:"manifestSize,omitempty"`
}

// NewBundle returns a bundle with a fresh ID and placeholder metadata
func NewBundle(name, fileName, path string) Bundle {
	return Bundle{
		ID:       uuid.New().String(),
		Name:     name,
		FileName: fileName,
		Path:     path,
		Version:  PlaceholderVersion,
	}
}

// HasManifest reports whether a manifest entry was located
func (b Bundle) HasManifest() bool {
	return b.Manifest != ""
}
