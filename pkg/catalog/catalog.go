package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bundle-launcher/pkg/bundleFs"
	"bundle-launcher/pkg/sharedTypes"
)

// Catalog is the ordered list of bundles found by the last scan
type Catalog struct {
	opts     Options
	loader   IconLoader
	dir      string
	cacheDir string
	entries  []*Entry
	stats    Stats
}

// New creates an empty catalog
func New(opts Options, loader IconLoader) *Catalog {
	return &Catalog{
		opts:   opts,
		loader: loader,
	}
}

// Scan rebuilds the catalog from the direct children of dir. Entries keep
// the order os.ReadDir returns, which is sorted by file name. Icons held by
// the previous catalog are released first.
func (c *Catalog) Scan(dir string) ([]*Entry, error) {
	c.Close()
	c.stats = Stats{}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	c.dir = absDir

	items, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, absDir, err)
	}

	c.cacheDir = c.opts.CacheDir
	if c.cacheDir == "" {
		c.cacheDir = filepath.Join(filepath.Dir(absDir), "cache")
	}
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		log.Printf("Warning: cannot create icon cache %s: %v", c.cacheDir, err)
	}

	ext := strings.ToLower(c.opts.BundleExt)
	for _, item := range items {
		name := item.Name()
		if item.IsDir() || !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}

		entry := &Entry{
			Bundle:    sharedTypes.NewBundle(placeholderName(name, ext), name, filepath.Join(absDir, name)),
			CachePath: bundleFs.CachePath(c.cacheDir, name),
		}
		c.locateManifest(entry)
		c.loadIcon(entry)
		c.entries = append(c.entries, entry)
	}
	c.stats.Bundles = len(c.entries)

	log.Printf("Catalog scan completed | dir=%s | bundles=%d | cacheHits=%d | extracted=%d | iconFailures=%d",
		absDir, c.stats.Bundles, c.stats.CacheHits, c.stats.Extractions, c.stats.IconFailures)
	return c.entries, nil
}

// ReloadIcons loads every entry's icon again without changing the entries
// themselves. Use it after the render context that owned the icons was
// recreated.
func (c *Catalog) ReloadIcons() {
	c.stats = Stats{Bundles: len(c.entries), ManifestsFound: c.stats.ManifestsFound}
	for _, entry := range c.entries {
		entry.releaseIcon()
		c.loadIcon(entry)
	}
	log.Printf("Catalog icon reload completed | bundles=%d | cacheHits=%d | extracted=%d | iconFailures=%d",
		c.stats.Bundles, c.stats.CacheHits, c.stats.Extractions, c.stats.IconFailures)
}

// ReleaseIcons drops every icon handle but keeps the entries
func (c *Catalog) ReleaseIcons() {
	for _, entry := range c.entries {
		entry.releaseIcon()
	}
}

// SetLoader replaces the icon loader used by later scans and reloads
func (c *Catalog) SetLoader(loader IconLoader) {
	c.loader = loader
}

// Close releases all icons and empties the catalog
func (c *Catalog) Close() {
	c.ReleaseIcons()
	c.entries = nil
}

// Entries returns the current entries in display order
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// Entry returns the entry at index i
func (c *Catalog) Entry(i int) (*Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return nil, false
	}
	return c.entries[i], true
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Dir returns the absolute directory of the last successful scan
func (c *Catalog) Dir() string {
	return c.dir
}

// CacheDir returns the icon cache directory used by the last scan
func (c *Catalog) CacheDir() string {
	return c.cacheDir
}

// Stats returns the counters of the last Scan or ReloadIcons
func (c *Catalog) Stats() Stats {
	return c.stats
}

// loadIcon tries the cache, then extracts from the bundle once and tries the
// cache again. A failure leaves the entry without an icon.
func (c *Catalog) loadIcon(entry *Entry) {
	if c.loader == nil {
		return
	}

	icon, err := c.loader.LoadIcon(entry.CachePath)
	if err == nil {
		entry.Icon = icon
		c.stats.CacheHits++
		return
	}

	c.stats.Extractions++
	if err := bundleFs.ExtractIconToCache(entry.Path, c.opts.IconEntry, entry.CachePath); err != nil {
		c.stats.IconFailures++
		log.Printf("Warning: no icon for %s: %v", entry.FileName, err)
		return
	}

	icon, err = c.loader.LoadIcon(entry.CachePath)
	if err != nil {
		c.stats.IconFailures++
		log.Printf("Warning: no icon for %s: %v: %v", entry.FileName, bundleFs.ErrIconDecodeFailed, err)
		return
	}
	entry.Icon = icon
}

func (c *Catalog) locateManifest(entry *Entry) {
	if c.opts.ManifestSuffix == "" {
		return
	}

	name, data, err := bundleFs.FindManifest(entry.Path, c.opts.ManifestSuffix)
	if err != nil {
		if !errors.Is(err, bundleFs.ErrManifestNotFound) {
			log.Printf("Warning: cannot read manifest of %s: %v", entry.FileName, err)
		}
		return
	}
	entry.Manifest = name
	entry.ManifestSize = len(data)
	c.stats.ManifestsFound++
}

// placeholderName strips the bundle extension until manifests are parsed
func placeholderName(fileName, ext string) string {
	name := fileName[:len(fileName)-len(ext)]
	if name == "" {
		return fileName
	}
	return name
}
