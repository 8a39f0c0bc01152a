package settings

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the launcher configuration read from the environment
type Config struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool

	BundlesDir     string
	CacheDir       string
	BundleExt      string
	IconEntry      string
	ManifestSuffix string
	LaunchCommand  string
}

// Environment variable names
const (
	EnvFile           = "LAUNCHER_ENV_FILE"
	EnvTitle          = "LAUNCHER_TITLE"
	EnvWidth          = "LAUNCHER_WIDTH"
	EnvHeight         = "LAUNCHER_HEIGHT"
	EnvFullscreen     = "LAUNCHER_FULLSCREEN"
	EnvBundlesDir     = "LAUNCHER_BUNDLES_DIR"
	EnvCacheDir       = "LAUNCHER_CACHE_DIR"
	EnvBundleExt      = "LAUNCHER_BUNDLE_EXT"
	EnvIconEntry      = "LAUNCHER_ICON_ENTRY"
	EnvManifestSuffix = "LAUNCHER_MANIFEST_SUFFIX"
	EnvCommand        = "LAUNCHER_COMMAND"
)

var defaultConfig = Config{
	Title:          "Launcher",
	Width:          854,
	Height:         480,
	BundlesDir:     "bundles",
	BundleExt:      ".bundle",
	IconEntry:      "icon.png",
	ManifestSuffix: ".manifest",
	LaunchCommand:  "xdg-open {bundle}",
}

// Default returns the built-in configuration
func Default() Config {
	cfg := defaultConfig
	cfg.CacheDir = siblingCacheDir(cfg.BundlesDir)
	return cfg
}

// EnvFilePath returns the env file Load reads: LAUNCHER_ENV_FILE when set,
// otherwise ".env" in the working directory
func EnvFilePath() string {
	if path := os.Getenv(EnvFile); path != "" {
		return path
	}
	return ".env"
}

// Load reads the configuration from the process environment, filling unset
// variables from the env file at EnvFilePath. Process variables always win.
// A missing or unreadable file is returned as an error alongside a usable
// config; invalid values fall back to defaults so the launcher can start.
func Load() (Config, error) {
	path := EnvFilePath()
	values, err := Read(path)

	cfg := fromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
	return cfg, err
}

// Read parses a single env file without touching the process environment
func Read(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := defaultConfig

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dim := func(key string, dst *int32) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil || n <= 0 {
			log.Printf("Warning: ignoring %s=%q: want a positive integer", key, v)
			return
		}
		*dst = int32(n)
	}

	str(EnvTitle, &cfg.Title)
	dim(EnvWidth, &cfg.Width)
	dim(EnvHeight, &cfg.Height)
	str(EnvBundlesDir, &cfg.BundlesDir)
	str(EnvCacheDir, &cfg.CacheDir)
	str(EnvBundleExt, &cfg.BundleExt)
	str(EnvIconEntry, &cfg.IconEntry)
	str(EnvManifestSuffix, &cfg.ManifestSuffix)
	str(EnvCommand, &cfg.LaunchCommand)

	if v, ok := lookup(EnvFullscreen); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			log.Printf("Warning: ignoring %s=%q: %v", EnvFullscreen, v, err)
		} else {
			cfg.Fullscreen = b
		}
	}

	if !strings.HasPrefix(cfg.BundleExt, ".") {
		cfg.BundleExt = "." + cfg.BundleExt
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = siblingCacheDir(cfg.BundlesDir)
	}
	return cfg
}

// siblingCacheDir places the cache next to the bundles directory
func siblingCacheDir(bundlesDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(bundlesDir)), "cache")
}
