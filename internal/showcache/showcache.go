// Package showcache resolves per-show cache directories for the player.
package showcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ShowPath returns the cache directory for a show. The payload checksum
// keys the directory; a name hash is the fallback when no checksum is known.
func ShowPath(showName, checksum string) string {
	var identifier string
	if checksum != "" {
		if len(checksum) >= 8 {
			identifier = checksum[:8]
		} else {
			identifier = checksum
		}
	} else {
		h := sha256.New()
		h.Write([]byte(showName))
		identifier = hex.EncodeToString(h.Sum(nil))[:8]
	}

	return filepath.Join(CacheRoot(), identifier)
}

// CacheRoot returns the root cache directory
func CacheRoot() string {
	// Check environment variable first
	if cacheDir := os.Getenv("LUXBIN_CACHE_DIR"); cacheDir != "" {
		return cacheDir
	}

	// Use platform-specific defaults
	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Caches", "luxbin")
		}
	case "linux":
		if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
			return filepath.Join(xdgCache, "luxbin")
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".cache", "luxbin")
		}
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "luxbin", "cache")
		}
	}

	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "luxbin", "cache")
}

// Create makes the cache directory for a show.
func Create(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create show cache: %w", err)
	}
	return nil
}
