package platform

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Cache directory name under the user cache root
const (
	CacheDirName = "vr-gallery"
)

// CreateDirectoryIfNotExists creates the directory (and parents) if missing
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// GetCacheDir returns the per-user cache directory for downloaded textures,
// creating it if needed.
func GetCacheDir() (string, error) {
	root, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}

	dir := filepath.Join(root, CacheDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}
	return dir, nil
}

// CachePathForURL maps a remote asset URL to a stable local cache file name.
// The extension of the source URL is preserved when present so image decoders
// can sniff by suffix.
func CachePathForURL(cacheDir, url string) string {
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:8])

	ext := filepath.Ext(url)
	if idx := strings.IndexAny(ext, "?#"); idx >= 0 {
		ext = ext[:idx]
	}
	if len(ext) > 5 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	return filepath.Join(cacheDir, name+ext)
}
