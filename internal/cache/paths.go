package cache

import (
	"os"
	"path/filepath"
)

const appName = "foxhole-solve"

// databaseDir returns $XDG_CACHE_HOME/foxhole-solve/cache. If
// XDG_CACHE_HOME is unset it uses ~/.cache in its place, or the
// platform temp directory when the home directory is unknown; if the
// resulting directory cannot be created it falls back to
// foxhole-solve/cache under the platform temp directory -- mirroring
// internal/storage/paths.go's GetDatabaseDir fallback shape, adapted
// from a mandatory data directory to a best-effort cache one.
func databaseDir() string {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			base = os.TempDir()
		} else {
			base = filepath.Join(home, ".cache")
		}
	}

	dir := filepath.Join(base, appName, "cache")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return filepath.Join(os.TempDir(), appName, "cache")
	}
	return dir
}
