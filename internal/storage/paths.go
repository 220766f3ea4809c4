package storage

import (
	"os"
	"path/filepath"
)

// appDirName is the directory under the user config dir holding the
// engine's persistent state.
const appDirName = "chess-ai-engine"

// DatabaseDir returns the database directory, creating it when
// missing.
func DatabaseDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, appDirName, "db")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}
