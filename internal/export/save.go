package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes an exported artifact under dir with exactly the given filename
// and returns its full path. Existing files are overwritten, mirroring the
// host save policy the dashboard download relied on.
func Save(dir, filename string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
