package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes content to path, overwriting any existing file.
func SaveFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteLocalCopy preserves content under .zor/ for later diagnostics, e.g.
// the raw model response after a parse failure. Best effort.
func WriteLocalCopy(filename string, content []byte) {
	zorDir := ".zor"
	if err := os.MkdirAll(zorDir, 0755); err != nil {
		return
	}
	if err := os.WriteFile(filepath.Join(zorDir, filename), content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write local copy: %v\n", err)
	}
}
