package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritePage writes the rendered document to path, creating parent directories
// as needed and overwriting any existing file.
func WritePage(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
