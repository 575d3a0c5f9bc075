package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// PublishStylesheet places StylesheetName into outDir so the external-style
// page's link resolves. A configured custom stylesheet is copied byte for
// byte; when it cannot be read, a warning is logged and nothing is published,
// leaving the page unstyled but usable. Without a custom path the embedded
// default sheet is written.
func PublishStylesheet(outDir, customPath string) error {
	data := defaultStylesheet
	if customPath != "" {
		b, err := os.ReadFile(customPath)
		if err != nil {
			slog.Warn("Stylesheet not found, page will render unstyled", "path", customPath, "error", err)
			return nil
		}
		data = b
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	dest := filepath.Join(outDir, StylesheetName)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to publish stylesheet: %w", err)
	}
	slog.Debug("Stylesheet published", "path", dest)
	return nil
}
