package site

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
)

// RenderIntro converts a markdown file into HTML for the intro section above
// the table. The intro is operator-supplied content, not sheet data, so its
// markup is embedded as-is.
func RenderIntro(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read intro file: %w", err)
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert intro markdown: %w", err)
	}
	return buf.String(), nil
}
