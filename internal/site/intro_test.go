package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderIntro_Markdown_ConvertsToHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intro.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello\n\nSome *notes*.\n"), 0o644))

	out, err := RenderIntro(path)
	require.NoError(t, err)
	require.Contains(t, out, "<h1>Hello</h1>")
	require.Contains(t, out, "<em>notes</em>")
}

func TestRenderIntro_MissingFile_ReturnsError(t *testing.T) {
	_, err := RenderIntro(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}
