package integration

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"git.home.luguber.info/inful/sheetsite/internal/config"
	"git.home.luguber.info/inful/sheetsite/internal/site"
	"git.home.luguber.info/inful/sheetsite/internal/table"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestGenerate_EndToEnd covers the worked example from the tool's contract:
// input "Name,,Age" keeps columns {0,2}, short rows are padded, and the
// summary reports post-filter dimensions.
func TestGenerate_EndToEnd(t *testing.T) {
	input := writeInput(t, "sheet.csv", "Name,,Age\nAlice,x,30\nBob,y,\n")
	output := filepath.Join(t.TempDir(), "nested", "dir", "index.html")

	summary, err := site.NewGenerator(config.Default()).Generate(input, output)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Rows)
	require.Equal(t, 2, summary.Columns)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)

	require.True(t, strings.HasPrefix(doc, "<!doctype html>"))
	require.Contains(t, doc, "<th>Name</th>")
	require.Contains(t, doc, "<th>Age</th>")
	require.NotContains(t, doc, "<td>x</td>") // dropped column's cells are gone
	require.Contains(t, doc, "<tr><td>Alice</td><td>30</td></tr>")
	require.Contains(t, doc, "<tr><td>Bob</td><td></td></tr>")
}

func TestGenerate_EmptyInput_FailsWithoutWritingOutput(t *testing.T) {
	input := writeInput(t, "sheet.csv", "")
	output := filepath.Join(t.TempDir(), "index.html")

	_, err := site.NewGenerator(config.Default()).Generate(input, output)
	require.ErrorIs(t, err, table.ErrEmptyInput)

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr))
}

func TestGenerate_AllBlankHeaders_FailsWithoutWritingOutput(t *testing.T) {
	input := writeInput(t, "sheet.csv", ",,\na,b,c\n")
	output := filepath.Join(t.TempDir(), "index.html")

	_, err := site.NewGenerator(config.Default()).Generate(input, output)
	require.ErrorIs(t, err, table.ErrNoUsableColumns)

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr))
}

func TestGenerate_KeepBlankColumns_SkipsFilter(t *testing.T) {
	input := writeInput(t, "sheet.csv", "Name,,Age\nAlice,x,30\n")
	output := filepath.Join(t.TempDir(), "index.html")

	cfg := config.Default()
	cfg.Table.KeepBlankColumns = true

	summary, err := site.NewGenerator(cfg).Generate(input, output)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Columns)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), "<td>x</td>")
}

func TestGenerate_ExternalStyle_PublishesStylesheetNextToOutput(t *testing.T) {
	input := writeInput(t, "sheet.csv", "Name\nAlice\n")
	outDir := t.TempDir()
	output := filepath.Join(outDir, "index.html")

	cfg := config.Default()
	cfg.Site.Style = config.StyleExternal

	_, err := site.NewGenerator(cfg).Generate(input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), `href="sheet.css"`)

	_, err = os.Stat(filepath.Join(outDir, site.StylesheetName))
	require.NoError(t, err)
}

func TestGenerate_ExistingOutput_IsOverwritten(t *testing.T) {
	input := writeInput(t, "sheet.csv", "Name\nAlice\n")
	output := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o644))

	_, err := site.NewGenerator(config.Default()).Generate(input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.NotContains(t, string(data), "stale")
	require.Contains(t, string(data), "<td>Alice</td>")
}

// TestGenerate_XLSXInput_MatchesCSVMarkup feeds the same logical sheet as CSV
// and as an Excel workbook; aside from the timestamp line the pages must match.
func TestGenerate_XLSXInput_MatchesCSVMarkup(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "sheet.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Name,Age\nAlice,30\nBob,41\n"), 0o644))

	f := excelize.NewFile()
	cells := map[string]string{"A1": "Name", "B1": "Age", "A2": "Alice", "B2": "30", "A3": "Bob", "B3": "41"}
	for cell, val := range cells {
		require.NoError(t, f.SetCellStr("Sheet1", cell, val))
	}
	xlsxPath := filepath.Join(dir, "sheet.xlsx")
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	gen := site.NewGenerator(config.Default())

	fromCSV := filepath.Join(dir, "csv.html")
	_, err := gen.Generate(csvPath, fromCSV)
	require.NoError(t, err)

	fromXLSX := filepath.Join(dir, "xlsx.html")
	_, err = gen.Generate(xlsxPath, fromXLSX)
	require.NoError(t, err)

	require.Equal(t, stripTimestamp(t, fromCSV), stripTimestamp(t, fromXLSX))
}

var timestampLine = regexp.MustCompile(`Last updated \(UTC\): [^<]+`)

func stripTimestamp(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return timestampLine.ReplaceAllString(string(data), "Last updated (UTC): X")
}
