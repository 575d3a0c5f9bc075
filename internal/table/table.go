// Package table holds the in-memory model for a spreadsheet export: a header
// row plus ordered data rows. Rows keep the raw cell counts from the input;
// projection pads short rows with empty strings instead of rejecting them.
package table

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyInput is returned when the input file contains zero records.
	ErrEmptyInput = errors.New("input contains no rows")

	// ErrNoUsableColumns is returned when every header cell is blank or
	// whitespace-only, leaving nothing to render.
	ErrNoUsableColumns = errors.New("no non-blank header columns found")
)

// Table is a header row plus ordered data rows. Data rows may be shorter or
// longer than the header until projected via DropBlankColumns or Normalize.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New builds a Table from raw records, treating the first record as the
// header row.
func New(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// Load reads a table from path, choosing the loader by file extension.
// .xlsx files are read as Excel workbooks; everything else is parsed as CSV
// with the given delimiter.
func Load(path string, delimiter rune) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path, delimiter)
}

// DropBlankColumns returns a new Table containing only the columns whose
// header cell is non-blank after trimming, preserving left-to-right order.
// Kept header text is not trimmed; only eligibility is decided on the trimmed
// value. Every data row is remapped to the kept indices, with empty strings
// substituted for cells the row does not have.
func (t *Table) DropBlankColumns() (*Table, error) {
	keep := make([]int, 0, len(t.Headers))
	for i, h := range t.Headers {
		if strings.TrimSpace(h) != "" {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, ErrNoUsableColumns
	}
	return t.project(keep), nil
}

// Normalize returns a new Table with every data row padded or truncated to
// the header width. Used when blank-header filtering is disabled so the
// renderer still sees a rectangular grid.
func (t *Table) Normalize() *Table {
	keep := make([]int, len(t.Headers))
	for i := range keep {
		keep[i] = i
	}
	return t.project(keep)
}

func (t *Table) project(keep []int) *Table {
	headers := make([]string, len(keep))
	for j, i := range keep {
		headers[j] = t.Headers[i]
	}
	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			if i < len(row) {
				cells[j] = row[i]
			}
		}
		rows[r] = cells
	}
	return &Table{Headers: headers, Rows: rows}
}
