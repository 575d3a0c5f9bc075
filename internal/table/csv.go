package table

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadCSV reads an RFC-4180-ish CSV file into a Table. Sheet exports often
// lead with a UTF-8 byte-order mark, which is stripped before parsing. Ragged
// rows are accepted as-is; projection pads them later.
func LoadCSV(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	bomAware := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	r := csv.NewReader(bomAware)
	r.FieldsPerRecord = -1
	if delimiter != 0 {
		r.Comma = delimiter
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	return New(records)
}
