// Package xlsxio wraps spreadsheet access for the format adapters and
// the roster loader. It hides the cell-addressing details and the
// idiosyncrasies of real payroll exports: ragged rows, stray whitespace,
// and the half-dozen spellings of "zero" the timekeeping software emits.
package xlsxio

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/sutthirak/rollcall/pkg/errors"
)

// Table is the fully-materialized cell grid of one sheet. Rows are
// ragged: excelize drops trailing empty cells, so always go through Cell
// rather than indexing directly.
type Table struct {
	Path string
	Rows [][]string
}

// ReadTable loads the first sheet of an .xlsx workbook into memory,
// skipping the first skipRows rows.
func ReadTable(path string, skipRows int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open workbook", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.WrapIO("read workbook", path, errors.ErrNotFound)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapIO("read sheet", path, err)
	}
	if skipRows > len(rows) {
		skipRows = len(rows)
	}

	return &Table{Path: path, Rows: rows[skipRows:]}, nil
}

// Len returns the number of rows after the skipped header rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Cell returns the trimmed, NFC-normalized cell at (row, col), or "" when
// the address is out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(norm.NFC.String(r[col]))
}

// Numeric returns the cell at (row, col) parsed as a float. Empty cells
// and the dash placeholders the timekeeping software writes for "none"
// ("-", " - ", "--") all mean zero, as does anything unparseable.
func (t *Table) Numeric(row, col int) float64 {
	return ParseValue(t.Cell(row, col))
}

// ParseValue converts one raw cell value to a number under the payroll
// export's conventions: blanks and dash runs are zero, commas are
// thousands separators, and garbage is zero rather than an error.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.Trim(s, "- ") == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
