// Package report renders the aggregation result into the multi-sheet
// review workbook. The sheets are ordered for their audiences: the
// executive summary first, then the HR review sheets (suspicious
// records, roster matching, merge audit), then the verification sheets
// (data traceback, full employee table).
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sutthirak/rollcall/internal/formats"
	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/errors"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// Data is everything the workbook is rendered from. Months, Files, and
// Sections are parallel: one entry per processed monthly file, in month
// order. Audit is nil when no roster was supplied; Review may be empty.
type Data struct {
	Identities []*absence.Identity
	Months     [][]absence.Record
	Files      []string
	Sections   [][]formats.Section
	Audit      []roster.Audit
	Review     []aggregate.ReviewPair
}

// Identity-table columns that precede the absence-type columns.
var identityHeaders = []string{
	"รหัส (EmpID)",
	"ชื่อ-สกุล (Name)",
	"ชื่อเต็ม (Master)",
	"หมายเหตุ (Notes)",
	"ตำแหน่ง (Position)",
	"แผนก (Department)",
	"ประเภท (PayType)",
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthLabel(i int) string {
	if i < len(monthLabels) {
		return monthLabels[i]
	}
	return fmt.Sprintf("M%d", i+1)
}

// Write renders the workbook to path.
func Write(path string, data *Data) error {
	f := excelize.NewFile()
	defer f.Close()

	w := &workbook{f: f, data: data}

	w.executiveSummary()
	w.suspicious()
	if len(data.Audit) > 0 {
		w.masterMatch()
	}
	w.mergedNames()
	if len(data.Review) > 0 {
		w.nameReview()
	}
	w.traceback()
	w.employees()

	if w.err != nil {
		return errors.WrapIO("render workbook", path, w.err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write workbook", path, err)
	}
	return nil
}

// workbook accumulates sheets and holds the first render error; the
// sheet builders stay clean of error plumbing.
type workbook struct {
	f    *excelize.File
	data *Data
	err  error
}

// sheet starts a new sheet. The first call replaces the default sheet so
// the workbook opens on the executive summary.
func (w *workbook) sheet(name string) *sheet {
	first := w.f.GetSheetName(0)
	if first == "Sheet1" {
		if err := w.f.SetSheetName(first, name); err != nil && w.err == nil {
			w.err = err
		}
	} else if _, err := w.f.NewSheet(name); err != nil && w.err == nil {
		w.err = err
	}
	return &sheet{w: w, name: name, next: 1}
}

type sheet struct {
	w    *workbook
	name string
	next int // next sheet row, 1-based
}

// row appends one row of cells.
func (s *sheet) row(values ...interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, s.next)
	if err == nil {
		err = s.w.f.SetSheetRow(s.name, cell, &values)
	}
	if err != nil && s.w.err == nil {
		s.w.err = err
	}
	s.next++
}

// blank appends an empty separator row.
func (s *sheet) blank() { s.next++ }

// lastRow returns the sheet row number of the most recently written row.
func (s *sheet) lastRow() int { return s.next - 1 }

// colWidth sets the width of columns from (1-based) to (1-based).
func (s *sheet) colWidth(from, to int, width float64) {
	a, err1 := excelize.ColumnNumberToName(from)
	b, err2 := excelize.ColumnNumberToName(to)
	if err1 != nil || err2 != nil {
		return
	}
	if err := s.w.f.SetColWidth(s.name, a, b, width); err != nil && s.w.err == nil {
		s.w.err = err
	}
}

// style applies a style ID to the rectangle spanning the given 1-based
// coordinates.
func (s *sheet) style(fromCol, fromRow, toCol, toRow, styleID int) {
	if styleID == 0 {
		return
	}
	a, err1 := excelize.CoordinatesToCellName(fromCol, fromRow)
	b, err2 := excelize.CoordinatesToCellName(toCol, toRow)
	if err1 != nil || err2 != nil {
		return
	}
	if err := s.w.f.SetCellStyle(s.name, a, b, styleID); err != nil && s.w.err == nil {
		s.w.err = err
	}
}

// styleRow applies a style to one full row of n columns.
func (s *sheet) styleRow(row, cols, styleID int) {
	s.style(1, row, cols, row, styleID)
}

// Shared styles. NewStyle deduplicates, so building them per sheet is
// harmless.

func (w *workbook) boldStyle() int {
	return w.newStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
}

func (w *workbook) sectionStyle() int {
	return w.newStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
}

func (w *workbook) alertStyle() int {
	return w.newStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: "FF0000"}})
}

func (w *workbook) fillStyle(color string) int {
	return w.newStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
}

func (w *workbook) newStyle(s *excelize.Style) int {
	id, err := w.f.NewStyle(s)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return 0
	}
	return id
}
