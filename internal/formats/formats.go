// Package formats routes monthly payroll exports to the layout adapter
// that understands them. The timekeeping software changed its export
// layout three times during the year, so the eleven monthly files span
// four incompatible column arrangements. Each adapter collapses its
// layout into the fixed absence-type order; everything downstream is
// layout-agnostic.
package formats

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/errors"
)

// Section is one sub-period's column-wise totals inside a monthly file,
// used for the data-traceback report. Layouts without sub-periods report
// no sections.
type Section struct {
	Name   string
	Totals absence.Totals
}

// Extraction is everything one adapter pulls out of one monthly file.
type Extraction struct {
	Records  []absence.Record
	Sections []Section
}

// Handler extracts absence records from one spreadsheet layout.
type Handler interface {
	// Name is the human-readable layout name used in logs and reports.
	Name() string

	// Extract reads the file and returns its records plus any
	// sub-period section totals.
	Extract(path string) (*Extraction, error)
}

// Monthly files are named MM.2568.xlsx (Thai Buddhist calendar year).
var fileRe = regexp.MustCompile(`^(\d{2})\.2568\.xlsx$`)

// layouts by month number. Months 01-07 use the two-half layout, 08-09
// the direct-totals layout, 10 and 11 the reordered-columns layout with
// the header one row lower in 11.
var layoutByMonth = map[string]Handler{
	"01": layoutA, "02": layoutA, "03": layoutA, "04": layoutA,
	"05": layoutA, "06": layoutA, "07": layoutA,
	"08": layoutB, "09": layoutB,
	"10": layoutC,
	"11": layoutD,
}

// ForFile returns the layout handler and month number for a monthly
// file name. The path may include directories.
func ForFile(path string) (Handler, string, error) {
	base := filepath.Base(path)
	m := fileRe.FindStringSubmatch(base)
	if m == nil {
		return nil, "", errors.NewFormatError(base, "file name does not match MM.2568.xlsx")
	}
	h, ok := layoutByMonth[m[1]]
	if !ok {
		return nil, "", errors.NewFormatError(base, "no layout known for month "+m[1])
	}
	return h, m[1], nil
}

// Source is one discovered monthly file with its resolved layout.
type Source struct {
	Path    string
	Name    string // base file name
	Month   string // "01" .. "11"
	Handler Handler
}

// Discover lists the monthly absence files in dir in month order. Files
// that do not match the monthly naming pattern are ignored; a directory
// with no monthly files at all is an error.
func Discover(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read directory", dir, err)
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		h, month, err := ForFile(e.Name())
		if err != nil {
			continue
		}
		sources = append(sources, Source{
			Path:    filepath.Join(dir, e.Name()),
			Name:    e.Name(),
			Month:   month,
			Handler: h,
		})
	}
	if len(sources) == 0 {
		return nil, errors.NewIOError("scan", dir, errors.ErrNoRecords)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Month < sources[j].Month })
	return sources, nil
}
