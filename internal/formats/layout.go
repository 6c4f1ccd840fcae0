package formats

import (
	"github.com/sutthirak/rollcall/internal/xlsxio"
	"github.com/sutthirak/rollcall/pkg/absence"
)

// multiMachineCol marks the totals position that has no single source
// column: the reordered layouts split multi-machine days across two
// columns that must be summed.
const multiMachineCol = -1

// layout is one spreadsheet column arrangement. All column numbers are
// zero-based sheet positions; skipRows covers the banner rows plus the
// header row, so row 0 of the loaded table is the first data row.
type layout struct {
	name     string
	skipRows int

	idCol, nameCol, posCol, deptCol, payCol int

	// cols maps each absence-type position to its source column. Unused
	// when sumHalves is set.
	cols [absence.NumTypes]int

	// multiMachine columns are summed into the multiMachineCol position.
	multiMachine []int

	// sumHalves layouts store each type twice, once per half-month block
	// starting at half1Start and half2Start; the monthly value is the sum.
	sumHalves              bool
	half1Start, half2Start int

	// hasHalves layouts carry half-month blocks for traceback only; the
	// monthly totals come from cols.
	hasHalves bool
}

var layoutA = &layout{
	name:     "Format A (01-07)",
	skipRows: 4,
	idCol:    0, nameCol: 1, posCol: 2, deptCol: 3, payCol: 4,
	sumHalves: true, hasHalves: true,
	half1Start: 5, half2Start: 22,
}

var layoutB = &layout{
	name:     "Format B (08-09)",
	skipRows: 4,
	idCol:    0, nameCol: 1, posCol: 2, deptCol: 3, payCol: 4,
	cols: [absence.NumTypes]int{
		5, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
	},
	hasHalves:  true,
	half1Start: 24, half2Start: 41,
}

var layoutC = &layout{
	name:     "Format C (10)",
	skipRows: 4,
	idCol:    1, nameCol: 2, posCol: 3, deptCol: 4, payCol: 5,
	cols: [absence.NumTypes]int{
		7, 17, 15, 13, 14, 16, 21, 22, 20, 18, 8, 9, 10, 11, 12, 27, multiMachineCol,
	},
	multiMachine: []int{28, 29},
}

// Month 11 moved the header down one row but kept month 10's columns.
var layoutD = &layout{
	name:     "Format D (11)",
	skipRows: 5,
	idCol:    1, nameCol: 2, posCol: 3, deptCol: 4, payCol: 5,
	cols: [absence.NumTypes]int{
		7, 17, 15, 13, 14, 16, 21, 22, 20, 18, 8, 9, 10, 11, 12, 27, multiMachineCol,
	},
	multiMachine: []int{28, 29},
}

func (l *layout) Name() string { return l.name }

// Extract reads every data row of the file. Rows with an empty name cell
// are layout chrome (separators, sum rows) and are skipped; rows whose
// name cannot be keyed are left in and skipped later by the aggregation
// engine, which logs them.
func (l *layout) Extract(path string) (*Extraction, error) {
	table, err := xlsxio.ReadTable(path, l.skipRows)
	if err != nil {
		return nil, err
	}

	ex := &Extraction{}
	var half1, half2 absence.Totals

	for row := 0; row < table.Len(); row++ {
		name := table.Cell(row, l.nameCol)
		if name == "" {
			continue
		}

		rec := absence.Record{
			RawName:    name,
			ID:         table.Cell(row, l.idCol),
			Position:   table.Cell(row, l.posCol),
			Department: table.Cell(row, l.deptCol),
			PayType:    table.Cell(row, l.payCol),
		}

		for i := 0; i < absence.NumTypes; i++ {
			rec.Totals[i] = l.value(table, row, i)
		}

		if l.hasHalves {
			for i := 0; i < absence.NumTypes; i++ {
				half1[i] += table.Numeric(row, l.half1Start+i)
				half2[i] += table.Numeric(row, l.half2Start+i)
			}
		}

		ex.Records = append(ex.Records, rec)
	}

	if l.hasHalves {
		ex.Sections = []Section{
			{Name: "First Half", Totals: half1},
			{Name: "Second Half", Totals: half2},
		}
	}
	return ex, nil
}

// value computes one absence-type total for one data row.
func (l *layout) value(table *xlsxio.Table, row, i int) float64 {
	if l.sumHalves {
		return table.Numeric(row, l.half1Start+i) + table.Numeric(row, l.half2Start+i)
	}
	col := l.cols[i]
	if col == multiMachineCol {
		var v float64
		for _, mc := range l.multiMachine {
			v += table.Numeric(row, mc)
		}
		return v
	}
	return table.Numeric(row, col)
}
