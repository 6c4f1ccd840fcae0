package xlsxio

import (
	"github.com/sutthirak/rollcall/pkg/errors"
	"github.com/sutthirak/rollcall/pkg/names"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// Master roster column layout: running number, payroll code, full name,
// salary, signature. Only the code and name matter here.
const (
	rosterColID   = 1
	rosterColName = 2
)

// LoadRoster reads the authoritative employee roster workbook. The first
// two rows are the title banner and the column header; rows missing
// either the code or the name (section separators, sum rows) are dropped
// silently.
func LoadRoster(path string) ([]roster.Entry, error) {
	table, err := ReadTable(path, 2)
	if err != nil {
		return nil, err
	}

	var entries []roster.Entry
	for row := 0; row < table.Len(); row++ {
		id := table.Cell(row, rosterColID)
		fullName := table.Cell(row, rosterColName)
		if id == "" || fullName == "" {
			continue
		}
		parsed, ok := names.Parse(fullName)
		if !ok {
			continue
		}
		entries = append(entries, roster.Entry{
			ID:       id,
			FullName: fullName,
			Display:  parsed.Display,
			Key:      parsed.Key,
		})
	}

	if len(entries) == 0 {
		return nil, errors.NewRosterError(path, "no usable rows", errors.ErrNoRecords)
	}
	return entries, nil
}
