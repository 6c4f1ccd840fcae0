package aggregate_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sutthirak/rollcall/cmd/rollcall/cmd/aggregate"
	"github.com/sutthirak/rollcall/internal/appcontext"
)

// writeMonthlyFile writes a minimal two-half layout file with one
// employee row.
func writeMonthlyFile(t *testing.T, path, id, name string, workDays float64) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	row := make([]interface{}, 39)
	row[0], row[1] = id, name
	row[5] = workDays // first half
	require.NoError(t, f.SetSheetRow(sheet, "A5", &row))
	require.NoError(t, f.SaveAs(path))
}

func writeRosterFile(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"รายชื่อพนักงาน"},
		{"ลำดับ", "รหัส", "ชื่อ-นามสกุล", "จำนวนเงิน", "ลงชื่อ"},
		{1, "M100", "นาย SOMCHAI JAIDEE"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestAggregateCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeMonthlyFile(t, filepath.Join(dir, "01.2568.xlsx"), "E1", "นาย SOMCHAI JAIDEE", 20)
	writeMonthlyFile(t, filepath.Join(dir, "02.2568.xlsx"), "E1", "นาย SOMCHAI JAIDEE", 22)
	writeRosterFile(t, filepath.Join(dir, "roster.xlsx"))

	output := filepath.Join(dir, "out.xlsx")
	auditPath := filepath.Join(dir, "audit.yaml")

	cmd := aggregate.NewCommand(&appcontext.Mock{}, dir, "", "", "")
	cmd.SetArgs([]string{
		"--input", dir,
		"--roster", filepath.Join(dir, "roster.xlsx"),
		"--output", output,
		"--audit", auditPath,
	})
	require.NoError(t, cmd.Execute())

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Employees")
	assert.Contains(t, f.GetSheetList(), "Master Match")

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one merged employee")
	assert.Equal(t, "M100", rows[1][0], "roster match re-keys to the canonical code")
	assert.Equal(t, "42", rows[1][7], "work days summed across months")

	assert.FileExists(t, auditPath)
}

func TestAggregateCommandPositionalDir(t *testing.T) {
	dir := t.TempDir()
	writeMonthlyFile(t, filepath.Join(dir, "01.2568.xlsx"), "E1", "นาย SOMCHAI JAIDEE", 20)
	output := filepath.Join(dir, "out.xlsx")

	// The positional directory overrides the configured input dir.
	cmd := aggregate.NewCommand(&appcontext.Mock{}, t.TempDir(), "", "", "")
	cmd.SetArgs([]string{dir, "--output", output})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, output)
}

func TestAggregateCommandEmptyDir(t *testing.T) {
	cmd := aggregate.NewCommand(&appcontext.Mock{}, t.TempDir(), "", "", "")
	err := cmd.Execute()
	require.Error(t, err)
}
