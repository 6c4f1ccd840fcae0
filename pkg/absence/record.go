package absence

// Record is one person's absence row for one month, as emitted by a
// spreadsheet format adapter. The adapter has already collapsed whatever
// multi-section column layout the source file used into the fixed Totals
// order; everything else is passed through verbatim. Records are
// immutable once produced.
type Record struct {
	RawName    string // name cell as it appeared, including nickname/note
	ID         string // payroll employee code, possibly empty, not unique over time
	Position   string
	Department string
	PayType    string
	Totals     Totals
}
