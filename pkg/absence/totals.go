// Package absence defines the data model shared by the aggregation
// pipeline: monthly absence records as emitted by the spreadsheet format
// adapters, the fixed 17-dimension absence-total vector, and the resolved
// identity that accumulates a person's yearly totals across source files.
package absence

// Indexes into Totals. The order is fixed by the payroll export layouts
// and must never change: every format adapter maps its columns onto these
// positions.
const (
	WorkDays = iota
	Absent
	PersonalLeave
	SickCertified
	SickUncertified
	Maternity
	LateGrace
	LatePenalty
	OvertimeLeave
	Suspension
	AnnualLeave
	OvertimeShort // OT up to 2.5 hours
	OvertimeLong  // OT beyond 2.5 hours
	HolidayWork
	HolidayOvertime
	NightShift
	MultiMachine

	// NumTypes is the number of tracked absence types.
	NumTypes = 17
)

// TypeHeaders are the bilingual column headers used in reports, indexed
// like Totals.
var TypeHeaders = [NumTypes]string{
	"วันทำงาน (Work Days)",
	"ขาดงาน (Absent)",
	"ลากิจ (Personal Leave)",
	"ป่วยมีใบรพ. (Sick w/Cert)",
	"ป่วยไม่มีรพ. (Sick w/o Cert)",
	"ลาคลอด (Maternity)",
	"ลืมสแกนนิ้ว/มาสาย (Late Grace)",
	"มาสายเกิน (Late Penalty)",
	"ลาOT (OT Leave)",
	"ให้หยุด/พักงาน (Suspension)",
	"พักร้อน (Annual Leave)",
	"OT 2.5 ชม",
	"OT >2.5 ชม",
	"ทำงานวันหยุด (Holiday Work)",
	"OT วันหยุด (Holiday OT)",
	"กะดึก (Night Shift)",
	"ควบคุม 2 เครื่อง (Multi-Machine)",
}

// Totals is the per-identity (or per-record) vector of absence-type
// sums. It is a value type; addition is element-wise.
type Totals [NumTypes]float64

// Add accumulates other into t element-wise.
func (t *Totals) Add(other Totals) {
	for i := range t {
		t[i] += other[i]
	}
}

// Sum returns the sum over all positions.
func (t Totals) Sum() float64 {
	var s float64
	for _, v := range t {
		s += v
	}
	return s
}

// IsZero reports whether every position is zero.
func (t Totals) IsZero() bool {
	for _, v := range t {
		if v != 0 {
			return false
		}
	}
	return true
}
