package report

import (
	"fmt"
	"sort"

	"github.com/sutthirak/rollcall/pkg/absence"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// executiveSummary renders the 30-second overview sheet: scope, headline
// workforce numbers, the dominant absence categories, department
// concentration, and a few canned insights.
func (w *workbook) executiveSummary() {
	s := w.sheet("Executive Summary")
	section := w.sectionStyle()

	identities := w.data.Identities
	rawRecords := 0
	for _, month := range w.data.Months {
		rawRecords += len(month)
	}
	merged := rawRecords - len(identities)

	period := fmt.Sprintf("%d months 2568", len(w.data.Months))
	if n := len(w.data.Months); n > 0 && n <= len(monthNames) {
		period = fmt.Sprintf("%s - %s 2568", monthNames[0], monthNames[n-1])
	}

	s.row("Metric", "Value")
	s.styleRow(s.lastRow(), 2, w.boldStyle())

	s.row("[PERIOD & SCOPE]")
	s.styleRow(s.lastRow(), 2, section)
	s.row("Data Period", period)
	s.row("Total Unique Employees", len(identities))
	s.row("Records Merged (deduplicates)", merged)
	s.blank()

	var totals absence.Totals
	var suspicious, multiIDs, quits, transfers int
	for _, ident := range identities {
		totals.Add(ident.Totals)
		f := suspicionFlags(ident)
		if f.any() {
			suspicious++
		}
		if f.multipleIDs {
			multiIDs++
		}
		if f.quit {
			quits++
		}
		if f.transfer {
			transfers++
		}
	}
	workDays := totals[absence.WorkDays]

	s.row("[WORKFORCE OVERVIEW]")
	s.styleRow(s.lastRow(), 2, section)
	s.row("Total Work Days", int(workDays))
	s.row("Employees Requiring Review", suspicious)
	s.row("  └─ Job Changes (Multiple IDs)", multiIDs)
	s.row("  └─ Employee Quits", quits)
	s.row("  └─ System Transfers", transfers)
	s.blank()

	s.row("[TOP ABSENCE CATEGORIES]")
	s.styleRow(s.lastRow(), 2, section)
	for _, i := range topAbsenceTypes(totals, 7) {
		pct := 0.0
		if workDays > 0 {
			pct = totals[i] / workDays * 100
		}
		s.row(absence.TypeHeaders[i], fmt.Sprintf("%.1f days (%.2f%%)", totals[i], pct))
	}
	s.blank()

	s.row("[DEPARTMENT CONCENTRATION (TOP 5)]")
	s.styleRow(s.lastRow(), 2, section)
	w.departmentRows(s, 5)
	s.blank()

	s.row("[KEY INSIGHTS]")
	s.styleRow(s.lastRow(), 2, section)

	absentPct, personalPct := 0.0, 0.0
	if workDays > 0 {
		absentPct = totals[absence.Absent] / workDays * 100
		personalPct = totals[absence.PersonalLeave] / workDays * 100
	}
	if absentPct < 0.1 {
		s.row("✓ Low Compliance Risk", fmt.Sprintf("Unexcused absence only %.3f%% - excellent", absentPct))
	} else {
		s.row("⚠ Compliance Alert", fmt.Sprintf("Unexcused absence %.2f%% - review needed", absentPct))
	}
	if suspicious > 0 && len(identities) > 0 {
		s.row("⚠ HR Review Required", fmt.Sprintf("%d employees (%.1f%%) - see Suspicious sheet",
			suspicious, float64(suspicious)/float64(len(identities))*100))
	}
	if personalPct > 2 {
		s.row("ℹ High Personal Leave", fmt.Sprintf("%.2f%% of work days - planned absences dominate", personalPct))
	}
	s.row("✓ Data Quality", fmt.Sprintf("%d duplicates merged, verified", merged))

	s.colWidth(1, 1, 38)
	s.colWidth(2, 2, 44)
}

// topAbsenceTypes returns the indexes of the non-work absence types with
// the largest totals, descending, zeros excluded.
func topAbsenceTypes(totals absence.Totals, n int) []int {
	var idx []int
	for i := 1; i < absence.NumTypes; i++ {
		if totals[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return totals[idx[a]] > totals[idx[b]] })
	if len(idx) > n {
		idx = idx[:n]
	}
	return idx
}

func (w *workbook) departmentRows(s *sheet, top int) {
	counts := make(map[string]int)
	var order []string
	for _, ident := range w.data.Identities {
		dept := ident.Department
		if dept == "" {
			dept = "(ไม่ระบุแผนก / Unknown Dept)"
		}
		if _, ok := counts[dept]; !ok {
			order = append(order, dept)
		}
		counts[dept]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	total := len(w.data.Identities)
	if total == 0 {
		return
	}
	shown := order
	if len(shown) > top {
		shown = shown[:top]
	}
	for _, dept := range shown {
		s.row(dept, fmt.Sprintf("%d employees (%.1f%%)", counts[dept], float64(counts[dept])/float64(total)*100))
	}
	if rest := order[len(shown):]; len(rest) > 0 {
		other := 0
		for _, dept := range rest {
			other += counts[dept]
		}
		s.row(fmt.Sprintf("Other (%d departments)", len(rest)),
			fmt.Sprintf("%d employees (%.1f%%)", other, float64(other)/float64(total)*100))
	}
}
