package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/names"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// flags are the per-identity suspicion markers HR reviews by hand.
type flags struct {
	multipleIDs bool // payroll code changed during the year
	mergedName  bool // a "/" survived into the display name
	quit        bool // note mentions resignation
	restart     bool // note mentions re-hiring
	transfer    bool // note mentions transferring in
}

func (f flags) any() bool {
	return f.multipleIDs || f.mergedName || f.quit || f.restart || f.transfer
}

func suspicionFlags(ident *absence.Identity) flags {
	notes := ident.Notes.Join()
	return flags{
		multipleIDs: strings.Contains(ident.IDString(), "|"),
		mergedName:  strings.Contains(ident.Name, "/"),
		quit:        strings.Contains(notes, "ลาออก"),
		restart:     strings.Contains(notes, "เริ่มใหม่"),
		transfer:    strings.Contains(notes, "ย้ายมา"),
	}
}

func yes(b bool) string {
	if b {
		return "⚠ YES"
	}
	return ""
}

func (w *workbook) suspicious() {
	s := w.sheet("Suspicious")
	s.row("รหัส (ID)", "ชื่อ-สกุล (Name)", "Multiple IDs?", "Merged Name?",
		"Quit (ลาออก)?", "Restart (เริ่มใหม่)?", "Transfer (ย้ายมา)?", "หมายเหตุ (Notes)")
	s.styleRow(1, 8, w.boldStyle())

	alert := w.alertStyle()
	for _, ident := range w.data.Identities {
		f := suspicionFlags(ident)
		if !f.any() {
			continue
		}
		s.row(ident.IDString(), ident.Name, yes(f.multipleIDs), yes(f.mergedName),
			yes(f.quit), yes(f.restart), yes(f.transfer), ident.Notes.Join())
		// Highlight the flag columns on flagged rows.
		s.style(3, s.lastRow(), 7, s.lastRow(), alert)
	}

	s.colWidth(1, 2, 28)
	s.colWidth(3, 7, 16)
	s.colWidth(8, 8, 40)
}

// appearance tracks where a payroll code showed up in the source files,
// for the unmatched-identity notes on the roster sheet.
type appearance struct {
	lastMonth int
	notes     *absence.Set
}

func (w *workbook) sourceAppearances() map[string]*appearance {
	out := make(map[string]*appearance)
	for monthIdx, month := range w.data.Months {
		for _, rec := range month {
			id := strings.TrimSpace(rec.ID)
			if id == "" {
				continue
			}
			app, ok := out[id]
			if !ok {
				app = &appearance{notes: absence.NewSet()}
				out[id] = app
			}
			app.lastMonth = monthIdx + 1
			if parsed, ok := names.Parse(rec.RawName); ok {
				app.notes.Add(parsed.Note)
			}
		}
	}
	return out
}

func (w *workbook) masterMatch() {
	s := w.sheet("Master Match")
	s.row("Master ID", "Master Name", "Original ID", "Original Name",
		"Match Type", "Confidence", "Note")
	s.styleRow(1, 7, w.boldStyle())

	appearances := w.sourceAppearances()

	// Problems first: unmatched, then low-confidence, then clean matches.
	typeOrder := map[roster.MatchType]int{
		roster.MatchUnmatched: 0,
		roster.MatchFuzzy:     1,
		roster.MatchNameOnly:  2,
		roster.MatchIDAndName: 3,
	}
	audits := make([]roster.Audit, len(w.data.Audit))
	copy(audits, w.data.Audit)
	sort.SliceStable(audits, func(i, j int) bool {
		if typeOrder[audits[i].Type] != typeOrder[audits[j].Type] {
			return typeOrder[audits[i].Type] < typeOrder[audits[j].Type]
		}
		return audits[i].OriginalName < audits[j].OriginalName
	})

	fills := map[roster.MatchType]int{
		roster.MatchUnmatched: w.fillStyle("FFC7CE"),
		roster.MatchFuzzy:     w.fillStyle("FFEB9C"),
	}

	for _, a := range audits {
		var confidence string
		var noteParts []string

		switch a.Type {
		case roster.MatchUnmatched:
			confidence = "❌ Not Found"
			combined := a.OriginalName + " " + a.OriginalNotes
			if strings.Contains(combined, "ออก") {
				noteParts = append(noteParts, "ลาออก (Resigned)")
			}
			if app, ok := appearances[a.OriginalID]; ok {
				noteParts = append(noteParts, fmt.Sprintf("สุดท้าย: เดือน %02d", app.lastMonth))
				for _, n := range app.notes.Values() {
					if !strings.Contains(a.OriginalNotes, n) {
						noteParts = append(noteParts, n)
					}
				}
			}
		case roster.MatchFuzzy:
			confidence = fmt.Sprintf("⚠ %.0f%%", a.Confidence*100)
		default:
			confidence = fmt.Sprintf("✓ %.0f%%", a.Confidence*100)
		}

		s.row(a.MasterID, a.MasterName, a.OriginalID, a.OriginalName,
			string(a.Type), confidence, strings.Join(noteParts, " | "))
		if fill := fills[a.Type]; fill != 0 {
			s.styleRow(s.lastRow(), 7, fill)
		}
	}

	s.colWidth(1, 4, 26)
	s.colWidth(5, 7, 18)
}

func (w *workbook) mergedNames() {
	s := w.sheet("Merged Names")

	header := []interface{}{"Final Name", "Original Names", "Merge Type"}
	for i := range w.data.Months {
		header = append(header, monthLabel(i))
	}
	s.row(header...)
	s.styleRow(1, len(header), w.boldStyle())

	highlight := w.fillStyle("FFC7CE")
	wrote := false

	for _, ident := range w.data.Identities {
		id := ident.IDString()
		originals := ident.OriginalNames.Join()
		reasons := ident.MergeReasons.Join()

		multiID := strings.Contains(id, "|")
		multiName := strings.Contains(originals, "|")
		if !multiID && !multiName && reasons == "" {
			continue
		}
		wrote = true

		idSet := absence.NewSet()
		for _, part := range strings.Split(id, "|") {
			idSet.Add(part)
		}

		row := []interface{}{ident.Name, originals, mergeType(reasons, multiID, multiName)}
		for _, month := range w.data.Months {
			found := absence.NewSet()
			for _, rec := range month {
				if idSet.Has(strings.TrimSpace(rec.ID)) {
					found.Add(rec.ID)
				}
			}
			if found.Len() == 0 {
				row = append(row, "-")
			} else {
				row = append(row, found.Join())
			}
		}
		s.row(row...)
		if multiName {
			s.styleRow(s.lastRow(), len(row), highlight)
		}
	}

	if !wrote {
		s.row("No merged employees")
	}

	s.colWidth(1, 2, 32)
	s.colWidth(3, 3, 16)
	s.colWidth(4, 3+len(w.data.Months), 12)
}

// mergeType classifies how an identity came to span several records.
func mergeType(reasons string, multiID, multiName bool) string {
	switch {
	case strings.Contains(reasons, "ID Merge"):
		return "Same ID"
	case strings.Contains(reasons, "Master Merge"):
		return "Master Match"
	case multiID:
		return "ID Change"
	case multiName:
		return "Name Variation"
	default:
		return "Other"
	}
}

func (w *workbook) nameReview() {
	s := w.sheet("Name Review")
	s.row("Name A", "ID A", "Name B", "ID B", "Similarity")
	s.styleRow(1, 5, w.boldStyle())

	for _, pair := range w.data.Review {
		s.row(pair.A.Name, pair.A.IDString(), pair.B.Name, pair.B.IDString(),
			fmt.Sprintf("%.0f%%", pair.Similarity*100))
	}

	s.colWidth(1, 4, 28)
	s.colWidth(5, 5, 12)
}

func (w *workbook) traceback() {
	s := w.sheet("Data Traceback")

	header := []interface{}{"File", "Section"}
	for _, h := range absence.TypeHeaders {
		header = append(header, h)
	}
	s.row(header...)
	s.styleRow(1, len(header), w.boldStyle())

	totalsRow := func(file, section string, t absence.Totals) {
		row := []interface{}{file, section}
		for _, v := range t {
			row = append(row, v)
		}
		s.row(row...)
	}

	var identityTotals absence.Totals
	for _, ident := range w.data.Identities {
		identityTotals.Add(ident.Totals)
	}
	var rawTotals absence.Totals
	rawRecords := 0
	fileTotals := make([]absence.Totals, len(w.data.Months))
	for i, month := range w.data.Months {
		for _, rec := range month {
			fileTotals[i].Add(rec.Totals)
		}
		rawTotals.Add(fileTotals[i])
		rawRecords += len(month)
	}

	totalsRow("TOTAL (Output)", fmt.Sprintf("%d employees", len(w.data.Identities)), identityTotals)
	totalsRow("RAW TOTAL", fmt.Sprintf("%d records", rawRecords), rawTotals)
	s.blank()

	for i, file := range w.data.Files {
		hasSections := i < len(w.data.Sections) && len(w.data.Sections[i]) > 0
		if !hasSections {
			totalsRow(file, "-", fileTotals[i])
			continue
		}
		totalsRow(file, "Total", fileTotals[i])
		s.styleRow(s.lastRow(), len(header), w.boldStyle())
		for _, sec := range w.data.Sections[i] {
			totalsRow("", sec.Name, sec.Totals)
		}
	}

	s.colWidth(1, 2, 20)
	s.colWidth(3, len(header), 14)
}

func (w *workbook) employees() {
	s := w.sheet("Employees")

	header := make([]interface{}, 0, len(identityHeaders)+absence.NumTypes)
	for _, h := range identityHeaders {
		header = append(header, h)
	}
	for _, h := range absence.TypeHeaders {
		header = append(header, h)
	}
	s.row(header...)
	s.styleRow(1, len(header), w.boldStyle())

	for _, ident := range w.data.Identities {
		row := []interface{}{
			ident.IDString(),
			ident.Name,
			ident.MasterFullName,
			ident.Notes.Join(),
			ident.Position,
			ident.Department,
			ident.PayType,
		}
		for _, v := range ident.Totals {
			row = append(row, v)
		}
		s.row(row...)
	}

	s.colWidth(1, 4, 26)
	s.colWidth(5, 7, 16)
	s.colWidth(8, len(header), 13)
}
