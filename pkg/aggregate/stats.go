package aggregate

import (
	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/names"
)

// MonthTotals sums the totals of every record in one month.
func MonthTotals(month []absence.Record) absence.Totals {
	var t absence.Totals
	for _, rec := range month {
		t.Add(rec.Totals)
	}
	return t
}

// RawTotals sums the totals of every record across all months. Together
// with IdentityTotals it verifies the conservation invariant: merging
// must neither create nor lose a single absence unit.
func RawTotals(months [][]absence.Record) absence.Totals {
	var t absence.Totals
	for _, month := range months {
		t.Add(MonthTotals(month))
	}
	return t
}

// IdentityTotals sums the totals of every resolved identity.
func IdentityTotals(identities []*absence.Identity) absence.Totals {
	var t absence.Totals
	for _, ident := range identities {
		t.Add(ident.Totals)
	}
	return t
}

// RecordCount counts raw records across all months.
func RecordCount(months [][]absence.Record) int {
	n := 0
	for _, month := range months {
		n += len(month)
	}
	return n
}

// ReviewPair flags two distinct identities whose names are close enough
// that a human should look at them. This is the fuzzy heuristic that was
// removed from the automatic merge path after it merged unrelated people;
// it survives as a review aid only and never merges anything.
type ReviewPair struct {
	A          *absence.Identity
	B          *absence.Identity
	Similarity float64
}

// ReviewCandidates scans all identity pairs for near-duplicate names:
// same prefix, first names at or above the first-name threshold, last
// names at or above the last-name threshold. Pairs already sharing an
// exact key never appear (they were merged during aggregation).
func ReviewCandidates(identities []*absence.Identity, cfg Config) []ReviewPair {
	var pairs []ReviewPair
	for i := 0; i < len(identities); i++ {
		for j := i + 1; j < len(identities); j++ {
			a, b := identities[i], identities[j]
			if a.Key.Prefix != b.Key.Prefix {
				continue
			}
			firstSim := names.Similarity(a.Key.First, b.Key.First)
			if firstSim < cfg.FirstNameSimilarity {
				continue
			}
			lastSim := names.Similarity(a.Key.Last, b.Key.Last)
			if lastSim < cfg.LastNameSimilarity {
				continue
			}
			pairs = append(pairs, ReviewPair{
				A:          a,
				B:          b,
				Similarity: names.Similarity(a.Key.String(), b.Key.String()),
			})
		}
	}
	return pairs
}
