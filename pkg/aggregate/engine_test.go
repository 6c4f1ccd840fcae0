package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/aggregate"
)

func record(id, rawName string, workDays float64) absence.Record {
	var totals absence.Totals
	totals[absence.WorkDays] = workDays
	return absence.Record{RawName: rawName, ID: id, Totals: totals}
}

func find(t *testing.T, identities []*absence.Identity, name string) *absence.Identity {
	t.Helper()
	for _, ident := range identities {
		if ident.Name == name {
			return ident
		}
	}
	t.Fatalf("identity %q not found", name)
	return nil
}

func TestAggregateMergesSamePersonAcrossMonths(t *testing.T) {
	months := [][]absence.Record{
		{record("E1", "นาย SOMCHAI JAIDEE", 20)},
		{record("E1", "นาย SOMCHAI JAIDEE", 22)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 1)
	assert.Equal(t, 42.0, identities[0].Totals[absence.WorkDays])
	assert.Equal(t, "E1", identities[0].IDString())
}

func TestAggregateSameCodeSimilarNamesMerge(t *testing.T) {
	// The same person, one keystroke apart across months, sharing a code.
	months := [][]absence.Record{
		{record("E1", "นาย SOMCHAI JAIDEE", 20)},
		{record("E1", "นาย SOMCHAI JAIDE", 22)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 1)
	assert.Equal(t, "นาย SOMCHAI JAIDEE", identities[0].Name)
	assert.Equal(t, 42.0, identities[0].Totals[absence.WorkDays])
	assert.Contains(t, identities[0].MergeReasons.Join(), "ID Merge: นาย SOMCHAI JAIDE")
}

func TestAggregateReusedCodeSplits(t *testing.T) {
	// A completely different person later holds the same code: the code
	// match must not merge them.
	months := [][]absence.Record{
		{record("X9", "นาย SOMCHAI JAIDEE", 20)},
		{record("X9", "นางสาว PREEYA WONG", 15)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 2)
	a := find(t, identities, "นาย SOMCHAI JAIDEE")
	b := find(t, identities, "นางสาว PREEYA WONG")
	assert.Equal(t, 20.0, a.Totals[absence.WorkDays])
	assert.Equal(t, 15.0, b.Totals[absence.WorkDays])
}

func TestAggregateNicknameBridgesShortName(t *testing.T) {
	// One month recorded only the Thai nickname as the whole name. The
	// shared code plus the nickname confirms the identity.
	months := [][]absence.Record{
		{record("E7", "นาย PISET SAY (เสร็จ)", 20)},
		{record("E7", "นาย เสร็จ", 18)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 1)
	assert.Equal(t, "นาย PISET SAY (เสร็จ)", identities[0].Name)
	assert.Equal(t, 38.0, identities[0].Totals[absence.WorkDays])
}

func TestAggregateNoCodeExactKeyOnly(t *testing.T) {
	// Without a code, only the exact name key merges. Near-identical
	// names stay separate no matter how similar they look.
	months := [][]absence.Record{
		{record("", "นาย SOMCHAI JAIDEE", 20)},
		{record("", "นาย SOMCHAI JAIDEE", 22)},
		{record("", "นาย SOMCHAI JAIDE", 15)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 2)
	exact := find(t, identities, "นาย SOMCHAI JAIDEE")
	assert.Equal(t, 42.0, exact.Totals[absence.WorkDays])
	near := find(t, identities, "นาย SOMCHAI JAIDE")
	assert.Equal(t, 15.0, near.Totals[absence.WorkDays])
}

func TestAggregateConsolidatesChangedCode(t *testing.T) {
	// Same exact name under two codes: the code changed between months.
	months := [][]absence.Record{
		{record("E1", "นาย SOMCHAI JAIDEE", 20)},
		{record("E9", "นาย SOMCHAI JAIDEE", 22)},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 1)
	assert.Equal(t, "E1 | E9", identities[0].IDString())
	assert.Equal(t, 42.0, identities[0].Totals[absence.WorkDays])
	assert.Contains(t, identities[0].MergeReasons.Join(), "Same Name: E9")
}

func TestAggregateSkipsUnparseableNames(t *testing.T) {
	months := [][]absence.Record{
		{
			record("E1", "นาย SOMCHAI JAIDEE", 20),
			record("E2", "   ", 99),
		},
	}

	identities := aggregate.New().Aggregate(months)
	require.Len(t, identities, 1)
}

func TestAggregateConservesTotals(t *testing.T) {
	// Element-wise conservation through every merge path at once: code
	// merge, reused code split, name-only records, and consolidation.
	months := [][]absence.Record{
		{
			record("E1", "นาย SOMCHAI JAIDEE", 20),
			record("", "นาง MALEE SUK", 18),
			record("X9", "นาย VICHAI THONG", 21),
		},
		{
			record("E1", "นาย SOMCHAI JAIDE", 22),
			record("", "นาง MALEE SUK", 19),
			record("X9", "นางสาว PREEYA WONG", 17),
		},
		{
			record("E5", "นาย SOMCHAI JAIDEE", 12),
		},
	}

	raw := aggregate.RawTotals(months)
	identities := aggregate.New().Aggregate(months)
	out := aggregate.IdentityTotals(identities)

	assert.Equal(t, raw, out)
	assert.Equal(t, 7, aggregate.RecordCount(months))
}

func TestAggregateIdempotent(t *testing.T) {
	months := [][]absence.Record{
		{record("E1", "นาย SOMCHAI JAIDEE", 20), record("", "นาง MALEE SUK", 18)},
		{record("E9", "นาย SOMCHAI JAIDEE", 22)},
	}

	first := aggregate.New().Aggregate(months)
	second := aggregate.New().Aggregate(months)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].IDString(), second[i].IDString())
		assert.Equal(t, first[i].Totals, second[i].Totals)
	}
}

func TestAggregateClosure(t *testing.T) {
	// Feeding the resolved identities back in as one record each must be
	// a fixed point: no further merges, no further splits, same totals.
	// The fixture routes through every merge path (code merge, reused
	// code split, name-only records, changed-code consolidation).
	months := [][]absence.Record{
		{
			record("E1", "นาย SOMCHAI JAIDEE", 20),
			record("", "นาง MALEE SUK", 18),
			record("X9", "นาย VICHAI THONG", 21),
		},
		{
			record("E1", "นาย SOMCHAI JAIDE", 22),
			record("", "นาง MALEE SUK", 19),
			record("X9", "นางสาว PREEYA WONG", 17),
		},
		{
			record("E5", "นาย SOMCHAI JAIDEE", 12),
		},
	}

	first := aggregate.New().Aggregate(months)

	resolved := make([]absence.Record, 0, len(first))
	for _, ident := range first {
		resolved = append(resolved, absence.Record{
			RawName: ident.Name,
			ID:      ident.IDString(),
			Totals:  ident.Totals,
		})
	}
	second := aggregate.New().Aggregate([][]absence.Record{resolved})

	require.Equal(t, len(first), len(second))
	assert.Equal(t, aggregate.IdentityTotals(first), aggregate.IdentityTotals(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Totals, second[i].Totals)
	}
}

func TestSortIdentitiesOrder(t *testing.T) {
	months := [][]absence.Record{
		{
			record("", "นาง MALEE SUK", 1),
			record("B2", "นาย SOMCHAI JAIDEE", 1),
			record("A1", "นางสาว PREEYA WONG", 1),
		},
	}

	identities := aggregate.New().Aggregate(months)

	require.Len(t, identities, 3)
	assert.Equal(t, "A1", identities[0].IDString())
	assert.Equal(t, "B2", identities[1].IDString())
	assert.Equal(t, "", identities[2].IDString(), "code-less identities sort last")
}

func TestReviewCandidates(t *testing.T) {
	months := [][]absence.Record{
		{
			record("E1", "นาย SOMCHAI JAIDEE", 1),
			record("E2", "นาย SOMCHAI JAIDE", 1),
			record("E3", "นางสาว PREEYA WONG", 1),
		},
	}

	cfg := aggregate.DefaultConfig()
	identities := aggregate.New(aggregate.WithConfig(cfg)).Aggregate(months)
	require.Len(t, identities, 3)

	pairs := aggregate.ReviewCandidates(identities, cfg)
	require.Len(t, pairs, 1, "only the near-duplicate pair is surfaced")
	assert.Greater(t, pairs[0].Similarity, 0.85)

	// Review never merges: the identities are untouched.
	require.Len(t, identities, 3)
}
