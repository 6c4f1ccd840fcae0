package absence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/names"
)

func TestTotalsAdd(t *testing.T) {
	var a, b absence.Totals
	a[absence.WorkDays] = 20
	a[absence.Absent] = 1
	b[absence.WorkDays] = 22
	b[absence.SickCertified] = 2

	a.Add(b)
	assert.Equal(t, 42.0, a[absence.WorkDays])
	assert.Equal(t, 1.0, a[absence.Absent])
	assert.Equal(t, 2.0, a[absence.SickCertified])
	assert.Equal(t, 45.0, a.Sum())
}

func TestTotalsIsZero(t *testing.T) {
	var z absence.Totals
	assert.True(t, z.IsZero())
	z[absence.NightShift] = 0.5
	assert.False(t, z.IsZero())
}

func TestTypeHeadersCoverAllTypes(t *testing.T) {
	for i, h := range absence.TypeHeaders {
		assert.NotEmpty(t, h, "header %d", i)
	}
}

func TestSetOrderingAndJoin(t *testing.T) {
	s := absence.NewSet()
	s.Add("B2")
	s.Add("A1")
	s.Add("  A1  ")
	s.Add("")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"A1", "B2"}, s.Values())
	assert.Equal(t, "A1 | B2", s.Join())
	assert.True(t, s.Has("A1"))
	assert.False(t, s.Has("C3"))
}

func TestSetReplace(t *testing.T) {
	s := absence.NewSet("X1", "X2")
	s.Replace("M100")
	assert.Equal(t, []string{"M100"}, s.Values())
}

func TestSetAddAll(t *testing.T) {
	a := absence.NewSet("A")
	b := absence.NewSet("B", "A")
	a.AddAll(b)
	assert.Equal(t, []string{"A", "B"}, a.Values())
	a.AddAll(nil)
	assert.Equal(t, 2, a.Len())
}

func TestIdentityAccumulation(t *testing.T) {
	parsed, ok := names.Parse("นาย SOMCHAI JAIDEE (ชัย)/ลาออก 30/06")
	require.True(t, ok)

	var totals absence.Totals
	totals[absence.WorkDays] = 20
	rec := absence.Record{RawName: "นาย SOMCHAI JAIDEE (ชัย)/ลาออก 30/06", ID: "E1", Totals: totals, Position: "Operator"}

	ident := absence.NewIdentity(parsed, rec)
	assert.True(t, ident.Totals.IsZero(), "creation must not add totals")

	ident.AddRecord(parsed, rec)
	ident.AddRecord(parsed, rec)

	assert.Equal(t, 40.0, ident.Totals[absence.WorkDays])
	assert.Equal(t, "E1", ident.IDString())
	assert.True(t, ident.HasID())
	assert.True(t, ident.Notes.Has("ลาออก 30/06"))
	assert.Equal(t, 1, ident.OriginalNames.Len(), "identical names collapse")
}

func TestIdentityAbsorb(t *testing.T) {
	parsedA, _ := names.Parse("นาย SOMCHAI JAIDEE")
	parsedB, _ := names.Parse("นาย SOMCHAI JAIDE/ย้ายมา 01/05")

	var ta, tb absence.Totals
	ta[absence.WorkDays] = 10
	tb[absence.WorkDays] = 5
	tb[absence.Absent] = 1

	a := absence.NewIdentity(parsedA, absence.Record{ID: "E1", Totals: ta})
	a.AddRecord(parsedA, absence.Record{ID: "E1", Totals: ta})
	b := absence.NewIdentity(parsedB, absence.Record{ID: "E2", Totals: tb})
	b.AddRecord(parsedB, absence.Record{ID: "E2", Totals: tb})

	a.Absorb(b)

	assert.Equal(t, "E1 | E2", a.IDString())
	assert.Equal(t, 15.0, a.Totals[absence.WorkDays])
	assert.Equal(t, 1.0, a.Totals[absence.Absent])
	assert.True(t, a.Notes.Has("ย้ายมา 01/05"))
	assert.Equal(t, 2, a.OriginalNames.Len())
	assert.Equal(t, "นาย SOMCHAI JAIDEE", a.Name, "first display name wins")
}

func TestIdentityWithoutID(t *testing.T) {
	parsed, _ := names.Parse("นาง NO CODE")
	ident := absence.NewIdentity(parsed, absence.Record{ID: "  "})
	assert.False(t, ident.HasID())
	assert.Equal(t, "", ident.IDString())
}
