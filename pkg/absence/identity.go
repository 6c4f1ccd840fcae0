package absence

import (
	"github.com/sutthirak/rollcall/pkg/names"
)

// Identity is one resolved person: the unit of output of the aggregation
// pipeline. It is created on first sight of a new identity key, mutated
// in place by every later contributing record or merge, and never
// destroyed: an absorbed identity's contents move wholesale into the
// absorbing one.
type Identity struct {
	// Name is the display name of the first contributing record; later
	// variants land in OriginalNames instead of replacing it.
	Name string

	// Key is the normalized name key the identity was created under.
	Key names.NameKey

	// IDs is the set of payroll codes seen for this person. More than one
	// member means the code changed (or was corrected) across months.
	IDs *Set

	// Descriptive fields from the first contributing record. They are not
	// reconciled across records.
	Position   string
	Department string
	PayType    string

	// Totals is the element-wise sum of every contributing record.
	Totals Totals

	// OriginalNames holds every distinct display name that contributed.
	OriginalNames *Set

	// Notes holds every distinct free-text note that contributed.
	Notes *Set

	// MergeReasons is the append-only audit trail of merge decisions.
	MergeReasons *Set

	// MasterFullName is the roster's raw full name, set only after
	// roster reconciliation replaced Name with the canonical display.
	MasterFullName string
}

// NewIdentity creates an identity for the first record seen under a key.
// The record's totals are NOT added here; callers add every contributing
// record, including the first, through AddRecord.
func NewIdentity(parsed names.ParsedName, rec Record) *Identity {
	ids := NewSet()
	ids.Add(rec.ID)
	return &Identity{
		Name:          parsed.Display,
		Key:           parsed.Key,
		IDs:           ids,
		Position:      rec.Position,
		Department:    rec.Department,
		PayType:       rec.PayType,
		OriginalNames: NewSet(),
		Notes:         NewSet(),
		MergeReasons:  NewSet(),
	}
}

// AddRecord accumulates one contributing record: display name, note, and
// monthly totals.
func (id *Identity) AddRecord(parsed names.ParsedName, rec Record) {
	id.OriginalNames.Add(parsed.Display)
	id.Notes.Add(parsed.Note)
	id.Totals.Add(rec.Totals)
}

// Absorb moves the entire contents of other into id. The caller records
// the merge reason; Absorb only transfers data.
func (id *Identity) Absorb(other *Identity) {
	id.IDs.AddAll(other.IDs)
	id.OriginalNames.AddAll(other.OriginalNames)
	id.Notes.AddAll(other.Notes)
	id.MergeReasons.AddAll(other.MergeReasons)
	id.Totals.Add(other.Totals)
}

// IDString renders the identifier set in its display form: sorted unique
// codes pipe-joined, or "" when the person never had a code.
func (id *Identity) IDString() string {
	return id.IDs.Join()
}

// HasID reports whether any payroll code contributed to this identity.
func (id *Identity) HasID() bool {
	return id.IDs.Len() > 0
}
