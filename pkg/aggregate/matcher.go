package aggregate

import (
	"fmt"
	"strings"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/names"
)

// matcher routes each incoming record to the identity it belongs to, or
// creates a new one. It owns the two lookup maps for the duration of one
// aggregation run: records with a payroll code live in the ID universe,
// records without one in the name-key universe. The two universes are
// kept apart until the consolidation pass.
type matcher struct {
	cfg Config

	byID   map[string]*absence.Identity // payroll code or compound "code|namekey"
	byName map[string]*absence.Identity // exact name key, code-less records only

	// Creation order, ID universe first. Go map iteration is randomized;
	// consolidation and "first seen wins" need a stable order.
	idOrder   []*absence.Identity
	nameOrder []*absence.Identity
}

func newMatcher(cfg Config) *matcher {
	return &matcher{
		cfg:    cfg,
		byID:   make(map[string]*absence.Identity),
		byName: make(map[string]*absence.Identity),
	}
}

// route returns the identity the record contributes to, creating it if
// this is the first sighting. The policy layers, first match wins:
//
//  1. No payroll code: exact name-key match only. Fuzzy matching on this
//     path is deliberately disabled; it used to merge unrelated people
//     whose names merely looked alike.
//  2. Code already seen: verify the name before merging. Codes are reused
//     for different people after turnover, so a code match alone proves
//     nothing. A name-key similarity at or above the threshold, or a
//     nickname match, confirms the same person; otherwise the record is
//     keyed under "code|namekey" and forms its own identity.
func (m *matcher) route(parsed names.ParsedName, rec absence.Record) *absence.Identity {
	id := strings.TrimSpace(rec.ID)

	if id == "" {
		key := parsed.Key.String()
		ident, ok := m.byName[key]
		if !ok {
			ident = absence.NewIdentity(parsed, rec)
			m.byName[key] = ident
			m.nameOrder = append(m.nameOrder, ident)
		}
		return ident
	}

	existing, seen := m.byID[id]
	if !seen {
		ident := absence.NewIdentity(parsed, rec)
		m.byID[id] = ident
		m.idOrder = append(m.idOrder, ident)
		return ident
	}

	sim := names.Similarity(parsed.Key.String(), existing.Key.String())
	if sim >= m.cfg.NameSimilarity || names.NicknamesMatch(parsed.Display, existing.Name) {
		if parsed.Display != existing.Name && !existing.OriginalNames.Has(parsed.Display) {
			existing.MergeReasons.Add("ID Merge: " + parsed.Display)
		}
		return existing
	}

	// Reused code: a different person now holds this identifier. The
	// compound key keeps the original code for traceability without ever
	// merging with the name-mismatched identity.
	compound := id + "|" + parsed.Key.String()
	ident, ok := m.byID[compound]
	if !ok {
		ident = absence.NewIdentity(parsed, rec)
		m.byID[compound] = ident
		m.idOrder = append(m.idOrder, ident)
	}
	return ident
}

// consolidate runs the second pass: identities that ended up under
// different payroll codes but share an exact name key are the same person
// (the code changed between months) and are merged, ID sets unioned.
// Returns all surviving identities in first-seen order, ID universe
// before name universe.
func (m *matcher) consolidate() []*absence.Identity {
	byKey := make(map[string]*absence.Identity)
	var out []*absence.Identity

	merge := func(ident *absence.Identity) {
		key := ident.Key.String()
		existing, ok := byKey[key]
		if !ok {
			byKey[key] = ident
			out = append(out, ident)
			return
		}
		existing.MergeReasons.Add(fmt.Sprintf("Same Name: %s (%s)", ident.IDString(), ident.Name))
		existing.Absorb(ident)
	}

	for _, ident := range m.idOrder {
		merge(ident)
	}
	for _, ident := range m.nameOrder {
		merge(ident)
	}
	return out
}
