// Package roster reconciles resolved identities against the
// authoritative employee master roster. A successful match re-keys the
// identity to the canonical payroll code and display name; identities
// the roster proves to be the same person are merged. Every attempt is
// recorded in a match audit for human review.
package roster

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/logging"
	"github.com/sutthirak/rollcall/pkg/names"
)

// Entry is one canonical identifier/name pair from the master roster.
// Entries are loaded once and never mutated.
type Entry struct {
	ID       string        // canonical payroll code
	FullName string        // raw name as written in the roster
	Display  string        // normalized display form of FullName
	Key      names.NameKey // parsed name key for matching
}

// MatchType classifies how an identity was matched against the roster.
type MatchType string

// Match types, strongest first.
const (
	MatchIDAndName MatchType = "ID+Name"   // code matched and name corroborated
	MatchNameOnly  MatchType = "Name"      // exact name key, code changed
	MatchFuzzy     MatchType = "Fuzzy"     // reserved for review tooling
	MatchUnmatched MatchType = "UNMATCHED" // no trustworthy roster hit
)

// Audit records one reconciliation attempt for one identity.
type Audit struct {
	MasterID      string
	MasterName    string
	OriginalID    string
	OriginalName  string
	OriginalNotes string
	Type          MatchType
	Confidence    float64
}

// Config carries the roster matching threshold.
type Config struct {
	// NameSimilarity is the minimum name-key similarity required to trust
	// a payroll-code match. Codes are reused across people over time, so
	// a code hit without name corroboration is never accepted.
	NameSimilarity float64
}

// DefaultConfig returns the tuned default threshold.
func DefaultConfig() Config {
	return Config{NameSimilarity: 0.85}
}

// Matcher reconciles identities against a loaded roster.
type Matcher struct {
	cfg     Config
	logger  *zerolog.Logger
	entries []Entry
	byID    map[string][]int // canonical code -> entry indexes
	byKey   map[string][]int // name key -> entry indexes
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithConfig sets the matching threshold.
func WithConfig(cfg Config) Option {
	return func(m *Matcher) { m.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Matcher) { m.logger = logger }
}

// NewMatcher indexes the roster entries for reconciliation. Duplicate
// canonical codes are kept as-is: lookups that hit more than one entry
// are ambiguous and deliberately refuse to match.
func NewMatcher(entries []Entry, opts ...Option) *Matcher {
	m := &Matcher{
		cfg:     DefaultConfig(),
		logger:  logging.Default(),
		entries: entries,
		byID:    make(map[string][]int),
		byKey:   make(map[string][]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	for i, e := range entries {
		m.byID[e.ID] = append(m.byID[e.ID], i)
		m.byKey[e.Key.String()] = append(m.byKey[e.Key.String()], i)
	}
	return m
}

// Reconcile matches every identity against the roster and returns the
// corrected identity list plus the full match audit.
//
// Match priority per identity:
//  1. One of the identity's payroll codes hits exactly one roster entry
//     AND the name keys are similar enough → ID+Name, confidence = the
//     similarity. A code hit with a dissimilar name is a reused code
//     belonging to someone else and falls through.
//  2. The identity's exact name key hits exactly one roster entry →
//     Name, confidence 1.0 (the person's code changed).
//  3. Otherwise UNMATCHED, confidence 0.0; the identity is kept under
//     its own code and name.
//
// All identities accepted against the same canonical code are merged
// into one, and the canonical code and display name replace theirs; the
// pre-reconciliation roster name is retained in MasterFullName for
// audit. Unmatched identities that still collide on a code afterwards
// are disambiguated with -A, -B, … suffixes.
func (m *Matcher) Reconcile(identities []*absence.Identity) ([]*absence.Identity, []Audit) {
	audits := make([]Audit, 0, len(identities))

	type group struct {
		entry   Entry
		members []*absence.Identity
	}
	groups := make(map[string]*group)
	var groupOrder []string
	var unmatched []*absence.Identity

	for _, ident := range identities {
		entry, matchType, confidence := m.findBest(ident)

		audit := Audit{
			OriginalID:    ident.IDString(),
			OriginalName:  ident.Name,
			OriginalNotes: ident.Notes.Join(),
			Type:          matchType,
			Confidence:    confidence,
		}

		if matchType == MatchUnmatched {
			audits = append(audits, audit)
			unmatched = append(unmatched, ident)
			continue
		}

		audit.MasterID = entry.ID
		audit.MasterName = entry.FullName
		audits = append(audits, audit)

		g, ok := groups[entry.ID]
		if !ok {
			g = &group{entry: entry}
			groups[entry.ID] = g
			groupOrder = append(groupOrder, entry.ID)
		}
		g.members = append(g.members, ident)
	}

	out := make([]*absence.Identity, 0, len(groupOrder)+len(unmatched))
	mergedGroups := 0
	for _, id := range groupOrder {
		g := groups[id]
		merged := g.members[0]
		if len(g.members) > 1 {
			mergedGroups++
			for _, member := range g.members[1:] {
				merged.MergeReasons.Add(fmt.Sprintf("Master Merge: %s (%s)", member.IDString(), member.Name))
				merged.Absorb(member)
			}
			merged.MergeReasons.Add(fmt.Sprintf("Master Merge: %s (%s)", g.members[0].IDString(), g.members[0].Name))
		}
		merged.IDs.Replace(g.entry.ID)
		merged.MasterFullName = g.entry.FullName
		merged.Name = g.entry.Display
		out = append(out, merged)
	}
	out = append(out, unmatched...)

	aggregate.SortIdentities(out)
	m.suffixDuplicateIDs(out)

	m.logger.Info().
		Int("matched", len(groupOrder)).
		Int("unmatched", len(unmatched)).
		Int("merged_groups", mergedGroups).
		Msg("Roster reconciliation complete")

	return out, audits
}

// findBest returns the accepted roster entry with its match type, or a
// zero Entry with MatchUnmatched.
func (m *Matcher) findBest(ident *absence.Identity) (Entry, MatchType, float64) {
	for _, code := range ident.IDs.Values() {
		hits := m.byID[code]
		if len(hits) != 1 {
			// Zero hits, or an ambiguous roster: never resolved by guessing.
			continue
		}
		entry := m.entries[hits[0]]
		sim := names.Similarity(ident.Key.String(), entry.Key.String())
		if sim >= m.cfg.NameSimilarity {
			return entry, MatchIDAndName, sim
		}
		// Code matched but the name did not: reused code, skip it.
	}

	if !ident.Key.IsZero() {
		hits := m.byKey[ident.Key.String()]
		if len(hits) == 1 {
			return m.entries[hits[0]], MatchNameOnly, 1.0
		}
	}

	return Entry{}, MatchUnmatched, 0.0
}

// suffixDuplicateIDs disambiguates identities that share a code after
// reconciliation (a reused code whose second holder the roster does not
// know). The first occurrence in sort order keeps the bare code; later
// ones get -A, -B, … . This is a known irreducible ambiguity, not an
// error.
func (m *Matcher) suffixDuplicateIDs(identities []*absence.Identity) {
	counts := make(map[string]int)
	for _, ident := range identities {
		if id := ident.IDString(); id != "" {
			counts[id]++
		}
	}

	seen := make(map[string]int)
	for _, ident := range identities {
		id := ident.IDString()
		if id == "" || counts[id] < 2 {
			continue
		}
		n := seen[id]
		seen[id] = n + 1
		if n == 0 {
			continue
		}
		suffixed := fmt.Sprintf("%s-%c", id, 'A'+rune(n-1))
		ident.IDs.Replace(suffixed)
		m.logger.Warn().
			Str("id", id).
			Str("assigned", suffixed).
			Str("name", ident.Name).
			Msg("Duplicate identifier after reconciliation")
	}
}

// Unmatched filters the audit down to identities the roster knows
// nothing about.
func Unmatched(audits []Audit) []Audit {
	var out []Audit
	for _, a := range audits {
		if a.Type == MatchUnmatched {
			out = append(out, a)
		}
	}
	return out
}

// FuzzyMatches filters the audit down to matches accepted below full
// confidence, for human review.
func FuzzyMatches(audits []Audit) []Audit {
	var out []Audit
	for _, a := range audits {
		if a.Type == MatchFuzzy || (a.Type == MatchIDAndName && a.Confidence < 1.0) {
			out = append(out, a)
		}
	}
	return out
}
