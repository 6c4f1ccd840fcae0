package absence

import (
	"sort"
	"strings"
)

// Set is a small string set used for the set-valued identity fields
// (identifiers, original names, notes, merge reasons). Values render
// deterministically: sorted and pipe-joined.
type Set struct {
	members map[string]struct{}
}

// NewSet returns a set containing the given non-empty values.
func NewSet(values ...string) *Set {
	s := &Set{members: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v, ignoring empty strings.
func (s *Set) Add(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	s.members[v] = struct{}{}
}

// AddAll inserts every member of other.
func (s *Set) AddAll(other *Set) {
	if other == nil {
		return
	}
	for v := range other.members {
		s.members[v] = struct{}{}
	}
}

// Has reports membership.
func (s *Set) Has(v string) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.members)
}

// Values returns the members in lexicographic order.
func (s *Set) Values() []string {
	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Join returns the sorted members joined with " | ", the display form
// used in report cells.
func (s *Set) Join() string {
	return strings.Join(s.Values(), " | ")
}

// Replace drops all members and inserts v.
func (s *Set) Replace(v string) {
	s.members = make(map[string]struct{})
	s.Add(v)
}
