// Package names parses raw Thai payroll name strings into structured,
// normalized name keys. A raw cell looks like
//
//	"นาง CHHUN ORNG LY (รี)/ลาออก 27/03"
//
// which carries a title prefix, the person's name, an optional Thai
// nickname in parentheses, and an optional free-text note after a slash.
// The parsed key (prefix|first|last) is the exact-match identity key used
// throughout aggregation; the note and nickname are metadata and never
// participate in key equality.
package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical title prefixes recognized in source data.
const (
	PrefixMr   = "นาย"
	PrefixMrs  = "นาง"
	PrefixMiss = "นางสาว"
)

// abbreviated spellings normalized to their canonical prefix.
var prefixAbbreviations = map[string]string{
	"น.ส.": PrefixMiss,
	"นส.":  PrefixMiss,
	"น.ส":  PrefixMiss,
	"นส":   PrefixMiss,
	"น.":   PrefixMr,
}

// fusedPrefixes are tried in order when a prefix is glued to the given
// name with no separating space ("นายสมชาย"). Longer spellings first so
// "นางสาว" wins over "นาง".
var fusedPrefixes = []struct {
	spelling  string
	canonical string
}{
	{PrefixMiss, PrefixMiss},
	{"น.ส.", PrefixMiss},
	{"นส.", PrefixMiss},
	{PrefixMrs, PrefixMrs},
	{PrefixMr, PrefixMr},
}

var (
	nicknameRe     = regexp.MustCompile(`\(([ก-๙]+)\)`)
	nicknameSpanRe = regexp.MustCompile(`\s*\([ก-๙]+\)\s*`)
	thaiShortRe    = regexp.MustCompile(`^(นาย|นาง|นางสาว)\s+([ก-๙]+)$`)
)

// NameKey is the normalized (prefix, first, last) triple used as an
// exact-match identity key. Equality is byte equality of all three fields.
type NameKey struct {
	Prefix string
	First  string
	Last   string
}

// String returns the pipe-joined key form "prefix|first|last".
func (k NameKey) String() string {
	return k.Prefix + "|" + k.First + "|" + k.Last
}

// IsZero reports whether the key carries no name at all.
func (k NameKey) IsZero() bool {
	return k.Prefix == "" && k.First == "" && k.Last == ""
}

// ParsedName is the result of parsing one raw name cell.
type ParsedName struct {
	Key      NameKey
	Display  string // "prefix first last (nickname)", single-spaced
	Nickname string // Thai nickname without parentheses, may be empty
	Note     string // free text after the first "/" followed by a letter
}

// Parse splits a raw name string into a normalized key, a display name,
// and optional nickname and note. The second return value is false when
// the input contains no usable name (blank cells, note-only cells).
func Parse(raw string) (ParsedName, bool) {
	raw = strings.TrimSpace(norm.NFC.String(raw))
	if raw == "" {
		return ParsedName{}, false
	}

	namePart, note := splitNote(raw)

	var nickname string
	if m := nicknameRe.FindStringSubmatch(namePart); m != nil {
		nickname = m[1]
	}
	// The span is deleted, not replaced with a space: tokens glued to the
	// nickname fuse into one, which is what the key historically contains.
	nameClean := strings.TrimSpace(nicknameSpanRe.ReplaceAllString(namePart, ""))

	parts := strings.Fields(nameClean)
	if len(parts) == 0 {
		return ParsedName{}, false
	}

	key := detectPrefix(parts)

	display := key.Prefix + " " + key.First + " " + key.Last
	if nickname != "" {
		display += " (" + nickname + ")"
	}
	display = strings.Join(strings.Fields(display), " ")

	return ParsedName{
		Key:      key,
		Display:  display,
		Nickname: nickname,
		Note:     note,
	}, true
}

// detectPrefix applies the prefix heuristic in its historical order:
// exact canonical token, exact abbreviated token, prefix glued to the
// first token, then no prefix. The order matters for names whose given
// name itself starts with a prefix spelling; it is a heuristic, not a
// grammar.
func detectPrefix(parts []string) NameKey {
	first := parts[0]

	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	switch first {
	case PrefixMr, PrefixMrs, PrefixMiss:
		return NameKey{Prefix: first, First: part(1), Last: part(2)}
	}

	if canonical, ok := prefixAbbreviations[first]; ok {
		return NameKey{Prefix: canonical, First: part(1), Last: part(2)}
	}

	for _, p := range fusedPrefixes {
		if rest, ok := strings.CutPrefix(first, p.spelling); ok {
			return NameKey{Prefix: p.canonical, First: rest, Last: part(1)}
		}
	}

	return NameKey{First: first, Last: part(1)}
}

// splitNote separates the name portion from the trailing note. The note
// starts at the first "/" that is immediately followed by a Thai or Latin
// letter; date-like slashes ("27/03") never start a note.
func splitNote(raw string) (name, note string) {
	runes := []rune(raw)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == '/' && isLetter(runes[i+1]) {
			return strings.TrimSpace(string(runes[:i])), strings.TrimSpace(string(runes[i+1:]))
		}
	}
	return raw, ""
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isThai(r)
}

// isThai reports whether r falls in the ก-๙ range used by the source
// data (Thai letters, signs, and digits).
func isThai(r rune) bool {
	return r >= 'ก' && r <= '๙'
}

// Nickname extracts the Thai parenthesized nickname from a display or raw
// name, or returns "" if there is none.
func Nickname(name string) string {
	if m := nicknameRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

// thaiShortName returns the bare Thai given name when the display name is
// the short "prefix + single Thai word" form ("นาย เสร็จ"), or "".
func thaiShortName(display string) string {
	if m := thaiShortRe.FindStringSubmatch(strings.TrimSpace(display)); m != nil {
		return m[2]
	}
	return ""
}

// NicknamesMatch reports whether two display names plausibly denote the
// same person through their nicknames. It covers the month where only the
// nickname was recorded as the full name: "นาย PISET SAY (เสร็จ)" in one
// file and "นาย เสร็จ" in another.
func NicknamesMatch(displayA, displayB string) bool {
	nickA, nickB := Nickname(displayA), Nickname(displayB)
	thaiA, thaiB := thaiShortName(displayA), thaiShortName(displayB)

	switch {
	case nickA != "" && nickA == nickB:
		return true
	case thaiA != "" && thaiA == nickB:
		return true
	case thaiB != "" && thaiB == nickA:
		return true
	case thaiA != "" && thaiA == thaiB:
		return true
	}
	return false
}
