package names

import "strings"

// Similarity computes a normalized similarity ratio in [0, 1] between two
// strings. It is case-insensitive, symmetric, and deterministic: 1.0 for
// equal strings, 0.0 when the strings share no characters. The ratio is
// 2*M/T where M is the length of the longest common subsequence of the
// lowercased inputs and T is the total number of runes, matching the
// classic sequence-matcher ratio closely enough to preserve the tuned
// matching thresholds.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if string(ra) == string(rb) {
		return 1
	}

	m := lcsLength(ra, rb)
	return 2 * float64(m) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a
// two-row dynamic program.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
