// Package score ranks candidate text against a query. Tiers are strictly
// ordered: exact > case-insensitive exact > prefix > substring > typo.
package score

import "strings"

// NoMatch is the sentinel returned when a candidate should be excluded.
const NoMatch = -1000000

const (
	exactBonus     = 100000
	exactFoldBonus = 50000
	prefixBonus    = 10000

	substringBonus    = 1000
	atStartBonus      = 200
	afterBoundary     = 80
	lengthBonusCeil   = 60
	typoWindowBase    = 900
	typoWholeBonus    = 700
	maxOffsetPenalty  = 120
	// homeBonus must stay below the smallest inter-tier gap (substring
	// floor 1000 minus typo-window ceiling 900) or a typo hit on a home
	// file could outrank a genuine substring match elsewhere.
	homeBonus         = 60
	homeBasenameBonus = 200
)

// Score rates how well text matches query. Higher is better; NoMatch
// means exclude. An empty query matches everything with score 0.
// fullPath and homeDir are only set for file-search candidates and add
// a locality bonus for files under the user's home.
func Score(query, text, fullPath, homeDir string) int {
	if query == "" {
		return 0
	}

	base, strong := textScore(query, text)
	if base == NoMatch {
		return NoMatch
	}

	if fullPath != "" && homeDir != "" && underDir(fullPath, homeDir) {
		base += homeBonus
		if strong {
			base += homeBasenameBonus
		}
	}
	return base
}

// textScore returns the tier score and whether the match was an
// exact/prefix one (used for the home basename bonus).
func textScore(query, text string) (int, bool) {
	if text == query {
		return exactBonus, true
	}
	if strings.EqualFold(text, query) {
		return exactFoldBonus, true
	}

	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.HasPrefix(t, q) {
		return prefixBonus + lengthBonus(len(q), len(t)), true
	}

	if idx := strings.Index(t, q); idx >= 0 {
		s := substringBonus + lengthBonus(len(q), len(t))
		if idx == 0 {
			s += atStartBonus
		} else if isBoundary(t[idx-1]) {
			s += afterBoundary
		}
		return s, false
	}

	if len(q) >= 2 {
		if s, ok := typoScore(q, t); ok {
			return s, false
		}
	}
	return NoMatch, false
}

// typoScore scans fixed-size windows of the candidate at lengths
// {q-1, q, q+1} for an edit distance of at most one or a single
// adjacent transposition. The first hit wins; windows nearer the front
// score higher. Always strictly below the substring tier.
func typoScore(q, t string) (int, bool) {
	lengths := [3]int{len(q) - 1, len(q), len(q) + 1}

	for start := 0; start < len(t); start++ {
		for _, wlen := range lengths {
			if wlen < 1 || start+wlen > len(t) {
				continue
			}
			window := t[start : start+wlen]
			if withinOneEdit(q, window) || transposed(q, window) {
				penalty := start
				if penalty > maxOffsetPenalty {
					penalty = maxOffsetPenalty
				}
				return typoWindowBase - penalty, true
			}
		}
	}

	if withinOneEdit(q, t) || transposed(q, t) {
		return typoWholeBonus, true
	}
	return 0, false
}

// withinOneEdit reports whether a and b differ by at most one insert,
// delete, or substitute. A linear two-pointer scan suffices since only
// distance <=1 is of interest.
func withinOneEdit(a, b string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > 1 {
		return false
	}

	i, j, edits := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		edits++
		if edits > 1 {
			return false
		}
		if len(a) == len(b) {
			i++ // substitution
		}
		j++ // insertion into a / skip in b
	}
	return edits+(len(b)-j) <= 1
}

// transposed reports whether a and b are equal except for exactly one
// swapped adjacent character pair.
func transposed(a, b string) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if i+1 == len(a) {
			return false
		}
		return a[i] == b[i+1] && a[i+1] == b[i] &&
			a[i+2:] == b[i+2:]
	}
	return false
}

// lengthBonus favors shorter candidates for the same textual match.
func lengthBonus(qlen, tlen int) int {
	diff := tlen - qlen
	if diff >= lengthBonusCeil {
		return 0
	}
	return lengthBonusCeil - diff
}

func isBoundary(c byte) bool {
	switch c {
	case ' ', '-', '_', '.', '/':
		return true
	}
	return false
}

func underDir(path, dir string) bool {
	if !strings.HasPrefix(path, dir) {
		return false
	}
	return len(path) == len(dir) || path[len(dir)] == '/' || strings.HasSuffix(dir, "/")
}
