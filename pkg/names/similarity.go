// Package names decides whether two personal names are the same or
// plausibly the same, using phonetic and lexical heuristics. Cheap
// deterministic checks run before the fuzzy phonetic fallback so common
// cases (typos, initials, cross-language variants) resolve without it.
package names

import (
	"strings"

	"github.com/Ramsey-B/fern/pkg/models"
)

// ExactMatch reports case-insensitive equality of given name and surname
// independently. Empty components equal empty components.
func ExactMatch(a, b models.Name) bool {
	return strings.EqualFold(a.Given, b.Given) && strings.EqualFold(a.Surname, b.Surname)
}

// SimilarMatch reports whether two names are plausibly the same person.
// Exact matches pass outright; otherwise both the given-name pair and
// the surname pair must independently pass componentsSimilar. Requiring
// both components keeps people who share only a common given name apart.
func SimilarMatch(a, b models.Name) bool {
	if ExactMatch(a, b) {
		return true
	}
	return componentsSimilar(a.Given, b.Given) && componentsSimilar(a.Surname, b.Surname)
}

// SurnameSimilar compares two surnames with the same heuristics as a
// name component, without fabricating throwaway name values.
func SurnameSimilar(a, b string) bool {
	return componentsSimilar(a, b)
}

// componentsSimilar evaluates the similarity heuristics in order,
// short-circuiting on the first hit:
//  1. case-insensitive equality
//  2. abbreviation (initials)
//  3. shared known-variation group
//  4. minor spelling variation
//  5. Soundex equality, excluding the empty sentinel code
func componentsSimilar(x, y string) bool {
	if strings.EqualFold(x, y) {
		return true
	}
	if abbreviationMatch(x, y) {
		return true
	}
	if sameVariationGroup(x, y) {
		return true
	}
	if minorSpellingVariation(x, y) {
		return true
	}
	sx := Soundex(x)
	return sx != EmptySoundex && sx == Soundex(y)
}

// abbreviationMatch handles initials: a single letter (optional trailing
// period) matching the other component's first letter, and the two-token
// "Initial. Rest" form whose remainder minor-spelling-matches the other
// component.
func abbreviationMatch(x, y string) bool {
	if isInitial(x) && y != "" && equalFoldLetter(x[0], y[0]) {
		return true
	}
	if isInitial(y) && x != "" && equalFoldLetter(y[0], x[0]) {
		return true
	}
	if rest, ok := initialRemainder(x); ok {
		if strings.EqualFold(rest, y) || minorSpellingVariation(rest, y) {
			return true
		}
	}
	if rest, ok := initialRemainder(y); ok {
		if strings.EqualFold(rest, x) || minorSpellingVariation(rest, x) {
			return true
		}
	}
	return false
}

// isInitial reports whether s is a single letter with an optional
// trailing period.
func isInitial(s string) bool {
	switch len(s) {
	case 1:
		return isLetter(s[0])
	case 2:
		return isLetter(s[0]) && s[1] == '.'
	default:
		return false
	}
}

// initialRemainder splits the two-token "Q. Name" form, returning the
// remainder after the initial.
func initialRemainder(s string) (string, bool) {
	first, rest, ok := strings.Cut(s, " ")
	if !ok || rest == "" || strings.ContainsRune(rest, ' ') {
		return "", false
	}
	if !isInitial(first) {
		return "", false
	}
	return rest, true
}

// minorSpellingVariation accepts small typos: both components at least 3
// characters, lengths within 2, and an edit distance of at most 1 for
// short strings or 2 once the longer side exceeds 6 characters.
func minorSpellingVariation(x, y string) bool {
	lx, ly := len(x), len(y)
	if lx < 3 || ly < 3 {
		return false
	}
	diff := lx - ly
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		return false
	}
	limit := 1
	if max(lx, ly) > 6 {
		limit = 2
	}
	return LevenshteinDistance(strings.ToLower(x), strings.ToLower(y)) <= limit
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func equalFoldLetter(a, b byte) bool {
	return upperByte(a) == upperByte(b)
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
