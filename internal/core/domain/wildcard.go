package domain

import (
	"strings"
	"unicode/utf8"
)

// Wildcard runes understood in name patterns.
const (
	wildcardAny = '*'
	wildcardOne = '?'
)

// ContainsWildcards reports whether name contains '*' or '?'.
// Names that are not valid UTF-8 return ErrNonUTF8.
func ContainsWildcards(name string) (bool, error) {
	if !utf8.ValidString(name) {
		return false, ErrNonUTF8
	}
	return strings.ContainsAny(name, "*?"), nil
}

// MatchWildcard reports whether name matches pattern in full.
// '?' matches exactly one rune, '*' matches any run of runes (including
// none), and every other rune matches itself. There are no character
// classes and no escapes.
func MatchWildcard(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	pi, ni := 0, 0
	star, mark := -1, 0

	for ni < len(n) {
		switch {
		case pi < len(p) && p[pi] == wildcardAny:
			star = pi
			mark = ni
			pi++
		case pi < len(p) && (p[pi] == wildcardOne || p[pi] == n[ni]):
			pi++
			ni++
		case star >= 0:
			// Let the last '*' absorb one more rune and retry.
			pi = star + 1
			mark++
			ni = mark
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == wildcardAny {
		pi++
	}
	return pi == len(p)
}
