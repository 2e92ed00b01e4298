package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder lowercases and strips diacritics so "Não Executado", "nao executado"
// and "NÃO EXECUTADO" all fold to the same key. Mn is the nonspacing-mark
// class left behind by NFD decomposition.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the canonical matching form of a raw label.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		// transform only fails on invalid UTF-8; fall back to the raw bytes.
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// containsWord reports whether needle occurs in hay bounded by non-alphanumeric
// runes (or the string edges), so "pass" matches "pass." but not "passable".
func containsWord(hay, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(hay[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		if boundaryBefore(hay, idx) && boundaryAfter(hay, idx+len(needle)) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := []rune(s[:idx])
	return !isWordRune(r[len(r)-1])
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	r := []rune(s[idx:])
	return !isWordRune(r[0])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
