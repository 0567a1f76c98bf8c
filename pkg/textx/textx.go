// Package textx provides small text utilities used across the project:
// sanitization, normalization, tokenization, and the similarity
// measures the matchers are built on.
package textx

import (
	"strings"
	"unicode"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Normalize lower-cases s and collapses every non-alphanumeric run
// into a single space.
func Normalize(s string) string {
	var b strings.Builder
	space := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// TokenSet splits s on non-alphanumeric boundaries into a lowercase
// set; duplicates collapse.
func TokenSet(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// Similarity returns a normalized similarity between two short strings
// in [0,1]: the Dice coefficient over character bigrams, case-insensitive.
// It is symmetric, 1.0 only for a case-insensitive exact match, and 0.0
// when the strings share no bigrams. Empty inputs yield 0.0 unless both
// are empty.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	ba := bigrams(a)
	bb := bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0.0
	}
	inter := 0
	for g, n := range ba {
		if m, ok := bb[g]; ok {
			if m < n {
				inter += m
			} else {
				inter += n
			}
		}
	}
	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	return 2.0 * float64(inter) / float64(total)
}

// TokenOverlap returns |tokens(a) ∩ tokens(b)| / max(|tokens(a)|, 1).
// Empty input yields 0.0.
func TokenOverlap(a, b string) float64 {
	ta := TokenSet(a)
	if len(ta) == 0 {
		return 0.0
	}
	tb := TokenSet(b)
	inter := 0
	for t := range ta {
		if tb[t] {
			inter++
		}
	}
	return float64(inter) / float64(len(ta))
}

func bigrams(s string) map[string]int {
	runes := []rune(s)
	out := make(map[string]int, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}
