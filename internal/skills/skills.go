// Package skills compares skill lists with the fuzzy rules shared by the
// match scorer and the gap analysis.
package skills

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/spigell/careerbuddy/internal/vocab"
)

// Matcher decides whether two skills refer to the same thing.
type Matcher struct {
	vocab vocab.Vocabulary
}

func NewMatcher(v vocab.Vocabulary) *Matcher {
	if v == nil {
		v = vocab.Default()
	}
	return &Matcher{vocab: v}
}

// Normalize folds diacritics, lowercases and trims s.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// NormalizeAll normalizes every entry of list, keeping order and duplicates.
func NormalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, Normalize(s))
	}
	return out
}

// Similar reports whether a and b name the same skill: equal, one containing
// the other, or equal after synonym mapping.
//
// Substring containment gives false positives such as "java" and "javascript".
func (m *Matcher) Similar(a, b string) bool {
	return m.similarNormalized(Normalize(a), Normalize(b))
}

func (m *Matcher) similarNormalized(a, b string) bool {
	if a == b {
		return true
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	ma := m.canonical(a)
	mb := m.canonical(b)

	return ma == mb || ma == b || mb == a
}

func (m *Matcher) canonical(s string) string {
	if mapped, ok := m.vocab.Synonym(s); ok {
		return mapped
	}
	return s
}

// Coverage is the outcome of comparing required skills against available ones.
type Coverage struct {
	Score   float64  `json:"skill_coverage"`
	Matched []string `json:"matching_skills"`
	Missing []string `json:"missing_skills"`
}

// Coverage walks required in order; each requirement is matched by the first
// similar candidate. An empty requirement list is fully covered.
func (m *Matcher) Coverage(required, candidate []string) Coverage {
	if len(required) == 0 {
		return Coverage{Score: 1.0, Matched: []string{}, Missing: []string{}}
	}

	have := NormalizeAll(candidate)
	result := Coverage{Matched: []string{}, Missing: []string{}}

	for _, skill := range NormalizeAll(required) {
		found := false
		for _, c := range have {
			if m.similarNormalized(skill, c) {
				found = true
				break
			}
		}

		if found {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	result.Score = float64(len(result.Matched)) / float64(len(required))

	return result
}
