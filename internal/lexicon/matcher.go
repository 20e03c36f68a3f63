// Package lexicon provides the lexical resources used by the scoring engine.
package lexicon

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher counts whole-word, case-insensitive occurrences of a fixed phrase set.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	machine *goahocorasick.Machine
	phrases []string
}

// NewMatcher builds an Aho-Corasick automaton over the provided phrases.
func NewMatcher(phrases []string) (*Matcher, error) {
	phrases = normalizeEntries(phrases)
	m := &Matcher{phrases: phrases}
	if len(phrases) == 0 {
		return m, nil
	}
	patterns := make([][]rune, len(phrases))
	for i, p := range phrases {
		patterns[i] = []rune(p)
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.machine = machine
	return m, nil
}

// Phrases returns the normalized phrase set.
func (m *Matcher) Phrases() []string {
	out := make([]string, len(m.phrases))
	copy(out, m.phrases)
	return out
}

// Count returns the number of phrase occurrences bounded by non-word characters.
func (m *Matcher) Count(text string) int {
	if m == nil || m.machine == nil || text == "" {
		return 0
	}
	content := lowerRunes(text)
	terms := m.machine.MultiPatternSearch(content, false)
	count := 0
	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(content) {
			continue
		}
		if start > 0 && isWordRune(content[start-1]) {
			continue
		}
		if end < len(content) && isWordRune(content[end]) {
			continue
		}
		count++
	}
	return count
}

// lowerRunes lowercases rune by rune so match positions map back one to one.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// isWordRune mirrors the ASCII word class used by regexp \b.
func isWordRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
