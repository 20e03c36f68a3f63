// Package lexicon provides the lexical resources used by the scoring engine.
package lexicon

import (
	"fmt"
	"regexp"
	"sync"
)

// Built-in English lists.
var (
	DefaultFillers = []string{"um", "uh", "er", "ah", "like", "you know", "sort of", "kind of"}

	DefaultTransitions = []string{
		"furthermore", "moreover", "additionally", "however", "nevertheless",
		"therefore", "consequently", "meanwhile", "subsequently", "finally",
		"firstly", "secondly", "thirdly", "next", "then", "after", "before",
		"in addition", "on the other hand", "as a result", "for example",
		"similarly", "likewise", "in contrast", "otherwise", "thus",
	}

	DefaultReferences = []string{"he", "she", "it", "they", "them", "this", "these", "those"}
)

var (
	complexPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(because|since|although|though|while|whereas|however|therefore|consequently|furthermore)\b`),
		regexp.MustCompile(`(?i)\b(if|unless|provided that|as long as|in case)\b`),
		regexp.MustCompile(`(?i)\b(which|who|whom|whose|that)\b`),
	}

	errorPatterns = []*regexp.Regexp{
		// double negatives
		regexp.MustCompile(`(?i)\b(don't|doesn't|didn't|won't|wouldn't|can't|couldn't)\s+(no|not|never)\b`),
		// subject-verb agreement
		regexp.MustCompile(`(?i)\b(I|we|they)\s+(has|was|is)\b|\b(he|she|it)\s+(have|were|are)\b`),
		// verb form
		regexp.MustCompile(`(?i)\b(I|you|we|they)\s+(was|has)\b|\b(he|she|it)\s+(were|have)\b`),
	}

	trailingFiller = regexp.MustCompile(`\b(um|uh|er|ah)$`)
)

// Lexicon bundles the read-only resources used for scoring.
type Lexicon struct {
	Fillers     *Matcher
	Transitions *Matcher
	References  *Matcher

	complex  []*regexp.Regexp
	errors   []*regexp.Regexp
	trailing *regexp.Regexp
}

// Options lists optional extension files appended to the built-in lists.
type Options struct {
	FillersFile     string
	TransitionsFile string
	ReferencesFile  string
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := build(DefaultFillers, DefaultTransitions, DefaultReferences)
	if err != nil {
		panic(fmt.Sprintf("lexicon: failed to build default lexicon: %v", err))
	}
	return lex
})

// Default returns the shared built-in lexicon.
func Default() *Lexicon {
	return defaultLexicon()
}

// New builds a lexicon from the built-in lists extended with any configured files.
func New(opts Options) (*Lexicon, error) {
	if opts == (Options{}) {
		return Default(), nil
	}
	fillers, err := extend(DefaultFillers, opts.FillersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load fillers: %w", err)
	}
	transitions, err := extend(DefaultTransitions, opts.TransitionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load transitions: %w", err)
	}
	references, err := extend(DefaultReferences, opts.ReferencesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load references: %w", err)
	}
	return build(fillers, transitions, references)
}

// ComplexCount counts matches of the complex-grammar pattern families.
func (l *Lexicon) ComplexCount(text string) int {
	return countAll(l.complex, text)
}

// ErrorCount counts matches of the simplified grammar error patterns.
func (l *Lexicon) ErrorCount(text string) int {
	return countAll(l.errors, text)
}

// EndsWithFiller reports whether a trimmed sentence ends in a hesitation token.
func (l *Lexicon) EndsWithFiller(sentence string) bool {
	return l.trailing.MatchString(sentence)
}

func build(fillers, transitions, references []string) (*Lexicon, error) {
	f, err := NewMatcher(fillers)
	if err != nil {
		return nil, fmt.Errorf("failed to build filler matcher: %w", err)
	}
	t, err := NewMatcher(transitions)
	if err != nil {
		return nil, fmt.Errorf("failed to build transition matcher: %w", err)
	}
	r, err := NewMatcher(references)
	if err != nil {
		return nil, fmt.Errorf("failed to build reference matcher: %w", err)
	}
	return &Lexicon{
		Fillers:     f,
		Transitions: t,
		References:  r,
		complex:     complexPatterns,
		errors:      errorPatterns,
		trailing:    trailingFiller,
	}, nil
}

func extend(base []string, path string) ([]string, error) {
	if path == "" {
		return base, nil
	}
	extra, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...), nil
}

func countAll(patterns []*regexp.Regexp, text string) int {
	count := 0
	for _, p := range patterns {
		count += len(p.FindAllStringIndex(text, -1))
	}
	return count
}
