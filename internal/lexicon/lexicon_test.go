package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatcherCountsWholeWordsCaseInsensitive(t *testing.T) {
	m, err := NewMatcher([]string{"um", "you know", "like"})
	if err != nil {
		t.Fatalf("new matcher: %v", err)
	}
	text := "Um, I like it. You know, umbrella likes are unlikely, um."
	if got := m.Count(text); got != 4 {
		t.Fatalf("expected 4 matches, got %d", got)
	}
}

func TestMatcherEmpty(t *testing.T) {
	m, err := NewMatcher(nil)
	if err != nil {
		t.Fatalf("new matcher: %v", err)
	}
	if got := m.Count("um uh er"); got != 0 {
		t.Fatalf("expected 0 matches, got %d", got)
	}
}

func TestDefaultLexiconCounts(t *testing.T) {
	lex := Default()
	text := "Furthermore, in addition to that, I think this is good. However, they was late because it were raining."
	if got := lex.Transitions.Count(text); got != 3 {
		t.Fatalf("expected 3 transitions, got %d", got)
	}
	// this, they, it
	if got := lex.References.Count(text); got != 3 {
		t.Fatalf("expected 3 references, got %d", got)
	}
	// furthermore, however, because | that
	if got := lex.ComplexCount(text); got != 4 {
		t.Fatalf("expected 4 complex matches, got %d", got)
	}
	// "they was" (agreement + verb form), "it were" (agreement + verb form)
	if got := lex.ErrorCount(text); got != 4 {
		t.Fatalf("expected 4 error matches, got %d", got)
	}
}

func TestPatternCountsEveryOccurrence(t *testing.T) {
	lex := Default()
	text := "They was here. They was there. They was late. They was gone."
	// each "they was" trips agreement and verb form; repeats are not capped
	if got := lex.ErrorCount(text); got != 8 {
		t.Fatalf("expected 8 error matches, got %d", got)
	}
	if got := lex.ComplexCount("because because because because"); got != 4 {
		t.Fatalf("expected 4 complex matches, got %d", got)
	}
}

func TestEndsWithFiller(t *testing.T) {
	lex := Default()
	if !lex.EndsWithFiller("I was going to say um") {
		t.Fatalf("expected trailing filler")
	}
	if lex.EndsWithFiller("I said hum") {
		t.Fatalf("did not expect trailing filler inside a word")
	}
	if lex.EndsWithFiller("um I said") {
		t.Fatalf("did not expect leading filler to count")
	}
}

func TestNewExtendsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fillers.txt")
	if err := os.WriteFile(path, []byte("# extra fillers\nBasically\n\nI mean\nrésumé\num\n"), 0o644); err != nil {
		t.Fatalf("write fillers: %v", err)
	}
	lex, err := New(Options{FillersFile: path})
	if err != nil {
		t.Fatalf("new lexicon: %v", err)
	}
	phrases := lex.Fillers.Phrases()
	if len(phrases) != len(DefaultFillers)+2 {
		t.Fatalf("expected %d fillers, got %d: %v", len(DefaultFillers)+2, len(phrases), phrases)
	}
	if got := lex.Fillers.Count("basically, I mean it"); got != 2 {
		t.Fatalf("expected 2 extension matches, got %d", got)
	}
}

func TestNewMissingFile(t *testing.T) {
	if _, err := New(Options{TransitionsFile: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadWordsRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestNormalizeEntriesFiltersNonEnglish(t *testing.T) {
	got := normalizeEntries([]string{"Hello", "  kind   of ", "naïve", "co-op", "hello"})
	if len(got) != 2 || got[0] != "hello" || got[1] != "kind of" {
		t.Fatalf("unexpected entries: %v", got)
	}
}
