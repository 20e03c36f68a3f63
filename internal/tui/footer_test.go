package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/speakscore/internal/interview"
	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/scoring"
)

func TestRenderFooterFormats(t *testing.T) {
	session := interview.NewSession(model.ModeSingle)
	m := NewModel(session, scoring.New(nil))
	if _, err := session.Answer("I want to be a teacher."); err != nil {
		t.Fatalf("answer: %v", err)
	}
	m.words = 6
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Progress 25%", "Answers 1/4", "Words 6"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
