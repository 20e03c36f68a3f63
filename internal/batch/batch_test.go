package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/scoring"
)

func writeTranscripts(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("t%02d.txt", i))
		body := "user: " + fmt.Sprint(i) + " I worked on several projects. Moreover, I enjoyed them.\n"
		for j := 0; j < i; j++ {
			body += "bot: Tell me more.\nuser: Um, sure.\n"
		}
		require.NoError(t, os.WriteFile(paths[i], []byte(body), 0o644))
	}
	return paths
}

func TestRunPreservesOrder(t *testing.T) {
	engine := scoring.New(nil)
	paths := writeTranscripts(t, 12)

	results, err := Run(context.Background(), engine, paths, Options{Mode: model.ModeConversational, Jobs: 3})
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, paths[i], r.Assessment.Source)
		assert.Nil(t, r.Assessment.Feedback)

		text, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		want, _ := Assess(engine, paths[i], string(text), model.ModeConversational, false)
		assert.Equal(t, want.Scores, r.Assessment.Scores)
	}
}

func TestRunReportsReadErrors(t *testing.T) {
	paths := writeTranscripts(t, 2)
	missing := filepath.Join(t.TempDir(), "missing.txt")
	paths = append([]string{missing}, paths...)

	results, err := Run(context.Background(), scoring.New(nil), paths, Options{Feedback: true})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.Equal(t, missing, results[0].Path)
	require.NotNil(t, results[1].Assessment.Feedback)
	assert.Len(t, Succeeded(results), 2)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, scoring.New(nil), writeTranscripts(t, 4), Options{Jobs: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), scoring.New(nil), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAssess(t *testing.T) {
	a, tr := Assess(scoring.New(nil), "inline", "user: I am happy. bot: Good. user: Me too.", model.ModeSingle, true)
	assert.Equal(t, "inline", a.Source)
	assert.Equal(t, model.ModeSingle, a.Mode)
	assert.Equal(t, scoring.DefaultDuration, a.Duration)
	assert.Len(t, tr.Utterances, 3)
	require.NotNil(t, a.Feedback)
	assert.NotEmpty(t, a.Feedback.Recommendations)
}

func TestAssessScoresTextAsGiven(t *testing.T) {
	engine := scoring.New(nil)
	inputs := []string{
		"User: I am happy. Bot: Good. User: Me too.",
		"USER: I think so.\nBOT: Why is that?\nUSER: Because it is.",
		"Note:see https://example.com for the details of this plan.",
	}
	for _, raw := range inputs {
		for _, mode := range []model.Mode{model.ModeConversational, model.ModeSingle} {
			a, _ := Assess(engine, "inline", raw, mode, false)
			assert.Equal(t, engine.Score(raw, mode), a.Scores, "input %q mode %s", raw, mode)
		}
	}
}

func TestAssessTagsAreCaseSensitive(t *testing.T) {
	engine := scoring.New(nil)
	lower, _ := Assess(engine, "lower", "user: I am happy. bot: Good. user: Me too.", model.ModeConversational, false)
	upper, _ := Assess(engine, "upper", "User: I am happy. Bot: Good. User: Me too.", model.ModeConversational, false)
	assert.Greater(t, lower.Scores.Coherence, upper.Scores.Coherence)
}
