package analysis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/speakscore/internal/model"
)

const validDoc = `{
  "scores": {
    "fluency": {"score": 25, "explanation": "steady", "examples": ["I graduated last year."]},
    "grammar": {"score": 24, "explanation": "accurate", "examples": []},
    "vocabulary": {"score": 23.5, "explanation": "varied"},
    "pronunciation": {"score": 22, "explanation": "clear", "examples": []},
    "overall": {"score": 23.6, "explanation": "solid"}
  },
  "breakdown": {
    "strengths": ["clear answers"],
    "weaknesses": [],
    "recommendations": ["read more"]
  }
}`

func TestFallbackValues(t *testing.T) {
	fb := Fallback()
	assert.Equal(t, 22.0, fb.Scores.Fluency.Score)
	assert.Equal(t, 21.0, fb.Scores.Grammar.Score)
	assert.Equal(t, 23.0, fb.Scores.Vocabulary.Score)
	assert.Equal(t, 22.0, fb.Scores.Pronunciation.Score)
	assert.Equal(t, 22.0, fb.Scores.Overall.Score)
	assert.Len(t, fb.Breakdown.Recommendations, 3)
	assert.Equal(t, SourceFallback, fb.Source)
}

func TestFallbackPassesSchema(t *testing.T) {
	doc, err := json.Marshal(Fallback())
	require.NoError(t, err)
	require.NoError(t, Validate(doc))
}

func TestParseValid(t *testing.T) {
	a, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	assert.Equal(t, 23.5, a.Scores.Vocabulary.Score)
	assert.Equal(t, []string{"I graduated last year."}, a.Scores.Fluency.Examples)
	assert.Equal(t, SourceExternal, a.Source)
}

func TestParseMissingScore(t *testing.T) {
	doc := `{"scores": {"fluency": {"score": 1, "explanation": "x"}}, "breakdown": {"strengths": [], "weaknesses": [], "recommendations": []}}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "grammar")
}

func TestParseOutOfRange(t *testing.T) {
	doc := []byte(`{
	  "scores": {
	    "fluency": {"score": 45, "explanation": "x"},
	    "grammar": {"score": 1, "explanation": "x"},
	    "vocabulary": {"score": 1, "explanation": "x"},
	    "pronunciation": {"score": 1, "explanation": "x"},
	    "overall": {"score": 1}
	  },
	  "breakdown": {"strengths": [], "weaknesses": [], "recommendations": []}
	}`)
	var verr *ValidationError
	_, err := Parse(doc)
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "scores.fluency.score", verr.Errors[0].Field)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("{ not json"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	fallback := Fallback()

	got := Resolve([]byte(validDoc), nil, fallback)
	assert.Equal(t, SourceExternal, got.Source)

	got = Resolve(nil, errors.New("assessor timed out"), fallback)
	assert.Equal(t, fallback, got)

	got = Resolve([]byte(`{"scores": {}}`), nil, fallback)
	assert.Equal(t, fallback, got)
}

func TestFromAssessment(t *testing.T) {
	tr := model.Transcript{Utterances: []model.Utterance{
		{Speaker: model.SpeakerBot, Text: "Tell me about yourself."},
		{Speaker: model.SpeakerUser, Text: "Um, I studied engineering because I like building things."},
		{Speaker: model.SpeakerUser, Text: "I enjoy collaborating."},
	}}
	a := model.Assessment{
		Mode: model.ModeConversational,
		Scores: model.ComponentScores{
			Fluency: 27, Grammar: 19, Vocabulary: 23, Pronunciation: 22,
			Intonation: 20, Pacing: 10, Coherence: 5, Completeness: 30, Overall: 19.5,
		},
	}
	got := FromAssessment(a, tr)

	assert.Equal(t, SourceEngine, got.Source)
	assert.Equal(t, 27.0, got.Scores.Fluency.Score)
	assert.Equal(t, "Excellent fluency with minimal hesitation (excellent)", got.Scores.Fluency.Explanation)
	assert.Equal(t, []string{"Um, I studied engineering because I like building things."}, got.Scores.Fluency.Examples)
	assert.Equal(t, []string{"Um, I studied engineering because I like building things."}, got.Scores.Grammar.Examples)
	assert.Len(t, got.Scores.Vocabulary.Examples, 2)
	assert.Empty(t, got.Scores.Pronunciation.Examples)
	assert.Contains(t, got.Scores.Pronunciation.Explanation, "audio")
	assert.Equal(t, 19.5, got.Scores.Overall.Score)
	assert.Contains(t, got.Breakdown.Weaknesses, "Ideas could be better organized")

	doc, err := json.Marshal(got)
	require.NoError(t, err)
	require.NoError(t, Validate(doc))
}
