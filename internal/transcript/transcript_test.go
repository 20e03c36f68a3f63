package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/speakscore/internal/model"
)

func TestParseTaggedLines(t *testing.T) {
	text := "user: Hello there.\nbot: Hi, how are you?\n\nUser: Fine, thanks.\n"
	got := Parse(text)
	require.Len(t, got.Utterances, 3)
	assert.Equal(t, model.Utterance{Speaker: model.SpeakerUser, Text: "Hello there."}, got.Utterances[0])
	assert.Equal(t, model.Utterance{Speaker: model.SpeakerBot, Text: "Hi, how are you?"}, got.Utterances[1])
	assert.Equal(t, model.SpeakerUser, got.Utterances[2].Speaker)
}

func TestParseFlattenRoundTrip(t *testing.T) {
	text := "user: I studied computer science.\nbot: That's great.\nuser: Thank you."
	assert.Equal(t, text, Parse(text).Flatten())
}

func TestParseContinuationAndUntagged(t *testing.T) {
	text := "Some preamble\nuser: first part\nsecond part\nbot: ok"
	got := Parse(text)
	require.Len(t, got.Utterances, 3)
	assert.Equal(t, model.Speaker(""), got.Utterances[0].Speaker)
	assert.Equal(t, "Some preamble", got.Utterances[0].Text)
	assert.Equal(t, "first part second part", got.Utterances[1].Text)
	assert.Equal(t, "ok", got.Utterances[2].Text)
}

func TestParseInlineTurns(t *testing.T) {
	got := Parse("user: I am happy. bot: Good. user: Me too.")
	require.Len(t, got.Utterances, 3)
	assert.Equal(t, "I am happy.", got.Utterances[0].Text)
	assert.Equal(t, model.SpeakerBot, got.Utterances[1].Speaker)
	assert.Equal(t, "Good.", got.Utterances[1].Text)
	assert.Equal(t, "Me too.", got.Utterances[2].Text)
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse("").Utterances)
	assert.Empty(t, Parse("\n  \n").Utterances)
}

func TestUserText(t *testing.T) {
	tr := Parse("user: one\nbot: two\nuser: three")
	assert.Equal(t, "one\nthree", UserText(tr))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("user: hi"), 0o644))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user: hi", got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("bot: hello"))
	require.NoError(t, err)
	assert.Equal(t, "bot: hello", got)
}

func TestDetectLanguage(t *testing.T) {
	en := Parse("user: I worked on several projects and collaborated with a team to build a mobile application for our customers.")
	lang := DetectLanguage(en)
	assert.True(t, lang.English())

	short := DetectLanguage(Parse("user: hi"))
	assert.False(t, short.Reliable)
	assert.True(t, short.English())
}
