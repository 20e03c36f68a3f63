package interview

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/speakscore/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(10 * time.Second)
	return c.t
}

func TestConversationalScript(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewSession(model.ModeConversational, WithClock(clock.now))
	assert.NotEqual(t, uuid.Nil, s.ID)

	greeting := s.Start()
	assert.Contains(t, greeting, "Please tell me about yourself")
	assert.Equal(t, State("introduction"), s.State)

	states := []State{"education", "work", "communication", "challenge", "future", StateCompleted}
	for i, want := range states {
		_, err := s.Answer("Answer number one here.")
		require.NoError(t, err, "answer %d", i)
		assert.Equal(t, want, s.State)
	}
	assert.True(t, s.Done())
	assert.Equal(t, 6, s.Answers())
	assert.Equal(t, Steps(model.ModeConversational), s.Answers())
	assert.Contains(t, s.Prompt(), "That's wonderful!")

	_, err := s.Answer("one more")
	assert.ErrorIs(t, err, ErrCompleted)

	tr := s.Transcript()
	require.Len(t, tr.Utterances, 13)
	assert.Equal(t, model.SpeakerBot, tr.Utterances[0].Speaker)
	assert.Equal(t, model.SpeakerUser, tr.Utterances[1].Speaker)
	assert.Equal(t, model.SpeakerBot, tr.Utterances[12].Speaker)

	elapsed := s.Elapsed()
	assert.Positive(t, elapsed)
	assert.Equal(t, elapsed, s.Elapsed(), "elapsed is frozen after completion")
}

func TestSingleScript(t *testing.T) {
	s := NewSession(model.ModeSingle)
	assert.Contains(t, s.Start(), "Single Speaker mode")
	for i := 0; i < 4; i++ {
		_, err := s.Answer("I would like to work as an engineer.")
		require.NoError(t, err)
	}
	assert.True(t, s.Done())
	assert.Equal(t, 4, Steps(model.ModeSingle))
}

func TestAnswerBeforeStart(t *testing.T) {
	s := NewSession(model.ModeConversational)
	_, err := s.Answer("hello")
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Zero(t, s.Elapsed())
}

func TestAnswerRejectsBlank(t *testing.T) {
	s := NewSession(model.ModeConversational)
	s.Start()
	_, err := s.Answer("   ")
	require.Error(t, err)
	assert.Equal(t, 0, s.Answers())
}

func TestStartIsIdempotent(t *testing.T) {
	s := NewSession(model.ModeConversational)
	first := s.Start()
	assert.Equal(t, first, s.Start())
	assert.Len(t, s.Messages(), 1)
}

func TestReplyUnknownState(t *testing.T) {
	prompt, next := Reply(model.ModeConversational, "smalltalk")
	assert.Equal(t, conversationalFollowUp, prompt)
	assert.Equal(t, State("smalltalk"), next)

	prompt, next = Reply(model.ModeSingle, "introduction")
	assert.Equal(t, singleFollowUp, prompt)
	assert.Equal(t, State("introduction"), next)
}

func TestUnknownModeUsesConversational(t *testing.T) {
	s := NewSession(model.Mode("panel"))
	assert.Equal(t, model.ModeConversational, s.Mode)
}
