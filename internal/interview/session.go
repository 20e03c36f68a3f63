// Package interview runs the scripted assessment interview that produces a transcript.
package interview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/speakscore/internal/model"
)

var (
	ErrNotStarted = errors.New("interview not started")
	ErrCompleted  = errors.New("interview already completed")
)

// Message is a timestamped utterance.
type Message struct {
	model.Utterance
	At time.Time
}

// Session tracks one interview. It is not safe for concurrent use.
type Session struct {
	ID    uuid.UUID
	Mode  model.Mode
	State State

	started  time.Time
	ended    time.Time
	messages []Message
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates an interview in the greeting state.
func NewSession(mode model.Mode, opts ...Option) *Session {
	s := &Session{
		ID:    uuid.New(),
		Mode:  model.ParseMode(string(mode)),
		State: StateGreeting,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start records and returns the opening prompt.
func (s *Session) Start() string {
	if !s.started.IsZero() {
		return s.Prompt()
	}
	s.started = s.now()
	return s.advance()
}

// Answer records the user's reply and returns the next bot prompt.
func (s *Session) Answer(text string) (string, error) {
	if s.started.IsZero() {
		return "", ErrNotStarted
	}
	if s.Done() {
		return "", ErrCompleted
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty answer")
	}
	s.record(model.SpeakerUser, text)
	prompt := s.advance()
	if s.Done() {
		s.ended = s.now()
	}
	return prompt, nil
}

func (s *Session) advance() string {
	prompt, next := Reply(s.Mode, s.State)
	s.record(model.SpeakerBot, prompt)
	s.State = next
	return prompt
}

func (s *Session) record(speaker model.Speaker, text string) {
	s.messages = append(s.messages, Message{
		Utterance: model.Utterance{Speaker: speaker, Text: text},
		At:        s.now(),
	})
}

// Prompt returns the most recent bot prompt.
func (s *Session) Prompt() string {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Speaker == model.SpeakerBot {
			return s.messages[i].Text
		}
	}
	return ""
}

// Done reports whether the script has finished.
func (s *Session) Done() bool {
	return s.State == StateCompleted
}

// Answers returns the number of user answers recorded so far.
func (s *Session) Answers() int {
	n := 0
	for _, m := range s.messages {
		if m.Speaker == model.SpeakerUser {
			n++
		}
	}
	return n
}

// Messages returns a copy of the recorded messages.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Transcript returns the recorded dialogue.
func (s *Session) Transcript() model.Transcript {
	utterances := make([]model.Utterance, len(s.messages))
	for i, m := range s.messages {
		utterances[i] = m.Utterance
	}
	return model.Transcript{Utterances: utterances}
}

// Elapsed returns the time from start to completion, or to now while running.
func (s *Session) Elapsed() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	if !s.ended.IsZero() {
		return s.ended.Sub(s.started)
	}
	return s.now().Sub(s.started)
}
