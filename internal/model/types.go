// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Mode selects how the overall score is weighted.
type Mode string

const (
	ModeConversational Mode = "conversational"
	ModeSingle         Mode = "single"
)

// ParseMode maps a mode literal to a Mode. Unknown values fall back to conversational.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeSingle {
		return ModeSingle
	}
	return ModeConversational
}

// Speaker tags an utterance.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Utterance is a single turn in a dialogue.
type Utterance struct {
	Speaker Speaker `json:"speaker" yaml:"speaker"`
	Text    string  `json:"text" yaml:"text"`
}

// Transcript is an ordered dialogue.
type Transcript struct {
	Utterances []Utterance `json:"utterances" yaml:"utterances"`
}

// Flatten joins utterances into newline separated "speaker: text" lines.
func (t Transcript) Flatten() string {
	lines := make([]string, 0, len(t.Utterances))
	for _, u := range t.Utterances {
		if u.Speaker == "" {
			lines = append(lines, u.Text)
			continue
		}
		lines = append(lines, string(u.Speaker)+": "+u.Text)
	}
	return strings.Join(lines, "\n")
}

// Component names one of the eight scored dimensions.
type Component string

const (
	Fluency       Component = "fluency"
	Grammar       Component = "grammar"
	Vocabulary    Component = "vocabulary"
	Pronunciation Component = "pronunciation"
	Intonation    Component = "intonation"
	Pacing        Component = "pacing"
	Coherence     Component = "coherence"
	Completeness  Component = "completeness"
)

// Components lists every component in reporting order.
var Components = []Component{
	Fluency,
	Grammar,
	Vocabulary,
	Pronunciation,
	Intonation,
	Pacing,
	Coherence,
	Completeness,
}

// Placeholder reports whether the component is a constant stand-in for audio analysis.
func (c Component) Placeholder() bool {
	return c == Pronunciation || c == Intonation
}

// Title returns a display label.
func (c Component) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ComponentScores holds component scores on the 0-30 scale.
type ComponentScores struct {
	Fluency       float64 `json:"fluency" yaml:"fluency"`
	Grammar       float64 `json:"grammar" yaml:"grammar"`
	Vocabulary    float64 `json:"vocabulary" yaml:"vocabulary"`
	Pronunciation float64 `json:"pronunciation" yaml:"pronunciation"`
	Intonation    float64 `json:"intonation" yaml:"intonation"`
	Pacing        float64 `json:"pacing" yaml:"pacing"`
	Coherence     float64 `json:"coherence" yaml:"coherence"`
	Completeness  float64 `json:"completeness" yaml:"completeness"`
	Overall       float64 `json:"overall" yaml:"overall"`
}

// Get returns the score for a component. Unknown components return 0.
func (s ComponentScores) Get(c Component) float64 {
	switch c {
	case Fluency:
		return s.Fluency
	case Grammar:
		return s.Grammar
	case Vocabulary:
		return s.Vocabulary
	case Pronunciation:
		return s.Pronunciation
	case Intonation:
		return s.Intonation
	case Pacing:
		return s.Pacing
	case Coherence:
		return s.Coherence
	case Completeness:
		return s.Completeness
	default:
		return 0
	}
}

// Set stores the score for a component.
func (s *ComponentScores) Set(c Component, v float64) {
	switch c {
	case Fluency:
		s.Fluency = v
	case Grammar:
		s.Grammar = v
	case Vocabulary:
		s.Vocabulary = v
	case Pronunciation:
		s.Pronunciation = v
	case Intonation:
		s.Intonation = v
	case Pacing:
		s.Pacing = v
	case Coherence:
		s.Coherence = v
	case Completeness:
		s.Completeness = v
	}
}

// Map returns the eight component scores keyed by component.
func (s ComponentScores) Map() map[Component]float64 {
	out := make(map[Component]float64, len(Components))
	for _, c := range Components {
		out[c] = s.Get(c)
	}
	return out
}

// Weights maps components to their share of the overall score.
type Weights map[Component]float64

// DefaultWeights returns the standard weight table. Weights sum to 1.0.
func DefaultWeights() Weights {
	return Weights{
		Fluency:       0.15,
		Grammar:       0.15,
		Vocabulary:    0.15,
		Pronunciation: 0.15,
		Intonation:    0.10,
		Pacing:        0.10,
		Coherence:     0.10,
		Completeness:  0.10,
	}
}

// Feedback groups human-readable remarks derived from scores.
type Feedback struct {
	Strengths       []string `json:"strengths" yaml:"strengths"`
	Weaknesses      []string `json:"weaknesses" yaml:"weaknesses"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Assessment is the complete result of scoring one transcript.
type Assessment struct {
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Mode     Mode            `json:"mode" yaml:"mode"`
	Duration time.Duration   `json:"duration" yaml:"duration"`
	Language string          `json:"language,omitempty" yaml:"language,omitempty"`
	Scores   ComponentScores `json:"scores" yaml:"scores"`
	Feedback *Feedback       `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// Settings holds resolved runtime options.
type Settings struct {
	Mode            Mode          `validate:"oneof=conversational single"`
	Duration        time.Duration `validate:"gte=0"`
	Format          string        `validate:"oneof=text json yaml"`
	Color           bool
	LogLevel        string `validate:"omitempty,oneof=debug info warn warning error"`
	FillersFile     string
	TransitionsFile string
	ReferencesFile  string
}
