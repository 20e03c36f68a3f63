// Package scoring implements the heuristic communication scoring engine.
//
// The engine turns a flattened transcript into eight component scores on a
// 0-30 scale plus a weighted overall score. It holds only read-only
// configuration, so a single Engine may be shared across goroutines.
package scoring

import (
	"log/slog"
	"time"

	"github.com/verte-zerg/speakscore/internal/lexicon"
	"github.com/verte-zerg/speakscore/internal/model"
)

// DefaultDuration is the assumed speaking time when none is supplied.
const DefaultDuration = 2 * time.Minute

const (
	maxScore = 30.0

	pronunciationPlaceholder = 22.0
	intonationPlaceholder    = 20.0

	singleCoherenceFactor    = 0.7
	singleCompletenessFactor = 1.3
)

// Engine scores transcripts.
type Engine struct {
	lex      *lexicon.Lexicon
	minutes  float64
	duration time.Duration
	weights  model.Weights
}

// Option configures an Engine.
type Option func(*Engine)

// WithDuration sets the speaking time used for words-per-minute estimates.
// Zero or negative durations keep the default.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.duration = d
			e.minutes = d.Minutes()
		}
	}
}

// WithWeights replaces the overall weight table.
func WithWeights(w model.Weights) Option {
	return func(e *Engine) {
		if len(w) > 0 {
			e.weights = w
		}
	}
}

// New returns an engine using the given lexicon. A nil lexicon uses the built-in one.
func New(lex *lexicon.Lexicon, opts ...Option) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	e := &Engine{
		lex:      lex,
		duration: DefaultDuration,
		minutes:  DefaultDuration.Minutes(),
		weights:  model.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Duration returns the speaking time assumed by the engine.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// Score computes all component scores and the mode-adjusted overall score.
func (e *Engine) Score(text string, mode model.Mode) model.ComponentScores {
	scores := model.ComponentScores{
		Fluency:       e.Fluency(text),
		Grammar:       e.Grammar(text),
		Vocabulary:    e.Vocabulary(text),
		Pronunciation: e.Pronunciation(text),
		Intonation:    e.Intonation(text),
		Pacing:        e.Pacing(text),
		Coherence:     e.Coherence(text),
		Completeness:  e.Completeness(text),
	}
	scores.Overall = e.overallFor(scores, mode)
	slog.Debug("scored transcript",
		"mode", string(mode),
		"words", len(words(text)),
		"overall", scores.Overall)
	return scores
}

func (e *Engine) overallFor(scores model.ComponentScores, mode model.Mode) float64 {
	values := scores.Map()
	if mode == model.ModeSingle {
		values[model.Coherence] = scores.Coherence * singleCoherenceFactor
		values[model.Completeness] = scores.Completeness * singleCompletenessFactor
	}
	return Overall(values, e.weights)
}

// wpm estimates words per minute over the configured duration.
func (e *Engine) wpm(wordCount int) float64 {
	return float64(wordCount) / e.minutes
}
