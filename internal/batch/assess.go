// Package batch scores transcripts, one at a time or many concurrently.
package batch

import (
	"log/slog"

	"github.com/verte-zerg/speakscore/internal/feedback"
	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/scoring"
	"github.com/verte-zerg/speakscore/internal/transcript"
)

// Assess scores raw transcript text and packages the result. The text is
// scored exactly as given; the parsed transcript only serves language
// detection and display. Feedback is attached when withFeedback is set.
func Assess(engine *scoring.Engine, source, text string, mode model.Mode, withFeedback bool) (model.Assessment, model.Transcript) {
	tr := transcript.Parse(text)
	lang := transcript.DetectLanguage(tr)
	if !lang.English() {
		slog.Warn("transcript does not look like English, scores may be meaningless",
			"source", source, "language", lang.Name, "confidence", lang.Confidence)
	}

	scores := engine.Score(text, mode)
	a := model.Assessment{
		Source:   source,
		Mode:     mode,
		Duration: engine.Duration(),
		Language: lang.Code,
		Scores:   scores,
	}
	if withFeedback {
		fb := feedback.Generate(scores)
		a.Feedback = &fb
	}
	return a, tr
}
