// Package transcript parses and reads dialogue transcripts.
package transcript

import (
	"github.com/abadojack/whatlanggo"

	"github.com/verte-zerg/speakscore/internal/model"
)

// minDetectWords is the word count below which detection is too noisy to report.
const minDetectWords = 5

// Language describes the detected language of the user's speech.
type Language struct {
	Code       string
	Name       string
	Confidence float64
	Reliable   bool
}

// English reports whether the detection is English or too unreliable to say otherwise.
func (l Language) English() bool {
	return !l.Reliable || l.Code == "en"
}

// DetectLanguage guesses the language of the user utterances, falling back to
// the whole transcript when no user turns are tagged.
func DetectLanguage(t model.Transcript) Language {
	text := UserText(t)
	if WordCount(text) == 0 {
		text = t.Flatten()
	}
	if WordCount(text) < minDetectWords {
		return Language{}
	}
	info := whatlanggo.Detect(text)
	return Language{
		Code:       info.Lang.Iso6391(),
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}
