package scoring

import (
	"log/slog"
	"math"
	"regexp"
	"strings"
)

const (
	userTag = "user:"
	botTag  = "bot:"
)

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)

	// Whitespace includes \v, Unicode separators and the BOM, so pasted text
	// with non-breaking spaces still splits into words.
	wordSpace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	nonWord   = regexp.MustCompile(`[^\w\s\v\p{Z}\x{FEFF}]`)
)

// Fluency scores filler usage, speaking rate and sentence length variation.
func (e *Engine) Fluency(text string) float64 {
	w := len(words(text))
	fillers := e.lex.Fillers.Count(text)
	fillerRatio := 0.0
	if w > 0 {
		fillerRatio = float64(fillers) / float64(w)
	}

	wpm := e.wpm(w)
	fillerScore := clamp(maxScore - fillerRatio*200)
	var rateScore float64
	switch {
	case wpm < 100:
		rateScore = wpm / 100 * maxScore
	case wpm > 250:
		rateScore = 250 / wpm * maxScore
	default:
		rateScore = maxScore
	}
	variationScore := SentenceLengthVariation(text) * maxScore

	score := fillerScore*0.4 + rateScore*0.4 + variationScore*0.2
	slog.Debug("fluency", "fillers", fillers, "wpm", wpm, "filler_score", fillerScore,
		"rate_score", rateScore, "variation_score", variationScore)
	return finalize(score)
}

// SentenceLengthVariation returns 1 when the standard deviation of sentence
// lengths is half their mean, falling off linearly to 0. Text without
// sentences yields 0.5.
func SentenceLengthVariation(text string) float64 {
	parts := sentences(text)
	if len(parts) == 0 {
		return 0.5
	}
	lengths := make([]float64, len(parts))
	var sum float64
	for i, s := range parts {
		lengths[i] = float64(len(words(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var sq float64
	for _, l := range lengths {
		sq += (l - mean) * (l - mean)
	}
	stddev := math.Sqrt(sq / float64(len(lengths)))
	ideal := mean * 0.5
	if ideal == 0 {
		return 0
	}
	return clampUnit(1 - math.Abs(stddev-ideal)/ideal)
}

// Grammar rewards complex structures and penalizes simple error patterns.
func (e *Engine) Grammar(text string) float64 {
	w := len(words(text))
	complexCount := e.lex.ComplexCount(text)
	errorCount := e.lex.ErrorCount(text)

	ratio := 0.0
	if w > 0 {
		ratio = float64(complexCount) / float64(w)
	}
	complexityScore := clamp(ratio * 300)
	errorPenalty := clamp(maxScore - float64(errorCount)*3)

	slog.Debug("grammar", "complex", complexCount, "errors", errorCount)
	return finalize(complexityScore*0.6 + errorPenalty*0.4)
}

// Vocabulary scores lexical diversity and the share of long words.
func (e *Engine) Vocabulary(text string) float64 {
	valid := vocabularyTokens(text)
	if len(valid) == 0 {
		return 15
	}

	unique := map[string]struct{}{}
	advanced := 0
	for _, word := range valid {
		if len(word) <= 3 {
			continue
		}
		if _, ok := unique[word]; ok {
			continue
		}
		unique[word] = struct{}{}
		if len(word) >= 8 {
			advanced++
		}
	}

	diversity := float64(len(unique)) / float64(len(valid))
	advancedRatio := 0.0
	if len(unique) > 0 {
		advancedRatio = float64(advanced) / float64(len(unique))
	}

	slog.Debug("vocabulary", "words", len(valid), "unique", len(unique), "advanced", advanced)
	return finalize(diversity*50*0.6 + advancedRatio*60*0.4)
}

// Pronunciation is a constant placeholder; text carries no phonetic signal.
func (e *Engine) Pronunciation(string) float64 {
	return pronunciationPlaceholder
}

// Intonation is a constant placeholder; text carries no pitch signal.
func (e *Engine) Intonation(string) float64 {
	return intonationPlaceholder
}

// Pacing scores the estimated speaking rate against a 100-220 wpm band.
func (e *Engine) Pacing(text string) float64 {
	wpm := e.wpm(len(words(text)))
	var score float64
	switch {
	case wpm < 100:
		score = wpm / 100 * maxScore
	case wpm > 220:
		score = 220 / wpm * maxScore
	default:
		score = 25
		if math.Abs(wpm-160) < 20 {
			score += 5
		}
	}
	return finalize(score)
}

// Coherence scores transitions, pronoun references and turn taking.
func (e *Engine) Coherence(text string) float64 {
	transitions := e.lex.Transitions.Count(text)
	references := e.lex.References.Count(text)
	turns := strings.Count(text, userTag) + strings.Count(text, botTag)

	transitionScore := math.Min(maxScore, float64(transitions)*4)
	referenceScore := math.Min(maxScore, float64(references)*3)
	interactionScore := math.Min(maxScore, float64(turns)*2)
	// The interaction share is weighted twice.
	interactionWeighted := interactionScore * 0.3

	slog.Debug("coherence", "transitions", transitions, "references", references, "turns", turns)
	return finalize(transitionScore*0.4 + referenceScore*0.3 + interactionWeighted*0.3)
}

// Completeness penalizes sentences that trail off or are one or two words long.
func (e *Engine) Completeness(text string) float64 {
	parts := sentences(text)
	if len(parts) == 0 {
		return finalize(maxScore)
	}
	incomplete := 0
	for _, s := range parts {
		n := len(words(s))
		if e.lex.EndsWithFiller(s) || (n > 0 && n < 3) {
			incomplete++
		}
	}
	ratio := float64(incomplete) / float64(len(parts))
	return finalize(maxScore - ratio*60)
}

// sentences splits on terminal punctuation and returns trimmed, non-blank pieces.
func sentences(text string) []string {
	raw := sentenceBreak.Split(text, -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// vocabularyTokens lowercases text, strips everything but word characters and
// whitespace, and splits on whitespace.
func vocabularyTokens(text string) []string {
	stripped := nonWord.ReplaceAllString(strings.ToLower(text), "")
	out := []string{}
	for _, tok := range wordSpace.Split(stripped, -1) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func words(text string) []string {
	return strings.Fields(text)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// finalize rounds to two decimals and clamps to the score range.
func finalize(v float64) float64 {
	return clamp(round2(v))
}
