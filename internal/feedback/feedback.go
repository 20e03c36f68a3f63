// Package feedback maps component scores to strengths, weaknesses and recommendations.
package feedback

import "github.com/verte-zerg/speakscore/internal/model"

// Band is a coarse quality level for a single component score.
type Band int

const (
	NeedsImprovement Band = iota
	Adequate
	Good
	Excellent
)

// Band thresholds on the 0-30 scale.
const (
	excellentFloor = 26.0
	goodFloor      = 22.0
	adequateFloor  = 18.0
)

// BandFor returns the band a score falls into.
func BandFor(score float64) Band {
	switch {
	case score >= excellentFloor:
		return Excellent
	case score >= goodFloor:
		return Good
	case score >= adequateFloor:
		return Adequate
	default:
		return NeedsImprovement
	}
}

func (b Band) String() string {
	switch b {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Adequate:
		return "adequate"
	default:
		return "needs improvement"
	}
}

// entry is the fixed text one band contributes for a component. A band above
// needs-improvement fills remark as a strength, the lowest band as a weakness.
type entry struct {
	remark          string
	recommendations []string
}

type ladder [4]entry

var table = map[model.Component]ladder{
	model.Fluency: {
		NeedsImprovement: {"Needs improvement in fluency and reducing filler words", []string{
			"Record yourself speaking and identify filler words to reduce",
			"Practice timed speaking exercises daily",
		}},
		Adequate:  {"Adequate fluency", []string{"Work on reducing filler words like 'um' and 'uh'"}},
		Good:      {"Good fluency with occasional pauses", []string{"Practice speaking continuously for 2 minutes without pausing"}},
		Excellent: {"Excellent fluency with minimal hesitation", nil},
	},
	model.Grammar: {
		NeedsImprovement: {"Grammar errors affecting clarity", []string{"Review basic grammar rules and practice error identification"}},
		Adequate:         {"Adequate grammar accuracy", []string{"Review complex sentence structures"}},
		Good:             {"Generally accurate grammar", []string{"Study advanced grammar structures for more variety"}},
		Excellent:        {"Strong grammatical accuracy with complex structures", nil},
	},
	model.Vocabulary: {
		NeedsImprovement: {"Limited vocabulary range", []string{"Learn 5 new words daily and practice using them"}},
		Adequate:         {"Adequate vocabulary range", []string{"Learn new words daily from different domains"}},
		Good:             {"Good vocabulary range", []string{"Read diverse materials to expand vocabulary"}},
		Excellent:        {"Rich and varied vocabulary", nil},
	},
	model.Pronunciation: {
		NeedsImprovement: {"Pronunciation needs improvement", []string{"Work with pronunciation guides and practice daily"}},
		Adequate:         {"Adequate pronunciation", []string{"Focus on problematic sound combinations"}},
		Good:             {"Generally clear pronunciation", []string{"Practice pronunciation of difficult sounds"}},
		Excellent:        {"Clear and understandable pronunciation", nil},
	},
	model.Intonation: {
		NeedsImprovement: {"Intonation could be more expressive", []string{"Practice reading aloud with emotional expression"}},
		Adequate:         {"Basic intonation patterns", []string{"Listen to native speakers and imitate their intonation patterns"}},
		Good:             {"Adequate intonation", []string{"Practice varying your pitch to emphasize key points"}},
		Excellent:        {"Good use of intonation and stress patterns", nil},
	},
	model.Pacing: {
		NeedsImprovement: {"Pacing needs improvement - work on consistency", []string{"Use a metronome to practice consistent speaking pace"}},
		Adequate:         {"Adequate pacing", []string{"Work on maintaining steady speech rate"}},
		Good:             {"Good pacing with minor adjustments needed", []string{"Practice speaking at a consistent pace"}},
		Excellent:        {"Excellent pacing - not too fast or slow", nil},
	},
	model.Coherence: {
		NeedsImprovement: {"Ideas could be better organized", []string{
			"Outline responses before speaking",
			"Use linking phrases to connect ideas",
		}},
		Adequate:  {"Adequate coherence", []string{"Work on connecting ideas more clearly"}},
		Good:      {"Generally coherent responses", []string{"Practice using transition words between ideas"}},
		Excellent: {"Well-organized and logically structured responses", nil},
	},
	model.Completeness: {
		NeedsImprovement: {"Some responses feel incomplete", []string{"Practice giving full, detailed answers"}},
		Adequate:         {"Adequate response completeness", []string{"Work on developing ideas more fully"}},
		Good:             {"Mostly complete responses", []string{"Ensure all points are fully explained"}},
		Excellent:        {"Complete and well-developed responses", nil},
	},
}

// Generate builds feedback for every component in the fixed component order.
// Lists are plain concatenations: no sorting, no de-duplication.
func Generate(scores model.ComponentScores) model.Feedback {
	fb := model.Feedback{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
	for _, c := range model.Components {
		band := BandFor(scores.Get(c))
		e := table[c][band]
		if band == NeedsImprovement {
			fb.Weaknesses = append(fb.Weaknesses, e.remark)
		} else {
			fb.Strengths = append(fb.Strengths, e.remark)
		}
		fb.Recommendations = append(fb.Recommendations, e.recommendations...)
	}
	return fb
}

// For returns the remark and recommendations a single component score yields.
func For(c model.Component, score float64) (Band, string, []string) {
	band := BandFor(score)
	e, ok := table[c]
	if !ok {
		return band, "", nil
	}
	return band, e[band].remark, append([]string(nil), e[band].recommendations...)
}
