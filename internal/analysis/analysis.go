// Package analysis builds the per-criterion analysis document shown to users.
//
// The document has the shape an external language-model assessor returns:
// four scored criteria with explanations and quoted examples, an overall
// score, and a strengths/weaknesses/recommendations breakdown. It can be built
// from engine output, parsed from an external source, or replaced by a
// constant fallback when neither is available.
package analysis

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/speakscore/internal/feedback"
	"github.com/verte-zerg/speakscore/internal/lexicon"
	"github.com/verte-zerg/speakscore/internal/model"
)

// Source records where an analysis came from.
type Source string

const (
	SourceEngine   Source = "engine"
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
)

const maxExamples = 2

// Criterion is one scored dimension of the analysis.
type Criterion struct {
	Score       float64  `json:"score" yaml:"score"`
	Explanation string   `json:"explanation" yaml:"explanation"`
	Examples    []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Scores holds the analysed criteria.
type Scores struct {
	Fluency       Criterion `json:"fluency" yaml:"fluency"`
	Grammar       Criterion `json:"grammar" yaml:"grammar"`
	Vocabulary    Criterion `json:"vocabulary" yaml:"vocabulary"`
	Pronunciation Criterion `json:"pronunciation" yaml:"pronunciation"`
	Overall       Criterion `json:"overall" yaml:"overall"`
}

// Breakdown is the free-text summary of an analysis.
type Breakdown struct {
	Strengths       []string `json:"strengths" yaml:"strengths"`
	Weaknesses      []string `json:"weaknesses" yaml:"weaknesses"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Analysis is the full document.
type Analysis struct {
	Scores    Scores    `json:"scores" yaml:"scores"`
	Breakdown Breakdown `json:"breakdown" yaml:"breakdown"`
	Source    Source    `json:"source,omitempty" yaml:"source,omitempty"`
}

// Fallback returns the constant analysis used when no assessor is available.
func Fallback() Analysis {
	return Analysis{
		Scores: Scores{
			Fluency:       Criterion{Score: 22, Explanation: "Estimated based on average fluency patterns", Examples: []string{}},
			Grammar:       Criterion{Score: 21, Explanation: "Estimated based on average grammar accuracy", Examples: []string{}},
			Vocabulary:    Criterion{Score: 23, Explanation: "Estimated based on average vocabulary usage", Examples: []string{}},
			Pronunciation: Criterion{Score: 22, Explanation: "Estimated as pronunciation requires audio analysis", Examples: []string{}},
			Overall:       Criterion{Score: 22, Explanation: "Overall score estimated from component scores"},
		},
		Breakdown: Breakdown{
			Strengths:  []string{"Good response structure", "Clear communication intent"},
			Weaknesses: []string{"Could improve grammatical complexity", "Vocabulary range could be expanded"},
			Recommendations: []string{
				"Practice speaking on diverse topics for 2 minutes without stopping",
				"Study advanced grammar structures",
				"Read varied materials to expand vocabulary",
			},
		},
		Source: SourceFallback,
	}
}

// FromAssessment builds an analysis from engine scores, quoting user turns of
// the transcript as examples. Missing feedback is generated from the scores.
func FromAssessment(a model.Assessment, tr model.Transcript) Analysis {
	fb := a.Feedback
	if fb == nil {
		generated := feedback.Generate(a.Scores)
		fb = &generated
	}
	turns := lo.FilterMap(tr.Utterances, func(u model.Utterance, _ int) (string, bool) {
		text := strings.TrimSpace(u.Text)
		return text, u.Speaker == model.SpeakerUser && text != ""
	})
	lex := lexicon.Default()

	return Analysis{
		Scores: Scores{
			Fluency: criterion(model.Fluency, a.Scores.Fluency, pick(turns, func(s string) bool {
				return lex.Fillers.Count(s) > 0
			})),
			Grammar: criterion(model.Grammar, a.Scores.Grammar, pick(turns, func(s string) bool {
				return lex.ComplexCount(s) > 0 || lex.ErrorCount(s) > 0
			})),
			Vocabulary:    criterion(model.Vocabulary, a.Scores.Vocabulary, longestWords(turns)),
			Pronunciation: criterion(model.Pronunciation, a.Scores.Pronunciation, []string{}),
			Overall: Criterion{
				Score:       a.Scores.Overall,
				Explanation: fmt.Sprintf("Weighted %s-mode average of all components (%s)", a.Mode, feedback.BandFor(a.Scores.Overall)),
			},
		},
		Breakdown: Breakdown{
			Strengths:       lo.Ternary(fb.Strengths == nil, []string{}, fb.Strengths),
			Weaknesses:      lo.Ternary(fb.Weaknesses == nil, []string{}, fb.Weaknesses),
			Recommendations: lo.Ternary(fb.Recommendations == nil, []string{}, fb.Recommendations),
		},
		Source: SourceEngine,
	}
}

func criterion(c model.Component, score float64, examples []string) Criterion {
	band, remark, _ := feedback.For(c, score)
	explanation := fmt.Sprintf("%s (%s)", remark, band)
	if c.Placeholder() {
		explanation = fmt.Sprintf("Estimated as %s requires audio analysis (%s)", c, band)
	}
	return Criterion{Score: score, Explanation: explanation, Examples: examples}
}

func pick(turns []string, match func(string) bool) []string {
	out := lo.Filter(turns, func(s string, _ int) bool { return match(s) })
	if len(out) > maxExamples {
		out = out[:maxExamples]
	}
	return out
}

// longestWords returns the turns containing the longest words, in transcript order.
func longestWords(turns []string) []string {
	longest := func(s string) int {
		return lo.Max(lo.Map(strings.Fields(s), func(w string, _ int) int {
			return len(strings.Trim(w, ".,!?;:'\""))
		}))
	}
	best := lo.Filter(turns, func(s string, _ int) bool { return longest(s) >= 8 })
	if len(best) > maxExamples {
		best = best[:maxExamples]
	}
	return best
}
