package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/speakscore/internal/analysis"
	"github.com/verte-zerg/speakscore/internal/feedback"
	"github.com/verte-zerg/speakscore/internal/model"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options controls text rendering.
type Options struct {
	Weakest  int
	BarWidth int
	Color    bool
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// ScoreLines renders the component score table.
func ScoreLines(scores model.ComponentScores, opts Options) []string {
	cols := []column{textCol("Component"), numCol("Score"), textCol("Band"), textCol("")}
	rows := make([][]string, 0, len(model.Components)+1)
	for _, c := range model.Components {
		v := scores.Get(c)
		label := c.Title()
		if c.Placeholder() {
			label += "*"
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%.2f", v),
			feedback.BandFor(v).String(),
			colorBand(Bar(v, opts.BarWidth), v, opts.Color),
		})
	}
	rows = append(rows, []string{
		"Overall",
		fmt.Sprintf("%.2f", scores.Overall),
		feedback.BandFor(scores.Overall).String(),
		colorBand(Bar(scores.Overall, opts.BarWidth), scores.Overall, opts.Color),
	})
	return formatTable(cols, rows)
}

// RenderAssessment prints a human-readable assessment.
func RenderAssessment(w io.Writer, a model.Assessment, opts Options) error {
	var b strings.Builder
	if a.Source != "" {
		fmt.Fprintf(&b, "Transcript: %s\n", a.Source)
	}
	fmt.Fprintf(&b, "Mode: %s  Duration: %s", a.Mode, a.Duration)
	if a.Language != "" {
		fmt.Fprintf(&b, "  Language: %s", a.Language)
	}
	b.WriteString("\n\n")
	for _, line := range ScoreLines(a.Scores, opts) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("* estimated without audio\n")

	if opts.Weakest > 0 {
		weak := lo.Map(WeakestComponents(a.Scores, opts.Weakest), func(c model.Component, _ int) string {
			return fmt.Sprintf("%s (%.2f)", c.Title(), a.Scores.Get(c))
		})
		fmt.Fprintf(&b, "\nWeakest: %s\n", strings.Join(weak, ", "))
	}

	if a.Feedback != nil {
		writeList(&b, "Strengths", a.Feedback.Strengths)
		writeList(&b, "Weaknesses", a.Feedback.Weaknesses)
		writeList(&b, "Recommendations", a.Feedback.Recommendations)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderAnalysis prints an analysis document as text.
func RenderAnalysis(w io.Writer, a analysis.Analysis) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis (%s)\n", lo.Ternary(a.Source == "", "unknown", string(a.Source)))
	criteria := []struct {
		name string
		c    analysis.Criterion
	}{
		{"Fluency", a.Scores.Fluency},
		{"Grammar", a.Scores.Grammar},
		{"Vocabulary", a.Scores.Vocabulary},
		{"Pronunciation", a.Scores.Pronunciation},
		{"Overall", a.Scores.Overall},
	}
	for _, item := range criteria {
		fmt.Fprintf(&b, "\n%s: %.2f\n  %s\n", item.name, item.c.Score, item.c.Explanation)
		for _, ex := range item.c.Examples {
			fmt.Fprintf(&b, "  > %s\n", ex)
		}
	}
	writeList(&b, "Strengths", a.Breakdown.Strengths)
	writeList(&b, "Weaknesses", a.Breakdown.Weaknesses)
	writeList(&b, "Recommendations", a.Breakdown.Recommendations)
	_, err := io.WriteString(w, b.String())
	return err
}

// FeedbackLines renders the feedback lists without a trailing blank line.
func FeedbackLines(fb model.Feedback) []string {
	var b strings.Builder
	writeList(&b, "Strengths", fb.Strengths)
	writeList(&b, "Weaknesses", fb.Weaknesses)
	writeList(&b, "Recommendations", fb.Recommendations)
	return strings.Split(strings.Trim(b.String(), "\n"), "\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s\n", title)
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
