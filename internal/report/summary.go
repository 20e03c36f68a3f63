package report

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/verte-zerg/speakscore/internal/batch"
	"github.com/verte-zerg/speakscore/internal/model"
)

// Summary aggregates a batch run.
type Summary struct {
	Files    int                   `json:"files" yaml:"files"`
	Scored   int                   `json:"scored" yaml:"scored"`
	Failed   int                   `json:"failed" yaml:"failed"`
	Averages model.ComponentScores `json:"averages" yaml:"averages"`
	Best     string                `json:"best,omitempty" yaml:"best,omitempty"`
	Worst    string                `json:"worst,omitempty" yaml:"worst,omitempty"`
	Results  []model.Assessment    `json:"results" yaml:"results"`
	Errors   map[string]string     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Summarize computes averages and extremes over the scored results.
func Summarize(results []batch.Result) Summary {
	ok := batch.Succeeded(results)
	s := Summary{
		Files:   len(results),
		Scored:  len(ok),
		Failed:  len(results) - len(ok),
		Results: lo.Map(ok, func(r batch.Result, _ int) model.Assessment { return r.Assessment }),
	}
	for _, r := range results {
		if r.Err != nil {
			if s.Errors == nil {
				s.Errors = map[string]string{}
			}
			s.Errors[r.Path] = r.Err.Error()
		}
	}
	if len(ok) == 0 {
		return s
	}
	count := float64(len(ok))
	for _, c := range model.Components {
		total := lo.SumBy(ok, func(r batch.Result) float64 { return r.Assessment.Scores.Get(c) })
		s.Averages.Set(c, round2(total/count))
	}
	s.Averages.Overall = round2(lo.SumBy(ok, func(r batch.Result) float64 { return r.Assessment.Scores.Overall }) / count)
	s.Best = lo.MaxBy(ok, func(a, b batch.Result) bool { return a.Assessment.Scores.Overall > b.Assessment.Scores.Overall }).Path
	s.Worst = lo.MinBy(ok, func(a, b batch.Result) bool { return a.Assessment.Scores.Overall < b.Assessment.Scores.Overall }).Path
	return s
}

// RenderSummary prints a per-file table followed by aggregate lines.
func RenderSummary(w io.Writer, results []batch.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No transcripts found.")
		return err
	}
	cols := []column{textCol("File"), numCol("Overall")}
	for _, c := range model.Components {
		cols = append(cols, numCol(abbrev(c)))
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			rows = append(rows, []string{name, "error"})
			continue
		}
		row := []string{name, fmt.Sprintf("%.2f", r.Assessment.Scores.Overall)}
		for _, c := range model.Components {
			row = append(row, fmt.Sprintf("%.2f", r.Assessment.Scores.Get(c)))
		}
		rows = append(rows, row)
	}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	s := Summarize(results)
	overall := lo.Map(batch.Succeeded(results), func(r batch.Result, _ int) float64 { return r.Assessment.Scores.Overall })
	lines := []string{
		"",
		"Summary",
		fmt.Sprintf("Transcripts: %d (%d failed)", s.Files, s.Failed),
	}
	if s.Scored > 0 {
		lines = append(lines,
			fmt.Sprintf("Avg Overall: %.2f", s.Averages.Overall),
			fmt.Sprintf("Best: %s", filepath.Base(s.Best)),
			fmt.Sprintf("Worst: %s", filepath.Base(s.Worst)),
			fmt.Sprintf("Trend: [%s]", Sparkline(overall)),
		)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "Error: %s: %v\n", r.Path, r.Err); err != nil {
				return err
			}
		}
	}
	return nil
}

func abbrev(c model.Component) string {
	return c.Title()[:4]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
