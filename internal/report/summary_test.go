package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/speakscore/internal/batch"
	"github.com/verte-zerg/speakscore/internal/model"
)

func result(path string, overall, fluency float64) batch.Result {
	return batch.Result{
		Path: path,
		Assessment: model.Assessment{
			Source: path,
			Scores: model.ComponentScores{Fluency: fluency, Overall: overall},
		},
	}
}

func TestSummarize(t *testing.T) {
	results := []batch.Result{
		result("/tmp/a.txt", 20, 10),
		{Path: "/tmp/broken.txt", Err: errors.New("permission denied")},
		result("/tmp/b.txt", 25, 21),
		result("/tmp/c.txt", 15, 20),
	}
	s := Summarize(results)
	if s.Files != 4 || s.Scored != 3 || s.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Averages.Overall != 20 || s.Averages.Fluency != 17 {
		t.Fatalf("unexpected averages: %+v", s.Averages)
	}
	if s.Best != "/tmp/b.txt" || s.Worst != "/tmp/c.txt" {
		t.Fatalf("unexpected extremes: %s %s", s.Best, s.Worst)
	}
	if s.Errors["/tmp/broken.txt"] != "permission denied" {
		t.Fatalf("unexpected errors: %v", s.Errors)
	}
	if len(s.Results) != 3 || s.Results[1].Source != "/tmp/b.txt" {
		t.Fatalf("results should keep input order: %+v", s.Results)
	}
}

func TestRenderSummary(t *testing.T) {
	results := []batch.Result{
		result("/tmp/a.txt", 20, 10),
		{Path: "/tmp/broken.txt", Err: errors.New("permission denied")},
		result("/tmp/b.txt", 25, 21),
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, results); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "File        Overall   Flue") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	for _, want := range []string{
		"broken.txt    error",
		"Transcripts: 3 (1 failed)",
		"Avg Overall: 22.50",
		"Best: b.txt",
		"Trend: [ @]",
		"Error: /tmp/broken.txt: permission denied",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No transcripts found.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
