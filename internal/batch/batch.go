package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/scoring"
	"github.com/verte-zerg/speakscore/internal/transcript"
)

// Options controls a batch run.
type Options struct {
	Mode     model.Mode
	Jobs     int
	Feedback bool
}

// Result is the outcome for one input file. Err is set when the file could not
// be read; the assessment is then zero.
type Result struct {
	Path       string
	Assessment model.Assessment
	Err        error
}

// Run scores every path concurrently and returns results in input order.
// Unreadable files are reported per result; only cancellation aborts the run.
func Run(ctx context.Context, engine *scoring.Engine, paths []string, opts Options) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = scoreFile(engine, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

func scoreFile(engine *scoring.Engine, path string, opts Options) Result {
	text, err := transcript.ReadFile(path)
	if err != nil {
		slog.Warn("skipping transcript", "path", path, "error", err)
		return Result{Path: path, Err: err}
	}
	a, _ := Assess(engine, path, text, opts.Mode, opts.Feedback)
	return Result{Path: path, Assessment: a}
}

// Succeeded returns the results that were scored.
func Succeeded(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}
