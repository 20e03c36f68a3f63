// Package main provides the CLI entrypoint for speakscore.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speakscore/internal/analysis"
	"github.com/verte-zerg/speakscore/internal/batch"
	"github.com/verte-zerg/speakscore/internal/config"
	"github.com/verte-zerg/speakscore/internal/interview"
	"github.com/verte-zerg/speakscore/internal/lexicon"
	"github.com/verte-zerg/speakscore/internal/logging"
	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/report"
	"github.com/verte-zerg/speakscore/internal/reportui"
	"github.com/verte-zerg/speakscore/internal/scoring"
	"github.com/verte-zerg/speakscore/internal/transcript"
	"github.com/verte-zerg/speakscore/internal/tui"
)

const defaultWeakest = 3

var (
	configPath string
	logLevel   string
	noColor    bool

	scoreMode       string
	scoreDuration   time.Duration
	scoreFormat     string
	scoreNoFeedback bool
	scoreWeakest    int

	batchJobs int

	analyzeExternal string
	analyzeFallback bool

	settings model.Settings
	engine   *scoring.Engine
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "speakscore",
		Short:             "Heuristic speaking-test scores for conversation transcripts",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&scoreMode, "mode", string(config.DefaultMode), "assessment mode (conversational, single)")
	rootCmd.PersistentFlags().DurationVar(&scoreDuration, "duration", config.DefaultDuration, "assumed speaking time for rate estimates")

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup resolves settings (defaults < config file < environment < flags),
// installs the logger and builds the scoring engine.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "config" {
		return nil
	}
	// Provisional logger so warnings raised while resolving settings show up.
	logging.Setup(logLevel, !noColor)
	resolved, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlag(cmd, "mode", func() { resolved.Mode = config.ParseMode(scoreMode, "--mode") })
	applyFlag(cmd, "duration", func() { resolved.Duration = scoreDuration })
	applyFlag(cmd, "format", func() { resolved.Format = strings.ToLower(strings.TrimSpace(scoreFormat)) })
	applyFlag(cmd, "log-level", func() { resolved.LogLevel = logLevel })
	applyFlag(cmd, "no-color", func() { resolved.Color = !noColor })
	if err := config.Validate(resolved); err != nil {
		return err
	}
	settings = resolved

	logging.Setup(settings.LogLevel, settings.Color)

	lex, err := lexicon.New(lexicon.Options{
		FillersFile:     settings.FillersFile,
		TransitionsFile: settings.TransitionsFile,
		ReferencesFile:  settings.ReferencesFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	engine = scoring.New(lex, scoring.WithDuration(settings.Duration))
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score a transcript (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScoreCmd,
	}
	addFormatFlag(cmd)
	cmd.Flags().BoolVar(&scoreNoFeedback, "no-feedback", false, "omit strengths, weaknesses and recommendations")
	cmd.Flags().IntVar(&scoreWeakest, "weakest", defaultWeakest, "number of weakest components to list (0 to hide)")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	if scoreWeakest < 0 {
		return fmt.Errorf("--weakest must be >= 0")
	}
	source, text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	a, _ := batch.Assess(engine, source, text, settings.Mode, !scoreNoFeedback)

	out := cmd.OutOrStdout()
	if settings.Format != "text" {
		return report.Encode(out, a, settings.Format)
	}
	return report.RenderAssessment(out, a, report.Options{
		Weakest: scoreWeakest,
		Color:   useColor(out),
	})
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <files...>",
		Short: "Score many transcripts concurrently and summarize",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBatchCmd,
	}
	addFormatFlag(cmd)
	cmd.Flags().IntVar(&batchJobs, "jobs", 0, "concurrent workers (default: number of CPUs)")
	return cmd
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	if batchJobs < 0 {
		return fmt.Errorf("--jobs must be >= 0")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, engine, args, batch.Options{
		Mode:     settings.Mode,
		Jobs:     batchJobs,
		Feedback: settings.Format != "text",
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if settings.Format != "text" {
		err = report.Encode(out, report.Summarize(results), settings.Format)
	} else {
		err = report.RenderSummary(out, results)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(batch.Succeeded(results)) == 0 {
		return fmt.Errorf("no transcripts could be scored")
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the detailed analysis document for a transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeCmd,
	}
	addFormatFlag(cmd)
	cmd.Flags().StringVar(&analyzeExternal, "external", "", "use an externally produced analysis document")
	cmd.Flags().BoolVar(&analyzeFallback, "fallback", false, "print the fallback analysis")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	var doc analysis.Analysis
	switch {
	case analyzeFallback:
		doc = analysis.Fallback()
	case analyzeExternal != "":
		raw, err := os.ReadFile(analyzeExternal)
		doc = analysis.Resolve(raw, err, analysis.Fallback())
	default:
		source, text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		a, tr := batch.Assess(engine, source, text, settings.Mode, true)
		doc = analysis.FromAssessment(a, tr)
	}

	out := cmd.OutOrStdout()
	if settings.Format != "text" {
		return report.Encode(out, doc, settings.Format)
	}
	return report.RenderAnalysis(out, doc)
}

func newPracticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive practice interview and view the report",
		Args:  cobra.NoArgs,
		RunE:  runPracticeCmd,
	}
}

func runPracticeCmd(_ *cobra.Command, _ []string) error {
	session := interview.NewSession(settings.Mode)
	practice := tui.NewModel(session, engine)
	program := tea.NewProgram(practice, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run practice TUI: %w", err)
	}
	result := practice.Result()
	if result == nil {
		logErrln("practice ended before the interview was complete; nothing to score")
		return nil
	}
	return runReportUI(*result, practice.Transcript())
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Open the interactive report viewer for a transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runViewCmd,
	}
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	source, text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	a, tr := batch.Assess(engine, source, text, settings.Mode, true)
	return runReportUI(a, tr)
}

func runReportUI(a model.Assessment, tr model.Transcript) error {
	program := tea.NewProgram(reportui.NewModel(a, tr), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report TUI: %w", err)
	}
	return nil
}

func newLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lexicon [fillers|transitions|references]",
		Short:     "List the word lists used for scoring",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"fillers", "transitions", "references"},
		RunE:      runLexiconCmd,
	}
}

func runLexiconCmd(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.New(lexicon.Options{
		FillersFile:     settings.FillersFile,
		TransitionsFile: settings.TransitionsFile,
		ReferencesFile:  settings.ReferencesFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	lists := []struct {
		name    string
		matcher *lexicon.Matcher
	}{
		{"fillers", lex.Fillers},
		{"transitions", lex.Transitions},
		{"references", lex.References},
	}
	out := cmd.OutOrStdout()
	for _, list := range lists {
		if len(args) == 1 && args[0] != list.name {
			continue
		}
		if len(args) == 0 {
			if _, err := fmt.Fprintf(out, "[%s]\n", list.name); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		for _, phrase := range list.matcher.Phrases() {
			if _, err := fmt.Fprintln(out, phrase); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speakscore configuration
# Uncomment a value to enable it. SPEAKSCORE_* environment variables override
# config values and CLI flags override both.

[scoring]
# mode = %q    # conversational or single
# duration = %q          # Assumed speaking time for rate estimates

[lexicon]
# Extra entries appended to the built-in lists, one per line.
# fillers = "%s"
# transitions = "%s"
# references = "%s"

[output]
# format = %q              # text, json or yaml
# color = true

[log]
# level = %q               # debug, info, warn or error
`,
		config.DefaultMode,
		config.DefaultDuration.String(),
		filepath.Join(config.DefaultLexiconDir(), "fillers.txt"),
		filepath.Join(config.DefaultLexiconDir(), "transitions.txt"),
		filepath.Join(config.DefaultLexiconDir(), "references.txt"),
		config.DefaultFormat,
		config.DefaultLogLevel,
	)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scoreFormat, "format", config.DefaultFormat, "output format (text, json, yaml)")
}

// applyFlag runs set only when the flag was given explicitly.
func applyFlag(cmd *cobra.Command, name string, set func()) {
	if cmd.Flags().Changed(name) {
		set()
	}
}

// readInput returns the transcript source name and text from a file argument
// or stdin when the argument is missing or "-".
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		text, err := transcript.Read(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return "stdin", text, nil
	}
	text, err := transcript.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return args[0], text, nil
}

func useColor(w io.Writer) bool {
	if !settings.Color {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
