// Package transcript parses and reads dialogue transcripts.
package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/speakscore/internal/model"
)

var (
	speakerTag = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]{0,31}):\s*(.*)$`)
	// user/bot tags may also appear mid-line when turns are run together.
	inlineTag = regexp.MustCompile(`\b(user|bot):`)
)

// Parse splits "speaker: utterance" lines into a transcript. Lines without a
// tag continue the previous utterance; a leading untagged line becomes an
// utterance with no speaker. Blank lines are skipped.
func Parse(text string) model.Transcript {
	var out model.Transcript
	for _, raw := range strings.Split(text, "\n") {
		for _, segment := range splitInline(strings.TrimSpace(raw)) {
			out.Utterances = appendSegment(out.Utterances, segment)
		}
	}
	return out
}

func splitInline(line string) []string {
	if line == "" {
		return nil
	}
	idx := inlineTag.FindAllStringIndex(line, -1)
	if len(idx) == 0 {
		return []string{line}
	}
	var segments []string
	prev := 0
	for _, loc := range idx {
		if loc[0] > prev {
			segments = append(segments, line[prev:loc[0]])
		}
		prev = loc[0]
	}
	segments = append(segments, line[prev:])
	return lo.Filter(lo.Map(segments, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	})
}

func appendSegment(utterances []model.Utterance, segment string) []model.Utterance {
	if m := speakerTag.FindStringSubmatch(segment); m != nil {
		return append(utterances, model.Utterance{
			Speaker: model.Speaker(strings.ToLower(m[1])),
			Text:    strings.TrimSpace(m[2]),
		})
	}
	if n := len(utterances); n > 0 {
		prev := &utterances[n-1]
		if prev.Text == "" {
			prev.Text = segment
		} else {
			prev.Text += " " + segment
		}
		return utterances
	}
	return append(utterances, model.Utterance{Text: segment})
}

// UserText joins the text of all user utterances.
func UserText(t model.Transcript) string {
	texts := lo.FilterMap(t.Utterances, func(u model.Utterance, _ int) (string, bool) {
		return u.Text, u.Speaker == model.SpeakerUser
	})
	return strings.Join(texts, "\n")
}

// WordCount returns the whitespace token count of the text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Read loads a transcript blob from a reader.
func Read(r io.Reader) (string, error) {
	var b strings.Builder
	reader := bufio.NewReader(r)
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return b.String(), nil
}

// ReadFile loads a transcript blob from a path. "-" reads stdin.
func ReadFile(path string) (string, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only transcript.
			_ = cerr
		}
	}()
	return Read(file)
}
