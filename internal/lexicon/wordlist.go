// Package lexicon loads word lists from files.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// LoadWords reads one entry per line from the provided file path.
// Blank lines and lines starting with '#' are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	words = normalizeEntries(words)
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// normalizeEntries lowercases, collapses inner whitespace, drops entries that
// are not plain English phrases, and removes duplicates keeping first order.
func normalizeEntries(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.Join(strings.Fields(strings.ToLower(e)), " ")
		if !isEnglishPhrase(e) {
			continue
		}
		out = append(out, e)
	}
	return lo.Uniq(out)
}

func isEnglishPhrase(entry string) bool {
	if entry == "" {
		return false
	}
	for i := 0; i < len(entry); i++ {
		ch := entry[i]
		if (ch < 'a' || ch > 'z') && ch != ' ' && ch != '\'' {
			return false
		}
	}
	return true
}
