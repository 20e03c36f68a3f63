// Package report renders assessments and batch summaries for the terminal.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// column describes one table column. Numeric columns are right aligned.
type column struct {
	title string
	right bool
}

func textCol(title string) column { return column{title: title} }

func numCol(title string) column { return column{title: title, right: true} }

// formatTable lays rows out under the column titles. Cell widths are measured
// in terminal cells so wide runes line up; trailing padding is trimmed.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = displayWidth(col.title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], displayWidth(row[i]))
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, formatRow(cols, widths, row))
	}
	return lines
}

func formatRow(cols []column, widths []int, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padCell(cell, widths[i], col.right)
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}

func padCell(value string, width int, right bool) string {
	gap := width - displayWidth(value)
	if gap <= 0 {
		return value
	}
	if right {
		return strings.Repeat(" ", gap) + value
	}
	return value + strings.Repeat(" ", gap)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
