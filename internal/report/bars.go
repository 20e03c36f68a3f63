package report

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speakscore/internal/feedback"
)

const (
	sparkChars      = " .:-=+*#%@"
	defaultBarWidth = 30
	maxScore        = 30.0
)

var bandColors = map[feedback.Band]lipgloss.Color{
	feedback.Excellent:        lipgloss.Color("10"),
	feedback.Good:             lipgloss.Color("14"),
	feedback.Adequate:         lipgloss.Color("11"),
	feedback.NeedsImprovement: lipgloss.Color("9"),
}

// Bar renders a score on the 0-30 scale as a fixed-width bar.
func Bar(score float64, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	filled := int(math.Round(score / maxScore * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

// colorBand paints s in the color of the band the score falls into.
func colorBand(s string, score float64, useColor bool) string {
	if !useColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(bandColors[feedback.BandFor(score)]).Render(s)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(len(sparkChars)-1, idx))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
