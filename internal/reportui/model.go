// Package reportui provides the Bubble Tea assessment viewer.
package reportui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speakscore/internal/feedback"
	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/report"
)

const (
	tabScores = iota
	tabFeedback
	tabTranscript
)

const (
	barWidth     = 30
	weakestCount = 3
	defaultWidth = 80
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	botStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea assessment viewer.
type Model struct {
	assessment model.Assessment
	transcript model.Transcript

	tabs      []string
	activeTab int
	viewports []viewport.Model

	width  int
	height int
}

// NewModel constructs a viewer for an assessment and the transcript it scored.
func NewModel(a model.Assessment, tr model.Transcript) *Model {
	if a.Feedback == nil {
		fb := feedback.Generate(a.Scores)
		a.Feedback = &fb
	}
	m := &Model{
		assessment: a,
		transcript: tr,
		tabs:       []string{"Scores", "Feedback", "Transcript"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			m.viewports[m.activeTab].GotoTop()
			return m, nil
		case "G", "end":
			m.viewports[m.activeTab].GotoBottom()
			return m, nil
		default:
			vp, cmd := m.viewports[m.activeTab].Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.viewports[m.activeTab].View(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(1, lipgloss.Height(activeNavStyle.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	m.activeTab = (m.activeTab + delta + count) % count
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	a := m.assessment
	summary := fmt.Sprintf("Mode: %s  Duration: %s", a.Mode, a.Duration)
	if a.Source != "" {
		summary = fmt.Sprintf("%s  Source: %s", summary, a.Source)
	}
	summary = truncateLine(summary, m.width)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q")
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	m.viewports[tabScores].SetContent(renderScores(m.assessment, width))
	m.viewports[tabFeedback].SetContent(strings.Join(report.FeedbackLines(*m.assessment.Feedback), "\n"))
	m.viewports[tabTranscript].SetContent(renderTranscript(m.transcript, width))
}

func renderScores(a model.Assessment, width int) string {
	weak := report.WeakestComponents(a.Scores, weakestCount)
	weakNames := make([]string, len(weak))
	for i, c := range weak {
		weakNames[i] = c.Title()
	}
	cards := []string{
		metricCard("Overall", fmt.Sprintf("%.2f / 30", a.Scores.Overall)),
		metricCard("Band", feedback.BandFor(a.Scores.Overall).String()),
		metricCard("Focus on", strings.Join(weakNames, ", ")),
	}
	var top string
	if width < defaultWidth {
		top = strings.Join(cards, "\n")
	} else {
		top = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	lines := report.ScoreLines(a.Scores, report.Options{BarWidth: barWidth, Color: true})
	return strings.TrimRight(top+"\n\n"+strings.Join(lines, "\n")+"\n* estimated without audio", "\n")
}

func renderTranscript(tr model.Transcript, width int) string {
	if len(tr.Utterances) == 0 {
		return "No transcript."
	}
	wrap := lipgloss.NewStyle().Width(max(10, width-2))
	blocks := make([]string, 0, len(tr.Utterances))
	for _, u := range tr.Utterances {
		style := userStyle
		if u.Speaker == model.SpeakerBot {
			style = botStyle
		}
		label := string(u.Speaker)
		if label == "" {
			label = "-"
		}
		blocks = append(blocks, wrap.Render(style.Render(label+": "+u.Text)))
	}
	return strings.Join(blocks, "\n\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
