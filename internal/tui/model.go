package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speakscore/internal/batch"
	"github.com/verte-zerg/speakscore/internal/interview"
	"github.com/verte-zerg/speakscore/internal/model"
	"github.com/verte-zerg/speakscore/internal/scoring"
	"github.com/verte-zerg/speakscore/internal/transcript"
)

// Model implements the Bubble Tea practice interview.
type Model struct {
	session *interview.Session
	engine  *scoring.Engine

	width  int
	height int

	prompt string
	input  []rune
	words  int

	result   *model.Assessment
	quitting bool
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel starts the session and returns a practice UI for it.
func NewModel(session *interview.Session, engine *scoring.Engine) *Model {
	return &Model{
		session: session,
		engine:  engine,
		prompt:  session.Start(),
	}
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
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyBackspace, tea.KeyDelete:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case tea.KeySpace:
			m.input = append(m.input, ' ')
			return m, nil
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) submit() tea.Cmd {
	answer := strings.TrimSpace(string(m.input))
	if answer == "" {
		return nil
	}
	prompt, err := m.session.Answer(answer)
	if err != nil {
		slog.Warn("failed to record answer", "error", err)
		return nil
	}
	m.input = nil
	m.words += transcript.WordCount(answer)
	m.prompt = prompt
	if !m.session.Done() {
		return nil
	}
	a, _ := batch.Assess(m.engine, "practice "+m.session.ID.String(), m.session.Transcript().Flatten(), m.session.Mode, true)
	m.result = &a
	slog.Debug("practice finished", "session", m.session.ID, "elapsed", m.session.Elapsed())
	return tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	prompt := styleRunes(m.prompt, promptStyle)
	input := buildInputRunes(m.input)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(prompt) + "\n\n" + renderStyledRunes(input)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(prompt, contentWidth) + "\n\n" + wrapStyledRunes(input, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	total := interview.Steps(m.session.Mode)
	answers := m.session.Answers()
	progress := 0
	if total > 0 {
		progress = answers * 100 / total
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Answers %d/%d", answers, total),
		fmt.Sprintf("Words %d", m.words),
		"Enter submit · Esc quit",
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// Result returns the assessment once the interview completed, or nil.
func (m *Model) Result() *model.Assessment {
	return m.result
}

// Transcript returns the dialogue recorded so far.
func (m *Model) Transcript() model.Transcript {
	return m.session.Transcript()
}
