// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Selvan2806/typing-speed-tester/internal/stats"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

// DefaultTickInterval is how often live metrics refresh while typing.
const DefaultTickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. The controller is the single
// source of truth; the text input only collects the raw candidate.
type Model struct {
	ctrl         *typing.Controller
	input        textinput.Model
	results      table.Model
	help         help.Model
	keys         keyMap
	now          func() time.Time
	tickInterval time.Duration

	width  int
	height int

	trace  []float64
	errMsg string
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel starts a session on ctrl and returns the UI for it.
func NewModel(ctrl *typing.Controller, tickInterval time.Duration) (*Model, error) {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	input := textinput.New()
	input.CharLimit = 0
	input.Prompt = ""
	input.Focus()

	m := &Model{
		ctrl:         ctrl,
		input:        input,
		help:         help.New(),
		keys:         defaultKeyMap(),
		now:          time.Now,
		tickInterval: tickInterval,
	}
	if _, err := ctrl.Start(); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.ctrl.Phase() == typing.PhaseRunning {
			snap := m.ctrl.Tick(time.Time(msg))
			m.trace = append(m.trace, float64(snap.WPM))
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.restart()
			return m, nil
		}
		if m.ctrl.Phase() == typing.PhaseFinished {
			if key.Matches(msg, m.keys.Next) {
				m.restart()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.submit(m.input.Value())
		return m, cmd
	default:
		// Clipboard pastes and cursor blinks come back as messages for the input.
		if m.ctrl.Phase() == typing.PhaseFinished {
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.submit(value)
		}
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Session()
	if snap.ReferenceText == "" {
		return errorStyle.Render(m.errMsg)
	}
	contentWidth := m.width * 70 / 100
	styled := buildStyledRunes([]rune(snap.ReferenceText), typing.ClassifyAll(snap.ReferenceText, snap.Input))
	text := wrapStyledRunes(styled, contentWidth)

	sections := []string{text}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	if snap.Finished {
		sections = append(sections, m.renderResults(snap))
	}
	content := strings.Join(sections, "\n\n")
	footer := m.renderFooter(snap)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	content = lipgloss.NewStyle().Width(max(contentWidth, 1)).Render(content)
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// Session returns the current session snapshot.
func (m *Model) Session() typing.Session {
	return m.ctrl.Session()
}

// Trace returns the WPM samples collected by ticks during the session.
func (m *Model) Trace() []float64 {
	return append([]float64(nil), m.trace...)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) submit(value string) {
	snap := m.ctrl.SubmitInput(value, m.now())
	if snap.Input != value {
		m.input.SetValue(snap.Input)
	}
	if snap.Finished {
		m.input.Blur()
		m.results = buildResultsTable(stats.NewSummary(snap))
	}
}

func (m *Model) restart() {
	if _, err := m.ctrl.Start(); err != nil {
		m.errMsg = fmt.Sprintf("Failed to load a new text: %v", err)
		logErrf("failed to restart session: %v\n", err)
		return
	}
	m.errMsg = ""
	m.trace = nil
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) renderFooter(snap typing.Session) string {
	progress := int(snap.Progress() * 100)
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("%d WPM · %d%%", snap.WPM, snap.AccuracyPercent),
		stats.FormatSeconds(snap.ElapsedSeconds),
		m.help.View(m.keys),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) renderResults(snap typing.Session) string {
	parts := []string{titleStyle.Render("Finished"), m.results.View()}
	if len(m.trace) > 0 {
		width := stats.SparklineWidthFor(m.width * 70 / 100)
		spark := stats.Sparkline(stats.Resample(stats.MovingAverage(m.trace, 3), width))
		parts = append(parts, footerStyle.Render("WPM trace ")+spark)
	}
	parts = append(parts, footerStyle.Render("enter: next text"))
	return strings.Join(parts, "\n")
}

func buildResultsTable(sum stats.Summary) table.Model {
	rows := make([]table.Row, 0, len(sum.Rows()))
	for _, r := range sum.Rows() {
		rows = append(rows, table.Row(r))
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: 12},
			{Title: "Value", Width: 30},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(resultsTableStyles())
	t.Blur()
	return t
}

func resultsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell
	return styles
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
