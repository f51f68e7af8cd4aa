package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selvan2806/typing-speed-tester/internal/textsource"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newTestModel(t *testing.T, texts ...string) (*Model, *stepClock) {
	t.Helper()
	ctrl := typing.NewController(textsource.NewSequence(texts...))
	m, err := NewModel(ctrl, 0)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	clock := &stepClock{now: time.Unix(1000, 0), step: time.Second}
	m.now = clock.Now
	return m, clock
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypingFinishesSession(t *testing.T) {
	m, _ := newTestModel(t, "cat")
	typeRunes(m, "cat")
	s := m.Session()
	if !s.Finished {
		t.Fatalf("expected finished session, got %+v", s)
	}
	if s.AccuracyPercent != 100 || s.WPM != 30 || s.ElapsedSeconds != 2 {
		t.Fatalf("unexpected metrics: %+v", s)
	}
	if !strings.Contains(m.View(), "Finished") {
		t.Fatalf("expected results in view")
	}
}

func TestPasteIsClipped(t *testing.T) {
	m, _ := newTestModel(t, "cat")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("catalog"), Paste: true})
	s := m.Session()
	if s.Input != "cat" || !s.Finished {
		t.Fatalf("expected clipped finished input, got %+v", s)
	}
	if m.input.Value() != "cat" {
		t.Fatalf("expected text input to mirror clipped value, got %q", m.input.Value())
	}
}

func TestFinishedIgnoresTyping(t *testing.T) {
	m, _ := newTestModel(t, "ab", "next")
	typeRunes(m, "ab")
	done := m.Session()
	typeRunes(m, "x")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Session() != done {
		t.Fatalf("finished session changed: %+v", m.Session())
	}
}

func TestEnterAfterFinishLoadsNextText(t *testing.T) {
	m, _ := newTestModel(t, "ab", "next")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().ReferenceText != "ab" {
		t.Fatalf("enter must not restart a running session")
	}
	typeRunes(m, "ab")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.Session()
	if s.ReferenceText != "next" || s.Started || s.Input != "" {
		t.Fatalf("expected fresh session, got %+v", s)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected cleared input, got %q", m.input.Value())
	}
}

func TestRestartMidSession(t *testing.T) {
	m, _ := newTestModel(t, "first text", "second text")
	typeRunes(m, "fir")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	s := m.Session()
	if s.Started || s.Input != "" || s.ReferenceText != "second text" {
		t.Fatalf("expected reset session, got %+v", s)
	}
}

func TestRestartFailureKeepsSession(t *testing.T) {
	calls := 0
	ctrl := typing.NewController(typing.TextProviderFunc(func() (string, error) {
		calls++
		if calls > 1 {
			return "", errors.New("library offline")
		}
		return "abc", nil
	}))
	m, err := NewModel(ctrl, time.Second)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	typeRunes(m, "a")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Session().Input != "a" {
		t.Fatalf("failed restart must keep the session, got %+v", m.Session())
	}
	if !strings.Contains(m.errMsg, "library offline") {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
}

func TestNewModelEmptyText(t *testing.T) {
	ctrl := typing.NewController(textsource.NewSequence(""))
	if _, err := NewModel(ctrl, 0); !errors.Is(err, typing.ErrEmptyReferenceText) {
		t.Fatalf("expected ErrEmptyReferenceText, got %v", err)
	}
}

func TestBackspaceEditsInput(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	typeRunes(m, "ax")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	s := m.Session()
	if s.Input != "a" || s.AccuracyPercent != 100 {
		t.Fatalf("expected corrected input, got %+v", s)
	}
}

func TestTickUpdatesLiveMetrics(t *testing.T) {
	m, _ := newTestModel(t, "one two three")
	_, cmd := m.Update(tickMsg(time.Unix(2000, 0)))
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
	if len(m.Trace()) != 0 {
		t.Fatalf("ticks before the first key must not sample")
	}
	typeRunes(m, "one t")
	start := m.Session().StartedAt
	m.Update(tickMsg(start.Add(15 * time.Second)))
	s := m.Session()
	if s.ElapsedSeconds != 15 || s.WPM != 8 {
		t.Fatalf("unexpected live metrics: %+v", s)
	}
	if trace := m.Trace(); len(trace) != 1 || trace[0] != 8 {
		t.Fatalf("unexpected trace: %v", trace)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m, _ := newTestModel(t, "abcd")
	typeRunes(m, "ab")
	out := m.renderFooter(m.Session())
	for _, want := range []string{"Progress 50%", "60 WPM", "100%", "1.0s", "restart"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}
