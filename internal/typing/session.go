// Package typing implements the typing test session, character
// classification and live metrics.
package typing

import (
	"time"
	"unicode/utf8"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session holds the state of a single typing test.
// Lengths are counted in runes.
type Session struct {
	ReferenceText   string
	Input           string
	Started         bool
	Finished        bool
	StartedAt       time.Time
	ElapsedSeconds  float64
	WPM             int
	AccuracyPercent int
}

// NewSession returns a session reset to the given reference text.
func NewSession(text string) Session {
	var s Session
	s.Reset(text)
	return s
}

// Reset discards all progress and installs a new reference text.
func (s *Session) Reset(text string) {
	*s = Session{
		ReferenceText:   text,
		AccuracyPercent: 100,
	}
}

// ApplyInput replaces the input with candidate. The first non-empty
// candidate starts the clock at now; a candidate as long as the
// reference finishes the session.
func (s *Session) ApplyInput(candidate string, now time.Time) error {
	if s.Finished {
		return ErrSessionFinished
	}
	refLen := utf8.RuneCountInString(s.ReferenceText)
	candLen := utf8.RuneCountInString(candidate)
	if candLen > refLen {
		return ErrInputTooLong
	}
	if !s.Started && candLen > 0 {
		s.Started = true
		s.StartedAt = now
	}
	s.Input = candidate
	if candLen == refLen {
		s.Finished = true
	}
	return nil
}

// Phase reports where the session is in its lifecycle.
func (s Session) Phase() Phase {
	switch {
	case s.Finished:
		return PhaseFinished
	case s.Started:
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}

// Len returns the reference length in runes.
func (s Session) Len() int {
	return utf8.RuneCountInString(s.ReferenceText)
}

// InputLen returns the input length in runes.
func (s Session) InputLen() int {
	return utf8.RuneCountInString(s.Input)
}

// Progress returns the typed fraction of the reference in [0,1].
func (s Session) Progress() float64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	return float64(s.InputLen()) / float64(n)
}

// CharState classifies the reference character at index.
func (s Session) CharState(index int) (CharState, error) {
	return Classify(s.ReferenceText, s.Input, index)
}
