package typing

import (
	"fmt"
	"time"
)

// Controller owns one session and applies input and timer events to it.
// It is not safe for concurrent use; each practice session needs its own.
type Controller struct {
	provider TextProvider
	session  Session
	ready    bool
}

// NewController returns a controller that draws texts from provider.
func NewController(provider TextProvider) *Controller {
	return &Controller{provider: provider}
}

// Start discards the current session and begins a new one with a fresh
// text. On error the current session is left untouched.
func (c *Controller) Start() (Session, error) {
	return c.StartWith(c.provider)
}

// StartWith is Start with an explicit provider, which becomes the
// controller's provider for later restarts.
func (c *Controller) StartWith(provider TextProvider) (Session, error) {
	if provider == nil {
		return c.session, fmt.Errorf("failed to start session: no text provider")
	}
	text, err := provider.NextText()
	if err != nil {
		return c.session, fmt.Errorf("failed to get reference text: %w", err)
	}
	if text == "" {
		return c.session, ErrEmptyReferenceText
	}
	c.provider = provider
	c.session.Reset(text)
	c.ready = true
	return c.session, nil
}

// SubmitInput applies the raw input value at now. Input longer than the
// reference is clipped; input to a finished or unstarted controller is
// ignored.
func (c *Controller) SubmitInput(raw string, now time.Time) Session {
	if !c.ready || c.session.Finished {
		return c.session
	}
	candidate := clip(raw, c.session.Len())
	if err := c.session.ApplyInput(candidate, now); err != nil {
		return c.session
	}
	c.session.AccuracyPercent = AccuracyPercent(c.session.ReferenceText, c.session.Input)
	if c.session.Started {
		c.refreshTiming(now)
	}
	return c.session
}

// Tick refreshes elapsed time and WPM while the session is running.
func (c *Controller) Tick(now time.Time) Session {
	if c.session.Phase() == PhaseRunning {
		c.refreshTiming(now)
	}
	return c.session
}

// CharState classifies the reference character at index.
func (c *Controller) CharState(index int) (CharState, error) {
	return c.session.CharState(index)
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase()
}

func (c *Controller) refreshTiming(now time.Time) {
	c.session.ElapsedSeconds = ElapsedSeconds(c.session, now)
	c.session.WPM = WordsPerMinute(c.session, now)
}

func clip(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
