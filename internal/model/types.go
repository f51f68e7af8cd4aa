// Package model defines shared data structures.
package model

import "time"

// Text sources for practice sessions.
const (
	SourceBuiltin = "builtin"
	SourceWords   = "words"
	SourceLibrary = "library"
)

// Config defines practice settings.
type Config struct {
	Source       string
	Lang         string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	WordListPath string
	DBPath       string
	TickInterval time.Duration
}

// Text is a reference text stored in the text library.
type Text struct {
	ID      int64
	Body    string
	Source  string
	AddedAt time.Time
}
