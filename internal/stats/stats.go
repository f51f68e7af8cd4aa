// Package stats summarizes and renders typing test results.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

// Summary is the printable result of a typing session.
type Summary struct {
	Finished        bool
	WPM             int
	CPM             int
	AccuracyPercent int
	ElapsedSeconds  float64
	Chars           int
	Correct         int
	Incorrect       int
	Words           int
}

// NewSummary derives a summary from a session snapshot. Rates use the
// elapsed time stored on the snapshot.
func NewSummary(s typing.Session) Summary {
	chars := s.InputLen()
	correct := typing.CorrectCount(s.ReferenceText, s.Input)
	cpm := 0
	if minutes := s.ElapsedSeconds / 60; minutes > 0 {
		cpm = int(math.Round(float64(chars) / minutes))
	}
	return Summary{
		Finished:        s.Finished,
		WPM:             s.WPM,
		CPM:             cpm,
		AccuracyPercent: s.AccuracyPercent,
		ElapsedSeconds:  s.ElapsedSeconds,
		Chars:           chars,
		Correct:         correct,
		Incorrect:       chars - correct,
		Words:           typing.CountWords(s.Input),
	}
}

// Rows returns the summary as label/value pairs in display order.
func (s Summary) Rows() [][]string {
	return [][]string{
		{"WPM", fmt.Sprintf("%d", s.WPM)},
		{"CPM", fmt.Sprintf("%d", s.CPM)},
		{"Accuracy", fmt.Sprintf("%d%%", s.AccuracyPercent)},
		{"Time", FormatSeconds(s.ElapsedSeconds)},
		{"Characters", fmt.Sprintf("%d (%d correct, %d incorrect)", s.Chars, s.Correct, s.Incorrect)},
		{"Words", fmt.Sprintf("%d", s.Words)},
	}
}

// FormatSeconds renders seconds with one decimal place.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// RenderResult prints the summary table followed by a WPM trace
// sparkline when samples are available.
func RenderResult(w io.Writer, sum Summary, trace []float64, width int) error {
	title := "Result"
	if !sum.Finished {
		title = "Result (unfinished)"
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	lines := formatTable([]string{"Metric", "Value"}, sum.Rows(), map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(trace) == 0 {
		return nil
	}
	spark := Sparkline(Resample(MovingAverage(trace, 3), SparklineWidthFor(width)))
	if _, err := fmt.Fprintf(w, "\nWPM trace\n%s\n", spark); err != nil {
		return err
	}
	return nil
}
