package typing

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Metrics are recomputed from the session on every call; nothing is
// accumulated between calls. Percentages and rates use math.Round, so
// exact halves round up for the non-negative values involved.

// ElapsedSeconds returns the seconds since the session started, or 0.
func ElapsedSeconds(s Session, now time.Time) float64 {
	if !s.Started {
		return 0
	}
	elapsed := now.Sub(s.StartedAt).Seconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// WordsPerMinute returns the live WPM estimate at now.
func WordsPerMinute(s Session, now time.Time) int {
	minutes := ElapsedSeconds(s, now) / 60
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(CountWords(s.Input)) / minutes))
}

// CharactersPerMinute returns typed characters per minute at now.
func CharactersPerMinute(s Session, now time.Time) int {
	minutes := ElapsedSeconds(s, now) / 60
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(s.InputLen()) / minutes))
}

// AccuracyPercent compares input against the same-length prefix of
// reference. Untyped reference characters do not count.
func AccuracyPercent(reference, input string) int {
	n := utf8.RuneCountInString(input)
	if n == 0 {
		return 100
	}
	return int(math.Round(100 * float64(CorrectCount(reference, input)) / float64(n)))
}

// CorrectCount counts positions where input matches reference.
func CorrectCount(reference, input string) int {
	ref := []rune(reference)
	count := 0
	for i, r := range []rune(input) {
		if i < len(ref) && ref[i] == r {
			count++
		}
	}
	return count
}

// CountWords counts whitespace-separated words.
func CountWords(input string) int {
	return len(strings.Fields(strings.TrimSpace(input)))
}
