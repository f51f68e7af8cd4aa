package generator

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateCount(t *testing.T) {
	g := NewSeeded(1)
	words := g.Generate([]string{"alpha", "beta", "gamma"}, Options{Words: 7})
	if len(words) != 7 {
		t.Fatalf("expected 7 words, got %d", len(words))
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" && w != "gamma" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	g := NewSeeded(1)
	if got := g.Generate(nil, Options{Words: 3}); got != nil {
		t.Fatalf("expected nil for empty word list, got %v", got)
	}
	if got := g.Text([]string{"a"}, Options{}); got != "" {
		t.Fatalf("expected empty text for zero words, got %q", got)
	}
}

func TestGenerateAlwaysDecorates(t *testing.T) {
	g := NewSeeded(42)
	words := g.Generate([]string{"word"}, Options{Words: 5, CapsPct: 1, PunctPct: 1, PunctSet: []rune{'!'}})
	for _, w := range words {
		if !unicode.IsUpper([]rune(w)[0]) {
			t.Fatalf("expected capitalized word, got %q", w)
		}
		if !strings.HasSuffix(w, "!") {
			t.Fatalf("expected punctuation suffix, got %q", w)
		}
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	opts := Options{Words: 10}
	first := NewSeeded(7).Text(words, opts)
	second := NewSeeded(7).Text(words, opts)
	if first != second {
		t.Fatalf("expected same text for same seed: %q vs %q", first, second)
	}
	if len(strings.Fields(first)) != 10 {
		t.Fatalf("expected 10 words in %q", first)
	}
}
