package textsource

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Selvan2806/typing-speed-tester/internal/generator"
	"github.com/Selvan2806/typing-speed-tester/internal/store"
)

func TestCorpusDrawsFromTexts(t *testing.T) {
	texts := []string{"alpha", "beta", "gamma"}
	c := NewCorpusSeeded(texts, 3)
	for i := 0; i < 20; i++ {
		text, err := c.NextText()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		found := false
		for _, want := range texts {
			if text == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("unexpected text %q", text)
		}
	}
}

func TestCorpusEmpty(t *testing.T) {
	if _, err := NewCorpus(nil).NextText(); err == nil {
		t.Fatalf("expected error for empty corpus")
	}
}

func TestBuiltinTextsAreNonEmpty(t *testing.T) {
	for i, text := range Builtin {
		if strings.TrimSpace(text) == "" {
			t.Fatalf("builtin text %d is empty", i)
		}
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence("one", "two")
	var got []string
	for i := 0; i < 3; i++ {
		text, err := s.NextText()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, text)
	}
	if strings.Join(got, ",") != "one,two,one" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestWordsGeneratesRequestedCount(t *testing.T) {
	w := NewWords(generator.NewSeeded(9), []string{"red", "green", "blue"}, generator.Options{Words: 6})
	text, err := w.NextText()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if n := len(strings.Fields(text)); n != 6 {
		t.Fatalf("expected 6 words, got %d in %q", n, text)
	}
}

func TestLibraryProvider(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "typespeed.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	lib := NewLibrary(st)
	if _, err := lib.NextText(); !errors.Is(err, store.ErrNoTexts) {
		t.Fatalf("expected ErrNoTexts, got %v", err)
	}
	if _, err := st.AddText(context.Background(), "from the library", "manual"); err != nil {
		t.Fatalf("add: %v", err)
	}
	text, err := lib.NextText()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if text != "from the library" {
		t.Fatalf("unexpected text %q", text)
	}
}
