// Package textsource provides the reference text providers used by
// practice sessions.
package textsource

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Selvan2806/typing-speed-tester/internal/generator"
	"github.com/Selvan2806/typing-speed-tester/internal/store"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

// Builtin is the default corpus used when no other source is configured.
var Builtin = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Typing fast is less about speed and more about rhythm and accuracy.",
	"A journey of a thousand miles begins with a single step.",
	"Practice makes progress, and progress makes practice easier.",
	"Every keystroke counts when you are trying to beat your best score.",
	"Simple words typed well are worth more than long words typed badly.",
	"Keep your wrists relaxed and let your fingers find the home row.",
	"The best way to get better at typing is to type a little every day.",
}

// Corpus picks texts uniformly at random from a fixed list.
type Corpus struct {
	texts []string
	rnd   *rand.Rand
}

// NewCorpus returns a Corpus seeded with the current time.
func NewCorpus(texts []string) *Corpus {
	return NewCorpusSeeded(texts, time.Now().UnixNano())
}

// NewCorpusSeeded returns a Corpus with a fixed seed.
func NewCorpusSeeded(texts []string, seed int64) *Corpus {
	return &Corpus{texts: texts, rnd: rand.New(rand.NewSource(seed))}
}

// NextText implements typing.TextProvider.
func (c *Corpus) NextText() (string, error) {
	if len(c.texts) == 0 {
		return "", fmt.Errorf("corpus is empty")
	}
	return c.texts[c.rnd.Intn(len(c.texts))], nil
}

// Sequence returns texts in order and wraps around.
type Sequence struct {
	texts []string
	next  int
}

// NewSequence returns a deterministic provider over texts.
func NewSequence(texts ...string) *Sequence {
	return &Sequence{texts: texts}
}

// NextText implements typing.TextProvider.
func (s *Sequence) NextText() (string, error) {
	if len(s.texts) == 0 {
		return "", fmt.Errorf("sequence is empty")
	}
	text := s.texts[s.next%len(s.texts)]
	s.next++
	return text, nil
}

// Words generates a fresh text from a word list for every session.
type Words struct {
	gen   *generator.Generator
	words []string
	opts  generator.Options
}

// NewWords returns a provider that generates texts from words.
func NewWords(gen *generator.Generator, words []string, opts generator.Options) *Words {
	return &Words{gen: gen, words: words, opts: opts}
}

// NextText implements typing.TextProvider.
func (w *Words) NextText() (string, error) {
	if len(w.words) == 0 {
		return "", fmt.Errorf("word list is empty")
	}
	return w.gen.Text(w.words, w.opts), nil
}

// Library draws random texts from the SQLite text library.
type Library struct {
	store   *store.Store
	timeout time.Duration
}

// NewLibrary returns a provider backed by st.
func NewLibrary(st *store.Store) *Library {
	return &Library{store: st, timeout: 5 * time.Second}
}

// NextText implements typing.TextProvider.
func (l *Library) NextText() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	body, err := l.store.RandomText(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load text from library: %w", err)
	}
	return body, nil
}

var (
	_ typing.TextProvider = (*Corpus)(nil)
	_ typing.TextProvider = (*Sequence)(nil)
	_ typing.TextProvider = (*Words)(nil)
	_ typing.TextProvider = (*Library)(nil)
)
