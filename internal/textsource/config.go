package textsource

import (
	"fmt"

	"github.com/Selvan2806/typing-speed-tester/internal/generator"
	"github.com/Selvan2806/typing-speed-tester/internal/model"
	"github.com/Selvan2806/typing-speed-tester/internal/store"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
	"github.com/Selvan2806/typing-speed-tester/internal/wordlist"
)

// FromConfig builds the provider selected by cfg.Source. st is only
// needed for the library source.
func FromConfig(cfg model.Config, st *store.Store) (typing.TextProvider, error) {
	switch cfg.Source {
	case "", model.SourceBuiltin:
		return NewCorpus(Builtin), nil
	case model.SourceWords:
		words, err := wordlist.LoadWords(cfg.WordListPath, wordlist.FilterForLang(cfg.Lang))
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
		}
		return NewWords(generator.New(), words, generator.Options{
			Words:    cfg.Words,
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		}), nil
	case model.SourceLibrary:
		if st == nil {
			return nil, fmt.Errorf("library source requires an open text library")
		}
		return NewLibrary(st), nil
	default:
		return nil, fmt.Errorf("unknown text source %q", cfg.Source)
	}
}
