// Package main provides the CLI entrypoint for typespeed.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Selvan2806/typing-speed-tester/internal/config"
	"github.com/Selvan2806/typing-speed-tester/internal/model"
	"github.com/Selvan2806/typing-speed-tester/internal/stats"
	"github.com/Selvan2806/typing-speed-tester/internal/store"
	"github.com/Selvan2806/typing-speed-tester/internal/textsource"
	"github.com/Selvan2806/typing-speed-tester/internal/tui"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

const (
	defaultSource = model.SourceBuiltin
	defaultLang   = "en"
	defaultWords  = 25
	defaultCaps   = 0.0
	defaultPunct  = 0.0
	defaultTickMs = 100
)

const defaultPunctSet = ".,!?;:"

var (
	practiceSource   string
	practiceLang     string
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
	practiceWordList string
	practiceTickMs   int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typespeed",
		Short:         "Typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceSource, "source", defaultSource, "text source: builtin, words or library")
	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "word list language for the words source")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated text")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list path (default: per-language list in the config dir)")
	rootCmd.Flags().IntVar(&practiceTickMs, "tick-ms", defaultTickMs, "live metrics refresh interval in milliseconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTextsCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("practice needs an interactive terminal (try: typespeed score)")
	}

	var st *store.Store
	if cfg.Source == model.SourceLibrary {
		st, err = store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open text library: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close text library: %v\n", cerr)
			}
		}()
	}

	provider, err := textsource.FromConfig(cfg, st)
	if err != nil {
		if cfg.Source == model.SourceWords {
			return wordListLoadError(cfg, err)
		}
		return err
	}

	ui, err := tui.NewModel(typing.NewController(provider), cfg.TickInterval)
	if err != nil {
		return err
	}
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final := ui.Session()
	if !final.Started {
		return nil
	}
	return stats.RenderResult(cmd.OutOrStdout(), stats.NewSummary(final), ui.Trace(), stats.TerminalWidth())
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyConfig(cmd, "tick-ms", &practiceTickMs, fileCfg.Practice.TickMs)

	cfg := model.Config{
		Source:       strings.ToLower(strings.TrimSpace(practiceSource)),
		Lang:         practiceLang,
		Words:        practiceWords,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
		WordListPath: practiceWordList,
		DBPath:       config.DefaultDBPath(),
		TickInterval: time.Duration(practiceTickMs) * time.Millisecond,
	}
	if cfg.WordListPath == "" {
		cfg.WordListPath = config.DefaultWordListPath(cfg.Lang)
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// applyConfig copies a config file value into target unless the flag was
// set on the command line.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typespeed configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# source = %q        # Text source: builtin, words or library
# lang = %q               # Word list language for the words source
# words = %d               # Words per generated text
# caps = %.2f              # Probability of capitalized first letter (0-1)
# punct = %.2f             # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
# wordlist = ""            # Word list path (default: wordlists/<lang>.txt here)
# tick-ms = %d            # Live metrics refresh interval in milliseconds
`,
		defaultSource,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultTickMs,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Source {
	case model.SourceBuiltin, model.SourceWords, model.SourceLibrary:
	default:
		return fmt.Errorf("--source must be one of builtin, words, library")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if cfg.TickInterval < 10*time.Millisecond {
		return fmt.Errorf("--tick-ms must be >= 10")
	}
	return nil
}

func wordListLoadError(cfg model.Config, err error) error {
	lines := []string{
		err.Error(),
		fmt.Sprintf("expected word list at: %s", cfg.WordListPath),
		"Put one word per line in that file, or pass --wordlist <path>.",
		"Use --source builtin or --source library for sentence texts.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
