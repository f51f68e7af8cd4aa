package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Selvan2806/typing-speed-tester/internal/stats"
	"github.com/Selvan2806/typing-speed-tester/internal/typing"
)

var (
	scoreText    string
	scoreInput   string
	scoreElapsed time.Duration
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a typed attempt against a reference text",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreText, "text", "", "reference text")
	cmd.Flags().StringVar(&scoreInput, "input", "", "typed input")
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", 0, "time from first to last keystroke (e.g. 42s)")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	snap, err := scoreAttempt(scoreText, scoreInput, scoreElapsed)
	if err != nil {
		return err
	}
	return stats.RenderResult(cmd.OutOrStdout(), stats.NewSummary(snap), nil, stats.TerminalWidth())
}

// scoreAttempt replays an attempt as two input events: the first
// keystroke, then the whole input elapsed later.
func scoreAttempt(text, input string, elapsed time.Duration) (typing.Session, error) {
	ctrl := typing.NewController(typing.TextProviderFunc(func() (string, error) {
		return text, nil
	}))
	snap, err := ctrl.Start()
	if err != nil {
		return typing.Session{}, fmt.Errorf("failed to score: %w", err)
	}
	if input == "" {
		return snap, nil
	}
	start := time.Now()
	_, size := utf8.DecodeRuneInString(input)
	ctrl.SubmitInput(input[:size], start)
	return ctrl.SubmitInput(input, start.Add(elapsed)), nil
}
