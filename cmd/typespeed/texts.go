package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Selvan2806/typing-speed-tester/internal/config"
	"github.com/Selvan2806/typing-speed-tester/internal/store"
)

const previewWidth = 60

var textsDBPath string

func newTextsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "Manage the text library used by --source library",
	}
	cmd.PersistentFlags().StringVar(&textsDBPath, "db", "", "text library path (default: data dir)")
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a text",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTextsAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import blank-line separated paragraphs from a file ('-' for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runTextsImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List texts",
		Args:  cobra.NoArgs,
		RunE:  runTextsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a text",
		Args:  cobra.ExactArgs(1),
		RunE:  runTextsRemoveCmd,
	})
	return cmd
}

func withTextStore(fn func(ctx context.Context, st *store.Store) error) error {
	path := textsDBPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open text library: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close text library: %v\n", cerr)
		}
	}()
	return fn(context.Background(), st)
}

func runTextsAddCmd(cmd *cobra.Command, args []string) error {
	return withTextStore(func(ctx context.Context, st *store.Store) error {
		id, err := st.AddText(ctx, strings.Join(args, " "), "manual")
		if err != nil {
			return fmt.Errorf("failed to add text: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
		return err
	})
}

func runTextsImportCmd(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() {
			_ = file.Close()
		}()
		r = file
		source = args[0]
	}
	paragraphs, err := splitParagraphs(r)
	if err != nil {
		return fmt.Errorf("failed to read texts: %w", err)
	}
	if len(paragraphs) == 0 {
		return fmt.Errorf("no texts found in %s", source)
	}
	return withTextStore(func(ctx context.Context, st *store.Store) error {
		added, err := st.AddTexts(ctx, paragraphs, source)
		if err != nil {
			return fmt.Errorf("failed to import texts: %w", err)
		}
		logErrf("Imported %d of %d texts (%d already present)\n", added, len(paragraphs), len(paragraphs)-added)
		return nil
	})
}

func runTextsListCmd(cmd *cobra.Command, _ []string) error {
	return withTextStore(func(ctx context.Context, st *store.Store) error {
		texts, err := st.ListTexts(ctx)
		if err != nil {
			return fmt.Errorf("failed to list texts: %w", err)
		}
		if len(texts) == 0 {
			logErrln("No texts found. Add one with: typespeed texts add <text>")
			return nil
		}
		for _, text := range texts {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", text.ID, text.Source, preview(text.Body, previewWidth)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	})
}

func runTextsRemoveCmd(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid text id %q", args[0])
	}
	return withTextStore(func(ctx context.Context, st *store.Store) error {
		removed, err := st.RemoveText(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to remove text: %w", err)
		}
		if !removed {
			return fmt.Errorf("text %d not found", id)
		}
		return nil
	})
}

// splitParagraphs returns the blank-line separated blocks of r with their
// lines joined by spaces.
func splitParagraphs(r io.Reader) ([]string, error) {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return paragraphs, nil
}

func preview(body string, width int) string {
	runes := []rune(body)
	if len(runes) <= width {
		return body
	}
	return string(runes[:width-1]) + "…"
}
