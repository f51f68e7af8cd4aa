package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "typespeed.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddAndListTexts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id1, err := st.AddText(ctx, "  the quick\n brown   fox ", "manual")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id2, err := st.AddText(ctx, "the quick brown fox", "manual")
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected duplicate to reuse id %d, got %d", id1, id2)
	}

	texts, err := st.ListTexts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(texts) != 1 {
		t.Fatalf("expected 1 text, got %d", len(texts))
	}
	if texts[0].Body != "the quick brown fox" || texts[0].Source != "manual" {
		t.Fatalf("unexpected text: %+v", texts[0])
	}
	if texts[0].AddedAt.IsZero() {
		t.Fatalf("expected added_at to be set")
	}
}

func TestAddTextRejectsEmpty(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.AddText(context.Background(), " \n\t", "manual"); err == nil {
		t.Fatalf("expected error for blank text")
	}
}

func TestAddTextsCountsNew(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	added, err := st.AddTexts(ctx, []string{"one", "two", "", "one"}, "import")
	if err != nil {
		t.Fatalf("add texts: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 new texts, got %d", added)
	}
	n, err := st.CountTexts(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 texts, got %d", n)
	}
}

func TestRandomTextAndRemove(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.RandomText(ctx); !errors.Is(err, ErrNoTexts) {
		t.Fatalf("expected ErrNoTexts, got %v", err)
	}
	id, err := st.AddText(ctx, "only text", "manual")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	body, err := st.RandomText(ctx)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if body != "only text" {
		t.Fatalf("unexpected body %q", body)
	}
	removed, err := st.RemoveText(ctx, id)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
	removed, err = st.RemoveText(ctx, id)
	if err != nil || removed {
		t.Fatalf("expected no-op removal, got %v %v", removed, err)
	}
}
