// Package store handles the SQLite text library.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Selvan2806/typing-speed-tester/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNoTexts is returned by RandomText when the library is empty.
var ErrNoTexts = errors.New("text library is empty")

// Store wraps SQLite access for reference texts.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS texts (
			id INTEGER PRIMARY KEY,
			body TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			added_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_texts_source ON texts(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeText collapses runs of whitespace into single spaces.
func NormalizeText(body string) string {
	return strings.Join(strings.Fields(body), " ")
}

// AddText stores a reference text and returns its id. Adding a body that
// already exists returns the existing id.
func (s *Store) AddText(ctx context.Context, body, source string) (int64, error) {
	body = NormalizeText(body)
	if body == "" {
		return 0, fmt.Errorf("text is empty")
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO texts (body, source, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(body) DO NOTHING`,
		body, source, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return 0, err
	}
	var id int64
	if err := s.db.QueryRowContext(ctx, `SELECT id FROM texts WHERE body = ?`, body).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// AddTexts stores several texts in one transaction and returns how many
// were new.
func (s *Store) AddTexts(ctx context.Context, bodies []string, source string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO texts (body, source, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(body) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	added := 0
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, body := range bodies {
		body = NormalizeText(body)
		if body == "" {
			continue
		}
		res, execErr := stmt.ExecContext(ctx, body, source, now)
		if execErr != nil {
			err = execErr
			return 0, err
		}
		n, rowsErr := res.RowsAffected()
		if rowsErr != nil {
			err = rowsErr
			return 0, err
		}
		added += int(n)
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListTexts returns all stored texts ordered by id.
func (s *Store) ListTexts(ctx context.Context) ([]model.Text, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, body, source, added_at FROM texts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var texts []model.Text
	for rows.Next() {
		var text model.Text
		var addedAt string
		if err := rows.Scan(&text.ID, &text.Body, &text.Source, &addedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, addedAt)
		if err != nil {
			return nil, err
		}
		text.AddedAt = parsed
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

// RemoveText deletes a text by id. It reports whether a row was removed.
func (s *Store) RemoveText(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountTexts returns the number of stored texts.
func (s *Store) CountTexts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM texts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// RandomText returns the body of a uniformly chosen stored text.
func (s *Store) RandomText(ctx context.Context) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM texts ORDER BY RANDOM() LIMIT 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoTexts
	}
	if err != nil {
		return "", err
	}
	return body, nil
}
