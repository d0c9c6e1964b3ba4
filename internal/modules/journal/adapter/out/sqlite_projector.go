package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"innerwork/internal/modules/journal/domain"
	journalout "innerwork/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteEntryProjector struct {
	db *sql.DB
}

func NewSQLiteEntryProjector(dbPath string) (journalout.EntryIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteEntryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteEntryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  id TEXT PRIMARY KEY,
  date TEXT NOT NULL,
  prompt TEXT,
  mood TEXT,
  media_kind TEXT,
  media_path TEXT,
  note_path TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset entries: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) UpsertEntry(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO entries (id, date, prompt, mood, media_kind, media_path, note_path)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  date=excluded.date,
  prompt=excluded.prompt,
  mood=excluded.mood,
  media_kind=excluded.media_kind,
  media_path=excluded.media_path,
  note_path=excluded.note_path;
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.Date.Format(time.RFC3339),
		entry.Prompt,
		string(entry.Mood),
		string(entry.MediaKind),
		entry.MediaPath,
		entry.NotePath,
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) RemoveEntry(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	return nil
}
