package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"innerwork/internal/modules/ritual/domain"
	ritualout "innerwork/internal/modules/ritual/port/out"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	goal TEXT NOT NULL,
	kind TEXT NOT NULL,
	repetition_count INTEGER NOT NULL,
	repetitions TEXT NOT NULL,
	note_path TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
`

// SQLiteSessionProjector mirrors session notes into a disposable
// sqlite index rebuilt by reindex.
type SQLiteSessionProjector struct {
	db *sql.DB
}

func NewSQLiteSessionProjector(dbPath string) (*SQLiteSessionProjector, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session index: %w", err)
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		return nil, fmt.Errorf("migrate session index: %w", err)
	}
	return &SQLiteSessionProjector{db: db}, nil
}

func (p *SQLiteSessionProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset session index: %w", err)
	}
	return nil
}

func (p *SQLiteSessionProjector) UpsertSession(ctx context.Context, session domain.Session) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO sessions (id, date, goal, kind, repetition_count, repetitions, note_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			goal = excluded.goal,
			kind = excluded.kind,
			repetition_count = excluded.repetition_count,
			repetitions = excluded.repetitions,
			note_path = excluded.note_path`,
		session.ID,
		session.Date.Format(time.RFC3339),
		session.Goal,
		string(session.Kind),
		len(session.Repetitions),
		strings.Join(session.Repetitions, "\n"),
		session.NotePath,
	)
	if err != nil {
		return fmt.Errorf("upsert session %s: %w", session.ID, err)
	}
	return nil
}

func (p *SQLiteSessionProjector) RemoveSession(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove session %s: %w", id, err)
	}
	return nil
}

func (p *SQLiteSessionProjector) Close() error {
	return p.db.Close()
}

var _ ritualout.SessionIndexProjector = (*SQLiteSessionProjector)(nil)
