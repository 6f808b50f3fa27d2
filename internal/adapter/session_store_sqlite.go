package adapter

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

//go:embed session_schema.sql
var sessionSchemaSQL string

// SQLiteSessionStore persists sessions in a SQLite database so that several
// request-handling processes on one host share them.
type SQLiteSessionStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteSessionStore opens (and if needed creates) the database at dbPath.
// ":memory:" opens a private in-memory database.
func NewSQLiteSessionStore(dbPath string) (*SQLiteSessionStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := execWithRetry(db, sessionSchemaSQL, 5, 10*time.Millisecond); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteSessionStore{db: db, dbPath: dbPath}, nil
}

// execWithRetry executes a statement with exponential backoff on lock errors.
func execWithRetry(db *sql.DB, statement string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(statement)
		if err == nil {
			return nil
		}

		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}

		lastErr = err

		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}

	return lastErr
}

// Put implements SessionStore.
func (s *SQLiteSessionStore) Put(ctx context.Context, session m.Session) error {
	files, err := json.Marshal(m.PathsToStrings(session.Files))
	if err != nil {
		return fmt.Errorf("marshal files: %w", err)
	}

	exclusions := session.Exclusions
	if exclusions == nil {
		exclusions = []string{}
	}

	patterns, err := json.Marshal(exclusions)
	if err != nil {
		return fmt.Errorf("marshal exclude patterns: %w", err)
	}

	query := `INSERT OR REPLACE INTO scan_sessions
		(id, files, batch_size, exclude_patterns, total_files, total_batches, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		session.ID,
		string(files),
		session.BatchSize,
		string(patterns),
		session.TotalFiles,
		session.TotalBatches,
		session.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert scan session: %w", err)
	}

	return nil
}

// Get implements SessionStore.
func (s *SQLiteSessionStore) Get(ctx context.Context, id string) (m.Session, error) {
	query := `SELECT id, files, batch_size, exclude_patterns, total_files, total_batches, created_at
		FROM scan_sessions WHERE id = ?`

	var (
		session    m.Session
		files      string
		patterns   string
		createdNano int64
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&files,
		&session.BatchSize,
		&patterns,
		&session.TotalFiles,
		&session.TotalBatches,
		&createdNano,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return m.Session{}, ErrSessionNotFound
	}

	if err != nil {
		return m.Session{}, fmt.Errorf("query scan session: %w", err)
	}

	var paths []string
	if err := json.Unmarshal([]byte(files), &paths); err != nil {
		return m.Session{}, fmt.Errorf("unmarshal files: %w", err)
	}

	session.Files = make([]m.Path, 0, len(paths))
	for _, p := range paths {
		session.Files = append(session.Files, m.Path(p))
	}

	if err := json.Unmarshal([]byte(patterns), &session.Exclusions); err != nil {
		return m.Session{}, fmt.Errorf("unmarshal exclude patterns: %w", err)
	}

	session.CreatedAt = time.Unix(0, createdNano)

	return session, nil
}

// Delete implements SessionStore.
func (s *SQLiteSessionStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scan_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete scan session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM scan_stops WHERE scan_key = ?`, id); err != nil {
		return fmt.Errorf("delete stop token: %w", err)
	}

	return tx.Commit()
}

// Sweep implements SessionStore.
func (s *SQLiteSessionStore) Sweep(ctx context.Context, cutoff time.Time) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin sweep: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM scan_sessions WHERE created_at < ? ORDER BY id`, cutoff.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("query expired sessions: %w", err)
	}

	removed := []string{}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan expired session: %w", err)
		}

		removed = append(removed, id)
	}

	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("close expired sessions: %w", err)
	}

	for _, id := range removed {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scan_sessions WHERE id = ?`, id); err != nil {
			return nil, fmt.Errorf("delete expired session %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM scan_stops WHERE scan_key = ?`, id); err != nil {
			return nil, fmt.Errorf("delete stop token %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sweep: %w", err)
	}

	return removed, nil
}

// SetStop implements SessionStore.
func (s *SQLiteSessionStore) SetStop(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scan_stops (scan_key, requested_at) VALUES (?, ?)`,
		key, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("set stop token: %w", err)
	}

	return nil
}

// ClearStop implements SessionStore.
func (s *SQLiteSessionStore) ClearStop(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scan_stops WHERE scan_key = ?`, key); err != nil {
		return fmt.Errorf("clear stop token: %w", err)
	}

	return nil
}

// StopRequested implements SessionStore.
func (s *SQLiteSessionStore) StopRequested(ctx context.Context, key string) (bool, error) {
	var count int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scan_stops WHERE scan_key = ?`, key).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query stop token: %w", err)
	}

	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteSessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}
