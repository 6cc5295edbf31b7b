// Package history persists a ledger of conversion outcomes backed by SQLite.
// Every disc split from a sheet and every directly transcoded file gets one
// row, successful or not, so past runs can be inspected after the fact.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases with an older version are rejected.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Record kinds.
const (
	KindSheetDisc = "sheet_disc"
	KindFile      = "file"
)

// Record statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one ledger entry: a single disc converted from a sheet, or a
// single sheetless file transcoded directly.
type Record struct {
	ID           int64
	RunID        string
	Kind         string
	SourcePath   string
	DiscNumber   int
	AudioFile    string
	TrackCount   int
	FirstTrack   int
	Destination  string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Add inserts one ledger entry. CreatedAt is assigned here.
func (s *Store) Add(ctx context.Context, rec *Record) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (
            run_id, kind, source_path, disc_number, audio_file,
            track_count, first_track, destination, status, error_message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Kind,
		rec.SourcePath,
		rec.DiscNumber,
		rec.AudioFile,
		rec.TrackCount,
		rec.FirstTrack,
		rec.Destination,
		rec.Status,
		nullableString(rec.ErrorMessage),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read insert id: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = now
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, kind, source_path, disc_number, audio_file,
                track_count, first_track, destination, status, error_message, created_at
         FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var errMsg sql.NullString
		var createdAt string
		if err := rows.Scan(
			&rec.ID, &rec.RunID, &rec.Kind, &rec.SourcePath, &rec.DiscNumber,
			&rec.AudioFile, &rec.TrackCount, &rec.FirstTrack, &rec.Destination,
			&rec.Status, &errMsg, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		rec.ErrorMessage = errMsg.String
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return records, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
