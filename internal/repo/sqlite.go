package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// SQLite is a Repository backed by a local SQLite file. Rows keep their
// insertion order via rowid; list queries read newest-first.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at
// baseDir/cradle.db. The baseDir parameter allows tests to use
// t.TempDir() instead of ~/.cradle.
func OpenSQLite(baseDir string, cfg *config.Config) (*SQLite, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	// Explicit chmod (best-effort, may not work on all platforms)
	_ = os.Chmod(baseDir, 0700)

	dbPath := filepath.Join(baseDir, "cradle.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	_ = os.Chmod(dbPath, 0600)

	if cfg != nil {
		if cfg.DBMaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		}
		if cfg.DBMaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.DBMaxIdleConns)
		}
	}

	return &SQLite{db: db}, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema (v1)
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS moods (
		  id          TEXT PRIMARY KEY,
		  mood_level  INTEGER NOT NULL,
		  note        TEXT,
		  created_at  INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS feedings (
		  id               TEXT PRIMARY KEY,
		  type             TEXT NOT NULL,
		  duration_minutes INTEGER,
		  amount_ml        INTEGER,
		  amount_gram      INTEGER,
		  note             TEXT,
		  created_at       INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS panas_records (
		  id             TEXT PRIMARY KEY,
		  answers_json   TEXT NOT NULL,
		  positive_score INTEGER NOT NULL,
		  negative_score INTEGER NOT NULL,
		  created_at     INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS daily_notes (
		  id          TEXT PRIMARY KEY,
		  note_text   TEXT NOT NULL,
		  created_at  INTEGER NOT NULL
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

func (s *SQLite) Moods(ctx context.Context) ([]journal.MoodRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mood_level, note, created_at
		FROM moods ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	out := make([]journal.MoodRecord, 0)
	for rows.Next() {
		var (
			rec       journal.MoodRecord
			note      sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.MoodLevel, &note, &createdAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		// Label and emoji are derived data; only the level is stored.
		cfg := journal.MoodConfigs[rec.MoodLevel]
		rec.MoodLabel = cfg.Label
		rec.Emoji = cfg.Emoji
		rec.Note = fromNullString(note)
		rec.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return out, nil
}

func (s *SQLite) AddMood(ctx context.Context, rec journal.MoodRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO moods (id, mood_level, note, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.MoodLevel, toNullString(rec.Note), rec.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func (s *SQLite) DeleteMood(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "moods", "mood", id)
}

func (s *SQLite) Feedings(ctx context.Context) ([]journal.FeedingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, duration_minutes, amount_ml, amount_gram, note, created_at
		FROM feedings ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	out := make([]journal.FeedingRecord, 0)
	for rows.Next() {
		var (
			rec                       journal.FeedingRecord
			duration, amountMl, grams sql.NullInt64
			note                      sql.NullString
			createdAt                 int64
		)
		if err := rows.Scan(&rec.ID, &rec.Type, &duration, &amountMl, &grams, &note, &createdAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.DurationMinutes = fromNullInt(duration)
		rec.AmountMl = fromNullInt(amountMl)
		rec.AmountGram = fromNullInt(grams)
		rec.Note = fromNullString(note)
		rec.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return out, nil
}

func (s *SQLite) AddFeeding(ctx context.Context, rec journal.FeedingRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedings (id, type, duration_minutes, amount_ml, amount_gram, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Type, toNullInt(rec.DurationMinutes), toNullInt(rec.AmountMl),
		toNullInt(rec.AmountGram), toNullString(rec.Note), rec.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func (s *SQLite) DeleteFeeding(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "feedings", "feeding", id)
}

func (s *SQLite) PanasRecords(ctx context.Context) ([]journal.PanasRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, answers_json, positive_score, negative_score, created_at
		FROM panas_records ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	out := make([]journal.PanasRecord, 0)
	for rows.Next() {
		var (
			rec         journal.PanasRecord
			answersJSON string
			createdAt   int64
		)
		if err := rows.Scan(&rec.ID, &answersJSON, &rec.PositiveScore, &rec.NegativeScore, &createdAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return out, nil
}

func (s *SQLite) AddPanas(ctx context.Context, rec journal.PanasRecord) error {
	answersJSON, err := json.Marshal(rec.Answers)
	if err != nil {
		return errors.NewInternal(err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO panas_records (id, answers_json, positive_score, negative_score, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, string(answersJSON), rec.PositiveScore, rec.NegativeScore, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func (s *SQLite) DeletePanas(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "panas_records", "panas", id)
}

func (s *SQLite) Notes(ctx context.Context) ([]journal.DailyNote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, note_text, created_at
		FROM daily_notes ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	out := make([]journal.DailyNote, 0)
	for rows.Next() {
		var (
			rec       journal.DailyNote
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.Text, &createdAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return out, nil
}

func (s *SQLite) AddNote(ctx context.Context, rec journal.DailyNote) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_notes (id, note_text, created_at) VALUES (?, ?, ?)`,
		rec.ID, rec.Text, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// UpdateNote replaces a note's text. The stored created_at is left
// untouched: edits do not move a note in time.
func (s *SQLite) UpdateNote(ctx context.Context, rec journal.DailyNote) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE daily_notes SET note_text = ? WHERE id = ?`,
		rec.Text, rec.ID,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if affected == 0 {
		return errors.NewNotFound("note", rec.ID)
	}
	return nil
}

func (s *SQLite) DeleteNote(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "daily_notes", "note", id)
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// deleteByID removes one row by id, reporting NOT_FOUND for zero rows.
func (s *SQLite) deleteByID(ctx context.Context, table, kind, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return errors.NewInternal(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if affected == 0 {
		return errors.NewNotFound(kind, id)
	}
	return nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func fromNullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
