package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joeyg6393/fincalcs/domain"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// schemaVersion is the latest schema version the history store expects.
const schemaVersion = 3

type migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []migration{
	{
		Version:     1,
		Description: "Initial history schema",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS history (
				id TEXT PRIMARY KEY,
				calculator TEXT NOT NULL,
				input TEXT NOT NULL,
				result TEXT,
				status TEXT NOT NULL,
				created_at TEXT NOT NULL
			)`)
			return err
		},
	},
	{
		Version:     2,
		Description: "Add failure reason and calculator index",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE history ADD COLUMN reason TEXT NOT NULL DEFAULT ''`,
				`CREATE INDEX IF NOT EXISTS idx_history_calculator ON history(calculator, created_at DESC)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Order history by integer timestamp",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE history ADD COLUMN created_ns INTEGER NOT NULL DEFAULT 0`); err != nil {
				return err
			}
			if err := backfillCreatedNs(tx); err != nil {
				return err
			}
			queries := []string{
				`DROP INDEX IF EXISTS idx_history_calculator`,
				`CREATE INDEX IF NOT EXISTS idx_history_calculator_ns ON history(calculator, created_ns DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_history_created_ns ON history(created_ns DESC)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// backfillCreatedNs converts the RFC3339 created_at text of existing rows.
// Text timestamps do not sort chronologically within a second because the
// fraction is variable width.
func backfillCreatedNs(tx *sql.Tx) error {
	rows, err := tx.Query(`SELECT id, created_at FROM history`)
	if err != nil {
		return err
	}
	stamps := map[string]int64{}
	for rows.Next() {
		var id, createdAt string
		if err := rows.Scan(&id, &createdAt); err != nil {
			_ = rows.Close()
			return err
		}
		at, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			_ = rows.Close()
			return fmt.Errorf("invalid created_at for %s: %w", id, err)
		}
		stamps[id] = at.UnixNano()
	}
	if err := rows.Close(); err != nil {
		return err
	}

	for id, ns := range stamps {
		if _, err := tx.Exec(`UPDATE history SET created_ns = ? WHERE id = ?`, ns, id); err != nil {
			return err
		}
	}
	return nil
}

// HistoryRepositorySQLite stores history in a SQLite database.
type HistoryRepositorySQLite struct {
	db *sql.DB
}

// NewHistoryRepositorySQLite opens (or creates) the database at dbPath and
// applies pending migrations.
func NewHistoryRepositorySQLite(ctx context.Context, dbPath string) (*HistoryRepositorySQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	r := &HistoryRepositorySQLite{db: db}
	if err := r.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepositorySQLite) migrate(ctx context.Context) error {
	var current int
	if err := r.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("Applied migration", "version", m.Version, "description", m.Description)
	}

	var final int
	if err := r.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&final); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if final != schemaVersion {
		return fmt.Errorf("history schema version mismatch: expected %d, got %d", schemaVersion, final)
	}
	return nil
}

func (r *HistoryRepositorySQLite) Save(ctx context.Context, rec domain.HistoryRecord) error {
	var result sql.NullString
	if len(rec.Result) > 0 {
		result = sql.NullString{String: string(rec.Result), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO history (id, calculator, input, result, status, reason, created_at, created_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Calculator, string(rec.Input), result, rec.Status, rec.Reason,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save history record %s: %w", rec.ID, err)
	}
	return nil
}

func (r *HistoryRepositorySQLite) List(ctx context.Context, calculator string, limit int) ([]domain.HistoryRecord, error) {
	query := `SELECT id, calculator, input, result, status, reason, created_ns FROM history`
	args := []any{}
	if calculator != "" {
		query += ` WHERE calculator = ?`
		args = append(args, calculator)
	}
	query += ` ORDER BY created_ns DESC, rowid DESC LIMIT ?`
	args = append(args, normalizeLimit(limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.HistoryRecord{}
	for rows.Next() {
		var (
			rec       domain.HistoryRecord
			input     string
			result    sql.NullString
			createdNs int64
		)
		if err := rows.Scan(&rec.ID, &rec.Calculator, &input, &result, &rec.Status, &rec.Reason, &createdNs); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		rec.Input = []byte(input)
		if result.Valid {
			rec.Result = []byte(result.String)
		}
		rec.CreatedAt = time.Unix(0, createdNs).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepositorySQLite) Close() error {
	return r.db.Close()
}
