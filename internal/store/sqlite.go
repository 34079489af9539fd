// internal/store/sqlite.go
//
// SQLite-backed implementation of the Store interface.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout).
//   - Creating the kv/hash/zset tables idempotently on open.
//   - Mapping the opaque key-value vocabulary onto three small tables.
//
// Expired plain keys are filtered on read and lazily deleted; there is no
// background sweeper, matching the polling-driven design of the rest of
// the server.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS kv_hash (
	key   TEXT NOT NULL,
	field TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (key, field)
);
CREATE TABLE IF NOT EXISTS kv_zset (
	key    TEXT NOT NULL,
	member TEXT NOT NULL,
	score  REAL NOT NULL,
	PRIMARY KEY (key, member)
);
CREATE INDEX IF NOT EXISTS idx_zset_key_score ON kv_zset (key, score);
`

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite-backed Store.
//
// - Ensures the parent directory exists for relative DSNs (./data/app.db).
// - Configures busy timeout and WAL journaling mode.
// - Creates the schema idempotently.
func OpenSQLite(dsn string) (Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

// wrap classifies a driver error as a retryable unavailability.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM kv WHERE key=?`, key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrap(err)
	}
	if expiresAt > 0 && time.Now().UnixMilli() > expiresAt {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
		return "", ErrNotFound
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixMilli()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv(key, value, expires_at) VALUES(?,?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, expires_at=excluded.expires_at`,
		key, value, exp,
	)
	return wrap(err)
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
	return wrap(err)
}

func (s *sqliteStore) HashGet(ctx context.Context, key, field string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_hash WHERE key=? AND field=?`, key, field,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrap(err)
	}
	return value, nil
}

func (s *sqliteStore) HashSet(ctx context.Context, key, field, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_hash(key, field, value) VALUES(?,?,?)
		 ON CONFLICT(key, field) DO UPDATE SET value=excluded.value`,
		key, field, value,
	)
	return wrap(err)
}

func (s *sqliteStore) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT field, value FROM kv_hash WHERE key=?`, key,
	)
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var f, v string
		if err := rows.Scan(&f, &v); err != nil {
			return nil, wrap(err)
		}
		out[f] = v
	}
	return out, wrap(rows.Err())
}

func (s *sqliteStore) SortedSetAdd(ctx context.Context, key, member string, score float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_zset(key, member, score) VALUES(?,?,?)
		 ON CONFLICT(key, member) DO UPDATE SET score=excluded.score`,
		key, member, score,
	)
	return wrap(err)
}

func (s *sqliteStore) SortedSetRange(ctx context.Context, key string, start, stop int, desc bool) ([]ScoredMember, error) {
	order := "ASC"
	if desc {
		order = "DESC"
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT member, score FROM kv_zset WHERE key=? ORDER BY score `+order+`, member ASC`, key,
	)
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()
	var members []ScoredMember
	for rows.Next() {
		var m ScoredMember
		if err := rows.Scan(&m.Member, &m.Score); err != nil {
			return nil, wrap(err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return sliceRange(members, start, stop), nil
}
