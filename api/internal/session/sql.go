package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	_ "modernc.org/sqlite"             // pure-Go sqlite driver
)

// SQLStore keeps sessions in a single quiz_sessions table. The SQL is written
// to run unchanged on postgres (pgx) and sqlite ($N placeholders, on conflict
// upsert work on both).
type SQLStore struct{ DB *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{DB: db} }

// Open opens the configured database. driver is "postgres" or "sqlite".
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "postgres":
		return sql.Open("pgx", dsn)
	case "sqlite":
		return sql.Open("sqlite", dsn)
	default:
		return nil, fmt.Errorf("unknown session db driver %q", driver)
	}
}

// EnsureSchema creates the sessions table if missing.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists quiz_sessions (
  key        text primary key,
  value      text not null,
  updated_at bigint not null
)`
	_, err := s.DB.ExecContext(ctx, q)
	return err
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	const q = `select value from quiz_sessions where key = $1`
	var value string
	if err := s.DB.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		return "", err // sql.ErrNoRows == ErrNotFound
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	const q = `
insert into quiz_sessions (key, value, updated_at)
values ($1, $2, $3)
on conflict (key) do update
set value = excluded.value,
    updated_at = excluded.updated_at`
	_, err := s.DB.ExecContext(ctx, q, key, value, time.Now().Unix())
	return err
}
