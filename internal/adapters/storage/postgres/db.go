package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// uniqueViolation es el SQLSTATE de Postgres para índices únicos.
const uniqueViolation = "23505"

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string, connectTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if connectTimeout <= 0 {
		connectTimeout = 3 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema crea las tablas si faltan. seq conserva el orden de alta para los listados.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		seq           BIGSERIAL,
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS animals (
		seq           BIGSERIAL,
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name          TEXT NOT NULL,
		hours_trained DOUBLE PRECISION NOT NULL DEFAULT 0,
		date_of_birth TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS animals_owner_user_id_idx ON animals (owner_user_id)`,
	`CREATE TABLE IF NOT EXISTS training_logs (
		seq         BIGSERIAL,
		id          TEXT PRIMARY KEY,
		date        TIMESTAMPTZ NOT NULL DEFAULT now(),
		description TEXT NOT NULL,
		hours       DOUBLE PRECISION NOT NULL,
		animal_id   TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		video_url   TEXT
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
