package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgPool *pgxpool.Pool

func GetDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
}

func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if pgPool == nil {
		pgPool = pool
	}

	if err := autoMigrate(ctx, pgPool); err != nil {
		return pgPool, err
	}

	return pgPool, nil
}

func autoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
	CREATE TABLE IF NOT EXISTS fosters (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	pet_name TEXT NOT NULL,
	preferred_contact_time TEXT NOT NULL,
	call_id TEXT,
	call_completed BOOLEAN NOT NULL DEFAULT FALSE,
	transcription TEXT,
	photographyneeded BOOLEAN NOT NULL DEFAULT FALSE,
	email_sent BOOLEAN NOT NULL DEFAULT FALSE
	);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
