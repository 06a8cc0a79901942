package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

//go:embed schema.sql
var schema string

type Storage struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Pool отдает пул соединений репозиториям.
func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

// Migrate применяет схему. Все выражения идемпотентны (IF NOT EXISTS).
func (s *Storage) Migrate(ctx context.Context) error {
	return Migrate(ctx, s.db)
}

func (s *Storage) Stop() {
	s.db.Close()
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	const op = "storage.postgresql.Migrate"

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
