package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

var weddingColumns = []string{
	"id",
	"slug",
	"groom_name",
	"bride_name",
	"wedding_date",
	"config::text",
	"api_key_hash",
	"is_active",
	"expires_at",
	"created_at",
	"updated_at",
}

type WeddingRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewWeddingRepository(db *pgxpool.Pool) *WeddingRepo {
	return &WeddingRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *WeddingRepo) CreateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error) {
	const op = "repository.wedding_repository.CreateWedding"

	cfg, err := jsonText(w.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Insert("weddings").
		Columns(
			"id",
			"slug",
			"groom_name",
			"bride_name",
			"wedding_date",
			"config",
			"api_key_hash",
			"is_active",
			"expires_at",
			"created_at",
			"updated_at",
		).
		Values(
			w.ID,
			w.Slug,
			w.CoupleNames.Groom,
			w.CoupleNames.Bride,
			w.WeddingDate,
			cfg,
			w.APIKeyHash,
			w.IsActive,
			w.ExpiresAt,
			w.CreatedAt,
			w.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(weddingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanWedding(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrWeddingExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// ActiveBySlug возвращает тенанта только если он активен и срок не истек.
func (r *WeddingRepo) ActiveBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	const op = "repository.wedding_repository.ActiveBySlug"

	w, err := r.findActive(ctx, sq.Eq{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

func (r *WeddingRepo) ActiveByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error) {
	const op = "repository.wedding_repository.ActiveByAPIKeyHash"

	w, err := r.findActive(ctx, sq.Eq{"api_key_hash": hash})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

func (r *WeddingRepo) findActive(ctx context.Context, pred sq.Sqlizer) (*models.Wedding, error) {
	query, args, err := r.sb.Select(weddingColumns...).
		From("weddings").
		Where(pred).
		Where(sq.Eq{"is_active": true}).
		Where("expires_at > NOW()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	w, err := scanWedding(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrWeddingNotFound
		}
		return nil, err
	}

	return w, nil
}

// ListWeddings все тенанты, включая неактивные, новые первыми.
func (r *WeddingRepo) ListWeddings(ctx context.Context) ([]models.Wedding, error) {
	const op = "repository.wedding_repository.ListWeddings"

	query, args, err := r.sb.Select(weddingColumns...).
		From("weddings").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	weddings := make([]models.Wedding, 0)
	for rows.Next() {
		w, err := scanWedding(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		weddings = append(weddings, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return weddings, nil
}

// UpdateWedding сохраняет изменяемые поля тенанта (имена, дату, конфиг).
func (r *WeddingRepo) UpdateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error) {
	const op = "repository.wedding_repository.UpdateWedding"

	cfg, err := jsonText(w.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Update("weddings").
		Set("groom_name", w.CoupleNames.Groom).
		Set("bride_name", w.CoupleNames.Bride).
		Set("wedding_date", w.WeddingDate).
		Set("config", cfg).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"slug": w.Slug}).
		Suffix("RETURNING " + strings.Join(weddingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	updated, err := scanWedding(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrWeddingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func scanWedding(row pgx.Row) (*models.Wedding, error) {
	var (
		w   models.Wedding
		cfg string
	)

	err := row.Scan(
		&w.ID,
		&w.Slug,
		&w.CoupleNames.Groom,
		&w.CoupleNames.Bride,
		&w.WeddingDate,
		&cfg,
		&w.APIKeyHash,
		&w.IsActive,
		&w.ExpiresAt,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := w.Config.Scan(cfg); err != nil {
		return nil, err
	}

	return &w, nil
}
