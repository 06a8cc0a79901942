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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var giftColumns = []string{
	"id",
	"wedding_slug",
	"name",
	"description",
	"category",
	"priority",
	"estimated_price",
	"is_received",
	"received_from",
	"received_date",
	"notes",
	"sort_order",
	"created_at",
	"updated_at",
}

type GiftRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGiftRepository(db *pgxpool.Pool) *GiftRepo {
	return &GiftRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GiftRepo) ListGifts(ctx context.Context, slug string, filter models.GiftFilter) ([]models.Gift, error) {
	const op = "repository.gift_repository.ListGifts"

	qb := r.sb.Select(giftColumns...).
		From("gifts").
		Where(sq.Eq{"wedding_slug": slug})

	if filter.Category != "" && filter.Category != "all" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Received != nil {
		qb = qb.Where(sq.Eq{"is_received": *filter.Received})
	}

	query, args, err := qb.OrderBy("sort_order ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	gifts := make([]models.Gift, 0)
	for rows.Next() {
		var g models.Gift
		if err := rows.Scan(giftDest(&g)...); err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		gifts = append(gifts, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return gifts, nil
}

func (r *GiftRepo) GetGift(ctx context.Context, slug string, id uuid.UUID) (*models.Gift, error) {
	const op = "repository.gift_repository.GetGift"

	query, args, err := r.sb.Select(giftColumns...).
		From("gifts").
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.queryOne(ctx, op, query, args)
}

func (r *GiftRepo) CreateGift(ctx context.Context, g *models.Gift) (*models.Gift, error) {
	const op = "repository.gift_repository.CreateGift"

	query, args, err := r.sb.Insert("gifts").
		Columns(giftColumns...).
		Values(
			g.ID,
			g.WeddingSlug,
			g.Name,
			g.Description,
			g.Category,
			g.Priority,
			g.EstimatedPrice,
			g.IsReceived,
			g.ReceivedFrom,
			g.ReceivedDate,
			g.Notes,
			g.Order,
			g.CreatedAt,
			g.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(giftColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.queryOne(ctx, op, query, args)
}

func (r *GiftRepo) UpdateGift(ctx context.Context, g *models.Gift) (*models.Gift, error) {
	const op = "repository.gift_repository.UpdateGift"

	query, args, err := r.sb.Update("gifts").
		Set("name", g.Name).
		Set("description", g.Description).
		Set("category", g.Category).
		Set("priority", g.Priority).
		Set("estimated_price", g.EstimatedPrice).
		Set("is_received", g.IsReceived).
		Set("received_from", g.ReceivedFrom).
		Set("received_date", g.ReceivedDate).
		Set("notes", g.Notes).
		Set("sort_order", g.Order).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": g.ID, "wedding_slug": g.WeddingSlug}).
		Suffix("RETURNING " + strings.Join(giftColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.queryOne(ctx, op, query, args)
}

// MarkReceived отмечает подарок полученным; пустые from/notes не затирают сохраненные значения.
func (r *GiftRepo) MarkReceived(ctx context.Context, slug string, id uuid.UUID, from, notes string, at time.Time) (*models.Gift, error) {
	const op = "repository.gift_repository.MarkReceived"

	ub := r.sb.Update("gifts").
		Set("is_received", true).
		Set("received_date", at).
		Set("updated_at", at)
	if from != "" {
		ub = ub.Set("received_from", from)
	}
	if notes != "" {
		ub = ub.Set("notes", notes)
	}

	query, args, err := ub.
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		Suffix("RETURNING " + strings.Join(giftColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.queryOne(ctx, op, query, args)
}

func (r *GiftRepo) DeleteGift(ctx context.Context, slug string, id uuid.UUID) error {
	const op = "repository.gift_repository.DeleteGift"

	query, args, err := r.sb.Delete("gifts").
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGiftNotFound)
	}

	return nil
}

// CategoryTotals число подарков и полученных по категориям.
func (r *GiftRepo) CategoryTotals(ctx context.Context, slug string) (map[string]models.GiftCategoryTotals, error) {
	const op = "repository.gift_repository.CategoryTotals"

	query, args, err := r.sb.Select("category", "count(*)", "count(*) FILTER (WHERE is_received)").
		From("gifts").
		Where(sq.Eq{"wedding_slug": slug}).
		GroupBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	totals := make(map[string]models.GiftCategoryTotals)
	for rows.Next() {
		var (
			category string
			t        models.GiftCategoryTotals
		)
		if err := rows.Scan(&category, &t.Total, &t.Received); err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		totals[category] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return totals, nil
}

func (r *GiftRepo) queryOne(ctx context.Context, op, query string, args []interface{}) (*models.Gift, error) {
	var g models.Gift
	if err := r.db.QueryRow(ctx, query, args...).Scan(giftDest(&g)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrGiftNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &g, nil
}

func giftDest(g *models.Gift) []interface{} {
	return []interface{}{
		&g.ID,
		&g.WeddingSlug,
		&g.Name,
		&g.Description,
		&g.Category,
		&g.Priority,
		&g.EstimatedPrice,
		&g.IsReceived,
		&g.ReceivedFrom,
		&g.ReceivedDate,
		&g.Notes,
		&g.Order,
		&g.CreatedAt,
		&g.UpdatedAt,
	}
}
