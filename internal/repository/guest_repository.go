package repository

import (
	"context"
	"fmt"
	"strings"

	"wedding_service/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var guestColumns = []string{
	"id",
	"wedding_slug",
	"name",
	"attending",
	"plus_one",
	"plus_one_name",
	"message",
	"phone",
	"email",
	"submitted_at",
}

type GuestRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGuestRepository(db *pgxpool.Pool) *GuestRepo {
	return &GuestRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertGuest создает ответ гостя или обновляет существующий с тем же именем
// (без учета регистра). created=false означает обновление.
func (r *GuestRepo) UpsertGuest(ctx context.Context, g *models.Guest) (*models.Guest, bool, error) {
	const op = "repository.guest_repository.UpsertGuest"

	query, args, err := r.sb.Insert("guests").
		Columns(guestColumns...).
		Values(
			g.ID,
			g.WeddingSlug,
			g.Name,
			g.Attending,
			g.PlusOne,
			g.PlusOneName,
			g.Message,
			g.Phone,
			g.Email,
			g.SubmittedAt,
		).
		Suffix(`ON CONFLICT (wedding_slug, lower(name)) DO UPDATE SET
			name = EXCLUDED.name,
			attending = EXCLUDED.attending,
			plus_one = EXCLUDED.plus_one,
			plus_one_name = EXCLUDED.plus_one_name,
			message = EXCLUDED.message,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			submitted_at = EXCLUDED.submitted_at
			RETURNING ` + strings.Join(guestColumns, ", ") + `, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var (
		saved    models.Guest
		inserted bool
	)

	err = r.db.QueryRow(ctx, query, args...).Scan(append(guestDest(&saved), &inserted)...)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return &saved, inserted, nil
}

// ListGuests ответы гостей тенанта, последние первыми.
func (r *GuestRepo) ListGuests(ctx context.Context, slug string) ([]models.Guest, error) {
	const op = "repository.guest_repository.ListGuests"

	query, args, err := r.sb.Select(guestColumns...).
		From("guests").
		Where(sq.Eq{"wedding_slug": slug}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	return collectGuests(op, rows)
}

func collectGuests(op string, rows pgx.Rows) ([]models.Guest, error) {
	guests := make([]models.Guest, 0)
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(guestDest(&g)...); err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return guests, nil
}

func guestDest(g *models.Guest) []interface{} {
	return []interface{}{
		&g.ID,
		&g.WeddingSlug,
		&g.Name,
		&g.Attending,
		&g.PlusOne,
		&g.PlusOneName,
		&g.Message,
		&g.Phone,
		&g.Email,
		&g.SubmittedAt,
	}
}
