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

var timelineColumns = []string{
	"id",
	"wedding_slug",
	"title",
	"time",
	"location",
	"address",
	"description",
	"event_type",
	"google_maps_url",
	"dress_code",
	"is_main_event",
	"sort_order",
	"created_at",
	"updated_at",
}

type TimelineRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTimelineRepository(db *pgxpool.Pool) *TimelineRepo {
	return &TimelineRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TimelineRepo) ListEvents(ctx context.Context, slug string) ([]models.TimelineEvent, error) {
	const op = "repository.timeline_repository.ListEvents"

	query, args, err := r.sb.Select(timelineColumns...).
		From("timeline_events").
		Where(sq.Eq{"wedding_slug": slug}).
		OrderBy("time ASC", "sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.TimelineEvent, 0)
	for rows.Next() {
		var e models.TimelineEvent
		if err := rows.Scan(timelineDest(&e)...); err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return events, nil
}

func (r *TimelineRepo) GetEvent(ctx context.Context, slug string, id uuid.UUID) (*models.TimelineEvent, error) {
	const op = "repository.timeline_repository.GetEvent"

	query, args, err := r.sb.Select(timelineColumns...).
		From("timeline_events").
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var e models.TimelineEvent
	if err := r.db.QueryRow(ctx, query, args...).Scan(timelineDest(&e)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

func (r *TimelineRepo) CreateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error) {
	const op = "repository.timeline_repository.CreateEvent"

	query, args, err := r.sb.Insert("timeline_events").
		Columns(timelineColumns...).
		Values(
			e.ID,
			e.WeddingSlug,
			e.Title,
			e.Time,
			e.Location,
			e.Address,
			e.Description,
			e.EventType,
			e.GoogleMapsURL,
			e.DressCode,
			e.IsMainEvent,
			e.Order,
			e.CreatedAt,
			e.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(timelineColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var created models.TimelineEvent
	if err := r.db.QueryRow(ctx, query, args...).Scan(timelineDest(&created)...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &created, nil
}

func (r *TimelineRepo) UpdateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error) {
	const op = "repository.timeline_repository.UpdateEvent"

	query, args, err := r.sb.Update("timeline_events").
		Set("title", e.Title).
		Set("time", e.Time).
		Set("location", e.Location).
		Set("address", e.Address).
		Set("description", e.Description).
		Set("event_type", e.EventType).
		Set("google_maps_url", e.GoogleMapsURL).
		Set("dress_code", e.DressCode).
		Set("is_main_event", e.IsMainEvent).
		Set("sort_order", e.Order).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": e.ID, "wedding_slug": e.WeddingSlug}).
		Suffix("RETURNING " + strings.Join(timelineColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var updated models.TimelineEvent
	if err := r.db.QueryRow(ctx, query, args...).Scan(timelineDest(&updated)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &updated, nil
}

func (r *TimelineRepo) DeleteEvent(ctx context.Context, slug string, id uuid.UUID) error {
	const op = "repository.timeline_repository.DeleteEvent"

	query, args, err := r.sb.Delete("timeline_events").
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
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}

func (r *TimelineRepo) CountEvents(ctx context.Context, slug string) (int, error) {
	const op = "repository.timeline_repository.CountEvents"

	query, args, err := r.sb.Select("count(*)").
		From("timeline_events").
		Where(sq.Eq{"wedding_slug": slug}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func timelineDest(e *models.TimelineEvent) []interface{} {
	return []interface{}{
		&e.ID,
		&e.WeddingSlug,
		&e.Title,
		&e.Time,
		&e.Location,
		&e.Address,
		&e.Description,
		&e.EventType,
		&e.GoogleMapsURL,
		&e.DressCode,
		&e.IsMainEvent,
		&e.Order,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}
