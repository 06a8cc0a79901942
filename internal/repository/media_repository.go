package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var mediaColumns = []string{
	"id",
	"wedding_slug",
	"uploader_name",
	"type",
	"url",
	"thumbnail_url",
	"filename",
	"original_name",
	"size",
	"mime_type",
	"category",
	"is_approved",
	"uploaded_at",
	"metadata::text",
}

type MediaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MediaRepo) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	const op = "repository.media_repository.CreateMedia"

	meta, err := jsonText(media.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Insert("media").
		Columns(
			"id",
			"wedding_slug",
			"uploader_name",
			"type",
			"url",
			"thumbnail_url",
			"filename",
			"original_name",
			"size",
			"mime_type",
			"category",
			"is_approved",
			"uploaded_at",
			"metadata",
		).
		Values(
			media.ID,
			media.WeddingSlug,
			media.UploaderName,
			string(media.Type),
			media.URL,
			media.ThumbnailURL,
			media.Filename,
			media.OriginalFilename,
			media.Size,
			media.MimeType,
			string(media.Category),
			media.IsApproved,
			media.UploadedAt,
			meta,
		).
		Suffix("RETURNING " + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanMedia(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create media: %w", op, err)
	}

	return created, nil
}

// ListMedia медиа тенанта, новые первыми.
func (r *MediaRepo) ListMedia(ctx context.Context, slug string, filter models.MediaFilter) ([]models.Media, error) {
	const op = "repository.media_repository.ListMedia"

	qb := r.sb.Select(mediaColumns...).
		From("media").
		Where(sq.Eq{"wedding_slug": slug})

	if filter.Category != "" && filter.Category != "all" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.IsApproved != nil {
		qb = qb.Where(sq.Eq{"is_approved": *filter.IsApproved})
	}

	query, args, err := qb.OrderBy("uploaded_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	mediaList := make([]models.Media, 0)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		mediaList = append(mediaList, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return mediaList, nil
}

// SetApproval меняет флаг только у записи этого тенанта.
func (r *MediaRepo) SetApproval(ctx context.Context, slug string, id uuid.UUID, approved bool) (*models.Media, error) {
	const op = "repository.media_repository.SetApproval"

	query, args, err := r.sb.Update("media").
		Set("is_approved", approved).
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		Suffix("RETURNING " + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	m, err := scanMedia(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrMediaNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// DeleteMedia удаляет запись тенанта и возвращает ее для очистки хранилища.
func (r *MediaRepo) DeleteMedia(ctx context.Context, slug string, id uuid.UUID) (*models.Media, error) {
	const op = "repository.media_repository.DeleteMedia"

	query, args, err := r.sb.Delete("media").
		Where(sq.Eq{"id": id, "wedding_slug": slug}).
		Suffix("RETURNING " + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	m, err := scanMedia(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrMediaNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// MediaTotals количество и суммарный размер по категориям.
func (r *MediaRepo) MediaTotals(ctx context.Context, slug string) (map[models.MediaCategory]models.MediaTotals, error) {
	const op = "repository.media_repository.MediaTotals"

	query, args, err := r.sb.Select("category", "count(*)", "COALESCE(sum(size), 0)").
		From("media").
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

	totals := make(map[models.MediaCategory]models.MediaTotals)
	for rows.Next() {
		var (
			category string
			t        models.MediaTotals
		)
		if err := rows.Scan(&category, &t.Count, &t.TotalSize); err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}
		totals[models.MediaCategory(category)] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return totals, nil
}

func scanMedia(row pgx.Row) (*models.Media, error) {
	var (
		m        models.Media
		typ      string
		category string
		meta     string
	)

	err := row.Scan(
		&m.ID,
		&m.WeddingSlug,
		&m.UploaderName,
		&typ,
		&m.URL,
		&m.ThumbnailURL,
		&m.Filename,
		&m.OriginalFilename,
		&m.Size,
		&m.MimeType,
		&category,
		&m.IsApproved,
		&m.UploadedAt,
		&meta,
	)
	if err != nil {
		return nil, err
	}

	m.Type = models.MediaType(typ)
	m.Category = models.MediaCategory(category)

	if err := m.Metadata.Scan(meta); err != nil {
		return nil, err
	}

	return &m, nil
}
