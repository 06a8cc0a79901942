package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/repository"
	"wedding_service/internal/services/media"
	"wedding_service/internal/storage"
	"wedding_service/internal/transport/http/dto"

	"github.com/google/uuid"
)

// MaxUploadSize предельный размер загружаемого файла (10 MiB)
const MaxUploadSize = 10 << 20

const thumbnailPrefix = "thumb_"

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/heic":      {},
	"video/mp4":       {},
	"video/quicktime": {},
	"video/x-msvideo": {},
}

// AllowedMimeType сообщает, входит ли MIME-тип в белый список загрузки.
func AllowedMimeType(mimeType string) bool {
	_, ok := allowedMimeTypes[mimeType]
	return ok
}

// BlobStore реализуют storage/bunny.Client и storage/filestorage.LocalFileStorage.
type BlobStore interface {
	Put(ctx context.Context, data []byte, name, slug, category string) (string, error)
	Delete(ctx context.Context, name, slug, category string) bool
}

type Transformer interface {
	Transform(data []byte, mimeType string) (*media.Result, error)
}

type MediaService struct {
	log         *slog.Logger
	repo        repository.MediaRepository
	blobs       BlobStore
	transformer Transformer
	recorder    events.Recorder
	now         func() time.Time
	newID       func() uuid.UUID
}

func NewMediaService(log *slog.Logger, repo repository.MediaRepository, blobs BlobStore, transformer Transformer, recorder events.Recorder) *MediaService {
	return &MediaService{
		log:         log,
		repo:        repo,
		blobs:       blobs,
		transformer: transformer,
		recorder:    recorder,
		now:         time.Now,
		newID:       uuid.New,
	}
}

// UploadMedia шаги строго последовательны: проверка, преобразование, миниатюра,
// основной файл, запись в БД. Запись появляется только после успешной выгрузки.
// Если БД упала после выгрузки, файлы в хранилище остаются.
func (s *MediaService) UploadMedia(ctx context.Context, input dto.MediaUploadInput) (*models.Media, error) {
	const op = "media_service.UploadMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", input.Slug),
		slog.String("category", string(input.Category)),
		slog.String("mime_type", input.MimeType),
	)

	uploader, err := validateUpload(&input)
	if err != nil {
		log.Warn("upload rejected", sl.Err(err))
		s.failed(ctx, input, err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recorder.Emit(ctx, events.Event{
		Name: events.UploadStarted,
		Slug: input.Slug,
		Attrs: []slog.Attr{
			slog.String("category", string(input.Category)),
			slog.String("mime_type", input.MimeType),
			slog.Int("size", len(input.Data)),
		},
	})

	id := s.newID()
	name := id.String() + strings.ToLower(filepath.Ext(input.OriginalFilename))
	category := string(input.Category)

	result := &media.Result{Main: input.Data}
	if strings.HasPrefix(input.MimeType, "image/") {
		result, err = s.transformer.Transform(input.Data, input.MimeType)
		if err != nil {
			log.Error("failed to transform image", sl.Err(err))
			s.failed(ctx, input, err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var thumbnailURL *string
	if result.Thumbnail != nil {
		u, err := s.blobs.Put(ctx, result.Thumbnail, thumbnailPrefix+name, input.Slug, category)
		if err != nil {
			log.Error("failed to upload thumbnail", sl.Err(err))
			s.failed(ctx, input, err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		thumbnailURL = &u
	}

	url, err := s.blobs.Put(ctx, result.Main, name, input.Slug, category)
	if err != nil {
		log.Error("failed to upload file", sl.Err(err))
		s.failed(ctx, input, err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// official и admin публикуются сразу; guest-upload тоже, модерация снимает флаг позже
	record := &models.Media{
		ID:               id,
		WeddingSlug:      input.Slug,
		UploaderName:     uploader,
		Type:             models.MediaTypeFor(input.MimeType),
		URL:              url,
		ThumbnailURL:     thumbnailURL,
		Filename:         name,
		OriginalFilename: input.OriginalFilename,
		Size:             int64(len(result.Main)),
		MimeType:         input.MimeType,
		Category:         input.Category,
		IsApproved:       true,
		UploadedAt:       s.now().UTC(),
		Metadata:         result.Metadata,
	}

	if err := record.Validate(); err != nil {
		log.Error("media validation failed", sl.Err(err))
		err = apperr.Wrap(apperr.KindBadRequest, "invalid media record", err)
		s.failed(ctx, input, err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateMedia(ctx, record)
	if err != nil {
		log.Error("failed to save media to database, blobs left in store",
			sl.Err(err),
			slog.String("filename", name),
		)
		s.failed(ctx, input, err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("media uploaded", slog.String("media_id", created.ID.String()))

	s.recorder.Emit(ctx, events.Event{
		Name: events.UploadCompleted,
		Slug: input.Slug,
		Attrs: []slog.Attr{
			slog.String("media_id", created.ID.String()),
			slog.String("type", string(created.Type)),
			slog.Int64("size", created.Size),
		},
	})

	return created, nil
}

// validateUpload возвращает итоговое имя загрузившего.
func validateUpload(input *dto.MediaUploadInput) (string, error) {
	if len(input.Data) == 0 {
		return "", apperr.New(apperr.KindBadRequest, "no file uploaded")
	}
	if len(input.Data) > MaxUploadSize {
		return "", apperr.New(apperr.KindPayloadTooLarge, "file too large, maximum size is 10MB")
	}
	if !input.Category.Valid() {
		return "", apperr.New(apperr.KindBadRequest,
			fmt.Sprintf("invalid category '%s', must be one of: [guest-upload official admin]", input.Category))
	}
	if !AllowedMimeType(input.MimeType) {
		return "", apperr.New(apperr.KindBadRequest,
			"invalid file type, allowed: JPEG, PNG, WebP, HEIC, MP4, MOV, AVI")
	}
	if strings.TrimSpace(input.OriginalFilename) == "" {
		return "", apperr.New(apperr.KindBadRequest, "file name is required")
	}
	if len(input.OriginalFilename) > 255 {
		return "", apperr.New(apperr.KindBadRequest, "file name must be 255 characters or less")
	}

	if input.Category != models.CategoryGuestUpload {
		return models.OfficialUploader, nil
	}

	uploader := strings.TrimSpace(input.UploaderName)
	if uploader == "" {
		return "", apperr.New(apperr.KindBadRequest, "uploader name is required")
	}
	if len(uploader) > 100 {
		return "", apperr.New(apperr.KindBadRequest, "uploader name must be 100 characters or less")
	}

	return uploader, nil
}

func (s *MediaService) failed(ctx context.Context, input dto.MediaUploadInput, err error) {
	s.recorder.Emit(ctx, events.Event{
		Name: events.UploadFailed,
		Slug: input.Slug,
		Kind: string(apperr.KindOf(err)),
		Attrs: []slog.Attr{
			slog.String("category", string(input.Category)),
			slog.String("mime_type", input.MimeType),
		},
	})
}

// ListPublicMedia публичная выдача: только одобренные записи, что бы ни просил клиент.
func (s *MediaService) ListPublicMedia(ctx context.Context, slug, category string) ([]models.Media, error) {
	approved := true

	return s.list(ctx, "media_service.ListPublicMedia", slug, models.MediaFilter{
		Category:   category,
		IsApproved: &approved,
	})
}

// ListAllMedia выдача для администратора тенанта; IsApproved nil означает все записи.
func (s *MediaService) ListAllMedia(ctx context.Context, slug string, filter models.MediaFilter) ([]models.Media, error) {
	return s.list(ctx, "media_service.ListAllMedia", slug, filter)
}

func (s *MediaService) list(ctx context.Context, op, slug string, filter models.MediaFilter) ([]models.Media, error) {
	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	list, err := s.repo.ListMedia(ctx, slug, filter)
	if err != nil {
		log.Error("failed to list media", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// SetApproval меняет флаг публикации. Чужая для тенанта запись дает NotFound.
func (s *MediaService) SetApproval(ctx context.Context, slug string, mediaID uuid.UUID, approved bool) (*models.Media, error) {
	const op = "media_service.SetApproval"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("media_id", mediaID.String()),
	)

	m, err := s.repo.SetApproval(ctx, slug, mediaID, approved)
	if err != nil {
		if errors.Is(err, storage.ErrMediaNotFound) {
			return nil, fmt.Errorf("%s: %w", op, apperr.New(apperr.KindNotFound, "media not found"))
		}
		log.Error("failed to update approval", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recorder.Emit(ctx, events.Event{
		Name: events.ModerationChanged,
		Slug: slug,
		Attrs: []slog.Attr{
			slog.String("media_id", mediaID.String()),
			slog.Bool("approved", approved),
		},
	})

	return m, nil
}

// DeleteMedia удаляет запись тенанта, затем best-effort чистит хранилище.
func (s *MediaService) DeleteMedia(ctx context.Context, slug string, mediaID uuid.UUID) error {
	const op = "media_service.DeleteMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("media_id", mediaID.String()),
	)

	m, err := s.repo.DeleteMedia(ctx, slug, mediaID)
	if err != nil {
		if errors.Is(err, storage.ErrMediaNotFound) {
			return fmt.Errorf("%s: %w", op, apperr.New(apperr.KindNotFound, "media not found"))
		}
		log.Error("failed to delete media", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	category := string(m.Category)

	mainDeleted := s.blobs.Delete(ctx, m.Filename, slug, category)
	if !mainDeleted {
		log.Warn("failed to delete file from blob store", slog.String("filename", m.Filename))
	}

	thumbDeleted := false
	if m.ThumbnailURL != nil {
		thumbDeleted = s.blobs.Delete(ctx, thumbnailPrefix+m.Filename, slug, category)
		if !thumbDeleted {
			log.Warn("failed to delete thumbnail from blob store", slog.String("filename", m.Filename))
		}
	}

	s.recorder.Emit(ctx, events.Event{
		Name: events.MediaDeleted,
		Slug: slug,
		Attrs: []slog.Attr{
			slog.String("media_id", mediaID.String()),
			slog.Bool("blob_deleted", mainDeleted),
			slog.Bool("thumbnail_deleted", thumbDeleted),
		},
	})

	return nil
}
