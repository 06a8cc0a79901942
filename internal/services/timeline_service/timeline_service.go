package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/repository"
	"wedding_service/internal/storage"
	"wedding_service/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrEventNotFound = apperr.New(apperr.KindNotFound, "timeline event not found")

type TimelineService struct {
	log  *slog.Logger
	repo repository.TimelineRepository
	now  func() time.Time
}

func NewTimelineService(log *slog.Logger, repo repository.TimelineRepository) *TimelineService {
	return &TimelineService{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

// ListEvents программа по времени, при равном времени по order.
func (s *TimelineService) ListEvents(ctx context.Context, slug string) ([]models.TimelineEvent, error) {
	const op = "timeline_service.ListEvents"

	list, err := s.repo.ListEvents(ctx, slug)
	if err != nil {
		s.log.Error("failed to list timeline", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *TimelineService) AddEvent(ctx context.Context, slug string, req dto.TimelineEventRequest) (*models.TimelineEvent, error) {
	const op = "timeline_service.AddEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	now := s.now().UTC()
	e := fromRequest(req)
	e.ID = uuid.New()
	e.WeddingSlug = slug
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := s.repo.CreateEvent(ctx, e)
	if err != nil {
		log.Error("failed to create timeline event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("timeline event created", slog.String("event_id", created.ID.String()))

	return created, nil
}

// UpdateEvent полностью заменяет изменяемые поля события тенанта.
func (s *TimelineService) UpdateEvent(ctx context.Context, slug string, id uuid.UUID, req dto.TimelineEventRequest) (*models.TimelineEvent, error) {
	const op = "timeline_service.UpdateEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("event_id", id.String()),
	)

	e := fromRequest(req)
	e.ID = id
	e.WeddingSlug = slug

	updated, err := s.repo.UpdateEvent(ctx, e)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}
		log.Error("failed to update timeline event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *TimelineService) DeleteEvent(ctx context.Context, slug string, id uuid.UUID) error {
	const op = "timeline_service.DeleteEvent"

	if err := s.repo.DeleteEvent(ctx, slug, id); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}
		s.log.Error("failed to delete timeline event",
			slog.String("op", op),
			slog.String("slug", slug),
			slog.String("event_id", id.String()),
			sl.Err(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func fromRequest(req dto.TimelineEventRequest) *models.TimelineEvent {
	eventType := req.EventType
	if eventType == "" {
		eventType = models.EventTypeOther
	}

	return &models.TimelineEvent{
		Title:         strings.TrimSpace(req.Title),
		Time:          req.Time.UTC(),
		Location:      strings.TrimSpace(req.Location),
		Address:       strings.TrimSpace(req.Address),
		Description:   strings.TrimSpace(req.Description),
		EventType:     eventType,
		GoogleMapsURL: strings.TrimSpace(req.GoogleMapsURL),
		DressCode:     strings.TrimSpace(req.DressCode),
		IsMainEvent:   req.IsMainEvent,
		Order:         req.Order,
	}
}
