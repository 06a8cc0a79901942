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

var ErrGiftNotFound = apperr.New(apperr.KindNotFound, "gift not found")

type GiftService struct {
	log  *slog.Logger
	repo repository.GiftRepository
	now  func() time.Time
}

func NewGiftService(log *slog.Logger, repo repository.GiftRepository) *GiftService {
	return &GiftService{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

func (s *GiftService) ListGifts(ctx context.Context, slug string, filter models.GiftFilter) ([]models.Gift, error) {
	const op = "gift_service.ListGifts"

	list, err := s.repo.ListGifts(ctx, slug, filter)
	if err != nil {
		s.log.Error("failed to list gifts", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *GiftService) AddGift(ctx context.Context, slug string, req dto.GiftRequest) (*models.Gift, error) {
	const op = "gift_service.AddGift"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	now := s.now().UTC()
	g := &models.Gift{
		ID:          uuid.New(),
		WeddingSlug: slug,
		CreatedAt:   now,
	}
	apply(g, req, now)

	created, err := s.repo.CreateGift(ctx, g)
	if err != nil {
		log.Error("failed to create gift", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gift created", slog.String("gift_id", created.ID.String()))

	return created, nil
}

// UpdateGift заменяет поля подарка. Дата получения ставится при переходе в
// полученные и сбрасывается при обратном переходе.
func (s *GiftService) UpdateGift(ctx context.Context, slug string, id uuid.UUID, req dto.GiftRequest) (*models.Gift, error) {
	const op = "gift_service.UpdateGift"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("gift_id", id.String()),
	)

	g, err := s.repo.GetGift(ctx, slug, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.notFound(log, err))
	}

	apply(g, req, s.now().UTC())

	updated, err := s.repo.UpdateGift(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.notFound(log, err))
	}

	return updated, nil
}

func (s *GiftService) MarkReceived(ctx context.Context, slug string, id uuid.UUID, req dto.MarkReceivedRequest) (*models.Gift, error) {
	const op = "gift_service.MarkReceived"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("gift_id", id.String()),
	)

	g, err := s.repo.MarkReceived(ctx, slug, id,
		strings.TrimSpace(req.ReceivedFrom),
		strings.TrimSpace(req.Notes),
		s.now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.notFound(log, err))
	}

	log.Info("gift marked as received")

	return g, nil
}

func (s *GiftService) DeleteGift(ctx context.Context, slug string, id uuid.UUID) error {
	const op = "gift_service.DeleteGift"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
		slog.String("gift_id", id.String()),
	)

	if err := s.repo.DeleteGift(ctx, slug, id); err != nil {
		return fmt.Errorf("%s: %w", op, s.notFound(log, err))
	}

	return nil
}

// Stats сводка по всему списку и по категориям.
func (s *GiftService) Stats(ctx context.Context, slug string) (*models.GiftStats, error) {
	const op = "gift_service.Stats"

	totals, err := s.repo.CategoryTotals(ctx, slug)
	if err != nil {
		s.log.Error("failed to aggregate gifts", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &models.GiftStats{Categories: totals}
	for _, c := range totals {
		stats.Overview.Total += c.Total
		stats.Overview.Received += c.Received
	}
	stats.Overview.Pending = stats.Overview.Total - stats.Overview.Received

	return stats, nil
}

func (s *GiftService) notFound(log *slog.Logger, err error) error {
	if errors.Is(err, storage.ErrGiftNotFound) {
		return ErrGiftNotFound
	}
	log.Error("gift operation failed", sl.Err(err))
	return err
}

func apply(g *models.Gift, req dto.GiftRequest, now time.Time) {
	category := req.Category
	if category == "" {
		category = models.GiftCategoryOther
	}
	priority := req.Priority
	if priority == "" {
		priority = models.GiftPriorityMedium
	}

	switch {
	case req.IsReceived && !g.IsReceived:
		g.ReceivedDate = &now
	case !req.IsReceived:
		g.ReceivedDate = nil
	}

	g.Name = strings.TrimSpace(req.Name)
	g.Description = strings.TrimSpace(req.Description)
	g.Category = category
	g.Priority = priority
	g.EstimatedPrice = strings.TrimSpace(req.EstimatedPrice)
	g.Notes = strings.TrimSpace(req.Notes)
	g.Order = req.Order
	g.IsReceived = req.IsReceived
	g.ReceivedFrom = strings.TrimSpace(req.ReceivedFrom)
	g.UpdatedAt = now
}
