package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/repository"
	"wedding_service/internal/transport/http/dto"

	"github.com/google/uuid"
)

type GuestService struct {
	log  *slog.Logger
	repo repository.GuestRepository
	now  func() time.Time
}

func NewGuestService(log *slog.Logger, repo repository.GuestRepository) *GuestService {
	return &GuestService{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

// SubmitRSVP повторный ответ гостя с тем же именем (без учета регистра) перезаписывает прежний.
// created=false означает обновление.
func (s *GuestService) SubmitRSVP(ctx context.Context, slug string, req dto.RSVPRequest) (*models.Guest, bool, error) {
	const op = "guest_service.SubmitRSVP"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	g := &models.Guest{
		ID:          uuid.New(),
		WeddingSlug: slug,
		Name:        strings.TrimSpace(req.Name),
		Attending:   req.Attending != nil && *req.Attending,
		PlusOne:     req.PlusOne,
		PlusOneName: strings.TrimSpace(req.PlusOneName),
		Message:     strings.TrimSpace(req.Message),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		SubmittedAt: s.now().UTC(),
	}

	saved, created, err := s.repo.UpsertGuest(ctx, g)
	if err != nil {
		log.Error("failed to save rsvp", sl.Err(err))
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("rsvp saved",
		slog.Bool("created", created),
		slog.Bool("attending", saved.Attending),
	)

	return saved, created, nil
}

func (s *GuestService) ListGuests(ctx context.Context, slug string) ([]models.Guest, models.GuestStats, error) {
	const op = "guest_service.ListGuests"

	guests, err := s.repo.ListGuests(ctx, slug)
	if err != nil {
		s.log.Error("failed to list guests",
			slog.String("op", op),
			slog.String("slug", slug),
			sl.Err(err),
		)
		return nil, models.GuestStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return guests, models.CountGuests(guests), nil
}
