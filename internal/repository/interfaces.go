package repository

import (
	"context"
	"time"

	"wedding_service/internal/domain/models"

	"github.com/google/uuid"
)

type WeddingRepository interface {
	CreateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error)
	ActiveBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	ActiveByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error)
	ListWeddings(ctx context.Context) ([]models.Wedding, error)
	UpdateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error)
}

type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error)
	ListMedia(ctx context.Context, slug string, filter models.MediaFilter) ([]models.Media, error)
	SetApproval(ctx context.Context, slug string, id uuid.UUID, approved bool) (*models.Media, error)
	DeleteMedia(ctx context.Context, slug string, id uuid.UUID) (*models.Media, error)
	MediaTotals(ctx context.Context, slug string) (map[models.MediaCategory]models.MediaTotals, error)
}

type GuestRepository interface {
	UpsertGuest(ctx context.Context, g *models.Guest) (*models.Guest, bool, error)
	ListGuests(ctx context.Context, slug string) ([]models.Guest, error)
}

type TimelineRepository interface {
	ListEvents(ctx context.Context, slug string) ([]models.TimelineEvent, error)
	GetEvent(ctx context.Context, slug string, id uuid.UUID) (*models.TimelineEvent, error)
	CreateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error)
	UpdateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error)
	DeleteEvent(ctx context.Context, slug string, id uuid.UUID) error
	CountEvents(ctx context.Context, slug string) (int, error)
}

type GiftRepository interface {
	ListGifts(ctx context.Context, slug string, filter models.GiftFilter) ([]models.Gift, error)
	GetGift(ctx context.Context, slug string, id uuid.UUID) (*models.Gift, error)
	CreateGift(ctx context.Context, g *models.Gift) (*models.Gift, error)
	UpdateGift(ctx context.Context, g *models.Gift) (*models.Gift, error)
	MarkReceived(ctx context.Context, slug string, id uuid.UUID, from, notes string, at time.Time) (*models.Gift, error)
	DeleteGift(ctx context.Context, slug string, id uuid.UUID) error
	CategoryTotals(ctx context.Context, slug string) (map[string]models.GiftCategoryTotals, error)
}

// TenantCache необязательный кэш поиска тенантов. Промах возвращает storage.ErrCacheMiss.
type TenantCache interface {
	BySlug(ctx context.Context, slug string) (*models.Wedding, error)
	ByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error)
	Put(ctx context.Context, w *models.Wedding) error
	Invalidate(ctx context.Context, w *models.Wedding) error
}
