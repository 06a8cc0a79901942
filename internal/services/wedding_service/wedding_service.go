package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/repository"
	"wedding_service/internal/services/auth"
	"wedding_service/internal/storage"
	"wedding_service/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultExpirationYears = 1
	qrCodeSize             = 256
)

var ErrWeddingExists = apperr.New(apperr.KindConflict, "wedding slug already exists")

// Stores репозитории, из которых собирается статистика тенанта.
type Stores struct {
	Weddings repository.WeddingRepository
	Guests   repository.GuestRepository
	Timeline repository.TimelineRepository
	Media    repository.MediaRepository
	Gifts    repository.GiftRepository
}

type WeddingService struct {
	log        *slog.Logger
	stores     Stores
	cache      repository.TenantCache
	recorder   events.Recorder
	siteDomain string
	now        func() time.Time
	newKey     func() string
}

// NewWeddingService cache может быть nil.
func NewWeddingService(log *slog.Logger, stores Stores, cache repository.TenantCache, recorder events.Recorder, siteDomain string) *WeddingService {
	return &WeddingService{
		log:        log,
		stores:     stores,
		cache:      cache,
		recorder:   recorder,
		siteDomain: siteDomain,
		now:        time.Now,
		newKey:     func() string { return uuid.NewString() },
	}
}

// CreateWedding создает тенанта и возвращает ключ в открытом виде. Повторно его получить нельзя.
func (s *WeddingService) CreateWedding(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, string, error) {
	const op = "wedding_service.CreateWedding"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", req.Slug),
	)

	if !models.ValidSlug(req.Slug) {
		return nil, "", fmt.Errorf("%s: %w", op, apperr.New(apperr.KindBadRequest, "slug may only contain lowercase letters, numbers, and hyphens"))
	}

	years := req.ExpirationYears
	if years <= 0 {
		years = DefaultExpirationYears
	}

	cfg := models.WeddingConfig{}
	if req.Config != nil {
		var err error
		if cfg, err = applyConfig(cfg, req.Config); err != nil {
			log.Error("failed to hash passcode", sl.Err(err))
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	key := s.newKey()
	now := s.now().UTC()

	w := &models.Wedding{
		ID:   uuid.New(),
		Slug: req.Slug,
		CoupleNames: models.CoupleNames{
			Groom: strings.TrimSpace(req.CoupleNames.Groom),
			Bride: strings.TrimSpace(req.CoupleNames.Bride),
		},
		WeddingDate: req.WeddingDate.UTC(),
		Config:      cfg.WithDefaults(),
		APIKeyHash:  auth.HashAPIKey(key),
		IsActive:    true,
		ExpiresAt:   now.AddDate(years, 0, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.stores.Weddings.CreateWedding(ctx, w)
	if err != nil {
		if errors.Is(err, storage.ErrWeddingExists) {
			log.Warn("wedding slug already exists")
			return nil, "", fmt.Errorf("%s: %w", op, ErrWeddingExists)
		}
		log.Error("failed to create wedding", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("wedding created",
		slog.String("api_key_prefix", key[:8]),
		slog.Time("expires_at", created.ExpiresAt),
	)

	s.recorder.Emit(ctx, events.Event{
		Name:  events.WeddingCreated,
		Slug:  created.Slug,
		Attrs: []slog.Attr{slog.Int("expiration_years", years)},
	})

	return created, key, nil
}

func (s *WeddingService) ListWeddings(ctx context.Context) ([]models.Wedding, error) {
	const op = "wedding_service.ListWeddings"

	list, err := s.stores.Weddings.ListWeddings(ctx)
	if err != nil {
		s.log.Error("failed to list weddings", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// UpdateConfig частичное обновление. Пасскод сохраняется как bcrypt-хэш.
func (s *WeddingService) UpdateConfig(ctx context.Context, w *models.Wedding, req dto.UpdateWeddingConfigRequest) (*models.Wedding, error) {
	const op = "wedding_service.UpdateConfig"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", w.Slug),
	)

	next := *w
	if req.CoupleNames != nil {
		if req.CoupleNames.Groom != nil {
			next.CoupleNames.Groom = strings.TrimSpace(*req.CoupleNames.Groom)
		}
		if req.CoupleNames.Bride != nil {
			next.CoupleNames.Bride = strings.TrimSpace(*req.CoupleNames.Bride)
		}
	}
	if req.WeddingDate != nil {
		next.WeddingDate = req.WeddingDate.UTC()
	}
	if req.Config != nil {
		cfg, err := applyConfig(w.Config, req.Config)
		if err != nil {
			log.Error("failed to hash passcode", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		next.Config = cfg
	}

	updated, err := s.stores.Weddings.UpdateWedding(ctx, &next)
	if err != nil {
		if errors.Is(err, storage.ErrWeddingNotFound) {
			return nil, fmt.Errorf("%s: %w", op, auth.ErrWeddingNotFound)
		}
		log.Error("failed to update wedding", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, updated); err != nil {
			log.Warn("failed to invalidate tenant cache", sl.Err(err))
		}
	}

	log.Info("wedding config updated")

	return updated, nil
}

func applyConfig(cfg models.WeddingConfig, in *dto.WeddingConfigInput) (models.WeddingConfig, error) {
	if in.Theme != nil {
		cfg.Theme = *in.Theme
	}
	if in.BgMusicURL != nil {
		cfg.BgMusicURL = strings.TrimSpace(*in.BgMusicURL)
	}
	if in.IsPrivate != nil {
		cfg.IsPrivate = *in.IsPrivate
	}
	if in.CustomDomain != nil {
		cfg.CustomDomain = strings.TrimSpace(*in.CustomDomain)
	}
	if in.PrimaryColor != nil {
		cfg.PrimaryColor = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		cfg.SecondaryColor = *in.SecondaryColor
	}
	if in.Passcode != nil {
		passcode := strings.TrimSpace(*in.Passcode)
		if passcode == "" {
			cfg.PasscodeHash = ""
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
			if err != nil {
				return cfg, err
			}
			cfg.PasscodeHash = string(hash)
		}
	}

	return cfg, nil
}

// CheckPasscode для публичной свадьбы всегда valid.
func (s *WeddingService) CheckPasscode(ctx context.Context, w *models.Wedding, passcode string) (*dto.CheckPasscodeResponse, error) {
	const op = "wedding_service.CheckPasscode"

	if !w.Config.IsPrivate {
		return &dto.CheckPasscodeResponse{Valid: true, Message: "Wedding is public"}, nil
	}

	if passcode == "" {
		return nil, fmt.Errorf("%s: %w", op, apperr.New(apperr.KindBadRequest, "passcode required"))
	}

	valid := w.Config.PasscodeHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(w.Config.PasscodeHash), []byte(passcode)) == nil

	s.log.Debug("passcode checked",
		slog.String("op", op),
		slog.String("slug", w.Slug),
		slog.Bool("valid", valid),
	)

	if !valid {
		return &dto.CheckPasscodeResponse{Valid: false, Message: "Invalid passcode"}, nil
	}

	return &dto.CheckPasscodeResponse{Valid: true, Message: "Passcode valid"}, nil
}

// SiteURL адрес сайта свадьбы: собственный домен или поддомен сервиса.
func (s *WeddingService) SiteURL(w *models.Wedding) string {
	if w.Config.CustomDomain != "" {
		return "https://" + w.Config.CustomDomain
	}
	return fmt.Sprintf("https://%s.%s", w.Slug, s.siteDomain)
}

// QRCode PNG 256px в виде data URL, цвет модулей берется из primaryColor.
func (s *WeddingService) QRCode(ctx context.Context, w *models.Wedding) (*dto.QRCodeResponse, error) {
	const op = "wedding_service.QRCode"

	url := s.SiteURL(w)

	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		s.log.Error("failed to build qr code", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindInternal, "failed to generate QR code", err))
	}

	q.ForegroundColor = parseHexColor(w.Config.PrimaryColor, color.Black)
	q.BackgroundColor = color.White

	png, err := q.PNG(qrCodeSize)
	if err != nil {
		s.log.Error("failed to encode qr code", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindInternal, "failed to generate QR code", err))
	}

	return &dto.QRCodeResponse{
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		URL:    url,
	}, nil
}

// parseHexColor разбирает "#RRGGBB"; все прочее дает fallback.
func parseHexColor(s string, fallback color.Color) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Stats агрегирует гостей, программу, медиа и подарки тенанта.
func (s *WeddingService) Stats(ctx context.Context, slug string) (*models.WeddingStats, error) {
	const op = "wedding_service.Stats"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	guests, err := s.stores.Guests.ListGuests(ctx, slug)
	if err != nil {
		log.Error("failed to list guests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	eventCount, err := s.stores.Timeline.CountEvents(ctx, slug)
	if err != nil {
		log.Error("failed to count timeline events", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media, err := s.stores.Media.MediaTotals(ctx, slug)
	if err != nil {
		log.Error("failed to aggregate media", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gifts, err := s.stores.Gifts.CategoryTotals(ctx, slug)
	if err != nil {
		log.Error("failed to aggregate gifts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var giftTotals models.GiftTotals
	for _, c := range gifts {
		giftTotals.Total += c.Total
		giftTotals.Received += c.Received
	}
	giftTotals.Pending = giftTotals.Total - giftTotals.Received

	return &models.WeddingStats{
		Guests:         models.CountGuests(guests),
		TimelineEvents: eventCount,
		Media:          media,
		Gifts:          giftTotals,
	}, nil
}
