package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/storage"
)

var (
	ErrInvalidAPIKey     = apperr.New(apperr.KindUnauthorized, "invalid or expired API key")
	ErrWeddingNotFound   = apperr.New(apperr.KindNotFound, "wedding not found or expired")
	ErrSlugMismatch      = apperr.New(apperr.KindForbidden, "API key does not match this wedding")
	ErrInvalidAdminToken = apperr.New(apperr.KindUnauthorized, "invalid admin secret")
)

type Auth struct {
	log         *slog.Logger
	tenants     TenantProvider
	cache       TenantCache
	adminSecret []byte
	recorder    events.Recorder
	now         func() time.Time
}

type TenantProvider interface {
	ActiveBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	ActiveByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error)
}

type TenantCache interface {
	BySlug(ctx context.Context, slug string) (*models.Wedding, error)
	ByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error)
	Put(ctx context.Context, w *models.Wedding) error
}

// New cache может быть nil.
func New(log *slog.Logger, tenants TenantProvider, cache TenantCache, adminSecret string, recorder events.Recorder) *Auth {
	return &Auth{
		log:         log,
		tenants:     tenants,
		cache:       cache,
		adminSecret: []byte(adminSecret),
		recorder:    recorder,
		now:         time.Now,
	}
}

// HashAPIKey в базе хранится только SHA-256 ключа.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// ResolveByAPIKey находит активного тенанта по ключу. Отсутствующий, неверный
// и просроченный ключ неразличимы: всегда Unauthorized.
func (a *Auth) ResolveByAPIKey(ctx context.Context, key string) (*models.Wedding, error) {
	const op = "auth.ResolveByAPIKey"

	log := a.log.With(slog.String("op", op))

	if key == "" {
		a.deny(ctx, "", apperr.KindUnauthorized, "missing api key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidAPIKey)
	}

	hash := HashAPIKey(key)

	if w := a.fromCache(ctx, log, func() (*models.Wedding, error) { return a.cache.ByAPIKeyHash(ctx, hash) }); w != nil {
		return w, nil
	}

	w, err := a.tenants.ActiveByAPIKeyHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrWeddingNotFound) {
			a.deny(ctx, "", apperr.KindUnauthorized, "unknown or expired api key")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidAPIKey)
		}
		log.Error("failed to resolve wedding by api key", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !w.Usable(a.now()) {
		a.deny(ctx, w.Slug, apperr.KindUnauthorized, "expired or inactive wedding")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidAPIKey)
	}

	a.toCache(ctx, log, w)

	return w, nil
}

// ResolveBySlug находит активного тенанта по slug.
func (a *Auth) ResolveBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	const op = "auth.ResolveBySlug"

	log := a.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	if !models.ValidSlug(slug) {
		return nil, fmt.Errorf("%s: %w", op, ErrWeddingNotFound)
	}

	if w := a.fromCache(ctx, log, func() (*models.Wedding, error) { return a.cache.BySlug(ctx, slug) }); w != nil {
		return w, nil
	}

	w, err := a.tenants.ActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrWeddingNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrWeddingNotFound)
		}
		log.Error("failed to resolve wedding by slug", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !w.Usable(a.now()) {
		return nil, fmt.Errorf("%s: %w", op, ErrWeddingNotFound)
	}

	a.toCache(ctx, log, w)

	return w, nil
}

// AuthorizeSlugConsistency если тенант уже определен по ключу, его slug обязан
// совпасть с pathSlug. Иначе тенант определяется по pathSlug с публичным уровнем.
func (a *Auth) AuthorizeSlugConsistency(ctx context.Context, ac *models.AccessContext, pathSlug string) (*models.AccessContext, error) {
	const op = "auth.AuthorizeSlugConsistency"

	if ac.Resolved() {
		if ac.Wedding.Slug != pathSlug {
			a.deny(ctx, pathSlug, apperr.KindForbidden, "api key belongs to another wedding")
			return nil, fmt.Errorf("%s: %w", op, ErrSlugMismatch)
		}
		return ac, nil
	}

	w, err := a.ResolveBySlug(ctx, pathSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AccessContext{
		Wedding: w,
		Slug:    w.Slug,
		Tier:    models.TierPublic,
	}, nil
}

// AuthorizeSuperAdmin сравнение за постоянное время. Пустой настроенный секрет
// не пропускает никого.
func (a *Auth) AuthorizeSuperAdmin(ctx context.Context, presented string) error {
	const op = "auth.AuthorizeSuperAdmin"

	if len(a.adminSecret) == 0 || subtle.ConstantTimeCompare([]byte(presented), a.adminSecret) != 1 {
		a.deny(ctx, "", apperr.KindUnauthorized, "invalid admin secret")
		return fmt.Errorf("%s: %w", op, ErrInvalidAdminToken)
	}

	return nil
}

func (a *Auth) fromCache(ctx context.Context, log *slog.Logger, get func() (*models.Wedding, error)) *models.Wedding {
	if a.cache == nil {
		return nil
	}

	w, err := get()
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			log.Warn("tenant cache lookup failed", sl.Err(err))
		}
		return nil
	}

	if !w.Usable(a.now()) {
		return nil
	}

	return w
}

func (a *Auth) toCache(ctx context.Context, log *slog.Logger, w *models.Wedding) {
	if a.cache == nil {
		return
	}

	if err := a.cache.Put(ctx, w); err != nil {
		log.Warn("failed to cache tenant", sl.Err(err))
	}
}

func (a *Auth) deny(ctx context.Context, slug string, kind apperr.Kind, reason string) {
	a.recorder.Emit(ctx, events.Event{
		Name:  events.AuthDenied,
		Slug:  slug,
		Kind:  string(kind),
		Attrs: []slog.Attr{slog.String("reason", reason)},
	})
}
