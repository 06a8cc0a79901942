package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/storage"
	redisapp "wedding_service/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

// RedisTenantCache кэширует активных тенантов по slug и по хэшу API-ключа.
// TTL записи не превышает остаток срока жизни тенанта.
type RedisTenantCache struct {
	Client *redisapp.Client
	ttl    time.Duration
	now    func() time.Time
}

type cachedWedding struct {
	Wedding    models.Wedding `json:"wedding"`
	APIKeyHash string         `json:"apiKeyHash"`
}

func NewRedisTenantCache(client *redisapp.Client, ttl time.Duration) *RedisTenantCache {
	return &RedisTenantCache{
		Client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *RedisTenantCache) BySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	return c.get(ctx, slugKey(slug))
}

func (c *RedisTenantCache) ByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error) {
	return c.get(ctx, apiKeyKey(hash))
}

func (c *RedisTenantCache) get(ctx context.Context, key string) (*models.Wedding, error) {
	const op = "repository.tenant_cache.get"

	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrCacheMiss
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cw cachedWedding
	if err := json.Unmarshal(raw, &cw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	w := cw.Wedding
	w.APIKeyHash = cw.APIKeyHash

	if !w.Usable(c.now()) {
		return nil, storage.ErrCacheMiss
	}

	return &w, nil
}

func (c *RedisTenantCache) Put(ctx context.Context, w *models.Wedding) error {
	const op = "repository.tenant_cache.Put"

	ttl := c.ttl
	if left := w.ExpiresAt.Sub(c.now()); left < ttl {
		ttl = left
	}
	if ttl <= 0 || !w.IsActive {
		return nil
	}

	raw, err := json.Marshal(cachedWedding{Wedding: *w, APIKeyHash: w.APIKeyHash})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.Client.Set(ctx, slugKey(w.Slug), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.Client.Set(ctx, apiKeyKey(w.APIKeyHash), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *RedisTenantCache) Invalidate(ctx context.Context, w *models.Wedding) error {
	const op = "repository.tenant_cache.Invalidate"

	if err := c.Client.Del(ctx, slugKey(w.Slug), apiKeyKey(w.APIKeyHash)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func slugKey(slug string) string {
	return "wedding:slug:" + slug
}

func apiKeyKey(hash string) string {
	return "wedding:key:" + hash
}
