package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/storage"
	redisapp "wedding_service/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cacheNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisTenantCache, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	cache := NewRedisTenantCache(&redisapp.Client{Client: db}, ttl)
	cache.now = func() time.Time { return cacheNow }

	return cache, mock
}

func cacheWedding(expiresAt time.Time) *models.Wedding {
	return &models.Wedding{
		ID:          uuid.MustParse("7d1f8a24-1c7a-4f5e-9a57-0f0b6f1f8b11"),
		Slug:        "anna-and-tom",
		CoupleNames: models.CoupleNames{Groom: "Tom", Bride: "Anna"},
		WeddingDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Config:      models.WeddingConfig{}.WithDefaults(),
		APIKeyHash:  "deadbeef",
		IsActive:    true,
		ExpiresAt:   expiresAt,
		CreatedAt:   cacheNow.Add(-time.Hour),
		UpdatedAt:   cacheNow.Add(-time.Hour),
	}
}

func encoded(t *testing.T, w *models.Wedding) []byte {
	t.Helper()

	raw, err := json.Marshal(cachedWedding{Wedding: *w, APIKeyHash: w.APIKeyHash})
	require.NoError(t, err)
	return raw
}

func TestRedisTenantCache_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("uses configured ttl", func(t *testing.T) {
		cache, mock := newTestCache(t, 5*time.Minute)
		w := cacheWedding(cacheNow.Add(365 * 24 * time.Hour))
		raw := encoded(t, w)

		mock.ExpectSet("wedding:slug:anna-and-tom", raw, 5*time.Minute).SetVal("OK")
		mock.ExpectSet("wedding:key:deadbeef", raw, 5*time.Minute).SetVal("OK")

		require.NoError(t, cache.Put(ctx, w))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ttl bounded by expiry", func(t *testing.T) {
		cache, mock := newTestCache(t, 5*time.Minute)
		w := cacheWedding(cacheNow.Add(90 * time.Second))
		raw := encoded(t, w)

		mock.ExpectSet("wedding:slug:anna-and-tom", raw, 90*time.Second).SetVal("OK")
		mock.ExpectSet("wedding:key:deadbeef", raw, 90*time.Second).SetVal("OK")

		require.NoError(t, cache.Put(ctx, w))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired tenant is not cached", func(t *testing.T) {
		cache, mock := newTestCache(t, 5*time.Minute)

		require.NoError(t, cache.Put(ctx, cacheWedding(cacheNow.Add(-time.Second))))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		cache, mock := newTestCache(t, 5*time.Minute)
		w := cacheWedding(cacheNow.Add(time.Hour))

		mock.ExpectSet("wedding:slug:anna-and-tom", encoded(t, w), 5*time.Minute).SetErr(errors.New("connection refused"))

		assert.Error(t, cache.Put(ctx, w))
	})
}

func TestRedisTenantCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit by slug keeps api key hash", func(t *testing.T) {
		cache, mock := newTestCache(t, time.Minute)
		w := cacheWedding(cacheNow.Add(time.Hour))

		mock.ExpectGet("wedding:slug:anna-and-tom").SetVal(string(encoded(t, w)))

		got, err := cache.BySlug(ctx, "anna-and-tom")
		require.NoError(t, err)
		assert.Equal(t, w.ID, got.ID)
		assert.Equal(t, "deadbeef", got.APIKeyHash)
		assert.Equal(t, "Anna", got.CoupleNames.Bride)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		cache, mock := newTestCache(t, time.Minute)

		mock.ExpectGet("wedding:key:cafe").RedisNil()

		_, err := cache.ByAPIKeyHash(ctx, "cafe")
		assert.ErrorIs(t, err, storage.ErrCacheMiss)
	})

	t.Run("stale entry past expiry is a miss", func(t *testing.T) {
		cache, mock := newTestCache(t, time.Minute)
		w := cacheWedding(cacheNow.Add(-time.Minute))

		mock.ExpectGet("wedding:key:deadbeef").SetVal(string(encoded(t, w)))

		_, err := cache.ByAPIKeyHash(ctx, "deadbeef")
		assert.ErrorIs(t, err, storage.ErrCacheMiss)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		cache, mock := newTestCache(t, time.Minute)

		mock.ExpectGet("wedding:slug:x").SetVal("{not json")

		_, err := cache.BySlug(ctx, "x")
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrCacheMiss)
	})
}

func TestRedisTenantCache_Invalidate(t *testing.T) {
	cache, mock := newTestCache(t, time.Minute)
	w := cacheWedding(cacheNow.Add(time.Hour))

	mock.ExpectDel("wedding:slug:anna-and-tom", "wedding:key:deadbeef").SetVal(2)

	require.NoError(t, cache.Invalidate(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}
