package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTenantProvider struct {
	mock.Mock
}

func (m *MockTenantProvider) ActiveBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

func (m *MockTenantProvider) ActiveByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

type MockTenantCache struct {
	mock.Mock
}

func (m *MockTenantCache) BySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

func (m *MockTenantCache) ByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

func (m *MockTenantCache) Put(ctx context.Context, w *models.Wedding) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

const (
	testAPIKey      = "4f3c2b1a-0000-4000-8000-000000000001"
	testAdminSecret = "super-secret"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAuth(provider TenantProvider, cache TenantCache) (*Auth, *events.MemoryRecorder) {
	rec := &events.MemoryRecorder{}
	a := New(testLogger(), provider, cache, testAdminSecret, rec)
	a.now = func() time.Time { return testNow }
	return a, rec
}

func wedding(slug string, active bool, expiresAt time.Time) *models.Wedding {
	return &models.Wedding{
		ID:         uuid.New(),
		Slug:       slug,
		APIKeyHash: HashAPIKey(testAPIKey),
		IsActive:   active,
		ExpiresAt:  expiresAt,
	}
}

func TestHashAPIKey(t *testing.T) {
	h := HashAPIKey(testAPIKey)

	assert.Len(t, h, 64)
	assert.Equal(t, h, HashAPIKey(testAPIKey))
	assert.NotEqual(t, h, HashAPIKey(testAPIKey+"x"))
}

func TestAuth_ResolveByAPIKey(t *testing.T) {
	ctx := context.Background()
	hash := HashAPIKey(testAPIKey)

	t.Run("success", func(t *testing.T) {
		provider := new(MockTenantProvider)
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		provider.On("ActiveByAPIKeyHash", ctx, hash).Return(w, nil).Once()

		a, _ := newTestAuth(provider, nil)

		got, err := a.ResolveByAPIKey(ctx, testAPIKey)
		require.NoError(t, err)
		assert.Equal(t, w, got)
		provider.AssertExpectations(t)
	})

	tests := []struct {
		name  string
		key   string
		setup func(p *MockTenantProvider)
	}{
		{
			name:  "empty key",
			key:   "",
			setup: func(p *MockTenantProvider) {},
		},
		{
			name: "garbage key",
			key:  "garbage",
			setup: func(p *MockTenantProvider) {
				p.On("ActiveByAPIKeyHash", ctx, HashAPIKey("garbage")).Return(nil, storage.ErrWeddingNotFound).Once()
			},
		},
		{
			name: "expired tenant",
			key:  testAPIKey,
			setup: func(p *MockTenantProvider) {
				p.On("ActiveByAPIKeyHash", ctx, hash).Return(wedding("old", true, testNow.Add(-time.Second)), nil).Once()
			},
		},
		{
			name: "inactive tenant",
			key:  testAPIKey,
			setup: func(p *MockTenantProvider) {
				p.On("ActiveByAPIKeyHash", ctx, hash).Return(wedding("off", false, testNow.Add(time.Hour)), nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockTenantProvider)
			tt.setup(provider)

			a, rec := newTestAuth(provider, nil)

			got, err := a.ResolveByAPIKey(ctx, tt.key)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
			assert.ErrorIs(t, err, ErrInvalidAPIKey)
			assert.Equal(t, []events.Name{events.AuthDenied}, rec.Names())
			provider.AssertExpectations(t)
		})
	}

	t.Run("storage failure is not unauthorized", func(t *testing.T) {
		provider := new(MockTenantProvider)
		provider.On("ActiveByAPIKeyHash", ctx, hash).Return(nil, errors.New("connection reset")).Once()

		a, _ := newTestAuth(provider, nil)

		_, err := a.ResolveByAPIKey(ctx, testAPIKey)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestAuth_ResolveBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		provider := new(MockTenantProvider)
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		provider.On("ActiveBySlug", ctx, "anna-and-tom").Return(w, nil).Once()

		a, _ := newTestAuth(provider, nil)

		got, err := a.ResolveBySlug(ctx, "anna-and-tom")
		require.NoError(t, err)
		assert.Equal(t, w, got)
	})

	t.Run("not found", func(t *testing.T) {
		provider := new(MockTenantProvider)
		provider.On("ActiveBySlug", ctx, "missing").Return(nil, storage.ErrWeddingNotFound).Once()

		a, _ := newTestAuth(provider, nil)

		_, err := a.ResolveBySlug(ctx, "missing")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("expired tenant is not found", func(t *testing.T) {
		provider := new(MockTenantProvider)
		provider.On("ActiveBySlug", ctx, "old").Return(wedding("old", true, testNow.Add(-time.Minute)), nil).Once()

		a, _ := newTestAuth(provider, nil)

		_, err := a.ResolveBySlug(ctx, "old")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("malformed slug never hits storage", func(t *testing.T) {
		provider := new(MockTenantProvider)
		a, _ := newTestAuth(provider, nil)

		_, err := a.ResolveBySlug(ctx, "Anna_And_Tom")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		provider.AssertNotCalled(t, "ActiveBySlug", mock.Anything, mock.Anything)
	})
}

func TestAuth_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips storage", func(t *testing.T) {
		provider := new(MockTenantProvider)
		cache := new(MockTenantCache)
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		cache.On("BySlug", ctx, "anna-and-tom").Return(w, nil).Once()

		a, _ := newTestAuth(provider, cache)

		got, err := a.ResolveBySlug(ctx, "anna-and-tom")
		require.NoError(t, err)
		assert.Equal(t, w, got)
		provider.AssertNotCalled(t, "ActiveBySlug", mock.Anything, mock.Anything)
	})

	t.Run("miss fills cache", func(t *testing.T) {
		provider := new(MockTenantProvider)
		cache := new(MockTenantCache)
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		hash := HashAPIKey(testAPIKey)

		cache.On("ByAPIKeyHash", ctx, hash).Return(nil, storage.ErrCacheMiss).Once()
		provider.On("ActiveByAPIKeyHash", ctx, hash).Return(w, nil).Once()
		cache.On("Put", ctx, w).Return(nil).Once()

		a, _ := newTestAuth(provider, cache)

		_, err := a.ResolveByAPIKey(ctx, testAPIKey)
		require.NoError(t, err)
		cache.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("cache failure falls back to storage", func(t *testing.T) {
		provider := new(MockTenantProvider)
		cache := new(MockTenantCache)
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))

		cache.On("BySlug", ctx, "anna-and-tom").Return(nil, errors.New("redis down")).Once()
		provider.On("ActiveBySlug", ctx, "anna-and-tom").Return(w, nil).Once()
		cache.On("Put", ctx, w).Return(errors.New("redis down")).Once()

		a, _ := newTestAuth(provider, cache)

		got, err := a.ResolveBySlug(ctx, "anna-and-tom")
		require.NoError(t, err)
		assert.Equal(t, w, got)
	})

	t.Run("stale cached entry is ignored", func(t *testing.T) {
		provider := new(MockTenantProvider)
		cache := new(MockTenantCache)

		cache.On("BySlug", ctx, "old").Return(wedding("old", true, testNow.Add(-time.Second)), nil).Once()
		provider.On("ActiveBySlug", ctx, "old").Return(nil, storage.ErrWeddingNotFound).Once()

		a, _ := newTestAuth(provider, cache)

		_, err := a.ResolveBySlug(ctx, "old")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestAuth_AuthorizeSlugConsistency(t *testing.T) {
	ctx := context.Background()

	t.Run("key tenant matches path", func(t *testing.T) {
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		ac := &models.AccessContext{Wedding: w, Slug: w.Slug, Tier: models.TierTenantAdmin}

		a, _ := newTestAuth(new(MockTenantProvider), nil)

		got, err := a.AuthorizeSlugConsistency(ctx, ac, "anna-and-tom")
		require.NoError(t, err)
		assert.Equal(t, models.TierTenantAdmin, got.Tier)
	})

	t.Run("key tenant mismatches path", func(t *testing.T) {
		w := wedding("anna-and-tom", true, testNow.Add(time.Hour))
		ac := &models.AccessContext{Wedding: w, Slug: w.Slug, Tier: models.TierTenantAdmin}

		a, rec := newTestAuth(new(MockTenantProvider), nil)

		_, err := a.AuthorizeSlugConsistency(ctx, ac, "kate-and-bob")
		require.Error(t, err)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		assert.Equal(t, []events.Name{events.AuthDenied}, rec.Names())
	})

	t.Run("falls back to slug resolution", func(t *testing.T) {
		provider := new(MockTenantProvider)
		w := wedding("kate-and-bob", true, testNow.Add(time.Hour))
		provider.On("ActiveBySlug", ctx, "kate-and-bob").Return(w, nil).Once()

		a, _ := newTestAuth(provider, nil)

		got, err := a.AuthorizeSlugConsistency(ctx, &models.AccessContext{}, "kate-and-bob")
		require.NoError(t, err)
		assert.Equal(t, models.TierPublic, got.Tier)
		assert.Equal(t, "kate-and-bob", got.Slug)
	})
}

func TestAuth_AuthorizeSuperAdmin(t *testing.T) {
	ctx := context.Background()

	a, rec := newTestAuth(new(MockTenantProvider), nil)

	assert.NoError(t, a.AuthorizeSuperAdmin(ctx, testAdminSecret))

	for _, presented := range []string{"", "super", testAdminSecret + " "} {
		err := a.AuthorizeSuperAdmin(ctx, presented)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err), presented)
	}
	assert.Len(t, rec.Events(), 3)

	t.Run("empty configured secret rejects everything", func(t *testing.T) {
		open := New(testLogger(), new(MockTenantProvider), nil, "", &events.MemoryRecorder{})
		assert.Error(t, open.AuthorizeSuperAdmin(ctx, ""))
	})
}
