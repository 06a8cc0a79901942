package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/repository"
	"wedding_service/internal/storage"
	"wedding_service/internal/storage/postgresql"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testCtx = context.Background()
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf(
		"postgres://test:test@%s:%s/testdb?sslmode=disable",
		host, port.Port(),
	)

	pool, err := pgxpool.Connect(ctx, connStr)
	require.NoError(t, err)

	// Применяем миграции
	require.NoError(t, postgresql.Migrate(ctx, pool))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func newWedding(slug string, expiresAt time.Time, active bool) *models.Wedding {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &models.Wedding{
		ID:          uuid.New(),
		Slug:        slug,
		CoupleNames: models.CoupleNames{Groom: gofakeit.FirstName(), Bride: gofakeit.FirstName()},
		WeddingDate: now.AddDate(0, 3, 0),
		Config:      models.WeddingConfig{IsPrivate: true, PasscodeHash: "hash"}.WithDefaults(),
		APIKeyHash:  gofakeit.UUID(),
		IsActive:    active,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newMedia(slug string, category models.MediaCategory, approved bool) *models.Media {
	width, height := 1200, 800
	thumb := "https://cdn.example.com/" + slug + "/thumb_x.jpg"

	return &models.Media{
		ID:               uuid.New(),
		WeddingSlug:      slug,
		UploaderName:     gofakeit.Name(),
		Type:             models.MediaTypeImage,
		URL:              "https://cdn.example.com/" + slug + "/x.jpg",
		ThumbnailURL:     &thumb,
		Filename:         uuid.NewString() + ".jpg",
		OriginalFilename: "IMG_0001.jpg",
		Size:             2048,
		MimeType:         "image/jpeg",
		Category:         category,
		IsApproved:       approved,
		UploadedAt:       time.Now().UTC(),
		Metadata:         models.Metadata{Width: &width, Height: &height},
	}
}

func TestRepositories(t *testing.T) {
	pool := setupTestDB(t)
	repo := repository.NewRepository(pool)

	future := time.Now().Add(365 * 24 * time.Hour).UTC()

	alpha := newWedding("alpha", future, true)
	beta := newWedding("beta", future, true)
	expired := newWedding("expired", time.Now().Add(-time.Hour).UTC(), true)
	inactive := newWedding("inactive", future, false)

	for _, w := range []*models.Wedding{alpha, beta, expired, inactive} {
		_, err := repo.Wedding.CreateWedding(testCtx, w)
		require.NoError(t, err)
	}

	t.Run("wedding: duplicate slug", func(t *testing.T) {
		dup := newWedding("alpha", future, true)
		_, err := repo.Wedding.CreateWedding(testCtx, dup)
		assert.ErrorIs(t, err, storage.ErrWeddingExists)
	})

	t.Run("wedding: active lookups", func(t *testing.T) {
		got, err := repo.Wedding.ActiveBySlug(testCtx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, alpha.ID, got.ID)
		assert.Equal(t, alpha.CoupleNames, got.CoupleNames)
		assert.Equal(t, "hash", got.Config.PasscodeHash)
		assert.Equal(t, models.DefaultTheme, got.Config.Theme)

		got, err = repo.Wedding.ActiveByAPIKeyHash(testCtx, beta.APIKeyHash)
		require.NoError(t, err)
		assert.Equal(t, "beta", got.Slug)

		for _, slug := range []string{"expired", "inactive", "missing"} {
			_, err := repo.Wedding.ActiveBySlug(testCtx, slug)
			assert.ErrorIs(t, err, storage.ErrWeddingNotFound, slug)
		}

		_, err = repo.Wedding.ActiveByAPIKeyHash(testCtx, expired.APIKeyHash)
		assert.ErrorIs(t, err, storage.ErrWeddingNotFound)
	})

	t.Run("wedding: list and update", func(t *testing.T) {
		list, err := repo.Wedding.ListWeddings(testCtx)
		require.NoError(t, err)
		assert.Len(t, list, 4)

		upd := *alpha
		upd.Config.Theme = "silver"
		upd.CoupleNames.Groom = "Ivan"

		got, err := repo.Wedding.UpdateWedding(testCtx, &upd)
		require.NoError(t, err)
		assert.Equal(t, "silver", got.Config.Theme)
		assert.Equal(t, "Ivan", got.CoupleNames.Groom)
		assert.Equal(t, alpha.APIKeyHash, got.APIKeyHash)
	})

	t.Run("media: tenant scoping", func(t *testing.T) {
		approved := newMedia("alpha", models.CategoryOfficial, true)
		pending := newMedia("alpha", models.CategoryGuestUpload, false)
		other := newMedia("beta", models.CategoryGuestUpload, true)
		other.ThumbnailURL = nil

		for _, m := range []*models.Media{approved, pending, other} {
			created, err := repo.Media.CreateMedia(testCtx, m)
			require.NoError(t, err)
			assert.Equal(t, m.ID, created.ID)
		}

		all, err := repo.Media.ListMedia(testCtx, "alpha", models.MediaFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		yes := true
		visible, err := repo.Media.ListMedia(testCtx, "alpha", models.MediaFilter{IsApproved: &yes})
		require.NoError(t, err)
		require.Len(t, visible, 1)
		assert.Equal(t, approved.ID, visible[0].ID)
		require.NotNil(t, visible[0].Metadata.Width)
		assert.Equal(t, 1200, *visible[0].Metadata.Width)

		guest, err := repo.Media.ListMedia(testCtx, "alpha", models.MediaFilter{Category: "guest-upload"})
		require.NoError(t, err)
		require.Len(t, guest, 1)
		assert.Equal(t, pending.ID, guest[0].ID)

		// чужой тенант не видит и не меняет запись
		_, err = repo.Media.SetApproval(testCtx, "beta", pending.ID, true)
		assert.ErrorIs(t, err, storage.ErrMediaNotFound)

		flipped, err := repo.Media.SetApproval(testCtx, "alpha", pending.ID, true)
		require.NoError(t, err)
		assert.True(t, flipped.IsApproved)

		totals, err := repo.Media.MediaTotals(testCtx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, models.MediaTotals{Count: 1, TotalSize: 2048}, totals[models.CategoryOfficial])

		_, err = repo.Media.DeleteMedia(testCtx, "alpha", other.ID)
		assert.ErrorIs(t, err, storage.ErrMediaNotFound)

		deleted, err := repo.Media.DeleteMedia(testCtx, "beta", other.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted.ThumbnailURL)
	})

	t.Run("guests: upsert by case-insensitive name", func(t *testing.T) {
		g := &models.Guest{ID: uuid.New(), WeddingSlug: "alpha", Name: "Maria Petrova", Attending: true, SubmittedAt: time.Now().UTC()}
		first, created, err := repo.Guest.UpsertGuest(testCtx, g)
		require.NoError(t, err)
		assert.True(t, created)

		again := &models.Guest{ID: uuid.New(), WeddingSlug: "alpha", Name: "maria petrova", Attending: false, PlusOne: true, SubmittedAt: time.Now().UTC()}
		second, created, err := repo.Guest.UpsertGuest(testCtx, again)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.False(t, second.Attending)

		// то же имя в другом тенанте это другой гость
		_, created, err = repo.Guest.UpsertGuest(testCtx, &models.Guest{ID: uuid.New(), WeddingSlug: "beta", Name: "Maria Petrova", SubmittedAt: time.Now().UTC()})
		require.NoError(t, err)
		assert.True(t, created)

		guests, err := repo.Guest.ListGuests(testCtx, "alpha")
		require.NoError(t, err)
		assert.Len(t, guests, 1)
	})

	t.Run("timeline: ordering and scoping", func(t *testing.T) {
		base := time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC)
		later := &models.TimelineEvent{ID: uuid.New(), WeddingSlug: "alpha", Title: "Reception", Time: base.Add(3 * time.Hour), Location: "Hall", EventType: models.EventTypeReception, CreatedAt: base, UpdatedAt: base}
		earlier := &models.TimelineEvent{ID: uuid.New(), WeddingSlug: "alpha", Title: "Ceremony", Time: base, Location: "Church", EventType: models.EventTypeCeremony, IsMainEvent: true, CreatedAt: base, UpdatedAt: base}

		for _, e := range []*models.TimelineEvent{later, earlier} {
			_, err := repo.Timeline.CreateEvent(testCtx, e)
			require.NoError(t, err)
		}

		events, err := repo.Timeline.ListEvents(testCtx, "alpha")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Ceremony", events[0].Title)

		upd := *later
		upd.WeddingSlug = "beta"
		_, err = repo.Timeline.UpdateEvent(testCtx, &upd)
		assert.ErrorIs(t, err, storage.ErrEventNotFound)

		assert.ErrorIs(t, repo.Timeline.DeleteEvent(testCtx, "beta", later.ID), storage.ErrEventNotFound)
		require.NoError(t, repo.Timeline.DeleteEvent(testCtx, "alpha", later.ID))

		n, err := repo.Timeline.CountEvents(testCtx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("gifts: received and totals", func(t *testing.T) {
		now := time.Now().UTC()
		toaster := &models.Gift{ID: uuid.New(), WeddingSlug: "alpha", Name: "Toaster", Category: "kitchen", Priority: models.GiftPriorityLow, CreatedAt: now, UpdatedAt: now}
		kettle := &models.Gift{ID: uuid.New(), WeddingSlug: "alpha", Name: "Kettle", Category: "kitchen", Priority: models.GiftPriorityHigh, Order: 1, CreatedAt: now, UpdatedAt: now}

		for _, g := range []*models.Gift{toaster, kettle} {
			_, err := repo.Gift.CreateGift(testCtx, g)
			require.NoError(t, err)
		}

		got, err := repo.Gift.MarkReceived(testCtx, "alpha", kettle.ID, "Aunt Olga", "", now)
		require.NoError(t, err)
		assert.True(t, got.IsReceived)
		assert.Equal(t, "Aunt Olga", got.ReceivedFrom)
		require.NotNil(t, got.ReceivedDate)

		_, err = repo.Gift.MarkReceived(testCtx, "beta", kettle.ID, "x", "", now)
		assert.ErrorIs(t, err, storage.ErrGiftNotFound)

		no := false
		pending, err := repo.Gift.ListGifts(testCtx, "alpha", models.GiftFilter{Received: &no})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Toaster", pending[0].Name)

		totals, err := repo.Gift.CategoryTotals(testCtx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, models.GiftCategoryTotals{Total: 2, Received: 1}, totals["kitchen"])

		require.NoError(t, repo.Gift.DeleteGift(testCtx, "alpha", toaster.ID))
		assert.ErrorIs(t, repo.Gift.DeleteGift(testCtx, "alpha", toaster.ID), storage.ErrGiftNotFound)
	})
}
