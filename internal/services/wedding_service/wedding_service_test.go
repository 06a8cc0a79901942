package services_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"
	"time"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/services/auth"
	services "wedding_service/internal/services/wedding_service"
	"wedding_service/internal/storage"
	"wedding_service/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockWeddingRepository struct {
	mock.Mock
}

// echo при Return(nil, nil) возвращает переданную запись.
func (m *MockWeddingRepository) echo(args mock.Arguments, w *models.Wedding) (*models.Wedding, error) {
	if ret, ok := args.Get(0).(*models.Wedding); ok {
		return ret, args.Error(1)
	}
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return w, nil
}

func (m *MockWeddingRepository) CreateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error) {
	return m.echo(m.Called(ctx, w), w)
}

func (m *MockWeddingRepository) UpdateWedding(ctx context.Context, w *models.Wedding) (*models.Wedding, error) {
	return m.echo(m.Called(ctx, w), w)
}

func (m *MockWeddingRepository) ActiveBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

func (m *MockWeddingRepository) ActiveByAPIKeyHash(ctx context.Context, hash string) (*models.Wedding, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wedding), args.Error(1)
}

func (m *MockWeddingRepository) ListWeddings(ctx context.Context) ([]models.Wedding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wedding), args.Error(1)
}

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) UpsertGuest(ctx context.Context, g *models.Guest) (*models.Guest, bool, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Guest), args.Bool(1), args.Error(2)
}

func (m *MockGuestRepository) ListGuests(ctx context.Context, slug string) ([]models.Guest, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Guest), args.Error(1)
}

type MockTimelineCounter struct {
	mock.Mock
}

func (m *MockTimelineCounter) ListEvents(ctx context.Context, slug string) ([]models.TimelineEvent, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).([]models.TimelineEvent), args.Error(1)
}

func (m *MockTimelineCounter) GetEvent(ctx context.Context, slug string, id uuid.UUID) (*models.TimelineEvent, error) {
	args := m.Called(ctx, slug, id)
	return args.Get(0).(*models.TimelineEvent), args.Error(1)
}

func (m *MockTimelineCounter) CreateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(*models.TimelineEvent), args.Error(1)
}

func (m *MockTimelineCounter) UpdateEvent(ctx context.Context, e *models.TimelineEvent) (*models.TimelineEvent, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(*models.TimelineEvent), args.Error(1)
}

func (m *MockTimelineCounter) DeleteEvent(ctx context.Context, slug string, id uuid.UUID) error {
	return m.Called(ctx, slug, id).Error(0)
}

func (m *MockTimelineCounter) CountEvents(ctx context.Context, slug string) (int, error) {
	args := m.Called(ctx, slug)
	return args.Int(0), args.Error(1)
}

type MockMediaTotals struct {
	mock.Mock
}

func (m *MockMediaTotals) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	args := m.Called(ctx, media)
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaTotals) ListMedia(ctx context.Context, slug string, filter models.MediaFilter) ([]models.Media, error) {
	args := m.Called(ctx, slug, filter)
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaTotals) SetApproval(ctx context.Context, slug string, id uuid.UUID, approved bool) (*models.Media, error) {
	args := m.Called(ctx, slug, id, approved)
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaTotals) DeleteMedia(ctx context.Context, slug string, id uuid.UUID) (*models.Media, error) {
	args := m.Called(ctx, slug, id)
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaTotals) MediaTotals(ctx context.Context, slug string) (map[models.MediaCategory]models.MediaTotals, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.MediaCategory]models.MediaTotals), args.Error(1)
}

type MockGiftTotals struct {
	mock.Mock
}

func (m *MockGiftTotals) ListGifts(ctx context.Context, slug string, filter models.GiftFilter) ([]models.Gift, error) {
	args := m.Called(ctx, slug, filter)
	return args.Get(0).([]models.Gift), args.Error(1)
}

func (m *MockGiftTotals) GetGift(ctx context.Context, slug string, id uuid.UUID) (*models.Gift, error) {
	args := m.Called(ctx, slug, id)
	return args.Get(0).(*models.Gift), args.Error(1)
}

func (m *MockGiftTotals) CreateGift(ctx context.Context, g *models.Gift) (*models.Gift, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(*models.Gift), args.Error(1)
}

func (m *MockGiftTotals) UpdateGift(ctx context.Context, g *models.Gift) (*models.Gift, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(*models.Gift), args.Error(1)
}

func (m *MockGiftTotals) MarkReceived(ctx context.Context, slug string, id uuid.UUID, from, notes string, at time.Time) (*models.Gift, error) {
	args := m.Called(ctx, slug, id, from, notes, at)
	return args.Get(0).(*models.Gift), args.Error(1)
}

func (m *MockGiftTotals) DeleteGift(ctx context.Context, slug string, id uuid.UUID) error {
	return m.Called(ctx, slug, id).Error(0)
}

func (m *MockGiftTotals) CategoryTotals(ctx context.Context, slug string) (map[string]models.GiftCategoryTotals, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.GiftCategoryTotals), args.Error(1)
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
	return m.Called(ctx, w).Error(0)
}

func (m *MockTenantCache) Invalidate(ctx context.Context, w *models.Wedding) error {
	return m.Called(ctx, w).Error(0)
}

type fixture struct {
	svc      *services.WeddingService
	weddings *MockWeddingRepository
	guests   *MockGuestRepository
	timeline *MockTimelineCounter
	media    *MockMediaTotals
	gifts    *MockGiftTotals
	cache    *MockTenantCache
	rec      *events.MemoryRecorder
}

func newFixture(withCache bool) *fixture {
	f := &fixture{
		weddings: new(MockWeddingRepository),
		guests:   new(MockGuestRepository),
		timeline: new(MockTimelineCounter),
		media:    new(MockMediaTotals),
		gifts:    new(MockGiftTotals),
		cache:    new(MockTenantCache),
		rec:      &events.MemoryRecorder{},
	}

	stores := services.Stores{
		Weddings: f.weddings,
		Guests:   f.guests,
		Timeline: f.timeline,
		Media:    f.media,
		Gifts:    f.gifts,
	}

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	if withCache {
		f.svc = services.NewWeddingService(log, stores, f.cache, f.rec, "weddingservice.com")
	} else {
		f.svc = services.NewWeddingService(log, stores, nil, f.rec, "weddingservice.com")
	}

	return f
}

func ptr[T any](v T) *T { return &v }

func TestWeddingService_CreateWedding(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(false)
		f.weddings.On("CreateWedding", ctx, mock.MatchedBy(func(w *models.Wedding) bool {
			return w.Slug == "anna-and-tom" && w.IsActive && w.APIKeyHash != ""
		})).Return(nil, nil).Once()

		before := time.Now().UTC()
		w, key, err := f.svc.CreateWedding(ctx, dto.CreateWeddingRequest{
			Slug:            "anna-and-tom",
			CoupleNames:     dto.CoupleNamesInput{Groom: " Tom ", Bride: "Anna"},
			WeddingDate:     time.Date(2027, 6, 12, 15, 0, 0, 0, time.UTC),
			ExpirationYears: 2,
		})
		require.NoError(t, err)

		_, err = uuid.Parse(key)
		require.NoError(t, err, "api key is a uuid")
		assert.Equal(t, auth.HashAPIKey(key), w.APIKeyHash)
		assert.NotContains(t, w.APIKeyHash, key)
		assert.Equal(t, "Tom", w.CoupleNames.Groom)
		assert.Equal(t, models.DefaultTheme, w.Config.Theme)
		assert.Equal(t, models.DefaultPrimaryColor, w.Config.PrimaryColor)
		assert.WithinDuration(t, before.AddDate(2, 0, 0), w.ExpiresAt, time.Minute)
		assert.Equal(t, []events.Name{events.WeddingCreated}, f.rec.Names())
	})

	t.Run("default expiration and hashed passcode", func(t *testing.T) {
		f := newFixture(false)
		f.weddings.On("CreateWedding", ctx, mock.Anything).Return(nil, nil).Once()

		before := time.Now().UTC()
		w, _, err := f.svc.CreateWedding(ctx, dto.CreateWeddingRequest{
			Slug:        "kate-and-bob",
			CoupleNames: dto.CoupleNamesInput{Groom: "Bob", Bride: "Kate"},
			WeddingDate: time.Now(),
			Config: &dto.WeddingConfigInput{
				IsPrivate: ptr(true),
				Passcode:  ptr("1234"),
				Theme:     ptr("rose"),
			},
		})
		require.NoError(t, err)

		assert.WithinDuration(t, before.AddDate(1, 0, 0), w.ExpiresAt, time.Minute)
		assert.Equal(t, "rose", w.Config.Theme)
		assert.True(t, w.Config.IsPrivate)
		assert.NotEqual(t, "1234", w.Config.PasscodeHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(w.Config.PasscodeHash), []byte("1234")))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newFixture(false)
		f.weddings.On("CreateWedding", ctx, mock.Anything).
			Return(nil, fmt.Errorf("repo: %w", storage.ErrWeddingExists)).Once()

		_, key, err := f.svc.CreateWedding(ctx, dto.CreateWeddingRequest{
			Slug:        "anna-and-tom",
			CoupleNames: dto.CoupleNamesInput{Groom: "Tom", Bride: "Anna"},
			WeddingDate: time.Now(),
		})
		require.Error(t, err)
		assert.Empty(t, key)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Empty(t, f.rec.Names())
	})

	t.Run("invalid slug", func(t *testing.T) {
		f := newFixture(false)

		_, _, err := f.svc.CreateWedding(ctx, dto.CreateWeddingRequest{
			Slug:        "Anna & Tom",
			CoupleNames: dto.CoupleNamesInput{Groom: "Tom", Bride: "Anna"},
			WeddingDate: time.Now(),
		})
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
		f.weddings.AssertNotCalled(t, "CreateWedding", mock.Anything, mock.Anything)
	})
}

func existingWedding() *models.Wedding {
	return &models.Wedding{
		ID:          uuid.New(),
		Slug:        "anna-and-tom",
		CoupleNames: models.CoupleNames{Groom: "Tom", Bride: "Anna"},
		WeddingDate: time.Date(2027, 6, 12, 15, 0, 0, 0, time.UTC),
		Config: models.WeddingConfig{
			Theme:          "gold",
			PrimaryColor:   "#D4AF37",
			SecondaryColor: "#F5F5DC",
		},
		APIKeyHash: auth.HashAPIKey("key"),
		IsActive:   true,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
}

func TestWeddingService_UpdateConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update invalidates cache", func(t *testing.T) {
		f := newFixture(true)
		w := existingWedding()

		f.weddings.On("UpdateWedding", ctx, mock.AnythingOfType("*models.Wedding")).Return(nil, nil).Once()
		f.cache.On("Invalidate", ctx, mock.AnythingOfType("*models.Wedding")).Return(nil).Once()

		got, err := f.svc.UpdateConfig(ctx, w, dto.UpdateWeddingConfigRequest{
			CoupleNames: &dto.CoupleNamesUpdate{Bride: ptr(" Annie ")},
			Config: &dto.WeddingConfigInput{
				IsPrivate: ptr(true),
				Passcode:  ptr("9876"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Annie", got.CoupleNames.Bride)
		assert.Equal(t, "Tom", got.CoupleNames.Groom)
		assert.Equal(t, "gold", got.Config.Theme)
		assert.True(t, got.Config.IsPrivate)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Config.PasscodeHash), []byte("9876")))
		assert.Equal(t, "Anna", w.CoupleNames.Bride, "input wedding is not mutated")

		f.cache.AssertExpectations(t)
	})

	t.Run("cache failure does not fail the update", func(t *testing.T) {
		f := newFixture(true)

		f.weddings.On("UpdateWedding", ctx, mock.Anything).Return(nil, nil).Once()
		f.cache.On("Invalidate", ctx, mock.Anything).Return(fmt.Errorf("redis down")).Once()

		_, err := f.svc.UpdateConfig(ctx, existingWedding(), dto.UpdateWeddingConfigRequest{
			Config: &dto.WeddingConfigInput{Theme: ptr("blue")},
		})
		require.NoError(t, err)
	})

	t.Run("without cache", func(t *testing.T) {
		f := newFixture(false)
		f.weddings.On("UpdateWedding", ctx, mock.Anything).Return(nil, nil).Once()

		got, err := f.svc.UpdateConfig(ctx, existingWedding(), dto.UpdateWeddingConfigRequest{
			Config: &dto.WeddingConfigInput{CustomDomain: ptr("anna-tom.love")},
		})
		require.NoError(t, err)
		assert.Equal(t, "anna-tom.love", got.Config.CustomDomain)
	})

	t.Run("missing wedding", func(t *testing.T) {
		f := newFixture(false)
		f.weddings.On("UpdateWedding", ctx, mock.Anything).Return(nil, storage.ErrWeddingNotFound).Once()

		_, err := f.svc.UpdateConfig(ctx, existingWedding(), dto.UpdateWeddingConfigRequest{})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestWeddingService_CheckPasscode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	require.NoError(t, err)

	private := existingWedding()
	private.Config.IsPrivate = true
	private.Config.PasscodeHash = string(hash)

	tests := []struct {
		name      string
		wedding   *models.Wedding
		passcode  string
		wantValid bool
		wantKind  apperr.Kind
	}{
		{name: "public wedding", wedding: existingWedding(), passcode: "", wantValid: true},
		{name: "correct passcode", wedding: private, passcode: "4321", wantValid: true},
		{name: "wrong passcode", wedding: private, passcode: "0000", wantValid: false},
		{name: "empty passcode", wedding: private, passcode: "", wantKind: apperr.KindBadRequest},
	}

	f := newFixture(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.CheckPasscode(context.Background(), tt.wedding, tt.passcode)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func decodeQR(t *testing.T, dataURL string) image.Image {
	t.Helper()

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func hasColor(img image.Image, want color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) == want {
				return true
			}
		}
	}
	return false
}

func TestWeddingService_QRCode(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	t.Run("subdomain url in primary color", func(t *testing.T) {
		got, err := f.svc.QRCode(ctx, existingWedding())
		require.NoError(t, err)
		assert.Equal(t, "https://anna-and-tom.weddingservice.com", got.URL)

		img := decodeQR(t, got.QRCode)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.True(t, hasColor(img, color.RGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xff}))
	})

	t.Run("custom domain, black fallback", func(t *testing.T) {
		w := existingWedding()
		w.Config.CustomDomain = "anna-tom.love"
		w.Config.PrimaryColor = ""

		got, err := f.svc.QRCode(ctx, w)
		require.NoError(t, err)
		assert.Equal(t, "https://anna-tom.love", got.URL)
		assert.True(t, hasColor(decodeQR(t, got.QRCode), color.RGBA{A: 0xff}))
	})
}

func TestWeddingService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	slug := "anna-and-tom"

	f.guests.On("ListGuests", ctx, slug).Return([]models.Guest{
		{Name: "A", Attending: true, PlusOne: true},
		{Name: "B", Attending: true},
		{Name: "C", Attending: false},
	}, nil).Once()
	f.timeline.On("CountEvents", ctx, slug).Return(4, nil).Once()
	f.media.On("MediaTotals", ctx, slug).Return(map[models.MediaCategory]models.MediaTotals{
		models.CategoryGuestUpload: {Count: 2, TotalSize: 2048},
	}, nil).Once()
	f.gifts.On("CategoryTotals", ctx, slug).Return(map[string]models.GiftCategoryTotals{
		"kitchen": {Total: 3, Received: 1},
		"travel":  {Total: 2, Received: 2},
	}, nil).Once()

	stats, err := f.svc.Stats(ctx, slug)
	require.NoError(t, err)

	assert.Equal(t, models.GuestStats{Total: 3, Attending: 2, NotAttending: 1, WithPlusOne: 1}, stats.Guests)
	assert.Equal(t, 4, stats.TimelineEvents)
	assert.Equal(t, int64(2048), stats.Media[models.CategoryGuestUpload].TotalSize)
	assert.Equal(t, models.GiftTotals{Total: 5, Received: 3, Pending: 2}, stats.Gifts)
}

func TestWeddingService_StatsError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	f.guests.On("ListGuests", ctx, "x").Return(nil, fmt.Errorf("db down")).Once()

	_, err := f.svc.Stats(ctx, "x")
	require.Error(t, err)
	f.timeline.AssertNotCalled(t, "CountEvents", mock.Anything, mock.Anything)
}
