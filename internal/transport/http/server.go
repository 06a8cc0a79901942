package http

import (
	"context"
	"log/slog"
	"net/http"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/transport/http/dto"
	"wedding_service/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderAPIKey      = "X-API-Key"
	HeaderAdminSecret = "X-Admin-Secret"

	accessContextKey = "access"
)

type AccessAuthorizer interface {
	ResolveByAPIKey(ctx context.Context, key string) (*models.Wedding, error)
	AuthorizeSlugConsistency(ctx context.Context, ac *models.AccessContext, pathSlug string) (*models.AccessContext, error)
	AuthorizeSuperAdmin(ctx context.Context, presented string) error
}

type MediaService interface {
	UploadMedia(ctx context.Context, input dto.MediaUploadInput) (*models.Media, error)
	ListPublicMedia(ctx context.Context, slug, category string) ([]models.Media, error)
	ListAllMedia(ctx context.Context, slug string, filter models.MediaFilter) ([]models.Media, error)
	SetApproval(ctx context.Context, slug string, mediaID uuid.UUID, approved bool) (*models.Media, error)
	DeleteMedia(ctx context.Context, slug string, mediaID uuid.UUID) error
}

type WeddingService interface {
	CreateWedding(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, string, error)
	ListWeddings(ctx context.Context) ([]models.Wedding, error)
	UpdateConfig(ctx context.Context, w *models.Wedding, req dto.UpdateWeddingConfigRequest) (*models.Wedding, error)
	CheckPasscode(ctx context.Context, w *models.Wedding, passcode string) (*dto.CheckPasscodeResponse, error)
	QRCode(ctx context.Context, w *models.Wedding) (*dto.QRCodeResponse, error)
	Stats(ctx context.Context, slug string) (*models.WeddingStats, error)
}

type GuestService interface {
	SubmitRSVP(ctx context.Context, slug string, req dto.RSVPRequest) (*models.Guest, bool, error)
	ListGuests(ctx context.Context, slug string) ([]models.Guest, models.GuestStats, error)
}

type TimelineService interface {
	ListEvents(ctx context.Context, slug string) ([]models.TimelineEvent, error)
	AddEvent(ctx context.Context, slug string, req dto.TimelineEventRequest) (*models.TimelineEvent, error)
	UpdateEvent(ctx context.Context, slug string, id uuid.UUID, req dto.TimelineEventRequest) (*models.TimelineEvent, error)
	DeleteEvent(ctx context.Context, slug string, id uuid.UUID) error
}

type GiftService interface {
	ListGifts(ctx context.Context, slug string, filter models.GiftFilter) ([]models.Gift, error)
	AddGift(ctx context.Context, slug string, req dto.GiftRequest) (*models.Gift, error)
	UpdateGift(ctx context.Context, slug string, id uuid.UUID, req dto.GiftRequest) (*models.Gift, error)
	MarkReceived(ctx context.Context, slug string, id uuid.UUID, req dto.MarkReceivedRequest) (*models.Gift, error)
	DeleteGift(ctx context.Context, slug string, id uuid.UUID) error
	Stats(ctx context.Context, slug string) (*models.GiftStats, error)
}

type Routers struct {
	log             *slog.Logger
	Auth            AccessAuthorizer
	MediaService    MediaService
	WeddingService  WeddingService
	GuestService    GuestService
	TimelineService TimelineService
	GiftService     GiftService
}

func NewRouter(
	log *slog.Logger,
	auth AccessAuthorizer,
	mediaService MediaService,
	weddingService WeddingService,
	guestService GuestService,
	timelineService TimelineService,
	giftService GiftService,
) *Routers {
	return &Routers{
		log:             log,
		Auth:            auth,
		MediaService:    mediaService,
		WeddingService:  weddingService,
		GuestService:    guestService,
		TimelineService: timelineService,
		GiftService:     giftService,
	}
}

// Register вешает все маршруты сервиса на группу /weddings.
func (r *Routers) Register(e *echo.Echo) {
	w := e.Group("/weddings")

	w.POST("", r.CreateWedding, r.SuperAdmin)
	w.GET("", r.ListWeddings, r.SuperAdmin)
	w.GET("/:slug/stats", r.WeddingStats, r.SuperAdmin)

	w.GET("/:slug/config", r.GetConfig, r.PublicTenant)
	w.GET("/:slug/timeline", r.ListTimeline, r.PublicTenant)
	w.POST("/:slug/rsvp", r.SubmitRSVP, r.PublicTenant)
	w.POST("/:slug/upload-media", r.UploadGuestMedia, r.PublicTenant)
	w.GET("/:slug/media", r.ListPublicMedia, r.PublicTenant)
	w.GET("/:slug/gifts", r.ListGifts, r.PublicTenant)
	w.POST("/:slug/check-passcode", r.CheckPasscode, r.PublicTenant)
	w.GET("/:slug/qr-code", r.QRCode, r.PublicTenant)

	w.GET("/:slug/guests", r.ListGuests, r.TenantAdmin)
	w.GET("/:slug/media/all", r.ListAllMedia, r.TenantAdmin)
	w.PUT("/:slug/config", r.UpdateConfig, r.TenantAdmin)
	w.POST("/:slug/timeline", r.AddTimelineEvent, r.TenantAdmin)
	w.PUT("/:slug/timeline/:eventId", r.UpdateTimelineEvent, r.TenantAdmin)
	w.DELETE("/:slug/timeline/:eventId", r.DeleteTimelineEvent, r.TenantAdmin)
	w.POST("/:slug/upload-official", r.UploadOfficialMedia, r.TenantAdmin)
	w.PUT("/:slug/media/:mediaId/moderate", r.ModerateMedia, r.TenantAdmin)
	w.DELETE("/:slug/media/:mediaId", r.DeleteMedia, r.TenantAdmin)
	w.POST("/:slug/gifts", r.AddGift, r.TenantAdmin)
	w.GET("/:slug/gifts/stats", r.GiftStats, r.TenantAdmin)
	w.PUT("/:slug/gifts/:giftId", r.UpdateGift, r.TenantAdmin)
	w.PUT("/:slug/gifts/:giftId/received", r.MarkGiftReceived, r.TenantAdmin)
	w.DELETE("/:slug/gifts/:giftId", r.DeleteGift, r.TenantAdmin)
}

// PublicTenant определяет тенанта по slug из пути.
func (r *Routers) PublicTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := r.log.With(slog.String("op", "http.routers.PublicTenant"))

		ac, err := r.Auth.AuthorizeSlugConsistency(c.Request().Context(), &models.AccessContext{Tier: models.TierPublic}, c.Param("slug"))
		if err != nil {
			return fail(c, log, err)
		}

		c.Set(accessContextKey, ac)
		return next(c)
	}
}

// TenantAdmin требует X-API-Key, принадлежащий свадьбе из пути.
func (r *Routers) TenantAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := r.log.With(slog.String("op", "http.routers.TenantAdmin"))
		ctx := c.Request().Context()

		w, err := r.Auth.ResolveByAPIKey(ctx, c.Request().Header.Get(HeaderAPIKey))
		if err != nil {
			return fail(c, log, err)
		}

		ac, err := r.Auth.AuthorizeSlugConsistency(ctx, &models.AccessContext{
			Wedding: w,
			Slug:    w.Slug,
			Tier:    models.TierTenantAdmin,
		}, c.Param("slug"))
		if err != nil {
			return fail(c, log, err)
		}

		c.Set(accessContextKey, ac)
		return next(c)
	}
}

func (r *Routers) SuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := r.log.With(slog.String("op", "http.routers.SuperAdmin"))

		if err := r.Auth.AuthorizeSuperAdmin(c.Request().Context(), c.Request().Header.Get(HeaderAdminSecret)); err != nil {
			return fail(c, log, err)
		}

		c.Set(accessContextKey, &models.AccessContext{Tier: models.TierSuperAdmin})
		return next(c)
	}
}

// access контекст доступа, положенный middleware.
func access(c echo.Context) *models.AccessContext {
	ac, _ := c.Get(accessContextKey).(*models.AccessContext)
	return ac
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindBadRequest, "invalid "+name, err)
	}
	return id, nil
}

// bindValid разбирает тело и проверяет его тегами validate.
func bindValid(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, "invalid request format", err)
	}
	if err := c.Validate(req); err != nil {
		return apperr.New(apperr.KindBadRequest, "validation failed: "+err.Error())
	}
	return nil
}

func success(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, response.SuccessResponse(data))
}

func message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: msg})
}
