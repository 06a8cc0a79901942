package http

import (
	"log/slog"
	"net/http"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// CreateWedding godoc
// @Summary Создание свадьбы
// @Description Создает тенанта и выдает API-ключ. Ключ показывается только в этом ответе.
// @Tags Свадьбы
// @Accept json
// @Produce json
// @Param request body dto.CreateWeddingRequest true "Данные свадьбы"
// @Success 201 {object} response.Response{data=dto.CreateWeddingResponse}
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Неверный секрет администратора"
// @Failure 409 {object} response.ErrorResponse "Slug уже занят"
// @Security AdminSecret
// @Router /weddings [post]
func (r *Routers) CreateWedding(c echo.Context) error {
	const op = "http.routers.CreateWedding"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateWeddingRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	w, key, err := r.WeddingService.CreateWedding(c.Request().Context(), req)
	if err != nil {
		return fail(c, log, err)
	}

	created := w.Redacted()

	return success(c, http.StatusCreated, dto.CreateWeddingResponse{
		Message: "Wedding created successfully",
		Wedding: &created,
		APIKey:  key,
	})
}

// ListWeddings godoc
// @Summary Список свадеб
// @Tags Свадьбы
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Wedding}
// @Failure 401 {object} response.ErrorResponse "Неверный секрет администратора"
// @Security AdminSecret
// @Router /weddings [get]
func (r *Routers) ListWeddings(c echo.Context) error {
	const op = "http.routers.ListWeddings"

	list, err := r.WeddingService.ListWeddings(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	for i := range list {
		list[i] = list[i].Redacted()
	}

	return success(c, http.StatusOK, list)
}

// WeddingStats godoc
// @Summary Статистика свадьбы
// @Description Гости, события программы, медиа по категориям и подарки.
// @Tags Свадьбы
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=models.WeddingStats}
// @Failure 401 {object} response.ErrorResponse "Неверный секрет администратора"
// @Security AdminSecret
// @Router /weddings/{slug}/stats [get]
func (r *Routers) WeddingStats(c echo.Context) error {
	const op = "http.routers.WeddingStats"

	slug := c.Param("slug")
	log := r.log.With(slog.String("op", op), slog.String("slug", slug))

	if !models.ValidSlug(slug) {
		return fail(c, log, apperr.New(apperr.KindNotFound, "wedding not found"))
	}

	stats, err := r.WeddingService.Stats(c.Request().Context(), slug)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, stats)
}

// GetConfig godoc
// @Summary Конфигурация свадьбы
// @Description Публичные данные для фронтенда. Истекшая свадьба дает 404.
// @Tags Свадьбы
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=models.PublicConfig}
// @Failure 404 {object} response.ErrorResponse "Свадьба не найдена или истекла"
// @Router /weddings/{slug}/config [get]
func (r *Routers) GetConfig(c echo.Context) error {
	return success(c, http.StatusOK, access(c).Wedding.PublicConfig())
}

// UpdateConfig godoc
// @Summary Обновление конфигурации
// @Description Частичное обновление имен, даты и настроек. Пасскод хранится в виде хэша.
// @Tags Свадьбы
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param request body dto.UpdateWeddingConfigRequest true "Изменения"
// @Success 200 {object} response.Response{data=models.PublicConfig}
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Неверный API-ключ"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/config [put]
func (r *Routers) UpdateConfig(c echo.Context) error {
	const op = "http.routers.UpdateConfig"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var req dto.UpdateWeddingConfigRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	w, err := r.WeddingService.UpdateConfig(c.Request().Context(), ac.Wedding, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, w.PublicConfig())
}

// CheckPasscode godoc
// @Summary Проверка пасскода
// @Tags Свадьбы
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param request body dto.CheckPasscodeRequest true "Пасскод"
// @Success 200 {object} response.Response{data=dto.CheckPasscodeResponse}
// @Failure 400 {object} response.ErrorResponse "Пасскод не передан"
// @Router /weddings/{slug}/check-passcode [post]
func (r *Routers) CheckPasscode(c echo.Context) error {
	const op = "http.routers.CheckPasscode"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var req dto.CheckPasscodeRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	res, err := r.WeddingService.CheckPasscode(c.Request().Context(), ac.Wedding, req.Passcode)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, res)
}

// QRCode godoc
// @Summary QR-код сайта свадьбы
// @Description PNG 256px в виде data URL в основном цвете свадьбы.
// @Tags Свадьбы
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=dto.QRCodeResponse}
// @Router /weddings/{slug}/qr-code [get]
func (r *Routers) QRCode(c echo.Context) error {
	const op = "http.routers.QRCode"

	ac := access(c)

	res, err := r.WeddingService.QRCode(c.Request().Context(), ac.Wedding)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op), slog.String("slug", ac.Slug)), err)
	}

	return success(c, http.StatusOK, res)
}
