package http

import (
	"log/slog"
	"net/http"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListGifts godoc
// @Summary Список подарков
// @Tags Подарки
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param category query string false "Категория или all"
// @Param received query boolean false "Фильтр по получению"
// @Success 200 {object} response.Response{data=[]models.Gift}
// @Router /weddings/{slug}/gifts [get]
func (r *Routers) ListGifts(c echo.Context) error {
	const op = "http.routers.ListGifts"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var q dto.ListGiftsQuery
	if err := r.bindQuery(c, &q); err != nil {
		return fail(c, log, err)
	}

	filter := models.GiftFilter{Category: q.Category}
	if q.Received != "" {
		received := q.Received == "true"
		filter.Received = &received
	}

	list, err := r.GiftService.ListGifts(c.Request().Context(), ac.Slug, filter)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, list)
}

// AddGift godoc
// @Summary Добавить подарок
// @Tags Подарки
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param request body dto.GiftRequest true "Подарок"
// @Success 201 {object} response.Response{data=models.Gift}
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/gifts [post]
func (r *Routers) AddGift(c echo.Context) error {
	const op = "http.routers.AddGift"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var req dto.GiftRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	g, err := r.GiftService.AddGift(c.Request().Context(), ac.Slug, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusCreated, g)
}

// UpdateGift godoc
// @Summary Изменить подарок
// @Tags Подарки
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param giftId path string true "ID подарка" format(uuid)
// @Param request body dto.GiftRequest true "Подарок"
// @Success 200 {object} response.Response{data=models.Gift}
// @Failure 404 {object} response.ErrorResponse "Подарок не найден"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/gifts/{giftId} [put]
func (r *Routers) UpdateGift(c echo.Context) error {
	const op = "http.routers.UpdateGift"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "giftId")
	if err != nil {
		return fail(c, log, err)
	}

	var req dto.GiftRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	g, err := r.GiftService.UpdateGift(c.Request().Context(), ac.Slug, id, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, g)
}

// MarkGiftReceived godoc
// @Summary Отметить подарок полученным
// @Tags Подарки
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param giftId path string true "ID подарка" format(uuid)
// @Param request body dto.MarkReceivedRequest false "От кого и заметки"
// @Success 200 {object} response.Response{data=models.Gift}
// @Failure 404 {object} response.ErrorResponse "Подарок не найден"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/gifts/{giftId}/received [put]
func (r *Routers) MarkGiftReceived(c echo.Context) error {
	const op = "http.routers.MarkGiftReceived"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "giftId")
	if err != nil {
		return fail(c, log, err)
	}

	var req dto.MarkReceivedRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	g, err := r.GiftService.MarkReceived(c.Request().Context(), ac.Slug, id, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, g)
}

// DeleteGift godoc
// @Summary Удалить подарок
// @Tags Подарки
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param giftId path string true "ID подарка" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Подарок не найден"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/gifts/{giftId} [delete]
func (r *Routers) DeleteGift(c echo.Context) error {
	const op = "http.routers.DeleteGift"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "giftId")
	if err != nil {
		return fail(c, log, err)
	}

	if err := r.GiftService.DeleteGift(c.Request().Context(), ac.Slug, id); err != nil {
		return fail(c, log, err)
	}

	return message(c, "Gift deleted successfully")
}

// GiftStats godoc
// @Summary Статистика подарков
// @Tags Подарки
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=models.GiftStats}
// @Security ApiKeyAuth
// @Router /weddings/{slug}/gifts/stats [get]
func (r *Routers) GiftStats(c echo.Context) error {
	const op = "http.routers.GiftStats"

	ac := access(c)

	stats, err := r.GiftService.Stats(c.Request().Context(), ac.Slug)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op), slog.String("slug", ac.Slug)), err)
	}

	return success(c, http.StatusOK, stats)
}
