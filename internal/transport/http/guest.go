package http

import (
	"log/slog"
	"net/http"

	"wedding_service/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// SubmitRSVP godoc
// @Summary Ответ на приглашение
// @Description Повторный ответ с тем же именем обновляет прежний (200), новый создается (201).
// @Tags Гости
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param request body dto.RSVPRequest true "Ответ гостя"
// @Success 200 {object} response.Response{data=dto.RSVPResponse} "Ответ обновлен"
// @Success 201 {object} response.Response{data=dto.RSVPResponse} "Ответ принят"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Router /weddings/{slug}/rsvp [post]
func (r *Routers) SubmitRSVP(c echo.Context) error {
	const op = "http.routers.SubmitRSVP"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var req dto.RSVPRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	guest, created, err := r.GuestService.SubmitRSVP(c.Request().Context(), ac.Slug, req)
	if err != nil {
		return fail(c, log, err)
	}

	if created {
		return success(c, http.StatusCreated, dto.RSVPResponse{Message: "RSVP submitted successfully", Guest: guest})
	}
	return success(c, http.StatusOK, dto.RSVPResponse{Message: "RSVP updated successfully", Guest: guest})
}

// ListGuests godoc
// @Summary Список гостей
// @Tags Гости
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=dto.GuestListResponse}
// @Failure 401 {object} response.ErrorResponse "Неверный API-ключ"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/guests [get]
func (r *Routers) ListGuests(c echo.Context) error {
	const op = "http.routers.ListGuests"

	ac := access(c)

	guests, stats, err := r.GuestService.ListGuests(c.Request().Context(), ac.Slug)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op), slog.String("slug", ac.Slug)), err)
	}

	return success(c, http.StatusOK, dto.GuestListResponse{Guests: guests, Stats: stats})
}
