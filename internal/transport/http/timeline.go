package http

import (
	"log/slog"
	"net/http"

	"wedding_service/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// ListTimeline godoc
// @Summary Программа свадьбы
// @Tags Программа
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Success 200 {object} response.Response{data=[]models.TimelineEvent}
// @Failure 404 {object} response.ErrorResponse "Свадьба не найдена или истекла"
// @Router /weddings/{slug}/timeline [get]
func (r *Routers) ListTimeline(c echo.Context) error {
	const op = "http.routers.ListTimeline"

	ac := access(c)

	list, err := r.TimelineService.ListEvents(c.Request().Context(), ac.Slug)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op), slog.String("slug", ac.Slug)), err)
	}

	return success(c, http.StatusOK, list)
}

// AddTimelineEvent godoc
// @Summary Добавить событие программы
// @Tags Программа
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param request body dto.TimelineEventRequest true "Событие"
// @Success 201 {object} response.Response{data=models.TimelineEvent}
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/timeline [post]
func (r *Routers) AddTimelineEvent(c echo.Context) error {
	const op = "http.routers.AddTimelineEvent"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var req dto.TimelineEventRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	e, err := r.TimelineService.AddEvent(c.Request().Context(), ac.Slug, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusCreated, e)
}

// UpdateTimelineEvent godoc
// @Summary Изменить событие программы
// @Tags Программа
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param eventId path string true "ID события" format(uuid)
// @Param request body dto.TimelineEventRequest true "Событие"
// @Success 200 {object} response.Response{data=models.TimelineEvent}
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/timeline/{eventId} [put]
func (r *Routers) UpdateTimelineEvent(c echo.Context) error {
	const op = "http.routers.UpdateTimelineEvent"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "eventId")
	if err != nil {
		return fail(c, log, err)
	}

	var req dto.TimelineEventRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	e, err := r.TimelineService.UpdateEvent(c.Request().Context(), ac.Slug, id, req)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, e)
}

// DeleteTimelineEvent godoc
// @Summary Удалить событие программы
// @Tags Программа
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param eventId path string true "ID события" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/timeline/{eventId} [delete]
func (r *Routers) DeleteTimelineEvent(c echo.Context) error {
	const op = "http.routers.DeleteTimelineEvent"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "eventId")
	if err != nil {
		return fail(c, log, err)
	}

	if err := r.TimelineService.DeleteEvent(c.Request().Context(), ac.Slug, id); err != nil {
		return fail(c, log, err)
	}

	return message(c, "Timeline event deleted successfully")
}
