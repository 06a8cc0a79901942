package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

type statusMapping struct {
	status int
	// generic заменяет сообщение ошибки для вызывающего; пустое значит отдать как есть
	generic string
}

var statusByKind = map[apperr.Kind]statusMapping{
	apperr.KindBadRequest:      {status: http.StatusBadRequest},
	apperr.KindPayloadTooLarge: {status: http.StatusRequestEntityTooLarge},
	apperr.KindUnauthorized:    {status: http.StatusUnauthorized},
	apperr.KindForbidden:       {status: http.StatusForbidden},
	apperr.KindNotFound:        {status: http.StatusNotFound},
	apperr.KindConflict:        {status: http.StatusConflict},
	apperr.KindStoreAuth:       {status: http.StatusBadGateway, generic: "media storage is unavailable"},
	apperr.KindStoreConfig:     {status: http.StatusBadGateway, generic: "media storage is unavailable"},
	apperr.KindStoreTimeout:    {status: http.StatusGatewayTimeout, generic: "media storage timed out"},
	apperr.KindStore:           {status: http.StatusBadGateway, generic: "media storage is unavailable"},
	apperr.KindTransform:       {status: http.StatusUnprocessableEntity, generic: "failed to process media file"},
	apperr.KindInternal:        {status: http.StatusInternalServerError, generic: "internal server error"},
}

// StatusFor HTTP-статус для вида ошибки.
func StatusFor(kind apperr.Kind) int {
	if m, ok := statusByKind[kind]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// fail пишет ErrorResponse. Для серверных видов текст ошибки уходит только в лог.
func fail(c echo.Context, log *slog.Logger, err error) error {
	kind := apperr.KindOf(err)

	m, ok := statusByKind[kind]
	if !ok {
		m = statusByKind[apperr.KindInternal]
	}

	details := apperr.MessageOf(err)
	if m.generic != "" {
		log.Error("request failed", slog.String("kind", string(kind)), sl.Err(err))
		details = m.generic
	} else {
		log.Warn("request rejected", slog.String("kind", string(kind)), sl.Err(err))
	}

	return c.JSON(m.status, response.ErrorResponseWithDetails(string(kind), details))
}

func badRequest(c echo.Context, details string) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(string(apperr.KindBadRequest), details))
}

// HTTPErrorHandler приводит ошибки самого echo (маршрут не найден, BodyLimit) к ErrorResponse.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			_ = fail(c, log, err)
			return
		}

		details := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok {
			details = msg
		}

		if err := c.JSON(he.Code, response.ErrorResponseWithDetails(string(kindForStatus(he.Code)), details)); err != nil {
			log.Error("failed to write error response", sl.Err(err))
		}
	}
}

func kindForStatus(status int) apperr.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperr.KindBadRequest
	case http.StatusUnauthorized:
		return apperr.KindUnauthorized
	case http.StatusForbidden:
		return apperr.KindForbidden
	case http.StatusNotFound:
		return apperr.KindNotFound
	case http.StatusConflict:
		return apperr.KindConflict
	case http.StatusRequestEntityTooLarge:
		return apperr.KindPayloadTooLarge
	}

	if status >= http.StatusInternalServerError {
		return apperr.KindInternal
	}
	return apperr.KindBadRequest
}
