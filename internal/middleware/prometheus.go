package middleware

import (
	"errors"
	"strconv"
	"time"

	"wedding_service/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics считает запросы по шаблону маршрута, а не по сырому пути,
// чтобы slug и id не раздували кардинальность.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else {
				status = 500
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(duration)

		return err
	}
}
