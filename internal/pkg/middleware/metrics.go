package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency by route template
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
