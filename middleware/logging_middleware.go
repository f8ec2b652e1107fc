package middleware

import (
	"time"

	"antena/utils/logger"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed constantly by orchestrators and scrapers; logging
// them would drown out real traffic.
var quietPaths = map[string]struct{}{
	"/v1/health": {},
	"/metrics":   {},
}

// LoggingMiddleware logs one line per request with the request id picked up
// from the context.
func LoggingMiddleware(contextLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, quiet := quietPaths[c.Request().URL.Path]; quiet {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			log := contextLogger.WithContext(c.Request().Context())
			log.Info("request completed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds())

			return err
		}
	}
}
