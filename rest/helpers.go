package rest

import (
	"fmt"
	"strconv"

	"antena/config"

	"github.com/labstack/echo/v4"
)

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// setCacheHeaders advertises the CDN caching policy. Responses may be
// served stale for the revalidation window while a refresh happens in the
// background.
func setCacheHeaders(c echo.Context, cfg config.CacheConfig) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf(
		"public, s-maxage=%d, stale-while-revalidate=%d",
		int(cfg.ResponseTTL.Seconds()),
		int(cfg.StaleWhileRevalidate.Seconds()),
	))
}
