// Package rest wires the HTTP surface: routing, middleware, handlers, and
// the always-200 response envelopes.
package rest

import (
	"antena/config"
	"antena/di"
	custommiddleware "antena/middleware"
	"antena/utils/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance with the full middleware chain and all
// route registrations.
func NewRouter(cfg *config.Config, components *di.ApplicationComponents) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(custommiddleware.LoggingMiddleware(logger.NewContextLogger(logger.Logger)))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.OPTIONS},
	}))
	e.Use(echomiddleware.Gzip())

	newsHandler := NewNewsHandler(components.FetchNewsUsecase, cfg.Cache)
	videoHandler := NewVideoHandler(components.FetchVideosUsecase, cfg.Cache)
	stationHandler := NewStationHandler(cfg.Stations, cfg.Cache)

	v1 := e.Group("/v1")
	v1.GET("/health", healthCheck)
	v1.GET("/news", newsHandler.GetNews)
	v1.GET("/videos", videoHandler.GetVideos)
	v1.GET("/stations", stationHandler.GetStations)

	if cfg.ImageProxy.Enabled {
		imageHandler := NewImageProxyHandler(components.ImageProxyUsecase)
		v1.GET("/images/proxy", imageHandler.GetImage)
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
