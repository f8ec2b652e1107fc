package rest

import (
	"net/http"

	"antena/config"
	"antena/domain"

	"github.com/labstack/echo/v4"
)

type StationHandler struct {
	stations []domain.Station
	cache    config.CacheConfig
}

func NewStationHandler(stations []domain.Station, cache config.CacheConfig) *StationHandler {
	return &StationHandler{stations: stations, cache: cache}
}

// GetStations serves the static station directory.
func (h *StationHandler) GetStations(c echo.Context) error {
	setCacheHeaders(c, h.cache)

	stations := h.stations
	if stations == nil {
		stations = []domain.Station{}
	}

	return c.JSON(http.StatusOK, StationsResponse{Stations: stations})
}
