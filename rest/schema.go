package rest

import "antena/domain"

// Feed responses always answer 200; failures travel in the error field so
// CDN and client code handle one shape. Error is a pointer so success
// serializes as JSON null.

type NewsResponse struct {
	Items     []*domain.ContentItem `json:"items"`
	Page      int                   `json:"page"`
	PageCount int                   `json:"pageCount"`
	Error     *string               `json:"error"`
}

type VideosResponse struct {
	Items     []*domain.VideoItem `json:"items"`
	Page      int                 `json:"page"`
	PageCount int                 `json:"pageCount"`
	Source    string              `json:"source"`
	Error     *string             `json:"error"`
}

type StationsResponse struct {
	Stations []domain.Station `json:"stations"`
}

// ProxyErrorResponse is the JSON body for image proxy failures; successful
// proxy responses are raw image bytes.
type ProxyErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
