package rest

import (
	"net/http"

	"antena/config"
	"antena/domain"
	"antena/usecase/fetch_news_usecase"
	"antena/utils/logger"

	"github.com/labstack/echo/v4"
)

const newsUnavailableMessage = "could not load news"

type NewsHandler struct {
	usecase *fetch_news_usecase.FetchNewsUsecase
	cache   config.CacheConfig
}

func NewNewsHandler(usecase *fetch_news_usecase.FetchNewsUsecase, cache config.CacheConfig) *NewsHandler {
	return &NewsHandler{usecase: usecase, cache: cache}
}

// GetNews serves one page of aggregated news. Upstream failures degrade to
// an empty page with the error message in the body, never a 5xx, so CDN
// edges keep serving and clients keep rendering.
func (h *NewsHandler) GetNews(c echo.Context) error {
	ctx := c.Request().Context()

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 0)

	setCacheHeaders(c, h.cache)

	result, err := h.usecase.Execute(ctx, page, pageSize)
	if err != nil {
		logger.Logger.Error("news pipeline failed", "error", err)
		message := newsUnavailableMessage
		return c.JSON(http.StatusOK, NewsResponse{
			Items:     []*domain.ContentItem{},
			Page:      1,
			PageCount: 1,
			Error:     &message,
		})
	}

	return c.JSON(http.StatusOK, NewsResponse{
		Items:     result.Items,
		Page:      result.Page,
		PageCount: result.PageCount,
	})
}
