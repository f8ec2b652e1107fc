package rest

import (
	"net/http"

	"antena/config"
	"antena/domain"
	"antena/usecase/fetch_videos_usecase"
	apperrors "antena/utils/errors"
	"antena/utils/logger"

	"github.com/labstack/echo/v4"
)

const (
	videosUnavailableMessage = "could not load videos"
	channelNotFoundMessage   = "channel not found"

	// videoSourceLabel tells the front end which ingestion path produced the
	// list; the channel feed is the only one today.
	videoSourceLabel = "rss"
)

type VideoHandler struct {
	usecase *fetch_videos_usecase.FetchVideosUsecase
	cache   config.CacheConfig
}

func NewVideoHandler(usecase *fetch_videos_usecase.FetchVideosUsecase, cache config.CacheConfig) *VideoHandler {
	return &VideoHandler{usecase: usecase, cache: cache}
}

// GetVideos serves one page of a channel's videos. The channel comes from
// the id or handle query parameter; blank means the configured default
// channel. Unresolvable channels and upstream failures both answer 200 with
// the error in the body.
func (h *VideoHandler) GetVideos(c echo.Context) error {
	ctx := c.Request().Context()

	channelQuery := c.QueryParam("id")
	if channelQuery == "" {
		channelQuery = c.QueryParam("handle")
	}

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 0)

	setCacheHeaders(c, h.cache)

	result, err := h.usecase.Execute(ctx, channelQuery, page, pageSize)
	if err != nil {
		message := videosUnavailableMessage
		if apperrors.IsChannelNotFound(err) {
			message = channelNotFoundMessage
		}
		logger.Logger.Error("video pipeline failed", "channel", channelQuery, "error", err)
		return c.JSON(http.StatusOK, VideosResponse{
			Items:     []*domain.VideoItem{},
			Page:      1,
			PageCount: 1,
			Source:    videoSourceLabel,
			Error:     &message,
		})
	}

	return c.JSON(http.StatusOK, VideosResponse{
		Items:     result.Items,
		Page:      result.Page,
		PageCount: result.PageCount,
		Source:    videoSourceLabel,
	})
}
