package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"antena/config"
	"antena/domain"
	"antena/mocks"
	"antena/usecase/fetch_news_usecase"
	"antena/usecase/fetch_videos_usecase"
	"antena/usecase/image_proxy_usecase"
	apperrors "antena/utils/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		ResponseTTL:          12 * time.Hour,
		StaleWhileRevalidate: 10 * time.Minute,
	}
}

func testNewsConfig() config.NewsConfig {
	return config.NewsConfig{
		SourceName:      "elcomercio",
		FeedURLs:        []string{"https://example.com/feed.xml"},
		MaxItems:        12,
		EnrichLimit:     14,
		DefaultPageSize: 6,
		MaxPageSize:     6,
	}
}

func testVideoConfig() config.VideoConfig {
	return config.VideoConfig{
		DefaultChannel:  "@ussradio",
		MaxItems:        12,
		DefaultPageSize: 6,
		MaxPageSize:     12,
	}
}

func doRequest(t *testing.T, target string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestGetNews_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	records := make([]*domain.FeedItem, 0, 8)
	for i := 0; i < 8; i++ {
		records = append(records, &domain.FeedItem{
			Title:        fmt.Sprintf("Noticia %d", i),
			Link:         fmt.Sprintf("https://example.com/n/%d", i),
			EnclosureURL: fmt.Sprintf("https://example.com/img/%d.jpg", i),
		})
	}
	fetchPort.EXPECT().FetchFirst(gomock.Any(), gomock.Any()).Return(records, nil)

	usecase := fetch_news_usecase.NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())
	handler := NewNewsHandler(usecase, testCacheConfig())

	rec := doRequest(t, "/v1/news?page=2", handler.GetNews)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, s-maxage=43200, stale-while-revalidate=600",
		rec.Header().Get("Cache-Control"))

	var body NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Error)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 2, body.PageCount)
	assert.Len(t, body.Items, 2)
}

func TestGetNews_UpstreamFailureDegradesInBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ExternalAPIError("all feed sources exhausted", apperrors.ErrNoFeedSource, nil))

	usecase := fetch_news_usecase.NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())
	handler := NewNewsHandler(usecase, testCacheConfig())

	rec := doRequest(t, "/v1/news", handler.GetNews)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "could not load news", *body.Error)
	assert.Empty(t, body.Items)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.PageCount)
}

func TestGetVideos_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolverPort := mocks.NewMockResolveChannelPort(ctrl)
	fetchPort := mocks.NewMockFetchFeedPort(ctrl)

	resolverPort.EXPECT().
		Resolve(gomock.Any(), "UCabcdefghijklmnopqrstuv").
		Return(&domain.ChannelRef{Kind: domain.ChannelRefID, Value: "UCabcdefghijklmnopqrstuv"}, nil)
	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return([]*domain.FeedItem{
			{Title: "Clip", VideoID: "dQw4w9WgXcQ", MediaThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
		}, nil)

	usecase := fetch_videos_usecase.NewFetchVideosUsecase(resolverPort, fetchPort, testVideoConfig())
	handler := NewVideoHandler(usecase, testCacheConfig())

	rec := doRequest(t, "/v1/videos?id=UCabcdefghijklmnopqrstuv", handler.GetVideos)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body VideosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Error)
	assert.Equal(t, "rss", body.Source)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", body.Items[0].Thumb)
}

func TestGetVideos_ChannelNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolverPort := mocks.NewMockResolveChannelPort(ctrl)
	fetchPort := mocks.NewMockFetchFeedPort(ctrl)

	resolverPort.EXPECT().
		Resolve(gomock.Any(), "@missing").
		Return(nil, apperrors.ErrChannelNotFound)

	usecase := fetch_videos_usecase.NewFetchVideosUsecase(resolverPort, fetchPort, testVideoConfig())
	handler := NewVideoHandler(usecase, testCacheConfig())

	rec := doRequest(t, "/v1/videos?handle=@missing", handler.GetVideos)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body VideosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "channel not found", *body.Error)
	assert.Empty(t, body.Items)
}

func TestGetImage_InvalidSourceAnswers400(t *testing.T) {
	ctrl := gomock.NewController(t)
	imagePort := mocks.NewMockFetchImagePort(ctrl)

	usecase := image_proxy_usecase.NewImageProxyUsecase(imagePort)
	handler := NewImageProxyHandler(usecase)

	rec := doRequest(t, "/v1/images/proxy?src=/relative.jpg", handler.GetImage)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ProxyErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestGetImage_FetchFailureAnswers200(t *testing.T) {
	ctrl := gomock.NewController(t)
	imagePort := mocks.NewMockFetchImagePort(ctrl)

	imagePort.EXPECT().
		FetchImage(gomock.Any(), "https://example.com/gone.png").
		Return(nil, apperrors.ExternalAPIError("failed to fetch image", apperrors.ErrUpstreamFailure, nil))

	usecase := image_proxy_usecase.NewImageProxyUsecase(imagePort)
	handler := NewImageProxyHandler(usecase)

	rec := doRequest(t, "/v1/images/proxy?src=https%3A%2F%2Fexample.com%2Fgone.png", handler.GetImage)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ProxyErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "could not load image", body.Error)
}

func TestGetImage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	imagePort := mocks.NewMockFetchImagePort(ctrl)

	payload := []byte{0x89, 'P', 'N', 'G'}
	imagePort.EXPECT().
		FetchImage(gomock.Any(), "https://example.com/photo.png").
		Return(&domain.ImageProxyResult{Data: payload, ContentType: "image/png"}, nil)

	usecase := image_proxy_usecase.NewImageProxyUsecase(imagePort)
	handler := NewImageProxyHandler(usecase)

	rec := doRequest(t, "/v1/images/proxy?src=https%3A%2F%2Fexample.com%2Fphoto.png", handler.GetImage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=43200, s-maxage=43200", rec.Header().Get("Cache-Control"))
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestGetStations(t *testing.T) {
	stations := []domain.Station{
		{ID: "romantica", Name: "Radio Romántica", StreamURL: "https://stream.zeno.fm/abc"},
	}
	handler := NewStationHandler(stations, testCacheConfig())

	rec := doRequest(t, "/v1/stations", handler.GetStations)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body StationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Stations, 1)
	assert.Equal(t, "romantica", body.Stations[0].ID)
}

func TestHealthCheck(t *testing.T) {
	rec := doRequest(t, "/v1/health", healthCheck)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
}
