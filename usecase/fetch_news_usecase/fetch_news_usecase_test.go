package fetch_news_usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"antena/config"
	"antena/domain"
	"antena/mocks"
	apperrors "antena/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testNewsConfig() config.NewsConfig {
	return config.NewsConfig{
		SourceName:      "elcomercio",
		FeedURLs:        []string{"https://example.com/primary.xml", "https://example.com/secondary.xml"},
		FallbackFeedURL: "https://example.com/fallback.xml",
		MaxItems:        12,
		EnrichLimit:     14,
		DefaultPageSize: 6,
		MaxPageSize:     6,
	}
}

// newsRecords builds n records with distinct links and enclosure images, so
// nothing needs enrichment unless a test strips the image candidates.
func newsRecords(n int) []*domain.FeedItem {
	records := make([]*domain.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, &domain.FeedItem{
			Title:        fmt.Sprintf("Noticia %d", i),
			Link:         fmt.Sprintf("https://example.com/noticias/%d", i),
			GUID:         fmt.Sprintf("https://example.com/noticias/%d", i),
			Description:  "<p>Un resumen corto</p>",
			EnclosureURL: fmt.Sprintf("https://example.com/img/%d.jpg", i),
			Published:    "2026-01-02T03:04:05Z",
		})
	}
	return records
}

func TestExecute_NormalizesAndPaginates(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(newsRecords(8), nil)

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	page, err := usecase.Execute(context.Background(), 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PageCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Noticia 6", page.Items[0].Title)
	assert.Equal(t, "elcomercio", page.Items[0].Source)
}

func TestExecute_SourceChainOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	var captured []domain.FeedSource
	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sources []domain.FeedSource) ([]*domain.FeedItem, error) {
			captured = sources
			return newsRecords(1), nil
		})

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	_, err := usecase.Execute(context.Background(), 1, 0)

	require.NoError(t, err)
	require.Len(t, captured, 3)
	assert.Equal(t, "https://example.com/primary.xml", captured[0].URL)
	assert.Equal(t, "https://example.com/secondary.xml", captured[1].URL)
	assert.Equal(t, "https://example.com/fallback.xml", captured[2].URL)
	assert.False(t, captured[0].Fallback)
	assert.False(t, captured[1].Fallback)
	assert.True(t, captured[2].Fallback)
}

func TestExecute_EnrichesItemsWithoutImages(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	records := newsRecords(3)
	records[1].EnclosureURL = ""

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(records, nil)
	previewPort.EXPECT().
		PreviewImage(gomock.Any(), "https://example.com/noticias/1").
		Return("https://example.com/social/1.jpg", nil)

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	page, err := usecase.Execute(context.Background(), 1, 0)

	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "https://example.com/img/0.jpg", page.Items[0].Image)
	assert.Equal(t, "https://example.com/social/1.jpg", page.Items[1].Image)
}

func TestExecute_EnrichmentWindowBoundsScrapes(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	cfg := testNewsConfig()
	cfg.EnrichLimit = 2

	records := newsRecords(5)
	for _, record := range records {
		record.EnclosureURL = ""
	}

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(records, nil)
	previewPort.EXPECT().
		PreviewImage(gomock.Any(), gomock.Any()).
		Return("", nil).
		Times(2)

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, cfg)

	_, err := usecase.Execute(context.Background(), 1, 0)

	require.NoError(t, err)
}

func TestExecute_EnrichmentFansOutWholeWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	records := newsRecords(8)
	for _, record := range records {
		record.EnclosureURL = ""
	}

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(records, nil)

	var inFlight, peak int64
	previewPort.EXPECT().
		PreviewImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (string, error) {
			current := atomic.AddInt64(&inFlight, 1)
			for {
				old := atomic.LoadInt64(&peak)
				if current <= old || atomic.CompareAndSwapInt64(&peak, old, current) {
					break
				}
			}
			time.Sleep(100 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return "", nil
		}).
		Times(8)

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	start := time.Now()
	_, err := usecase.Execute(context.Background(), 1, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(8), atomic.LoadInt64(&peak),
		"every image-less item in the window fetches at the same time")
	assert.Less(t, time.Since(start), 300*time.Millisecond,
		"the window completes as one batch, not sequential waves")
}

func TestExecute_EnrichmentFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	records := newsRecords(1)
	records[0].EnclosureURL = ""

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(records, nil)
	previewPort.EXPECT().
		PreviewImage(gomock.Any(), gomock.Any()).
		Return("", errors.New("article page unreachable"))

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	page, err := usecase.Execute(context.Background(), 1, 0)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Empty(t, page.Items[0].Image)
}

func TestExecute_CapsResultSetBeforePagination(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(newsRecords(40), nil)

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	page, err := usecase.Execute(context.Background(), 99, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, page.PageCount, "cap of 12 at page size 6 yields two pages")
	assert.Equal(t, 2, page.Page, "out-of-range page requests clamp to the last page")
	assert.Len(t, page.Items, 6)
}

func TestExecute_FetchFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetchPort := mocks.NewMockFetchFeedPort(ctrl)
	previewPort := mocks.NewMockPreviewImagePort(ctrl)

	fetchPort.EXPECT().
		FetchFirst(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ExternalAPIError("all feed sources exhausted", apperrors.ErrNoFeedSource, nil))

	usecase := NewFetchNewsUsecase(fetchPort, previewPort, testNewsConfig())

	page, err := usecase.Execute(context.Background(), 1, 0)

	assert.Nil(t, page)
	assert.True(t, apperrors.IsNoFeedSource(err))
}
