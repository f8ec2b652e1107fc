// Package fetch_news_usecase assembles the news pipeline: fallback fetch,
// normalization, preview image enrichment, result capping, and pagination.
package fetch_news_usecase

import (
	"context"

	"antena/config"
	"antena/domain"
	"antena/port/feed_fetch_port"
	"antena/port/preview_image_port"
	"antena/utils/logger"
	"antena/utils/metrics"

	"golang.org/x/sync/errgroup"
)

type FetchNewsUsecase struct {
	fetchPort   feed_fetch_port.FetchFeedPort
	previewPort preview_image_port.PreviewImagePort
	cfg         config.NewsConfig
}

func NewFetchNewsUsecase(
	fetchPort feed_fetch_port.FetchFeedPort,
	previewPort preview_image_port.PreviewImagePort,
	cfg config.NewsConfig,
) *FetchNewsUsecase {
	return &FetchNewsUsecase{
		fetchPort:   fetchPort,
		previewPort: previewPort,
		cfg:         cfg,
	}
}

// Execute runs the full pipeline and returns the requested page. The result
// set is capped before pagination so page math is stable regardless of how
// many records the winning feed carried.
func (u *FetchNewsUsecase) Execute(ctx context.Context, page, pageSize int) (*domain.NewsPage, error) {
	records, err := u.fetchPort.FetchFirst(ctx, u.sources())
	if err != nil {
		return nil, err
	}

	items := domain.NormalizeNewsItems(records, u.cfg.SourceName)
	u.enrichImages(ctx, items)
	items = domain.CapItems(items, u.cfg.MaxItems)

	size := domain.ClampPageSize(pageSize, u.cfg.DefaultPageSize, u.cfg.MaxPageSize)
	pageItems, clampedPage, pageCount := domain.Paginate(items, page, size)

	return &domain.NewsPage{
		Items:     pageItems,
		Page:      clampedPage,
		PageCount: pageCount,
	}, nil
}

// sources builds the configured fetch chain with the search aggregator
// appended as the last candidate.
func (u *FetchNewsUsecase) sources() []domain.FeedSource {
	sources := make([]domain.FeedSource, 0, len(u.cfg.FeedURLs)+1)
	for _, feedURL := range u.cfg.FeedURLs {
		sources = append(sources, domain.FeedSource{
			Name: u.cfg.SourceName,
			URL:  feedURL,
		})
	}
	if u.cfg.FallbackFeedURL != "" {
		sources = append(sources, domain.FeedSource{
			Name:     "fallback",
			URL:      u.cfg.FallbackFeedURL,
			Fallback: true,
		})
	}
	return sources
}

// enrichImages scrapes preview images for items in the enrichment window
// that came out of normalization without one. The whole window fans out as
// one concurrent batch; the window size is the only concurrency bound, so
// worst-case added latency stays at a single page timeout. Scrape failures
// only cost the item its image; the request never fails here.
func (u *FetchNewsUsecase) enrichImages(ctx context.Context, items []*domain.ContentItem) {
	if u.previewPort == nil {
		return
	}

	window := u.cfg.EnrichLimit
	if window > len(items) {
		window = len(items)
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, item := range items[:window] {
		if item.Image != "" {
			continue
		}

		item := item
		g.Go(func() error {
			image, err := u.previewPort.PreviewImage(gctx, item.URL)
			if err != nil {
				metrics.ImageEnrichmentTotal.WithLabelValues("fetch_error").Inc()
				logger.Logger.Warn("preview image fetch failed",
					"url", item.URL,
					"error", err)
				return nil
			}
			if image == "" {
				metrics.ImageEnrichmentTotal.WithLabelValues("missing").Inc()
				return nil
			}

			item.Image = image
			metrics.ImageEnrichmentTotal.WithLabelValues("found").Inc()
			return nil
		})
	}

	_ = g.Wait()
}
