// Package fetch_videos_usecase assembles the channel video pipeline: channel
// resolution, feed fetch, normalization, capping, and pagination.
package fetch_videos_usecase

import (
	"context"
	"strings"

	"antena/config"
	"antena/domain"
	"antena/port/channel_resolver_port"
	"antena/port/feed_fetch_port"
)

type FetchVideosUsecase struct {
	resolverPort channel_resolver_port.ResolveChannelPort
	fetchPort    feed_fetch_port.FetchFeedPort
	cfg          config.VideoConfig
}

func NewFetchVideosUsecase(
	resolverPort channel_resolver_port.ResolveChannelPort,
	fetchPort feed_fetch_port.FetchFeedPort,
	cfg config.VideoConfig,
) *FetchVideosUsecase {
	return &FetchVideosUsecase{
		resolverPort: resolverPort,
		fetchPort:    fetchPort,
		cfg:          cfg,
	}
}

// Execute resolves the channel reference (the configured default when the
// query is blank) and returns the requested page of its capped video list.
func (u *FetchVideosUsecase) Execute(ctx context.Context, channelQuery string, page, pageSize int) (*domain.VideoPage, error) {
	query := strings.TrimSpace(channelQuery)
	if query == "" {
		query = u.cfg.DefaultChannel
	}

	ref, err := u.resolverPort.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	records, err := u.fetchPort.FetchFirst(ctx, []domain.FeedSource{
		{Name: "youtube", URL: ref.FeedURL()},
	})
	if err != nil {
		return nil, err
	}

	videos := domain.NormalizeVideoItems(records)
	videos = domain.CapItems(videos, u.cfg.MaxItems)

	size := domain.ClampPageSize(pageSize, u.cfg.DefaultPageSize, u.cfg.MaxPageSize)
	pageItems, clampedPage, pageCount := domain.Paginate(videos, page, size)

	return &domain.VideoPage{
		Items:     pageItems,
		Page:      clampedPage,
		PageCount: pageCount,
	}, nil
}
