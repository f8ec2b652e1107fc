// Package di wires drivers, gateways, and usecases into the component graph
// the REST layer consumes.
package di

import (
	"antena/config"
	"antena/driver/feed_client"
	"antena/gateway/channel_resolver_gateway"
	"antena/gateway/feed_fetch_gateway"
	"antena/gateway/image_proxy_gateway"
	"antena/gateway/preview_image_gateway"
	"antena/usecase/fetch_news_usecase"
	"antena/usecase/fetch_videos_usecase"
	"antena/usecase/image_proxy_usecase"
	"antena/utils/rate_limiter"
)

type ApplicationComponents struct {
	FetchNewsUsecase   *fetch_news_usecase.FetchNewsUsecase
	FetchVideosUsecase *fetch_videos_usecase.FetchVideosUsecase
	ImageProxyUsecase  *image_proxy_usecase.ImageProxyUsecase
}

// NewApplicationComponents builds the full dependency graph. All outbound
// traffic shares one per-host rate limiter; feed, page, and image fetches
// get separate clients because their timeouts and body limits differ.
func NewApplicationComponents(cfg *config.Config) *ApplicationComponents {
	limiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)

	feedClient := feed_client.New(cfg.HTTP.FeedTimeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxFeedBytes, limiter)
	pageClient := feed_client.New(cfg.HTTP.PageTimeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxFeedBytes, limiter)
	imageClient := feed_client.New(cfg.HTTP.PageTimeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxImageBytes, limiter)

	feedGateway := feed_fetch_gateway.NewFeedFetchGateway(feedClient)
	resolverGateway := channel_resolver_gateway.NewChannelResolverGateway(pageClient)
	previewGateway := preview_image_gateway.NewPreviewImageGateway(pageClient)
	imageGateway := image_proxy_gateway.NewImageProxyGateway(imageClient)

	return &ApplicationComponents{
		FetchNewsUsecase:   fetch_news_usecase.NewFetchNewsUsecase(feedGateway, previewGateway, cfg.News),
		FetchVideosUsecase: fetch_videos_usecase.NewFetchVideosUsecase(resolverGateway, feedGateway, cfg.Video),
		ImageProxyUsecase:  image_proxy_usecase.NewImageProxyUsecase(imageGateway),
	}
}
