// Package image_proxy_gateway fetches remote image bytes for passthrough.
// Bodies are served unmodified with the upstream content type.
package image_proxy_gateway

import (
	"context"

	"antena/domain"
	"antena/driver/feed_client"
	apperrors "antena/utils/errors"
)

type ImageProxyGateway struct {
	client *feed_client.Client
}

func NewImageProxyGateway(client *feed_client.Client) *ImageProxyGateway {
	return &ImageProxyGateway{client: client}
}

func (g *ImageProxyGateway) FetchImage(ctx context.Context, src string) (*domain.ImageProxyResult, error) {
	body, contentType, err := g.client.Get(ctx, src)
	if err != nil {
		return nil, apperrors.ExternalAPIError("failed to fetch image", err,
			map[string]interface{}{"src": src})
	}

	// Some upstreams omit or mislabel the content type; the body is still
	// passed through so the browser can sniff it.
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &domain.ImageProxyResult{
		Data:        body,
		ContentType: contentType,
	}, nil
}
