// Package preview_image_gateway scrapes social preview images from article
// pages for items whose feed record carried no image.
package preview_image_gateway

import (
	"context"

	"antena/driver/feed_client"
	"antena/utils/html_parser"
)

type PreviewImageGateway struct {
	client *feed_client.Client
}

func NewPreviewImageGateway(client *feed_client.Client) *PreviewImageGateway {
	return &PreviewImageGateway{client: client}
}

// PreviewImage fetches the page and extracts og:image (twitter:image as
// fallback). A page without a preview tag yields an empty string, not an
// error; transport failures are returned for the caller to swallow.
func (g *PreviewImageGateway) PreviewImage(ctx context.Context, pageURL string) (string, error) {
	body, _, err := g.client.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}

	return html_parser.ExtractOGImageURL(string(body)), nil
}
