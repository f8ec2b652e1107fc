// Package channel_resolver_gateway resolves user-supplied channel
// references. Bare ids and URL forms resolve without network access; handles
// need a fetch of the public channel page.
package channel_resolver_gateway

import (
	"context"
	"strings"

	"antena/domain"
	"antena/driver/feed_client"
	apperrors "antena/utils/errors"
	"antena/utils/logger"

	"github.com/PuerkitoBio/goquery"
)

const channelPageBase = "https://www.youtube.com/"

type ChannelResolverGateway struct {
	client   *feed_client.Client
	pageBase string
}

func NewChannelResolverGateway(client *feed_client.Client) *ChannelResolverGateway {
	return &ChannelResolverGateway{client: client, pageBase: channelPageBase}
}

// Resolve returns errors.ErrChannelNotFound for every unresolvable form,
// including transport failures during handle lookup, so callers can answer
// with an empty successful result instead of surfacing an exception.
func (g *ChannelResolverGateway) Resolve(ctx context.Context, query string) (*domain.ChannelRef, error) {
	ref, handle := domain.ParseChannelQuery(query)
	if ref != nil {
		return ref, nil
	}
	if handle == "" {
		return nil, apperrors.ErrChannelNotFound
	}

	body, _, err := g.client.Get(ctx, g.pageBase+handle)
	if err != nil {
		logger.Logger.Warn("handle page fetch failed", "handle", handle, "error", err)
		return nil, apperrors.ErrChannelNotFound
	}

	pageHTML := string(body)

	if id := canonicalChannelID(pageHTML); id != "" {
		return &domain.ChannelRef{Kind: domain.ChannelRefID, Value: id}, nil
	}

	if id := domain.ChannelIDFromPage(pageHTML); id != "" {
		return &domain.ChannelRef{Kind: domain.ChannelRefID, Value: id}, nil
	}

	logger.Logger.Warn("no channel id found on handle page", "handle", handle)
	return nil, apperrors.ErrChannelNotFound
}

// canonicalChannelID reads the page's canonical link element, which points
// at the /channel/<id> form of the same page.
func canonicalChannelID(pageHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return ""
	}

	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok {
		return ""
	}

	return domain.ChannelIDFromPage(href)
}
