// Package feed_fetch_gateway implements the fallback fetch chain: candidate
// sources are tried in priority order and the first one that passes the full
// transport + markup + non-empty check wins.
package feed_fetch_gateway

import (
	"context"
	"strings"
	"time"

	"antena/domain"
	"antena/driver/feed_client"
	apperrors "antena/utils/errors"
	"antena/utils/logger"
	"antena/utils/metrics"

	"github.com/mmcdole/gofeed"
)

type FeedFetchGateway struct {
	client *feed_client.Client
}

func NewFeedFetchGateway(client *feed_client.Client) *FeedFetchGateway {
	return &FeedFetchGateway{client: client}
}

// FetchFirst tries each source in order. A source is accepted only when the
// transport call succeeds, the body carries recognizable feed markup, and at
// least one record parses out of it; any failure moves on to the next
// candidate. Exhaustion of the whole chain is the only error.
func (g *FeedFetchGateway) FetchFirst(ctx context.Context, sources []domain.FeedSource) ([]*domain.FeedItem, error) {
	for _, source := range sources {
		records, err := g.fetchOne(ctx, source)
		if err != nil {
			logger.Logger.Warn("feed source failed, trying next candidate",
				"source", source.Name,
				"url", source.URL,
				"error", err)
			continue
		}

		if source.Fallback {
			metrics.FeedFallbackTotal.Inc()
		}

		logger.Logger.Info("feed source accepted",
			"source", source.Name,
			"records", len(records),
			"fallback", source.Fallback)
		return records, nil
	}

	return nil, apperrors.ExternalAPIError(
		"all feed sources exhausted",
		apperrors.ErrNoFeedSource,
		map[string]interface{}{"candidates": len(sources)},
	)
}

func (g *FeedFetchGateway) fetchOne(ctx context.Context, source domain.FeedSource) ([]*domain.FeedItem, error) {
	body, _, err := g.client.Get(ctx, source.URL)
	if err != nil {
		metrics.UpstreamFetchTotal.WithLabelValues(source.Name, "transport_error").Inc()
		return nil, err
	}

	text := string(body)
	if !looksLikeFeed(text) {
		metrics.UpstreamFetchTotal.WithLabelValues(source.Name, "bad_markup").Inc()
		return nil, apperrors.ParseError("no recognizable feed markup", nil,
			map[string]interface{}{"url": source.URL})
	}

	feed, err := gofeed.NewParser().ParseString(text)
	if err != nil {
		metrics.UpstreamFetchTotal.WithLabelValues(source.Name, "bad_markup").Inc()
		return nil, apperrors.ParseError("failed to parse feed", err,
			map[string]interface{}{"url": source.URL})
	}

	if len(feed.Items) == 0 {
		metrics.UpstreamFetchTotal.WithLabelValues(source.Name, "empty_feed").Inc()
		return nil, apperrors.ParseError("feed contains no records", nil,
			map[string]interface{}{"url": source.URL})
	}

	metrics.UpstreamFetchTotal.WithLabelValues(source.Name, "success").Inc()

	records := make([]*domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		records = append(records, toFeedItem(item))
	}
	return records, nil
}

// looksLikeFeed checks for a feed root tag before handing the body to the
// parser, so HTML error pages served with a 200 are rejected cheaply.
func looksLikeFeed(text string) bool {
	return strings.Contains(text, "<rss") ||
		strings.Contains(text, "<feed") ||
		strings.Contains(text, "<rdf:RDF")
}

func toFeedItem(item *gofeed.Item) *domain.FeedItem {
	record := &domain.FeedItem{
		Title:       item.Title,
		Link:        item.Link,
		GUID:        item.GUID,
		Description: item.Description,
		Content:     item.Content,
	}

	if item.PublishedParsed != nil {
		record.Published = item.PublishedParsed.Format(time.RFC3339)
	} else {
		record.Published = strings.TrimSpace(item.Published)
	}

	for _, enclosure := range item.Enclosures {
		if enclosure != nil && enclosure.URL != "" {
			record.EnclosureURL = enclosure.URL
			break
		}
	}

	record.MediaContentURL = mediaAttr(item, "content")
	record.MediaThumbnailURL = mediaAttr(item, "thumbnail")
	record.VideoID = extensionValue(item, "yt", "videoId")

	return record
}

// mediaAttr finds the url attribute of a media:* element. Video feeds nest
// thumbnails inside media:group, so group children are searched as well.
func mediaAttr(item *gofeed.Item, element string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	for _, el := range media[element] {
		if u := el.Attrs["url"]; u != "" {
			return u
		}
	}

	for _, group := range media["group"] {
		for _, el := range group.Children[element] {
			if u := el.Attrs["url"]; u != "" {
				return u
			}
		}
	}

	return ""
}

func extensionValue(item *gofeed.Item, space, element string) string {
	ext, ok := item.Extensions[space]
	if !ok {
		return ""
	}
	for _, el := range ext[element] {
		if v := strings.TrimSpace(el.Value); v != "" {
			return v
		}
	}
	return ""
}
