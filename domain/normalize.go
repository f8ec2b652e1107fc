package domain

import (
	"net/url"
	"strings"

	"antena/utils/html_parser"

	"github.com/google/uuid"
)

// DescriptionRuneLimit caps plain-text descriptions. Anything longer is cut
// and terminated with an ellipsis.
const DescriptionRuneLimit = 190

// NormalizeNewsItems maps raw feed records to canonical content items.
// Records without a usable title or absolute link are dropped, duplicates
// (by canonical link) keep their first occurrence, and feed order is
// otherwise preserved.
func NormalizeNewsItems(records []*FeedItem, source string) []*ContentItem {
	items := make([]*ContentItem, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		if record == nil {
			continue
		}

		title := strings.TrimSpace(html_parser.StripTags(record.Title))
		link := canonicalLink(record)
		if title == "" || link == "" {
			continue
		}

		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		items = append(items, &ContentItem{
			ID:          itemID(record, link),
			Title:       title,
			URL:         link,
			Description: normalizeDescription(record),
			Image:       extractImage(record),
			Source:      source,
			PublishedAt: record.Published,
		})
	}

	return items
}

// canonicalLink prefers the record's link field. The GUID is used only when
// it is itself an absolute http(s) URL and the link is absent or relative.
func canonicalLink(record *FeedItem) string {
	link := strings.TrimSpace(record.Link)
	if isAbsoluteHTTP(link) {
		return link
	}

	guid := strings.TrimSpace(record.GUID)
	if isAbsoluteHTTP(guid) {
		return guid
	}

	return ""
}

func itemID(record *FeedItem, link string) string {
	if guid := strings.TrimSpace(record.GUID); guid != "" {
		return guid
	}
	if link != "" {
		return link
	}
	return uuid.NewString()
}

// normalizeDescription takes the first non-empty description candidate,
// strips markup, and caps the length.
func normalizeDescription(record *FeedItem) string {
	for _, candidate := range []string{record.Description, record.Content} {
		text := strings.TrimSpace(html_parser.StripTags(candidate))
		if text == "" {
			continue
		}
		return truncateRunes(text, DescriptionRuneLimit)
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "…"
}

// extractImage applies the image source precedence: enclosure, then
// media:content, then media:thumbnail, then a first-<img> scan of the
// encoded HTML. An empty result leaves the item open for enrichment.
func extractImage(record *FeedItem) string {
	for _, candidate := range []string{
		record.EnclosureURL,
		record.MediaContentURL,
		record.MediaThumbnailURL,
	} {
		if isAbsoluteHTTP(candidate) {
			return candidate
		}
	}

	for _, rawHTML := range []string{record.Content, record.Description} {
		if rawHTML == "" {
			continue
		}
		if src := html_parser.ExtractFirstImageSrc(rawHTML); isAbsoluteHTTP(src) {
			return src
		}
	}

	return ""
}

func isAbsoluteHTTP(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
