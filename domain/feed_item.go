package domain

// FeedSource is one fetchable feed candidate. Sources are tried in the order
// they are configured; the last entry of a news chain is the search
// aggregator fallback.
type FeedSource struct {
	Name string
	URL  string

	// Fallback marks the search aggregator entry at the end of a chain.
	Fallback bool
}

// FeedItem is a source-shaped record extracted from feed XML, before
// normalization. Field values are kept raw; markup stripping and precedence
// rules are applied by the normalizers.
type FeedItem struct {
	Title       string
	Link        string
	GUID        string
	Published   string
	Description string
	Content     string

	// Image candidates in feed-dialect order of appearance.
	EnclosureURL      string
	MediaContentURL   string
	MediaThumbnailURL string

	// Video-feed extension fields.
	VideoID string
}
