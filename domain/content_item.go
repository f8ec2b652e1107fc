package domain

// ContentItem is the canonical shape of one aggregated news entry. Image is
// empty while unknown; enrichment fills it when a preview can be scraped
// from the article page.
type ContentItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// NewsPage is one page of the capped news result set.
type NewsPage struct {
	Items     []*ContentItem
	Page      int
	PageCount int
}
