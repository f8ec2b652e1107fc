package domain

import "strings"

// VideoItem is one entry of a channel's video feed.
type VideoItem struct {
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt"`
	Thumb       string `json:"thumb,omitempty"`
}

// VideoPage is one page of the capped video result set.
type VideoPage struct {
	Items     []*VideoItem
	Page      int
	PageCount int
}

const (
	lowResThumbFile  = "hqdefault.jpg"
	highResThumbFile = "maxresdefault.jpg"
)

// NormalizeVideoItems maps raw feed records to video items. Records without
// a video id are dropped; thumbnails are upgraded to the high-resolution
// variant.
func NormalizeVideoItems(records []*FeedItem) []*VideoItem {
	items := make([]*VideoItem, 0, len(records))

	for _, record := range records {
		if record == nil {
			continue
		}

		videoID := strings.TrimSpace(record.VideoID)
		if videoID == "" {
			continue
		}

		items = append(items, &VideoItem{
			VideoID:     videoID,
			Title:       strings.TrimSpace(record.Title),
			PublishedAt: record.Published,
			Thumb:       UpgradeThumbnail(record.MediaThumbnailURL),
		})
	}

	return items
}

// UpgradeThumbnail rewrites a known low-resolution thumbnail filename to its
// high-resolution variant. All other URL segments stay untouched.
func UpgradeThumbnail(thumbURL string) string {
	return strings.Replace(thumbURL, lowResThumbFile, highResThumbFile, 1)
}
