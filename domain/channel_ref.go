package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ChannelRefKind distinguishes modern channel ids from legacy user
// references; the two map to different feed URL query parameters.
type ChannelRefKind string

const (
	ChannelRefID   ChannelRefKind = "channelId"
	ChannelRefUser ChannelRefKind = "user"
)

// ChannelRef is a resolved reference to a video channel.
type ChannelRef struct {
	Kind  ChannelRefKind
	Value string
}

const videoFeedBase = "https://www.youtube.com/feeds/videos.xml"

// FeedURL builds the channel's video feed URL.
func (r ChannelRef) FeedURL() string {
	if r.Kind == ChannelRefUser {
		return fmt.Sprintf("%s?user=%s", videoFeedBase, url.QueryEscape(r.Value))
	}
	return fmt.Sprintf("%s?channel_id=%s", videoFeedBase, url.QueryEscape(r.Value))
}

var channelIDPattern = regexp.MustCompile(`^UC[\w-]{22}$`)

// IsChannelID reports whether s matches the fixed 24-character channel id
// pattern.
func IsChannelID(s string) bool {
	return channelIDPattern.MatchString(s)
}

// ParseChannelQuery inspects a user-supplied channel reference without
// touching the network. It returns either a resolved ref (bare id, or a URL
// containing a channel/user path) or a handle that still needs a page-fetch
// lookup. Both empty means the input is unresolvable.
func ParseChannelQuery(query string) (ref *ChannelRef, handle string) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ""
	}

	if IsChannelID(q) {
		return &ChannelRef{Kind: ChannelRefID, Value: q}, ""
	}

	raw := q
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://www.youtube.com/" + strings.TrimPrefix(raw, "/")
	}

	u, err := url.Parse(raw)
	if err == nil {
		parts := splitPath(u.Path)
		if len(parts) >= 2 && parts[0] == "channel" && IsChannelID(parts[1]) {
			return &ChannelRef{Kind: ChannelRefID, Value: parts[1]}, ""
		}
		if len(parts) >= 2 && parts[0] == "user" {
			return &ChannelRef{Kind: ChannelRefUser, Value: parts[1]}, ""
		}
		if len(parts) >= 1 && strings.HasPrefix(parts[0], "@") {
			return nil, parts[0]
		}
	}

	if strings.HasPrefix(q, "@") {
		return nil, q
	}

	return nil, ""
}

func splitPath(path string) []string {
	parts := make([]string, 0, 4)
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ChannelIDFromPage scans a channel page for the embedded channel id. Page
// data carries it as a JSON field; the canonical link form is the fallback.
var (
	embeddedChannelIDPattern = regexp.MustCompile(`"channelId":"(UC[\w-]{22})"`)
	canonicalChannelPattern  = regexp.MustCompile(`youtube\.com/channel/(UC[\w-]{22})`)
)

func ChannelIDFromPage(pageHTML string) string {
	if m := embeddedChannelIDPattern.FindStringSubmatch(pageHTML); m != nil {
		return m[1]
	}
	if m := canonicalChannelPattern.FindStringSubmatch(pageHTML); m != nil {
		return m[1]
	}
	return ""
}
